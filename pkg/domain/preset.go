package domain

// Preset is an ordered list of top-level nodes that together describe one
// prompt configuration. Generation walks the nodes in order and joins their
// outputs with ", ".
type Preset struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Clone returns a deep copy of the preset.
func (p Preset) Clone() Preset {
	out := p
	if p.Nodes != nil {
		out.Nodes = make([]Node, len(p.Nodes))
		for i, n := range p.Nodes {
			out.Nodes[i] = n.Clone()
		}
	}
	return out
}
