package domain

// NodeType constants define what kind of pool a node selects from.
const (
	// NodeTypeLeaf holds literal candidate strings.
	NodeTypeLeaf = "leaf"
	// NodeTypeGroup holds child nodes; chosen children resolve recursively.
	NodeTypeGroup = "group"
)

// Selection mode constants. Exactly one applies per node.
const (
	// SelectionSingleRandom picks one pool entry uniformly at random.
	SelectionSingleRandom = "single_random"
	// SelectionSingleSequential rotates through the pool across calls,
	// tracked per node in the Session cursor map.
	SelectionSingleSequential = "single_sequential"
	// SelectionSingleProbability picks one entry with probability P,
	// otherwise nothing.
	SelectionSingleProbability = "single_probability"
	// SelectionMultipleCount picks Count distinct entries without
	// replacement, clamped to the pool size.
	SelectionMultipleCount = "multiple_count"
	// SelectionMultipleProbability runs an independent trial per entry,
	// including each with probability P.
	SelectionMultipleProbability = "multiple_probability"
	// SelectionAll picks every entry.
	SelectionAll = "all"
)

// BracketRange bounds how many weight-bracket layers wrap a node's output.
// The layer count is sampled uniformly from [Min, Max] per resolution; each
// layer wraps the output in one pair of braces, signaling roughly 1.05x
// emphasis per layer to the downstream image generator.
type BracketRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Node is one unit of a prompt configuration tree.
//
// A leaf node selects from literal candidate strings; a group node selects
// from its children and resolves the chosen ones recursively. Node values
// are treated as immutable by the engine: generation never mutates them, so
// one tree can be resolved from independent sessions concurrently.
type Node struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type" yaml:"type"` // "leaf" or "group"

	// Enabled gates the whole subtree. A disabled node resolves to nothing.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Candidates is the pool for leaf nodes. May be empty.
	Candidates []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`

	// Children is the pool for group nodes. Disabled children stay in the
	// pool positionally; if chosen they contribute nothing.
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`

	// Mode selects the pick algorithm (see the Selection* constants).
	Mode string `json:"mode" yaml:"mode"`

	// Probability parameterizes the probability modes. Values outside
	// [0,1] are clamped by Normalize and flagged by schema validation.
	Probability float64 `json:"probability,omitempty" yaml:"probability,omitempty"`

	// Count parameterizes multiple_count. Clamped to the pool size at
	// resolution time rather than failing.
	Count int `json:"count,omitempty" yaml:"count,omitempty"`

	// Shuffle randomizes output order. Only meaningful for
	// multiple_probability and all; other modes ignore it.
	Shuffle bool `json:"shuffle,omitempty" yaml:"shuffle,omitempty"`

	// Brackets is the weight-bracket layer range for this node's output.
	Brackets BracketRange `json:"brackets" yaml:"brackets"`
}

// Clone returns a deep copy of the node and its subtree.
func (n Node) Clone() Node {
	out := n
	if n.Candidates != nil {
		out.Candidates = make([]string, len(n.Candidates))
		copy(out.Candidates, n.Candidates)
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Normalize returns a copy with representable-but-out-of-range parameters
// clamped: probabilities into [0,1], negative counts and bracket bounds to
// zero, and an inverted bracket range collapsed to its lower bound. The
// engine applies the same clamps defensively at resolution time, so
// Normalize is for editors that want the stored form canonical.
func (n Node) Normalize() Node {
	out := n.Clone()
	out.Probability = clamp01(out.Probability)
	if out.Count < 0 {
		out.Count = 0
	}
	out.Brackets = out.Brackets.normalized()
	for i, c := range out.Children {
		out.Children[i] = c.Normalize()
	}
	return out
}

func (r BracketRange) normalized() BracketRange {
	if r.Min < 0 {
		r.Min = 0
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
