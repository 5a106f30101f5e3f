package dsl

import (
	"github.com/google/uuid"

	"github.com/posykit/posy/pkg/domain"
)

// NodeBuilder provides a fluent API for configuring a single node.
type NodeBuilder struct {
	node domain.Node
}

// Leaf starts a leaf node holding literal candidate strings. Nodes start
// enabled with the "all" selection mode.
func Leaf(name string, candidates ...string) *NodeBuilder {
	return &NodeBuilder{
		node: domain.Node{
			Name:       name,
			Type:       domain.NodeTypeLeaf,
			Enabled:    true,
			Mode:       domain.SelectionAll,
			Candidates: candidates,
		},
	}
}

// Group starts a group node holding child nodes.
func Group(name string, children ...domain.Node) *NodeBuilder {
	return &NodeBuilder{
		node: domain.Node{
			Name:     name,
			Type:     domain.NodeTypeGroup,
			Enabled:  true,
			Mode:     domain.SelectionAll,
			Children: children,
		},
	}
}

// ID sets an explicit node ID. Without it, Build assigns a fresh UUID.
func (n *NodeBuilder) ID(id string) *NodeBuilder {
	n.node.ID = id
	return n
}

// Disabled marks the node disabled; it will resolve to nothing.
func (n *NodeBuilder) Disabled() *NodeBuilder {
	n.node.Enabled = false
	return n
}

// SingleRandom picks one pool entry uniformly at random.
func (n *NodeBuilder) SingleRandom() *NodeBuilder {
	n.node.Mode = domain.SelectionSingleRandom
	return n
}

// Sequential rotates through the pool across generations within a session.
func (n *NodeBuilder) Sequential() *NodeBuilder {
	n.node.Mode = domain.SelectionSingleSequential
	return n
}

// Chance picks one random entry with probability p, otherwise nothing.
func (n *NodeBuilder) Chance(p float64) *NodeBuilder {
	n.node.Mode = domain.SelectionSingleProbability
	n.node.Probability = p
	return n
}

// PickCount picks count distinct entries without replacement.
func (n *NodeBuilder) PickCount(count int) *NodeBuilder {
	n.node.Mode = domain.SelectionMultipleCount
	n.node.Count = count
	return n
}

// EachChance includes every entry independently with probability p.
func (n *NodeBuilder) EachChance(p float64) *NodeBuilder {
	n.node.Mode = domain.SelectionMultipleProbability
	n.node.Probability = p
	return n
}

// All picks every pool entry.
func (n *NodeBuilder) All() *NodeBuilder {
	n.node.Mode = domain.SelectionAll
	return n
}

// Shuffle randomizes output order for the multi-select modes.
func (n *NodeBuilder) Shuffle() *NodeBuilder {
	n.node.Shuffle = true
	return n
}

// Brackets sets the weight-bracket layer range for the node's output.
func (n *NodeBuilder) Brackets(min, max int) *NodeBuilder {
	n.node.Brackets = domain.BracketRange{Min: min, Max: max}
	return n
}

// Build returns the configured node with parameters normalized and an ID
// assigned when none was given.
func (n *NodeBuilder) Build() domain.Node {
	out := n.node.Normalize()
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	return out
}
