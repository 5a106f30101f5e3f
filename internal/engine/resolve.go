package engine

import (
	"strings"

	"github.com/posykit/posy/pkg/domain"
)

// Resolve expands one node into its prompt contribution. A disabled node
// resolves to "", pruning its whole subtree. Otherwise the node's selection
// mode picks from its pool; chosen children resolve recursively; the
// surviving tokens are joined with ", " and bracket-wrapped once as a whole.
// By the time a group's output reaches its parent it is a single atomic
// string, not a token list.
//
// Resolve never fails: empty pools, out-of-range counts and disabled
// children all degrade to empty output, which is a legitimate result.
func Resolve(node domain.Node, s *domain.Session) string {
	if !node.Enabled {
		return ""
	}

	var tokens []string
	switch node.Type {
	case domain.NodeTypeLeaf:
		for _, i := range Pick(node, len(node.Candidates), s) {
			if c := node.Candidates[i]; c != "" {
				tokens = append(tokens, c)
			}
		}
	case domain.NodeTypeGroup:
		// Disabled children stay in the pool positionally; choosing one
		// yields "", indistinguishable from choosing nothing.
		for _, i := range Pick(node, len(node.Children), s) {
			if out := Resolve(node.Children[i], s); out != "" {
				tokens = append(tokens, out)
			}
		}
	default:
		return ""
	}

	if len(tokens) == 0 {
		return ""
	}
	return Wrap(strings.Join(tokens, ", "), node.Brackets, s.Rand())
}

// Generate assembles the final prompt for a preset: each enabled top-level
// node contributes one already-joined, already-bracketed string, and the
// non-empty contributions are joined with ", " in preset order. An empty
// string is a valid result, not an error.
func Generate(preset domain.Preset, s *domain.Session) string {
	var parts []string
	for _, node := range preset.Nodes {
		if out := Resolve(node, s); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, ", ")
}
