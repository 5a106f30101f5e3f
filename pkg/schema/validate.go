package schema

import (
	"fmt"

	"github.com/posykit/posy/pkg/domain"
)

// ValidateNode checks one node (and its subtree) for representable-but-wrong
// configuration: inverted bracket ranges, probabilities outside [0,1],
// negative counts, and type/content mismatches. It is pure and returns every
// issue found rather than stopping at the first.
//
// Generation itself never fails on these inputs (it clamps or degrades to
// empty output); validation exists so editors can surface problems before
// saving.
func ValidateNode(node domain.Node) []Issue {
	return validateNode(node, nil)
}

func validateNode(node domain.Node, issues []Issue) []Issue {
	if node.Type != domain.NodeTypeLeaf && node.Type != domain.NodeTypeGroup {
		issues = append(issues, Issue{
			NodeID: node.ID,
			Field:  "type",
			Reason: fmt.Sprintf("unknown node type %q", node.Type),
			Value:  node.Type,
		})
	}

	if node.Type == domain.NodeTypeLeaf && len(node.Children) > 0 {
		issues = append(issues, Issue{
			NodeID: node.ID,
			Field:  "children",
			Reason: "leaf node cannot have children",
		})
	}
	if node.Type == domain.NodeTypeGroup && len(node.Candidates) > 0 {
		issues = append(issues, Issue{
			NodeID: node.ID,
			Field:  "candidates",
			Reason: "group node cannot have candidates",
		})
	}

	switch node.Mode {
	case domain.SelectionSingleRandom,
		domain.SelectionSingleSequential,
		domain.SelectionAll:
		// No parameters.
	case domain.SelectionSingleProbability, domain.SelectionMultipleProbability:
		if node.Probability < 0 || node.Probability > 1 {
			issues = append(issues, Issue{
				NodeID: node.ID,
				Field:  "probability",
				Reason: "must be within [0, 1]",
				Value:  node.Probability,
			})
		}
	case domain.SelectionMultipleCount:
		if node.Count < 0 {
			issues = append(issues, Issue{
				NodeID: node.ID,
				Field:  "count",
				Reason: "must not be negative",
				Value:  node.Count,
			})
		}
	default:
		issues = append(issues, Issue{
			NodeID: node.ID,
			Field:  "mode",
			Reason: fmt.Sprintf("unknown selection mode %q", node.Mode),
			Value:  node.Mode,
		})
	}

	if node.Brackets.Min < 0 {
		issues = append(issues, Issue{
			NodeID: node.ID,
			Field:  "brackets.min",
			Reason: "must not be negative",
			Value:  node.Brackets.Min,
		})
	}
	if node.Brackets.Max < node.Brackets.Min {
		issues = append(issues, Issue{
			NodeID: node.ID,
			Field:  "brackets",
			Reason: "min must not exceed max",
			Value:  node.Brackets,
		})
	}

	for _, child := range node.Children {
		issues = validateNode(child, issues)
	}

	return issues
}

// ValidatePreset validates every node in the preset and additionally checks
// that node IDs are unique across the whole tree. Duplicate IDs make
// sequential-cursor tracking ambiguous, so they are the one configuration
// error generation cannot absorb; Generate is documented as defined only
// for presets that pass this check.
//
// Returns nil when the preset is clean, otherwise a *ConfigurationError
// aggregating all issues.
func ValidatePreset(preset domain.Preset) error {
	var issues []Issue
	seen := make(map[string]bool)

	var walk func(domain.Node)
	walk = func(n domain.Node) {
		if n.ID == "" {
			issues = append(issues, Issue{
				NodeID: n.ID,
				Field:  "id",
				Reason: "must not be empty",
			})
		} else if seen[n.ID] {
			issues = append(issues, Issue{
				NodeID: n.ID,
				Field:  "id",
				Reason: "duplicate node id",
				Value:  n.ID,
			})
		}
		seen[n.ID] = true
		for _, c := range n.Children {
			walk(c)
		}
	}

	for _, n := range preset.Nodes {
		walk(n)
		issues = append(issues, ValidateNode(n)...)
	}

	if len(issues) > 0 {
		return &ConfigurationError{Issues: issues}
	}
	return nil
}
