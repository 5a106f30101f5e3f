// Package tree renders a preset's node tree as markdown for terminal
// inspection.
package tree

import (
	"fmt"
	"strings"

	"github.com/posykit/posy/pkg/domain"
)

// Markdown produces a markdown document describing the preset: one nested
// bullet per node, annotated with its type, selection mode and bracket
// range. The output is meant to be piped through a terminal markdown
// renderer, but reads fine as plain text too.
func Markdown(preset domain.Preset) string {
	var sb strings.Builder

	title := preset.Name
	if title == "" {
		title = preset.ID
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	if len(preset.Nodes) == 0 {
		sb.WriteString("*empty preset*\n")
		return sb.String()
	}

	for _, node := range preset.Nodes {
		writeNode(&sb, node, 0)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, node domain.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	label := node.Name
	if label == "" {
		label = node.ID
	}

	state := ""
	if !node.Enabled {
		state = " (disabled)"
	}

	fmt.Fprintf(sb, "%s- **%s**%s — %s, `%s`%s\n",
		indent, label, state, node.Type, node.Mode, describe(node))

	if node.Type == domain.NodeTypeLeaf && len(node.Candidates) > 0 {
		fmt.Fprintf(sb, "%s  - %s\n", indent, strings.Join(node.Candidates, ", "))
	}
	for _, child := range node.Children {
		writeNode(sb, child, depth+1)
	}
}

func describe(node domain.Node) string {
	var parts []string

	switch node.Mode {
	case domain.SelectionSingleProbability, domain.SelectionMultipleProbability:
		parts = append(parts, fmt.Sprintf("p=%.2f", node.Probability))
	case domain.SelectionMultipleCount:
		parts = append(parts, fmt.Sprintf("count=%d", node.Count))
	}
	if node.Shuffle {
		parts = append(parts, "shuffled")
	}
	if node.Brackets.Max > 0 {
		parts = append(parts, fmt.Sprintf("brackets %d..%d", node.Brackets.Min, node.Brackets.Max))
	}

	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
