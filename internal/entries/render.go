package entries

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-retool/internal/markup"
)

const listHangStyle = "list-hang"

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderEntries renders a top-level entries array. Each member that produces
// text becomes its own paragraph. It reports false when nothing rendered.
func RenderEntries(value gjson.Result) (string, bool) {
	var paragraphs []string
	for _, member := range value.Array() {
		if text, ok := Render(Parse(member)); ok {
			paragraphs = append(paragraphs, text)
		}
	}
	return joinPresent(paragraphs, "\n\n")
}

// Render renders a single node. It reports false when the node contributes no
// visible text, so callers can skip it instead of inserting a blank.
func Render(n Node) (string, bool) {
	switch n := n.(type) {
	case Text:
		return markup.Resolve(string(n)), true
	case Entries:
		return renderBlock(n.Name, n.Entry, n.Entries)
	case Item:
		return renderBlock(n.Name, n.Entry, n.Entries)
	case List:
		return renderList(n)
	case Table:
		return renderTable(n)
	case Group:
		parts := make([]string, 0, len(n))
		for _, member := range n {
			if text, ok := Render(member); ok {
				parts = append(parts, text)
			}
		}
		return joinPresent(parts, "\n")
	default:
		return "", false
	}
}

// renderBlock renders "Name. entry entries".
func renderBlock(name Node, bodies ...Node) (string, bool) {
	var stack []string
	if text, ok := Render(name); ok {
		stack = append(stack, text+".")
	}
	for _, body := range bodies {
		if text, ok := Render(body); ok {
			stack = append(stack, text)
		}
	}
	return joinPresent(stack, " ")
}

func renderList(list List) (string, bool) {
	var stack []string
	if text, ok := Render(list.Name); ok {
		stack = append(stack, text)
	}

	prefix := "- "
	if strings.Contains(list.Style, listHangStyle) {
		prefix = ""
	}

	for _, item := range list.Items {
		if text, ok := Render(item); ok {
			stack = append(stack, prefix+text)
		}
	}

	return joinPresent(stack, "\n")
}

func renderTable(t Table) (string, bool) {
	var stack []string
	if text, ok := Render(t.Caption); ok {
		stack = append(stack, text)
	}

	if len(t.ColLabels) > 0 || len(t.Rows) > 0 {
		grid := table.New().
			Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle })

		headers := make([]string, len(t.ColLabels))
		for i, label := range t.ColLabels {
			headers[i] = markup.Resolve(label)
		}
		grid.Headers(headers...)

		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = markup.Resolve(cell.String())
			}
			grid.Row(cells...)
		}

		if rendered := grid.String(); rendered != "" {
			stack = append(stack, rendered)
		}
	}

	return joinPresent(stack, "\n")
}

func joinPresent(parts []string, sep string) (string, bool) {
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, sep), true
}
