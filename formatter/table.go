package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gnolang/entail/internal/logic"
)

// GenerateTruthTable renders a truth table with one column per symbol
// followed by one column per sentence. Cells are T or F.
func GenerateTruthTable(table *logic.Table) string {
	headers := make([]string, 0, len(table.Symbols)+len(table.Sentences))
	headers = append(headers, table.Symbols...)
	for _, s := range table.Sentences {
		headers = append(headers, s.Formula())
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(runewidth.StringWidth(h), 1)
	}

	var builder strings.Builder
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = nameStyle.Sprint(pad(h, widths[i]))
	}
	builder.WriteString(strings.Join(cells, lineStyle.Sprint(" | ")) + "\n")

	rules := make([]string, len(headers))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w)
	}
	builder.WriteString(lineStyle.Sprint(strings.Join(rules, "-+-")) + "\n")

	// the last column is left unpadded so rows carry no trailing blanks
	if len(widths) > 0 {
		widths[len(widths)-1] = 0
	}
	for _, row := range table.Rows {
		for i, sym := range table.Symbols {
			cells[i] = truthCell(row.Model[sym], widths[i])
		}
		for j, v := range row.Values {
			i := len(table.Symbols) + j
			cells[i] = truthCell(v, widths[i])
		}
		builder.WriteString(strings.Join(cells, lineStyle.Sprint(" | ")) + "\n")
	}
	return builder.String()
}

func truthCell(v bool, width int) string {
	if v {
		return successStyle.Sprint(pad("T", width))
	}
	return errorStyle.Sprint(pad("F", width))
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
