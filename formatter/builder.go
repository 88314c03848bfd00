// Package formatter renders check reports, truth tables and game boards
// for the terminal.
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/entail/internal/kb"
)

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	warningStyle    = color.New(color.FgHiYellow, color.Bold)
	nameStyle       = color.New(color.FgYellow, color.Bold)
	idStyle         = color.New(color.FgCyan)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	successStyle    = color.New(color.FgGreen, color.Bold)
	suggestionStyle = color.New(color.FgGreen)
	noStyle         = color.New(color.FgWhite)
)

// resultFormatter is the interface that wraps the ResultTemplate method.
// Implementations format the result of one query for a given verdict.
type resultFormatter interface {
	ResultTemplate() string
}

// getResultFormatter returns the formatter for a verdict.
func getResultFormatter(v kb.Verdict) resultFormatter {
	switch v {
	case kb.Entailed:
		return &EntailedFormatter{}
	case kb.Contradicted:
		return &ContradictedFormatter{}
	default:
		return &UnknownFormatter{}
	}
}

type EntailedFormatter struct{}

func (f *EntailedFormatter) ResultTemplate() string {
	return `{{mark "ok"}} {{.Formula}}: {{verdict .Verdict}}
`
}

type ContradictedFormatter struct{}

func (f *ContradictedFormatter) ResultTemplate() string {
	return `{{mark "fail"}} {{.Formula}}: {{verdict .Verdict}}
{{counterexample .Counterexample}}`
}

type UnknownFormatter struct{}

func (f *UnknownFormatter) ResultTemplate() string {
	return `{{mark "warn"}} {{.Formula}}: {{verdict .Verdict}}
{{counterexample .Counterexample}}`
}

var funcMap = template.FuncMap{
	"mark":           mark,
	"verdict":        verdict,
	"counterexample": counterexample,
}

// GenerateFormattedReport formats a report into a human-readable string.
func GenerateFormattedReport(report *kb.Report) string {
	var builder strings.Builder
	builder.WriteString(header(report.Name, report.ID))
	builder.WriteString(lineStyle.Sprint("  | "))
	builder.WriteString(noStyle.Sprintf("%s\n", knowledgeText(report.Knowledge)))
	if !report.Consistent {
		builder.WriteString(lineStyle.Sprint("  = "))
		builder.WriteString(warningStyle.Sprint("warning: "))
		builder.WriteString(noStyle.Sprint("knowledge base is inconsistent; every query is entailed\n"))
	}
	for _, res := range report.Results {
		builder.WriteString(buildResult(res, getResultFormatter(res.Verdict)))
	}
	builder.WriteString(summary(report))
	return builder.String()
}

func buildResult(res kb.Result, formatter resultFormatter) string {
	tmpl := template.Must(template.New("result").Funcs(funcMap).Parse(formatter.ResultTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, res); err != nil {
		return fmt.Sprintf("Error formatting result: %v\n", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(name, id string) string {
	return nameStyle.Sprint(name) + " " + idStyle.Sprintf("(%s)", id) + "\n"
}

func knowledgeText(formula string) string {
	if formula == "" {
		return "(no knowledge)"
	}
	return formula
}

func mark(kind string) string {
	switch kind {
	case "ok":
		return successStyle.Sprint("  ✓")
	case "fail":
		return errorStyle.Sprint("  ✗")
	default:
		return warningStyle.Sprint("  ?")
	}
}

func verdict(v kb.Verdict) string {
	switch v {
	case kb.Entailed:
		return successStyle.Sprint(string(v))
	case kb.Contradicted:
		return errorStyle.Sprint(string(v))
	default:
		return warningStyle.Sprint(string(v))
	}
}

func counterexample(m fmt.Stringer) string {
	return lineStyle.Sprint("    = ") + suggestionStyle.Sprint("counterexample: ") + noStyle.Sprintf("%s\n", m)
}

func summary(report *kb.Report) string {
	counts := make(map[kb.Verdict]int)
	for _, res := range report.Results {
		counts[res.Verdict]++
	}
	return fmt.Sprintf("%d queries: %s, %s, %s\n",
		len(report.Results),
		successStyle.Sprintf("%d entailed", counts[kb.Entailed]),
		errorStyle.Sprintf("%d contradicted", counts[kb.Contradicted]),
		warningStyle.Sprintf("%d unknown", counts[kb.Unknown]),
	)
}
