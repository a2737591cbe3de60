package builder

import (
	"fmt"

	"github.com/teranos/codecraft/pycheck"
)

// ValidationReport is the detailed result of a validation pass.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate feeds the generated text through the syntax checker and reports
// whether it parses. It never mutates the document and never returns a
// fault; a syntax failure is a result, not an error.
func (d *Document) Validate() bool {
	return pycheck.Check(d.Generate()).OK
}

// ValidateDetailed is Validate with diagnostics. On failure the report holds
// a single error entry with the checker's position and message; the checker
// stops at the first failure.
func (d *Document) ValidateDetailed() ValidationReport {
	res := pycheck.Check(d.Generate())
	report := ValidationReport{
		Valid:    res.OK,
		Errors:   []string{},
		Warnings: []string{},
	}
	if !res.OK {
		report.Errors = append(report.Errors,
			fmt.Sprintf("syntax error at line %d: %s", res.Line, res.Message))
	}
	return report
}
