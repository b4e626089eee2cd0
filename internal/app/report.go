package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wannabewayno/commitional/internal/engine"
)

var (
	errorMark   = color.New(color.FgRed, color.Bold).Sprint("✖")
	warningMark = color.New(color.FgYellow, color.Bold).Sprint("⚠")
	okMark      = color.New(color.FgGreen, color.Bold).Sprint("✔")
)

// Counts totals the violations of a report.
func (r Report) Counts() (errs, warnings int) {
	for _, res := range r.Results {
		errs += len(res.Errors)
		warnings += len(res.Warnings)
	}
	return errs, warnings
}

// WriteReport prints a report in the "✖ [part:index] message" form, errors before
// warnings, followed by a one-line summary.
func WriteReport(w io.Writer, r Report) {
	if r.Name != "" {
		_, _ = fmt.Fprintf(w, "%s\n", color.New(color.Bold).Sprint(r.Name))
	}
	if r.Err != nil {
		_, _ = fmt.Fprintf(w, "%s %v\n", errorMark, r.Err)
		return
	}

	var errs, warnings []engine.Violation
	for _, res := range r.Results {
		errs = append(errs, res.Errors...)
		warnings = append(warnings, res.Warnings...)
	}
	engine.SortViolations(errs)
	engine.SortViolations(warnings)

	for _, v := range errs {
		_, _ = fmt.Fprintf(w, "%s %s\n", errorMark, v)
	}
	for _, v := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", warningMark, v)
	}

	switch {
	case len(errs) > 0:
		_, _ = fmt.Fprintf(w, "%s found %d errors, %d warnings\n", errorMark, len(errs), len(warnings))
	case len(warnings) > 0:
		_, _ = fmt.Fprintf(w, "%s found 0 errors, %d warnings\n", warningMark, len(warnings))
	default:
		_, _ = fmt.Fprintf(w, "%s commit message is valid\n", okMark)
	}
}
