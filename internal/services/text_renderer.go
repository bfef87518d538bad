package services

import (
	"bytes"
	"fmt"

	"fiscaldesk/internal/models"
)

// textRenderer writes a monthly report as a plain-text document. It is the
// default ReportRendererInterface implementation; it formats the
// already-rounded figures and never recomputes them.
type textRenderer struct {
	// forceCanonicalEuro substitutes the canonical Euro sign for whatever
	// symbol is configured. Upstream settings imports have shipped
	// mis-encoded symbols before; the substitution is opt-in via
	// configuration, never guessed from byte patterns.
	forceCanonicalEuro bool
}

func NewTextRenderer(forceCanonicalEuro bool) ReportRendererInterface {
	return &textRenderer{forceCanonicalEuro: forceCanonicalEuro}
}

func (r *textRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *textRenderer) Render(report *models.MonthlyReport, currencySymbol string) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report is nil")
	}

	symbol := currencySymbol
	if r.forceCanonicalEuro {
		symbol = "€"
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Worked hours report - %s\n", report.Client.Name)
	fmt.Fprintf(&buf, "Period: %s to %s\n\n", report.Period.StartDate, report.Period.EndDate)

	for _, group := range report.GroupedEntries {
		fmt.Fprintf(&buf, "%s  %sh  %s%s\n", group.Date, group.Hours, symbol, group.Amount)
		for _, note := range group.Notes {
			fmt.Fprintf(&buf, "  - %s\n", note)
		}
	}

	fmt.Fprintf(&buf, "\nTotal: %sh  %s%s\n", report.Totals.Hours, symbol, report.Totals.Amount)

	return buf.Bytes(), nil
}
