package report

import (
	"fmt"
	"strings"
)

// PlainText lays a view out as fixed-width text for terminals and chat code
// blocks
func (v *View) PlainText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", v.Title, v.Range)
	fmt.Fprintf(&b, "Earnings: %s   Hours: %sh   Sessions: %d\n", v.Earnings, v.Hours, v.Count)

	if v.Empty {
		fmt.Fprintf(&b, "\n%s\n", EmptyMessage)
		return b.String()
	}

	for _, section := range v.Sections {
		b.WriteString("\n")
		if section.Heading != "" {
			fmt.Fprintf(&b, "%s (%d, %sh, %s)\n", section.Heading, section.Count, section.Hours, section.Earnings)
		}
		for _, row := range section.Rows {
			fmt.Fprintf(&b, "  %s  %-11s  %-7s  %-20s  %5sh  %s\n",
				row.Date, row.Time, row.BatchType, row.Subject, row.Hours, row.Amount)
			if row.Notes != "" {
				fmt.Fprintf(&b, "    Note: %s\n", row.Notes)
			}
		}
	}

	return b.String()
}
