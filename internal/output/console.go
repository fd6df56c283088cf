package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// consoleColumns is the trimmed column set for terminal viewing; the CSV
// formatter carries the full detail.
var consoleColumns = []string{
	"Year", "Income", "Net Income", "Cost of Living",
	"Total Contribution", "Total Assets", "Goal", "Passive Income",
}

// ConsoleFormatter renders an aligned table for human consumption.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', tabwriter.AlignRight)

	for i, col := range consoleColumns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w, "\t")

	for _, r := range report.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Year,
			FormatAmount(r.Income),
			FormatAmount(r.NetIncome),
			FormatAmount(r.CostOfLiving),
			FormatAmount(r.TotalContribution),
			FormatAmount(r.TotalAssets),
			FormatAmount(r.Goal),
			FormatAmount(r.PassiveIncome),
		)
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
