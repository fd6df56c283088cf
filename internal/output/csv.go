package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// csvHeader lists the projection columns, one row per fiscal year.
var csvHeader = []string{
	"Year",
	"Salary",
	"Dividend Income",
	"Income",
	"Taxable Income",
	"Net Income",
	"Cost of Living",
	"Personal RRSP Contribution",
	"Employer RRSP Contribution",
	"RRSP Contribution",
	"TFSA Contribution",
	"Unregistered Contribution",
	"Total Contribution",
	"RRSP Assets",
	"TFSA Assets",
	"Unregistered Assets",
	"Total Assets",
	"Goal",
	"Passive Income",
	"Retirement Cost of Living",
}

// CSVFormatter renders the projection as CSV.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		if err := w.Write(renderRow(row)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderRow(r Row) []string {
	return []string{
		strconv.Itoa(r.Year),
		FormatAmount(r.Salary),
		FormatAmount(r.DividendIncome),
		FormatAmount(r.Income),
		FormatAmount(r.TaxableIncome),
		FormatAmount(r.NetIncome),
		FormatAmount(r.CostOfLiving),
		FormatAmount(r.PersonalRRSPContribution),
		FormatAmount(r.EmployerRRSPContribution),
		FormatAmount(r.TotalRRSPContribution),
		FormatAmount(r.TFSAContribution),
		FormatAmount(r.UnregisteredContribution),
		FormatAmount(r.TotalContribution),
		FormatAmount(r.RRSPAssets),
		FormatAmount(r.TFSAAssets),
		FormatAmount(r.UnregisteredAssets),
		FormatAmount(r.TotalAssets),
		FormatAmount(r.Goal),
		FormatAmount(r.PassiveIncome),
		FormatAmount(r.RetirementCostOfLiving),
	}
}
