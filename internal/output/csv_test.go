package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFormatterLayout(t *testing.T) {
	report := BuildReport(testSimulation(t), 5, 2026)

	out, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6, "header plus five data rows")

	assert.Equal(t, csvHeader, records[0])
	for _, record := range records[1:] {
		assert.Len(t, record, len(csvHeader))
	}

	assert.Equal(t, "2027", records[1][0])
	assert.Equal(t, "2031", records[5][0])
}

func TestCSVFormatterGroupsLargeAmounts(t *testing.T) {
	report := BuildReport(testSimulation(t), 3, 0)

	out, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	// The first projected salary is 78_750, well past the grouping
	// threshold.
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "78_750", records[2][1])
}

func TestCSVFormatterEmptyReport(t *testing.T) {
	out, err := CSVFormatter{}.Format(&Report{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 1, "header only")
	assert.True(t, strings.HasPrefix(lines[0], "Year,Salary"))
}
