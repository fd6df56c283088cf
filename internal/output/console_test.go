package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleFormatterLayout(t *testing.T) {
	report := BuildReport(testSimulation(t), 4, 2026)

	out, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 5, "header plus four data rows")

	for _, col := range consoleColumns {
		assert.Contains(t, lines[0], col)
	}
	assert.Contains(t, lines[1], "2027")
	assert.Contains(t, lines[2], "78_750")
}

func TestConsoleFormatterEmptyReport(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(&Report{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	assert.Len(t, lines, 1)
}
