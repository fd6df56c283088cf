package output

import (
	"strings"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// FormatAmount renders a monetary amount as whole units, with underscore
// digit grouping once the value reaches five digits (12_345).
func FormatAmount(m dec.Money) string {
	s := m.Decimal.Round(0).StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	if len(digits) < len("10000") {
		return s
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte('_')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
