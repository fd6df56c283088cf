package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount dec.Money
		want   string
	}{
		{"zero", dec.Zero(), "0"},
		{"small", dec.NewMoney(42), "42"},
		{"four digits ungrouped", dec.NewMoney(9_999), "9999"},
		{"five digits grouped", dec.NewMoney(10_000), "10_000"},
		{"six digits", dec.NewMoney(123_456), "123_456"},
		{"seven digits", dec.NewMoney(1_234_567), "1_234_567"},
		{"rounds to whole units", dec.NewMoney(1234.56), "1235"},
		{"rounds across the grouping threshold", dec.NewMoney(9_999.6), "10_000"},
		{"negative ungrouped", dec.NewMoney(-9_999), "-9999"},
		{"negative grouped", dec.NewMoney(-10_000), "-10_000"},
		{"negative seven digits", dec.NewMoney(-1_234_567), "-1_234_567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}
