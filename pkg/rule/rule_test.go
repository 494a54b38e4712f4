package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/David-Botos/ingress-lint/pkg/model"
)

func TestColumnCountValid(t *testing.T) {
	r := ColumnCount{RequiredColumns: 3}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact count", "a,b,c", true},
		{"too few", "a,b", false},
		{"too many", "a,b,c,d", false},
		{"empty fields still count", ",,", true},
		{"blank line has zero fields", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Valid(model.Row{Text: tt.text}, ","))
		})
	}
}

func TestIntegerKeyValid(t *testing.T) {
	r := IntegerKey{}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain integer", "12,foo", true},
		{"leading zeros accepted", "007,x", true},
		{"single digit", "7,qux", true},
		{"alphabetic key", "bar,baz", false},
		{"negative sign rejected", "-1,x", false},
		{"decimal point rejected", "1.5,x", false},
		{"surrounding whitespace trimmed", " 42\t,x", true},
		{"trailing CR trimmed", "42\r", true},
		{"internal space rejected", "4 2,x", false},
		{"empty first field", ",x", false},
		{"blank line", "", false},
		{"digits only no delimiter", "123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Valid(model.Row{Text: tt.text}, ","))
		})
	}
}

func TestRuleNames(t *testing.T) {
	assert.Equal(t, "column-count", ColumnCount{}.Name())
	assert.Equal(t, "integer-key", IntegerKey{}.Name())
}
