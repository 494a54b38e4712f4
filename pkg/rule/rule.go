// pkg/rule/rule.go
package rule

import (
	"regexp"
	"strings"

	"github.com/David-Botos/ingress-lint/pkg/model"
)

// Rule is a per-row validation predicate
type Rule interface {
	// Name identifies the rule in diagnostics
	Name() string
	// Valid reports whether the row conforms
	Valid(row model.Row, delimiter string) bool
}

// ColumnCount requires every row to have exactly RequiredColumns fields.
// A blank row has zero fields and therefore fails for any positive count;
// blank-line retention is handled by the caller before the rule is applied.
type ColumnCount struct {
	RequiredColumns int
}

// Name returns the rule identifier
func (c ColumnCount) Name() string {
	return "column-count"
}

// Valid reports whether the row has the required field count
func (c ColumnCount) Valid(row model.Row, delimiter string) bool {
	return row.FieldCount(delimiter) == c.RequiredColumns
}

// integerPattern matches one or more ASCII digits and nothing else
var integerPattern = regexp.MustCompile(`^[0-9]+$`)

// IntegerKey requires the first field, after trimming surrounding
// whitespace, to be a plain non-negative integer. Leading zeros are
// accepted and no numeric range is enforced.
type IntegerKey struct{}

// Name returns the rule identifier
func (IntegerKey) Name() string {
	return "integer-key"
}

// Valid reports whether the row's first field is digits-only
func (IntegerKey) Valid(row model.Row, delimiter string) bool {
	fields := row.Fields(delimiter)
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], " \t\r\n")
	return integerPattern.MatchString(first)
}
