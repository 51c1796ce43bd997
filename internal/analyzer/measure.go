package analyzer

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Measure is a derived number that may be undefined, e.g. a percentage whose
// denominator is zero or a mean over no records. The zero value is undefined.
// An undefined Measure means "insufficient data" and never compares as 0.
type Measure struct {
	value   float64
	defined bool
}

// NewMeasure returns a defined Measure.
func NewMeasure(v float64) Measure {
	return Measure{value: v, defined: true}
}

// Undefined returns the undefined Measure.
func Undefined() Measure {
	return Measure{}
}

// Percent returns num/den*100, undefined when den is zero.
func Percent(num, den decimal.Decimal) Measure {
	if den.IsZero() {
		return Undefined()
	}
	return NewMeasure(num.Div(den).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// Mean returns sum/count, undefined when count is zero.
func Mean(sum decimal.Decimal, count int) Measure {
	if count == 0 {
		return Undefined()
	}
	return NewMeasure(sum.Div(decimal.NewFromInt(int64(count))).InexactFloat64())
}

// IsDefined reports whether the Measure carries a value.
func (m Measure) IsDefined() bool {
	return m.defined
}

// Float returns the value and whether it is defined.
func (m Measure) Float() (float64, bool) {
	return m.value, m.defined
}

// Above reports whether the Measure is defined and strictly greater than
// threshold.
func (m Measure) Above(threshold float64) bool {
	return m.defined && m.value > threshold
}

// String formats a defined Measure with one decimal and an undefined one as
// "n/a".
func (m Measure) String() string {
	if !m.defined {
		return "n/a"
	}
	return strconv.FormatFloat(m.value, 'f', 1, 64)
}

// MarshalJSON encodes an undefined Measure as null.
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.defined {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}
