package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent_ZeroDenominatorIsUndefined(t *testing.T) {
	m := Percent(decimal.NewFromInt(5), decimal.Zero)
	assert.False(t, m.IsDefined())
	assert.False(t, m.Above(-1), "undefined must never compare above a threshold")
	assert.Equal(t, "n/a", m.String())

	v, ok := m.Float()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestPercent_Defined(t *testing.T) {
	m := Percent(decimal.NewFromInt(20), decimal.NewFromInt(100))
	v, ok := m.Float()
	require.True(t, ok)
	assert.InDelta(t, 20.0, v, 1e-9)
	assert.Equal(t, "20.0", m.String())
	assert.True(t, m.Above(15))
	assert.False(t, m.Above(20))
}

func TestMean(t *testing.T) {
	assert.False(t, Mean(decimal.NewFromInt(10), 0).IsDefined())
	assert.Equal(t, "2.5", Mean(decimal.NewFromInt(5), 2).String())
}

func TestMeasure_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Measure `json:"a"`
		B Measure `json:"b"`
	}{A: NewMeasure(12.5), B: Undefined()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12.5,"b":null}`, string(out))
}

func TestMeasure_ZeroValueIsUndefined(t *testing.T) {
	var m Measure
	assert.False(t, m.IsDefined())
}
