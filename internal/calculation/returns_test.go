package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGenerateReturnSeries_RepeatsHistoricalTable(t *testing.T) {
	table := HistoricalReturns()
	series := GenerateReturnSeries()

	require.Len(t, table, 20)
	require.Len(t, series, 2*len(table))
	assert.Equal(t, SimulationYears, len(series))

	half := len(series) / 2
	for i := 0; i < half; i++ {
		assert.True(t, series[i].Equal(series[half+i]), "year %d differs from year %d", i+1, half+i+1)
		assert.True(t, series[i].Equal(table[i]), "year %d differs from the historical table", i+1)
	}
	assert.True(t, series[0].Equal(dec("0.2638")))
	assert.True(t, series[5].Equal(dec("-0.3849")), "2008 is the sixth year")
	assert.True(t, series[39].Equal(dec("-0.1954")))
}

func TestHistoricalReturns_ReturnsCopy(t *testing.T) {
	first := HistoricalReturns()
	first[0] = dec("9.99")

	assert.True(t, HistoricalReturns()[0].Equal(dec("0.2638")))
	assert.True(t, GenerateReturnSeries()[20].Equal(dec("0.2638")))
}

func TestParticipationPath(t *testing.T) {
	tests := []struct {
		name       string
		start, end decimal.Decimal
		increasing bool
	}{
		{name: "decaying 100% to 35%", start: dec("1.0"), end: dec("0.35")},
		{name: "rising 20% to 90%", start: dec("0.2"), end: dec("0.9"), increasing: true},
		{name: "flat 50%", start: dec("0.5"), end: dec("0.5"), increasing: true},
		{name: "above one", start: dec("1.4"), end: dec("0.1")},
	}

	tolerance := dec("0.000000000001")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ParticipationPath(tt.start, tt.end, SimulationYears)
			require.Len(t, path, SimulationYears)
			assert.True(t, path[0].Equal(tt.start), "first = %s", path[0])
			assert.True(t, path[39].Equal(tt.end), "last = %s", path[39])

			step := tt.end.Sub(tt.start).Div(decimal.NewFromInt(39))
			for i := 1; i < len(path); i++ {
				diff := path[i].Sub(path[i-1])
				assert.True(t, diff.Sub(step).Abs().LessThan(tolerance), "step %d = %s, want %s", i, diff, step)
				if tt.increasing {
					assert.True(t, path[i].GreaterThanOrEqual(path[i-1]))
				} else {
					assert.True(t, path[i].LessThanOrEqual(path[i-1]))
				}
			}
		})
	}
}

func TestParticipationPath_ShortLengths(t *testing.T) {
	assert.Empty(t, ParticipationPath(dec("1"), dec("0.35"), 0))

	single := ParticipationPath(dec("1"), dec("0.35"), 1)
	require.Len(t, single, 1)
	assert.True(t, single[0].Equal(dec("1")))

	pair := ParticipationPath(dec("1"), dec("0.35"), 2)
	require.Len(t, pair, 2)
	assert.True(t, pair[1].Equal(dec("0.35")))
}

func TestFIAReturns_FloorIsHardLowerBound(t *testing.T) {
	nominal := GenerateReturnSeries()
	floors := []decimal.Decimal{dec("0"), dec("0.01"), dec("-0.05"), dec("0.5")}

	for _, floor := range floors {
		t.Run("floor "+floor.String(), func(t *testing.T) {
			returns := FIAReturns(nominal, dec("1.0"), dec("0.35"), floor)
			require.Len(t, returns, len(nominal))
			for i, r := range returns {
				assert.True(t, r.GreaterThanOrEqual(floor), "year %d return %s below floor %s", i+1, r, floor)
				assert.True(t, ApplyFloor(floor, r).Equal(r), "re-applying the floor changed year %d", i+1)
			}
		})
	}
}

func TestFIAReturns_ScalesByParticipation(t *testing.T) {
	nominal := GenerateReturnSeries()
	returns := FIAReturns(nominal, dec("1.0"), dec("0.35"), dec("0"))
	path := ParticipationPath(dec("1.0"), dec("0.35"), len(nominal))

	assert.True(t, returns[0].Equal(dec("0.2638")), "year 1 = %s", returns[0])
	// 2008 crash is floored to zero
	assert.True(t, returns[5].IsZero())
	// 2011 flat year stays flat
	assert.True(t, returns[8].IsZero())
	assert.True(t, returns[39].IsZero(), "negative final year is floored")
	assert.True(t, returns[38].Equal(dec("0.2651").Mul(path[38])))
}

func TestFeeDragReturns(t *testing.T) {
	nominal := GenerateReturnSeries()

	k401 := FeeDragReturns(nominal, dec("0.02"))
	require.Len(t, k401, len(nominal))
	assert.True(t, k401[0].Equal(dec("0.238524")), "year 1 = %s", k401[0])
	// a zero market year still loses the fee
	assert.True(t, k401[8].Equal(dec("-0.02")), "year 9 = %s", k401[8])

	noFee := FeeDragReturns(nominal, dec("0"))
	for i := range nominal {
		assert.True(t, noFee[i].Equal(nominal[i]), "year %d", i+1)
	}
}

func TestFeeDragReturns_CompoundsMultiplicatively(t *testing.T) {
	// (1.10)(0.99) - 1 = 0.089, not 0.10 - 0.01
	got := FeeDragReturns([]decimal.Decimal{dec("0.10")}, dec("0.01"))
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(dec("0.089")), "got %s", got[0])
}
