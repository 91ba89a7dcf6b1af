package cash_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		value string
		want  cash.Kind
	}{
		{"200", cash.KindBanknote},
		{"5", cash.KindBanknote},
		{"5.00", cash.KindBanknote},
		{"4.99", cash.KindCoin},
		{"1", cash.KindCoin},
		{"0.01", cash.KindCoin},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, cash.Classify(dec(tt.value)))
		})
	}
}

func TestTurkishLira(t *testing.T) {
	l := cash.TurkishLira()
	entries := l.Entries()

	require.Len(t, entries, 12)

	wantIDs := []string{"200", "100", "50", "20", "10", "5", "1", "0.5", "0.25", "0.1", "0.05", "0.01"}
	for i, e := range entries {
		assert.Equal(t, wantIDs[i], e.ID)
		assert.Zero(t, e.Count)
	}

	assert.Equal(t, "₺200", entries[0].Label)
	assert.Equal(t, "50 kuruş", entries[7].Label)
	assert.Equal(t, cash.KindBanknote, entries[5].Kind)
	assert.Equal(t, cash.KindCoin, entries[6].Kind)
	assert.True(t, l.GrandTotal().IsZero())
}

func TestLedger_Totals(t *testing.T) {
	l := cash.TurkishLira()

	require.NoError(t, l.SetCount("200", 3))
	require.NoError(t, l.SetCount("100", 1))
	require.NoError(t, l.SetCount("1", 5))

	assert.True(t, l.Subtotal(cash.KindBanknote).Equal(dec("700")))
	assert.True(t, l.Subtotal(cash.KindCoin).Equal(dec("5")))
	assert.True(t, l.GrandTotal().Equal(dec("705")))
}

func TestLedger_GrandTotalRoundsOnce(t *testing.T) {
	l := cash.TurkishLira()

	require.NoError(t, l.SetCount("0.1", 3))
	require.NoError(t, l.SetCount("0.05", 1))
	require.NoError(t, l.SetCount("0.01", 7))

	assert.Equal(t, "0.42", l.GrandTotal().StringFixed(2))
}

func TestLedger_SetCount(t *testing.T) {
	l := cash.TurkishLira()

	t.Run("negative clamps to zero", func(t *testing.T) {
		require.NoError(t, l.SetCount("50", -4))
		assert.Equal(t, 0, l.Count("50"))
	})

	t.Run("replaces previous value", func(t *testing.T) {
		require.NoError(t, l.SetCount("20", 2))
		require.NoError(t, l.SetCount("20", 7))
		assert.Equal(t, 7, l.Count("20"))
	})

	t.Run("unknown id", func(t *testing.T) {
		err := l.SetCount("3", 1)
		assert.ErrorIs(t, err, cash.ErrUnknownDenomination)
		assert.Equal(t, 0, l.Count("3"))
	})
}

func TestLedger_OrderIndependent(t *testing.T) {
	a := cash.TurkishLira()
	require.NoError(t, a.SetCount("200", 3))
	require.NoError(t, a.SetCount("0.25", 9))
	require.NoError(t, a.SetCount("10", 4))

	b := cash.TurkishLira()
	require.NoError(t, b.SetCount("10", 4))
	require.NoError(t, b.SetCount("200", 3))
	require.NoError(t, b.SetCount("0.25", 9))

	assert.True(t, a.GrandTotal().Equal(b.GrandTotal()))
	assert.True(t, a.Subtotal(cash.KindCoin).Equal(b.Subtotal(cash.KindCoin)))
}

func TestLedger_Reset(t *testing.T) {
	l := cash.TurkishLira()
	require.NoError(t, l.SetCount("100", 2))

	l.Reset()

	assert.True(t, l.GrandTotal().IsZero())

	for _, e := range l.Entries() {
		assert.Zero(t, e.Count)
	}
}

func TestLedger_EntriesIsCopy(t *testing.T) {
	l := cash.TurkishLira()

	entries := l.Entries()
	entries[0].Count = 99

	assert.Equal(t, 0, l.Count("200"))
}

func TestNewLedger_ReclassifiesAndClamps(t *testing.T) {
	l := cash.NewLedger([]cash.Denomination{
		{Value: dec("10"), Kind: cash.KindCoin, Count: 2},
		{Value: dec("0.5"), Count: -3},
	})

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "10", entries[0].ID)
	assert.Equal(t, cash.KindBanknote, entries[0].Kind)
	assert.Equal(t, 0, entries[1].Count)
	assert.True(t, l.Subtotal(cash.KindBanknote).Equal(dec("20")))
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{" 3 ", 3},
		{"", 0},
		{"-2", 0},
		{"abc", 0},
		{"1.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cash.ParseCount(tt.in))
		})
	}
}
