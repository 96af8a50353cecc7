package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	t.Run("formats USD for the default locale", func(t *testing.T) {
		got, err := FormatAmount(decimal.RequireFromString("232"), "USD", "")
		require.NoError(t, err)
		assert.Contains(t, got, "232")
		assert.Contains(t, got, "$")
	})

	t.Run("formats EUR for German", func(t *testing.T) {
		got, err := FormatAmount(decimal.RequireFromString("1500.50"), "EUR", "de")
		require.NoError(t, err)
		assert.Contains(t, got, "€")
	})

	t.Run("rejects an unknown currency", func(t *testing.T) {
		_, err := FormatAmount(decimal.RequireFromString("1"), "NOPE", "en")
		require.Error(t, err)
	})

	t.Run("rejects an unparseable locale", func(t *testing.T) {
		_, err := FormatAmount(decimal.RequireFromString("1"), "USD", "!!")
		require.Error(t, err)
	})
}

func TestFormatPercent(t *testing.T) {
	t.Run("renders a fraction as a percentage", func(t *testing.T) {
		got, err := FormatPercent(decimal.RequireFromString("0.16"), "en")
		require.NoError(t, err)
		assert.Contains(t, got, "16")
		assert.Contains(t, got, "%")
	})

	t.Run("empty locale falls back to the default", func(t *testing.T) {
		got, err := FormatPercent(decimal.RequireFromString("0.19"), "")
		require.NoError(t, err)
		assert.Contains(t, got, "19")
	})
}
