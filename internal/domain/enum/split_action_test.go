package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitActionDisplayName(t *testing.T) {
	t.Run("localizes known actions", func(t *testing.T) {
		assert.Equal(t, "Payment", SplitActionPayment.DisplayName("en"))
		assert.Equal(t, "Zahlung", SplitActionPayment.DisplayName("de"))
		assert.Equal(t, "Paiement", SplitActionPayment.DisplayName("fr"))
	})

	t.Run("unknown locale falls back to English", func(t *testing.T) {
		assert.Equal(t, "Invoice", SplitActionInvoice.DisplayName("xx"))
	})

	t.Run("none renders empty", func(t *testing.T) {
		assert.Equal(t, "", SplitActionNone.DisplayName("en"))
	})
}

func TestSplitActionJSON(t *testing.T) {
	t.Run("round-trips through its name", func(t *testing.T) {
		data, err := json.Marshal(SplitActionPayment)
		require.NoError(t, err)
		assert.Equal(t, `"Payment"`, string(data))

		var a SplitAction
		require.NoError(t, json.Unmarshal(data, &a))
		assert.Equal(t, SplitActionPayment, a)
	})

	t.Run("accepts numeric values", func(t *testing.T) {
		var a SplitAction
		require.NoError(t, json.Unmarshal([]byte("4"), &a))
		assert.Equal(t, SplitActionPayment, a)
	})
}
