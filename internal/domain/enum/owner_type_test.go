package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerTypeJSON(t *testing.T) {
	t.Run("round-trips through its name", func(t *testing.T) {
		data, err := json.Marshal(OwnerTypeVendor)
		require.NoError(t, err)
		assert.Equal(t, `"Vendor"`, string(data))

		var ot OwnerType
		require.NoError(t, json.Unmarshal(data, &ot))
		assert.Equal(t, OwnerTypeVendor, ot)
	})

	t.Run("unknown name decodes invalid, not Customer", func(t *testing.T) {
		var ot OwnerType
		require.NoError(t, json.Unmarshal([]byte(`"Foo"`), &ot))
		assert.False(t, ot.Valid())
		assert.NotEqual(t, OwnerTypeCustomer, ot)
	})

	t.Run("accepts numeric values", func(t *testing.T) {
		var ot OwnerType
		require.NoError(t, json.Unmarshal([]byte("3"), &ot))
		assert.Equal(t, OwnerTypeJob, ot)
	})
}
