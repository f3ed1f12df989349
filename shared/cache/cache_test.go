package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("string target receives the raw value", func(t *testing.T) {
		var got string

		err := decode("cached-token", &got)

		require.NoError(t, err)
		assert.Equal(t, "cached-token", got)
	})

	t.Run("struct target is unmarshalled from json", func(t *testing.T) {
		type payload struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}

		var got payload

		err := decode(`{"name":"bookings","count":3}`, &got)

		require.NoError(t, err)
		assert.Equal(t, payload{Name: "bookings", Count: 3}, got)
	})

	t.Run("invalid json returns an error", func(t *testing.T) {
		var got map[string]any

		err := decode("not-json", &got)

		assert.Error(t, err)
	})
}
