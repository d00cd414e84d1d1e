package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrency(t *testing.T) {
	t.Run("normalizes code", func(t *testing.T) {
		c, err := NewCurrency("  usd ", "US Dollar", "$")
		require.NoError(t, err)
		assert.Equal(t, "USD", c.Code)
		assert.Equal(t, "$", c.Symbol)
		assert.True(t, c.IsActive)
		assert.False(t, c.IsBase)
		assert.True(t, c.ExchangeRate.Equal(decimal.NewFromInt(1)))
	})

	t.Run("symbol defaults to code", func(t *testing.T) {
		c, err := NewCurrency("UGX", "Ugandan Shilling", "")
		require.NoError(t, err)
		assert.Equal(t, "UGX", c.Symbol)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewCurrency("   ", "Nameless", "?")
		assert.Error(t, err)
	})

	t.Run("rejects overlong code", func(t *testing.T) {
		_, err := NewCurrency("ABCDEFGHIJK", "Too Long", "?")
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCurrency("USD", "", "$")
		assert.Error(t, err)
	})
}

func TestMarkAsBase(t *testing.T) {
	c, err := NewCurrency("KES", "Kenyan Shilling", "KSh")
	require.NoError(t, err)
	require.NoError(t, c.SetExchangeRate(decimal.NewFromFloat(0.027)))
	c.IsActive = false

	c.MarkAsBase()

	assert.True(t, c.IsBase)
	assert.True(t, c.IsActive, "base currency is always active")
	assert.True(t, c.ExchangeRate.Equal(decimal.NewFromInt(1)), "base rate resets to 1")
}

func TestSetExchangeRate(t *testing.T) {
	c, err := NewCurrency("EUR", "Euro", "€")
	require.NoError(t, err)

	require.NoError(t, c.SetExchangeRate(decimal.NewFromFloat(4150.5)))
	assert.True(t, c.ExchangeRate.Equal(decimal.NewFromFloat(4150.5)))

	assert.Error(t, c.SetExchangeRate(decimal.Zero))
	assert.Error(t, c.SetExchangeRate(decimal.NewFromInt(-1)))
}
