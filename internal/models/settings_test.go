// internal/models/settings_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	for _, category := range Categories() {
		assert.Equal(t, 2000.0, s.PriceMin[category])
		assert.Equal(t, 50000.0, s.PriceMax[category])
	}
	assert.Equal(t, 99.0, s.SellerMinFeedback)
	assert.Equal(t, 200, s.SellerMinScore)
	assert.Equal(t, VatModeMarginScheme, s.VatMode)
}

func TestBlockedKeywords(t *testing.T) {
	s := Settings{BlockKeywords: " Replica, FAKE ,, diamond set ,"}

	assert.Equal(t, []string{"replica", "fake", "diamond set"}, s.BlockedKeywords())
}

func TestBlockedKeywordsEmpty(t *testing.T) {
	assert.Empty(t, Settings{}.BlockedKeywords())
}

func TestSettingsRoundTripsAsColumn(t *testing.T) {
	original := DefaultSettings()
	original.SellerMinScore = 750

	value, err := original.Value()
	require.NoError(t, err)

	var restored Settings
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)
}

func TestSettingsJSONKeys(t *testing.T) {
	data, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"priceMin", "priceMax", "publishTarget", "marginPercent", "sellerMinFeedback", "sellerMinScore", "vatMode", "blockKeywords"} {
		assert.Contains(t, decoded, key)
	}
}
