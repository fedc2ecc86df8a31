package pricing_test

import (
	"encoding/json"
	"testing"

	"deck/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPreOrderPayload(t *testing.T) {
	groups := pricing.GroupBySeller(scenarioCart(), pricing.NewCatalog(scenarioProducts()))
	lines, _ := groups.Get("S1")

	p := pricing.BuildPreOrderPayload("S1", lines, pricing.Salesperson{ID: "U1", Name: "Ken"})

	assert.Equal(t, "S1", p.SellerID)
	assert.Equal(t, pricing.Salesperson{ID: "U1", Name: "Ken"}, p.Salesperson)
	assert.True(t, p.Subtotal.Equal(dec(405)))
	assert.Equal(t, int64(9), p.TotalQuantity)
	require.Len(t, p.Items, 2)

	pack := p.Items[0]
	assert.Equal(t, "P1", pack.ProductID)
	assert.Equal(t, "Red", pack.VariantName)
	require.NotNil(t, pack.PackID)
	assert.Equal(t, "PK1", *pack.PackID)
	require.NotNil(t, pack.PackName)
	assert.Equal(t, "Trio Pack", *pack.PackName)
	assert.Equal(t, int64(2), pack.Quantity)
	assert.True(t, pack.UnitPrice.Equal(dec(180)))
	assert.Equal(t, "Trio Pack", pack.DisplayName)
	assert.Equal(t, "https://cdn.example/p1-red.jpg", pack.MediaURL)

	single := p.Items[1]
	assert.Nil(t, single.PackID)
	assert.Nil(t, single.PackName)
	assert.Nil(t, single.Size)
	assert.True(t, single.UnitPrice.Equal(dec(15)))
	assert.Equal(t, "Cap", single.DisplayName)
}

func TestBuildPreOrderPayload_JSON(t *testing.T) {
	groups := pricing.GroupBySeller(scenarioCart()[1:], pricing.NewCatalog(scenarioProducts()))
	lines, _ := groups.Get("S1")

	raw, err := json.Marshal(pricing.BuildPreOrderPayload("S1", lines, pricing.Salesperson{ID: "U1", Name: "Ken"}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "S1", got["seller_id"])
	assert.Equal(t, "45", got["subtotal"])

	items := got["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.NotContains(t, item, "pack_id")
	assert.Equal(t, "15", item["unit_price"])
}
