package pricing_test

import (
	"testing"

	"deck/internal/domain/model"
	"deck/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecidePrice_Base(t *testing.T) {
	p := scenarioProducts()[1]

	got := pricing.DecidePrice(p, model.CartItem{ProductID: "P2", VariantName: "Blue", Quantity: 1})
	assert.Equal(t, pricing.PriceBase, got.Source)
	assert.True(t, got.Amount.Equal(dec(20)))
	assert.Nil(t, got.Pack)
}

func TestDecidePrice_Pack(t *testing.T) {
	p := scenarioProducts()[0]

	got := pricing.DecidePrice(p, model.CartItem{ProductID: "P1", PackID: strp("PK1"), Quantity: 1})
	assert.Equal(t, pricing.PricePack, got.Source)
	assert.True(t, got.Amount.Equal(dec(180)))
	require.NotNil(t, got.Pack)
	assert.Equal(t, "PK1", got.Pack.ID)
}

// パックIDが古い => 通常価格
func TestDecidePrice_StalePackFallsBackToBase(t *testing.T) {
	p := scenarioProducts()[0]

	got := pricing.DecidePrice(p, model.CartItem{ProductID: "P1", PackID: strp("GONE"), Quantity: 1})
	assert.Equal(t, pricing.PriceBase, got.Source)
	assert.True(t, got.Amount.Equal(dec(50)))
	assert.Nil(t, got.Pack)
}

// プロモ価格はパック価格・通常価格より常に優先
func TestDecidePrice_SpecialWins(t *testing.T) {
	p := scenarioProducts()[0]

	cases := []model.CartItem{
		{ProductID: "P1", SpecialPrice: decp(7), Quantity: 1},
		{ProductID: "P1", SpecialPrice: decp(7), PackID: strp("PK1"), Quantity: 1},
		{ProductID: "P1", SpecialPrice: decp(7), PackID: strp("GONE"), Quantity: 1},
		{ProductID: "P1", SpecialPrice: decp(0), PackID: strp("PK1"), Quantity: 1},
	}
	for _, it := range cases {
		got := pricing.DecidePrice(p, it)
		assert.Equal(t, pricing.PriceSpecial, got.Source)
		assert.True(t, got.Amount.Equal(*it.SpecialPrice))
	}
}

func TestPriceSource_String(t *testing.T) {
	assert.Equal(t, "base", pricing.PriceBase.String())
	assert.Equal(t, "pack", pricing.PricePack.String())
	assert.Equal(t, "special", pricing.PriceSpecial.String())
}
