package pricing_test

import (
	"deck/internal/domain/model"

	"github.com/shopspring/decimal"
)

func strp(s string) *string { return &s }

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decp(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// P1: 通常50 / パックPK1 180（S1,M1,L1）、P2: 通常20。どちらもS1の出品。
func scenarioProducts() []model.Product {
	return []model.Product{
		{
			ID:        "P1",
			Name:      "Tee",
			Price:     dec(50),
			CreatorID: "S1",
			Variants: []model.Variant{
				{ID: "V1", ProductID: "P1", Name: "Red", MediaURL: "https://cdn.example/p1-red.jpg"},
				{ID: "V2", ProductID: "P1", Name: "Navy", MediaURL: "https://cdn.example/p1-navy.jpg", Position: 1},
			},
			Packs: []model.Pack{
				{
					ID:            "PK1",
					ProductID:     "P1",
					Name:          "Trio Pack",
					Price:         dec(180),
					Contents:      model.PackContents{{Size: "S", Count: 1}, {Size: "M", Count: 1}, {Size: "L", Count: 1}},
					TotalQuantity: 3,
				},
			},
		},
		{
			ID:        "P2",
			Name:      "Cap",
			Price:     dec(20),
			CreatorID: "S1",
			Variants: []model.Variant{
				{ID: "V3", ProductID: "P2", Name: "Blue", MediaURL: "https://cdn.example/p2-blue.jpg"},
			},
		},
	}
}

func scenarioCart() []model.CartItem {
	return []model.CartItem{
		{ID: "C1", ProductID: "P1", VariantName: "Red", PackID: strp("PK1"), Quantity: 2},
		{ID: "C2", ProductID: "P2", VariantName: "Blue", Quantity: 3, SpecialPrice: decp(15)},
	}
}
