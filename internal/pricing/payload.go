package pricing

import (
	"deck/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 事前注文を出す営業担当
type Salesperson struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// 出品者に渡す事前注文の中身
type PreOrderPayload struct {
	SellerID      string               `json:"seller_id"`
	Items         []model.PreOrderItem `json:"items"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	TotalQuantity int64                `json:"total_quantity"`
	Salesperson   Salesperson          `json:"salesperson"`
}

func BuildPreOrderPayload(sellerID string, lines []Line, sp Salesperson) PreOrderPayload {
	items := make([]model.PreOrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.PreOrderItem{
			ProductID:   l.ProductID,
			VariantName: l.VariantName,
			Size:        l.Size,
			PackID:      l.PackID,
			PackName:    l.PackName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			DisplayName: l.DisplayName,
			MediaURL:    l.MediaURL,
		})
	}

	totals := ComputeSellerTotals(lines)
	return PreOrderPayload{
		SellerID:      sellerID,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TotalQuantity: totals.TotalQuantity,
		Salesperson:   sp,
	}
}
