package pricing

import (
	"strconv"
	"strings"

	"deck/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 価格解決済みの明細
type Line struct {
	CartItemID  string
	ProductID   string
	ProductName string
	VariantName string
	Size        *string
	PackID      *string
	PackName    *string
	Quantity    int64

	PriceSource PriceSource
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal

	DisplayName string
	Subtitle    string
	// 合計数量への寄与（パックなら入数×パック数）
	QuantityContribution int64

	SellerID string
	MediaURL string
}

func (l Line) IsPack() bool {
	return l.PackName != nil
}

// 商品がカタログに無ければ ok=false（呼び出し側は集計から外す）。
func ResolveLineItem(item model.CartItem, catalog Catalog) (Line, bool) {
	p, ok := catalog.Lookup(item.ProductID)
	if !ok {
		return Line{}, false
	}

	price := DecidePrice(p, item)

	line := Line{
		CartItemID:           item.ID,
		ProductID:            p.ID,
		ProductName:          p.Name,
		VariantName:          item.VariantName,
		Size:                 item.Size,
		Quantity:             item.Quantity,
		PriceSource:          price.Source,
		UnitPrice:            price.Amount,
		LineTotal:            price.Amount.Mul(decimal.NewFromInt(item.Quantity)),
		DisplayName:          p.Name,
		Subtitle:             variantSubtitle(item),
		QuantityContribution: item.Quantity,
		SellerID:             p.CreatorID,
		MediaURL:             variantMedia(p, item.VariantName),
	}

	if pk := price.Pack; pk != nil {
		id, name := pk.ID, pk.Name
		line.PackID = &id
		line.PackName = &name
		line.DisplayName = pk.Name
		line.Subtitle = packSubtitle(pk.Contents)
		line.QuantityContribution = pk.TotalQuantity * item.Quantity
	}

	return line, true
}

// "Red" / "Red, M"
func variantSubtitle(item model.CartItem) string {
	if item.Size != nil && *item.Size != "" {
		return item.VariantName + ", " + *item.Size
	}
	return item.VariantName
}

// "1S,1M,1L"
func packSubtitle(contents model.PackContents) string {
	parts := make([]string, 0, len(contents))
	for _, c := range contents {
		parts = append(parts, strconv.FormatInt(c.Count, 10)+c.Size)
	}
	return strings.Join(parts, ",")
}

// パックでもカートで選んだバリエーションの画像を使う
func variantMedia(p model.Product, variantName string) string {
	if v, ok := p.FindVariant(variantName); ok {
		return v.MediaURL
	}
	return ""
}
