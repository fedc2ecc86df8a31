// Package pricing はカートの価格計算をまとめたもの。
// 入力（カート・カタログ）は読むだけで書き換えない。DBやネットワークにも触らない。
package pricing

import "deck/internal/domain/model"

// 商品IDで引ける読み取り専用のカタログ
type Catalog struct {
	products map[string]model.Product
}

// 同じIDが複数あれば後勝ち
func NewCatalog(products []model.Product) Catalog {
	m := make(map[string]model.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return Catalog{products: m}
}

func (c Catalog) Lookup(productID string) (model.Product, bool) {
	p, ok := c.products[productID]
	return p, ok
}
