package pricing

import (
	"deck/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 単価の決まり方
type PriceSource int

const (
	PriceBase PriceSource = iota
	PricePack
	PriceSpecial
)

func (s PriceSource) String() string {
	switch s {
	case PriceSpecial:
		return "special"
	case PricePack:
		return "pack"
	default:
		return "base"
	}
}

func (s PriceSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// 単価の決定結果。Packはパックが見つかったときだけ入る。
type PriceDecision struct {
	Source PriceSource
	Amount decimal.Decimal
	Pack   *model.Pack
}

// 優先順位: プロモ価格 > パック価格 > 通常価格。
// パックIDが商品のパックに無ければ通常価格の単品扱い。
//
// プロモ価格のときもパックは解決する（表示名・入数はパックのまま）。
func DecidePrice(p model.Product, item model.CartItem) PriceDecision {
	var pack *model.Pack
	if item.PackID != nil {
		if pk, ok := p.FindPack(*item.PackID); ok {
			pack = &pk
		}
	}

	switch {
	case item.SpecialPrice != nil:
		return PriceDecision{Source: PriceSpecial, Amount: *item.SpecialPrice, Pack: pack}
	case pack != nil:
		return PriceDecision{Source: PricePack, Amount: pack.Price, Pack: pack}
	default:
		return PriceDecision{Source: PriceBase, Amount: p.Price}
	}
}
