package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カートの明細。
// PackIDがあればQuantityはパック数、なければ単品の数。
// SpecialPriceはプロモ価格で、パック価格・通常価格より優先。
type CartItem struct {
	ID           string           `gorm:"type:uuid;primaryKey" json:"id"`
	CartID       string           `gorm:"type:uuid;not null;index" json:"cart_id"`
	ProductID    string           `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantName  string           `gorm:"type:varchar(100);not null" json:"variant_name"`
	Size         *string          `gorm:"type:varchar(20)" json:"size,omitempty"`
	PackID       *string          `gorm:"type:uuid" json:"pack_id,omitempty"`
	Quantity     int64            `gorm:"not null" json:"quantity"`
	SpecialPrice *decimal.Decimal `gorm:"type:numeric(12,2)" json:"special_price,omitempty"`
	CreatedAt    time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
