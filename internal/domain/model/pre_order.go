package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PreOrderStatus string

const (
	PreOrderStatusPending PreOrderStatus = "PENDING"
	PreOrderStatusSent    PreOrderStatus = "SENT"
)

// 出品者に送る事前注文。メッセージ連携が拾うまでPENDING。
type PreOrder struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID        string          `gorm:"type:uuid;not null;index" json:"seller_id"`
	SalespersonID   string          `gorm:"type:uuid;not null;index" json:"salesperson_id"`
	SalespersonName string          `gorm:"type:varchar(255);not null" json:"salesperson_name"`
	Items           []PreOrderItem  `gorm:"type:jsonb;serializer:json" json:"items"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	TotalQuantity   int64           `gorm:"not null" json:"total_quantity"`
	Status          PreOrderStatus  `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}

// 事前注文の1行
type PreOrderItem struct {
	ProductID   string          `json:"product_id"`
	VariantName string          `json:"variant_name"`
	Size        *string         `json:"size,omitempty"`
	PackID      *string         `json:"pack_id,omitempty"`
	PackName    *string         `json:"pack_name,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DisplayName string          `json:"display_name"`
	MediaURL    string          `json:"media_url"`
}
