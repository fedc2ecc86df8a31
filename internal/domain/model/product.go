package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 商品。出品者（クリエイター）は必ず1人。
type Product struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	CreatorID string          `gorm:"type:uuid;not null;index" json:"creator_id"`
	Variants  []Variant       `gorm:"foreignKey:ProductID" json:"variants"`
	Packs     []Pack          `gorm:"foreignKey:ProductID" json:"packs"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// バリエーション（色など）。画像はバリエーションごと。
type Variant struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID string `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	MediaURL  string `gorm:"type:text" json:"media_url"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}

// 名前でバリエーションを探す
func (p Product) FindVariant(name string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// IDでパックを探す
func (p Product) FindPack(id string) (Pack, bool) {
	for _, pk := range p.Packs {
		if pk.ID == id {
			return pk, true
		}
	}
	return Pack{}, false
}
