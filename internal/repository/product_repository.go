package repository

import (
	"context"
	"errors"

	"deck/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の取得だけを約束。バリエーションとパックも一緒に返す。
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (model.Product, error)
	// 見つからないIDは結果に含めない（エラーにしない）
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}
