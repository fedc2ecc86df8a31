package repository

import (
	"context"

	"deck/internal/domain/model"
)

// 事前注文のアウトボックス。送信はメッセージ連携側。
type PreOrderRepository interface {
	Create(ctx context.Context, po model.PreOrder) error
	ListBySeller(ctx context.Context, sellerID string) ([]model.PreOrder, error)
	// 出品者本人の分だけSENTにする。該当なしはErrNotFound。
	MarkSent(ctx context.Context, id string, sellerID string) error
}
