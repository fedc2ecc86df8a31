package repository

import (
	"context"

	"deck/internal/domain/model"
)

type CartItemRepository interface {
	// 追加順
	ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) error
	UpdateQuantity(ctx context.Context, cartItemID string, qty int64) error
	DeleteByID(ctx context.Context, cartItemID string) error
	IsOwnedByUser(ctx context.Context, cartItemID string, userID string) (bool, error)
}
