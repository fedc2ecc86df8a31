package repository

import (
	"context"

	"deck/internal/domain/model"
)

type CartRepository interface {
	GetOrCreateActiveByUserID(ctx context.Context, userID string) (model.Cart, error)
	FindActiveByUserID(ctx context.Context, userID string) (model.Cart, error)
}
