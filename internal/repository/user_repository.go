package repository

import (
	"context"

	"deck/internal/domain/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.User, error)
}
