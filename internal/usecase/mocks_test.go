package usecase_test

import (
	"context"
	"time"

	"deck/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateActiveByUserID(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindActiveByUserID(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID string, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID string) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) IsOwnedByUser(ctx context.Context, cartItemID string, userID string) (bool, error) {
	args := m.Called(ctx, cartItemID, userID)
	return args.Bool(0), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	args := m.Called(ctx, ids)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

type PreOrderRepoMock struct{ mock.Mock }

func (m *PreOrderRepoMock) Create(ctx context.Context, po model.PreOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *PreOrderRepoMock) ListBySeller(ctx context.Context, sellerID string) ([]model.PreOrder, error) {
	args := m.Called(ctx, sellerID)
	out, _ := args.Get(0).([]model.PreOrder)
	return out, args.Error(1)
}

func (m *PreOrderRepoMock) MarkSent(ctx context.Context, id string, sellerID string) error {
	args := m.Called(ctx, id, sellerID)
	return args.Error(0)
}

type fixedIDs struct {
	ids []string
	n   int
}

func (g *fixedIDs) NewID() string {
	id := g.ids[g.n%len(g.ids)]
	g.n++
	return id
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
