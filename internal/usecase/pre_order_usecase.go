package usecase

import (
	"context"
	"net/http"
	"strings"

	"deck/internal/domain/model"
	repo "deck/internal/repository"

	"go.uber.org/zap"
)

// 出品者側から見た事前注文の受信箱
type PreOrderUsecase struct {
	preOrderRepo repo.PreOrderRepository
	log          *zap.Logger
}

// DI
func NewPreOrderUsecase(preOrderRepo repo.PreOrderRepository, log *zap.Logger) *PreOrderUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PreOrderUsecase{preOrderRepo: preOrderRepo, log: log}
}

// 自分宛ての事前注文（新しい順）
func (u *PreOrderUsecase) ListForSeller(ctx context.Context, sellerID string) ([]model.PreOrder, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	out, err := u.preOrderRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out == nil {
		out = []model.PreOrder{}
	}
	return out, nil
}

// 受け取り確認。他人宛て・送信済みは404。
func (u *PreOrderUsecase) MarkSent(ctx context.Context, sellerID string, preOrderID string) error {
	if strings.TrimSpace(sellerID) == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(preOrderID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.preOrderRepo.MarkSent(ctx, preOrderID, sellerID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("pre-order received",
		zap.String("pre_order_id", preOrderID),
		zap.String("seller_id", sellerID),
	)
	return nil
}
