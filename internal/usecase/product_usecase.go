package usecase

import (
	"context"
	"net/http"
	"strings"

	"deck/internal/domain/model"
	repo "deck/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// 商品詳細（バリエーション・パック込み）
func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
