package repository

import (
	"context"

	"deck/internal/domain/model"
	repo "deck/internal/repository"

	"gorm.io/gorm"
)

type PreOrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewPreOrderGormRepository(db *gorm.DB) *PreOrderGormRepository {
	return &PreOrderGormRepository{db: db}
}

// アウトボックスに積む
func (r *PreOrderGormRepository) Create(ctx context.Context, po model.PreOrder) error {
	return r.db.WithContext(ctx).Create(&po).Error
}

// 出品者宛ての事前注文（新しい順）
func (r *PreOrderGormRepository) ListBySeller(ctx context.Context, sellerID string) ([]model.PreOrder, error) {
	var out []model.PreOrder

	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at desc").
		Find(&out).Error; err != nil {
		return []model.PreOrder{}, err
	}
	return out, nil
}

// 受け取り済みにする（PENDINGのものだけ）
func (r *PreOrderGormRepository) MarkSent(ctx context.Context, id string, sellerID string) error {
	res := r.db.WithContext(ctx).
		Model(&model.PreOrder{}).
		Where("id = ? AND seller_id = ? AND status = ?", id, sellerID, model.PreOrderStatusPending).
		Update("status", model.PreOrderStatusSent)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
