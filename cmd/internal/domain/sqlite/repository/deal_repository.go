package repository

import (
	"context"

	"gorm.io/gorm"

	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/policy"
)

type DefaultDealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DefaultDealRepository {
	return &DefaultDealRepository{db: db}
}

func (r *DefaultDealRepository) FindAll(ctx context.Context, ord Ordering) ([]*entity.Deal, error) {
	return findAll[entity.Deal](ctx, r.db, ord)
}

func (r *DefaultDealRepository) FindByID(ctx context.Context, id string) (*entity.Deal, error) {
	return findOne[entity.Deal](ctx, r.db, "id_deal", id)
}

func (r *DefaultDealRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "deals", "id_deal", id)
}

func (r *DefaultDealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	return create(ctx, r.db, deal)
}

// Delete removes the deal together with all of its attachments.
func (r *DefaultDealRepository) Delete(ctx context.Context, id string) error {
	return deleteByRule(ctx, r.db, policy.DealDelete, id)
}
