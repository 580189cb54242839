package repository

import (
	"context"

	"gorm.io/gorm"

	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/policy"
)

type DefaultClientTypeRepository struct {
	db *gorm.DB
}

func NewClientTypeRepository(db *gorm.DB) *DefaultClientTypeRepository {
	return &DefaultClientTypeRepository{db: db}
}

func (r *DefaultClientTypeRepository) FindAll(ctx context.Context, ord Ordering) ([]*entity.ClientType, error) {
	return findAll[entity.ClientType](ctx, r.db, ord)
}

func (r *DefaultClientTypeRepository) FindByID(ctx context.Context, id int) (*entity.ClientType, error) {
	return findOne[entity.ClientType](ctx, r.db, "id_type_client", id)
}

func (r *DefaultClientTypeRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.db, "client_types", "id_type_client", id)
}

func (r *DefaultClientTypeRepository) Create(ctx context.Context, ct *entity.ClientType) error {
	return create(ctx, r.db, ct)
}

func (r *DefaultClientTypeRepository) Delete(ctx context.Context, id int) error {
	return deleteByRule(ctx, r.db, policy.ClientTypeDelete, id)
}
