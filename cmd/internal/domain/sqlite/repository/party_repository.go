package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/policy"
)

type DefaultClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{db: db}
}

func (r *DefaultClientRepository) FindAll(ctx context.Context, ord Ordering) ([]*entity.Client, error) {
	return findAll[entity.Client](ctx, r.db, ord)
}

func (r *DefaultClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	return findOne[entity.Client](ctx, r.db, "id_client", id)
}

func (r *DefaultClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "clients", "id_client", id)
}

func (r *DefaultClientRepository) Create(ctx context.Context, client *entity.Client) error {
	return create(ctx, r.db, client)
}

// CreateWithDeal stores a client and its first deal atomically: if the deal
// is rejected the client is not kept either.
func (r *DefaultClientRepository) CreateWithDeal(ctx context.Context, client *entity.Client, deal *entity.Deal) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(client).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(deal).Error
	})
	return Classify(err)
}

func (r *DefaultClientRepository) Delete(ctx context.Context, id string) error {
	return deleteByRule(ctx, r.db, policy.ClientDelete, id)
}

type DefaultExecutorRepository struct {
	db *gorm.DB
}

func NewExecutorRepository(db *gorm.DB) *DefaultExecutorRepository {
	return &DefaultExecutorRepository{db: db}
}

func (r *DefaultExecutorRepository) FindAll(ctx context.Context, ord Ordering) ([]*entity.Executor, error) {
	return findAll[entity.Executor](ctx, r.db, ord)
}

func (r *DefaultExecutorRepository) FindByID(ctx context.Context, id string) (*entity.Executor, error) {
	return findOne[entity.Executor](ctx, r.db, "id_executor", id)
}

func (r *DefaultExecutorRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "executors", "id_executor", id)
}

func (r *DefaultExecutorRepository) Create(ctx context.Context, executor *entity.Executor) error {
	return create(ctx, r.db, executor)
}

func (r *DefaultExecutorRepository) Delete(ctx context.Context, id string) error {
	return deleteByRule(ctx, r.db, policy.ExecutorDelete, id)
}
