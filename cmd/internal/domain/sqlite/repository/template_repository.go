package repository

import (
	"context"

	"gorm.io/gorm"

	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/policy"
)

type DefaultSampleContractRepository struct {
	db *gorm.DB
}

func NewSampleContractRepository(db *gorm.DB) *DefaultSampleContractRepository {
	return &DefaultSampleContractRepository{db: db}
}

func (r *DefaultSampleContractRepository) FindAll(ctx context.Context, ord Ordering) ([]*entity.SampleContract, error) {
	return findAll[entity.SampleContract](ctx, r.db, ord)
}

func (r *DefaultSampleContractRepository) FindByID(ctx context.Context, id string) (*entity.SampleContract, error) {
	return findOne[entity.SampleContract](ctx, r.db, "id_sample_contract", id)
}

func (r *DefaultSampleContractRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "sample_contracts", "id_sample_contract", id)
}

func (r *DefaultSampleContractRepository) Create(ctx context.Context, sc *entity.SampleContract) error {
	return create(ctx, r.db, sc)
}

// Delete removes the template and all of its attachment templates. It is
// rejected while a service still uses the template.
func (r *DefaultSampleContractRepository) Delete(ctx context.Context, id string) error {
	return deleteByRule(ctx, r.db, policy.SampleContractDelete, id)
}

type DefaultSampleAttachRepository struct {
	db *gorm.DB
}

func NewSampleAttachRepository(db *gorm.DB) *DefaultSampleAttachRepository {
	return &DefaultSampleAttachRepository{db: db}
}

func (r *DefaultSampleAttachRepository) FindAll(ctx context.Context, ord Ordering) ([]*entity.SampleAttach, error) {
	return findAll[entity.SampleAttach](ctx, r.db, ord)
}

func (r *DefaultSampleAttachRepository) FindByContract(ctx context.Context, contractID string, ord Ordering) ([]*entity.SampleAttach, error) {
	return findAll[entity.SampleAttach](ctx, r.db, ord, eq("id_sample_contract", contractID))
}

func (r *DefaultSampleAttachRepository) Create(ctx context.Context, sa *entity.SampleAttach) error {
	return create(ctx, r.db, sa)
}

func (r *DefaultSampleAttachRepository) Delete(ctx context.Context, id string) error {
	return deleteByRule(ctx, r.db, policy.SampleAttachDelete, id)
}

type DefaultServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *DefaultServiceRepository {
	return &DefaultServiceRepository{db: db}
}

func (r *DefaultServiceRepository) FindAll(ctx context.Context, ord Ordering) ([]*entity.Service, error) {
	return findAll[entity.Service](ctx, r.db, ord)
}

func (r *DefaultServiceRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "services", "id_service", id)
}

func (r *DefaultServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	return create(ctx, r.db, s)
}

func (r *DefaultServiceRepository) Delete(ctx context.Context, id string) error {
	return deleteByRule(ctx, r.db, policy.ServiceDelete, id)
}
