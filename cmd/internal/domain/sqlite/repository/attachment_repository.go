package repository

import (
	"context"

	"gorm.io/gorm"

	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/policy"
)

type DefaultAttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *DefaultAttachmentRepository {
	return &DefaultAttachmentRepository{db: db}
}

func (r *DefaultAttachmentRepository) FindAll(ctx context.Context, ord Ordering) ([]*entity.Attachment, error) {
	return findAll[entity.Attachment](ctx, r.db, ord)
}

func (r *DefaultAttachmentRepository) FindByDeal(ctx context.Context, dealID string, ord Ordering) ([]*entity.Attachment, error) {
	return findAll[entity.Attachment](ctx, r.db, ord, eq("id_deal", dealID))
}

func (r *DefaultAttachmentRepository) FindByID(ctx context.Context, id string) (*entity.Attachment, error) {
	return findOne[entity.Attachment](ctx, r.db, "id_attachment", id)
}

func (r *DefaultAttachmentRepository) Create(ctx context.Context, a *entity.Attachment) error {
	return create(ctx, r.db, a)
}

// UpdateStatus writes the cached derived flags of one attachment.
func (r *DefaultAttachmentRepository) UpdateStatus(ctx context.Context, id string, status entity.AttachmentStatus) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Attachment{}).
		Where(eq("id_attachment", id)).
		Updates(map[string]any{
			"signed_attachment": status.Signed,
			"active_attachment": status.Active,
		})
	if res.Error != nil {
		return Classify(res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DefaultAttachmentRepository) Delete(ctx context.Context, id string) error {
	return deleteByRule(ctx, r.db, policy.AttachmentDelete, id)
}
