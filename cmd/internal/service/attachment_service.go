package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/sqlite/repository"
	"simplecrm/cmd/internal/utils"
	"simplecrm/cmd/internal/utils/apierror"
	"simplecrm/cmd/internal/utils/uid"
)

var attachmentOrder = orderColumns{
	"date_start_attachment", "date_end_attachment", "id_attachment", "id_deal",
	"id_service", "place_attachment", "price_attachment",
}

type AttachmentRepository interface {
	FindAll(ctx context.Context, ord repository.Ordering) ([]*entity.Attachment, error)
	FindByDeal(ctx context.Context, dealID string, ord repository.Ordering) ([]*entity.Attachment, error)
	FindByID(ctx context.Context, id string) (*entity.Attachment, error)
	Create(ctx context.Context, a *entity.Attachment) error
	UpdateStatus(ctx context.Context, id string, status entity.AttachmentStatus) error
	Delete(ctx context.Context, id string) error
}

// StatusComputer derives the signed/active flags of an attachment. On error
// the returned Active flag is still valid.
type StatusComputer interface {
	Compute(ctx context.Context, a *entity.Attachment) (entity.AttachmentStatus, error)
}

type DefaultAttachmentService struct {
	AttachmentRepo AttachmentRepository
	DealRepo       DealRepository
	ServiceRepo    ServiceRepository
	Status         StatusComputer
	Validate       *validator.Validate
}

func NewAttachmentService(
	attachmentRepo AttachmentRepository,
	dealRepo DealRepository,
	serviceRepo ServiceRepository,
	status StatusComputer,
	validate *validator.Validate,
) *DefaultAttachmentService {
	return &DefaultAttachmentService{
		AttachmentRepo: attachmentRepo,
		DealRepo:       dealRepo,
		ServiceRepo:    serviceRepo,
		Status:         status,
		Validate:       validate,
	}
}

// List returns every attachment with freshly computed flags. The stored
// flags are left untouched.
func (s *DefaultAttachmentService) List(ctx context.Context, q *contract.ListQuery) ([]*contract.AttachmentResponse, apierror.ErrorResponse) {
	ord, apierr := attachmentOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	attachments, err := s.AttachmentRepo.FindAll(ctx, ord)
	if err != nil {
		log.Errorf("failed to fetch attachments: %v", err)
		return nil, apierror.InternalServerError
	}
	return s.withFreshStatus(ctx, attachments), nil
}

func (s *DefaultAttachmentService) ListByDeal(ctx context.Context, dealID string, q *contract.ListQuery) ([]*contract.AttachmentResponse, apierror.ErrorResponse) {
	ord, apierr := attachmentOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	found, err := s.DealRepo.Exists(ctx, dealID)
	if err != nil {
		log.Errorf("failed to look up deal %s: %v", dealID, err)
		return nil, apierror.InternalServerError
	}

	if !found {
		return nil, apierror.NotFoundError
	}

	attachments, err := s.AttachmentRepo.FindByDeal(ctx, dealID, ord)
	if err != nil {
		log.Errorf("failed to fetch attachments of deal %s: %v", dealID, err)
		return nil, apierror.InternalServerError
	}
	return s.withFreshStatus(ctx, attachments), nil
}

func (s *DefaultAttachmentService) Create(ctx context.Context, req *contract.AttachmentRequest) (*contract.AttachmentResponse, apierror.ErrorResponse) {
	req.PathSignedPdfAttachment = utils.NilIfBlank(req.PathSignedPdfAttachment)
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	start, apierr := parseDateField("date_start_attachment", req.DateStartAttachment)
	if apierr != nil {
		return nil, apierr
	}

	end, apierr := parseDateField("date_end_attachment", req.DateEndAttachment)
	if apierr != nil {
		return nil, apierr
	}

	a := &entity.Attachment{
		IDAttachment:            uid.New(entity.PrefixAttachment),
		IDDeal:                  req.IDDeal,
		IDService:               req.IDService,
		DateStartAttachment:     start,
		DateEndAttachment:       end,
		PlaceAttachment:         req.PlaceAttachment,
		PathDocAttachment:       req.PathDocAttachment,
		PathPdfAttachment:       req.PathPdfAttachment,
		PathSignedPdfAttachment: req.PathSignedPdfAttachment,
	}
	if req.PriceAttachment != nil {
		a.PriceAttachment = decimal.NewNullDecimal(*req.PriceAttachment)
	}
	if apierr := fromViolations(entity.ValidateAttachment(a)); apierr != nil {
		return nil, apierr
	}

	found, err := s.DealRepo.Exists(ctx, a.IDDeal)
	if apierr := requireExists("Deal", a.IDDeal, found, err); apierr != nil {
		return nil, apierr
	}

	found, err = s.ServiceRepo.Exists(ctx, a.IDService)
	if apierr := requireExists("Service", a.IDService, found, err); apierr != nil {
		return nil, apierr
	}

	status, err := s.Status.Compute(ctx, a)
	if err != nil {
		log.Warnf("could not check signed document of new attachment %s: %v", a.IDAttachment, err)
	}
	a.ApplyStatus(status)

	if err := s.AttachmentRepo.Create(ctx, a); err != nil {
		return nil, mapWriteError("attachment", err)
	}
	return toAttachmentResponse(a), nil
}

// RefreshStatus recomputes the flags of one attachment and stores them.
func (s *DefaultAttachmentService) RefreshStatus(ctx context.Context, id string) (*contract.AttachmentResponse, apierror.ErrorResponse) {
	a, err := s.AttachmentRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch attachment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if a == nil {
		return nil, apierror.NotFoundError
	}

	if _, err := s.refresh(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.NotFoundError
		}
		log.Errorf("failed to refresh status of attachment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAttachmentResponse(a), nil
}

// RefreshAll recomputes every attachment and stores the flags that changed.
// It returns how many rows were updated. A failing row is logged and
// skipped, the first such error is returned after the sweep.
func (s *DefaultAttachmentService) RefreshAll(ctx context.Context) (int, error) {
	attachments, err := s.AttachmentRepo.FindAll(ctx, repository.Ordering{})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch attachments: %w", err)
	}

	var (
		updated  int
		firstErr error
	)
	for _, a := range attachments {
		if err := ctx.Err(); err != nil {
			return updated, err
		}

		changed, err := s.refresh(ctx, a)
		if err != nil {
			log.Errorf("failed to refresh status of attachment %s: %v", a.IDAttachment, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if changed {
			updated++
		}
	}
	return updated, firstErr
}

// refresh stores the fresh status of a only if it differs from the cached
// one, and reports whether it did.
func (s *DefaultAttachmentService) refresh(ctx context.Context, a *entity.Attachment) (bool, error) {
	status, err := s.Status.Compute(ctx, a)
	if err != nil {
		return false, err
	}

	if status == a.Status() {
		return false, nil
	}

	if err := s.AttachmentRepo.UpdateStatus(ctx, a.IDAttachment, status); err != nil {
		return false, err
	}
	a.ApplyStatus(status)
	return true, nil
}

func (s *DefaultAttachmentService) Delete(ctx context.Context, id string) apierror.ErrorResponse {
	if err := s.AttachmentRepo.Delete(ctx, id); err != nil {
		return mapDeleteError("attachment", id, err)
	}
	return nil
}

func (s *DefaultAttachmentService) withFreshStatus(ctx context.Context, attachments []*entity.Attachment) []*contract.AttachmentResponse {
	resp := make([]*contract.AttachmentResponse, len(attachments))
	for i, a := range attachments {
		status, err := s.Status.Compute(ctx, a)
		if err != nil {
			// Keep the last stored signed flag when the artifact store is unreachable.
			log.Warnf("could not check signed document of attachment %s: %v", a.IDAttachment, err)
			status.Signed = a.SignedAttachment
		}
		a.ApplyStatus(status)
		resp[i] = toAttachmentResponse(a)
	}
	return resp
}

func toAttachmentResponse(a *entity.Attachment) *contract.AttachmentResponse {
	var price *string
	if a.PriceAttachment.Valid {
		p := a.PriceAttachment.Decimal.StringFixed(entity.MaxPriceScale)
		price = &p
	}

	return &contract.AttachmentResponse{
		IDAttachment:            a.IDAttachment,
		IDDeal:                  a.IDDeal,
		IDService:               a.IDService,
		DateStartAttachment:     a.DateStartAttachment,
		DateEndAttachment:       a.DateEndAttachment,
		PlaceAttachment:         a.PlaceAttachment,
		PriceAttachment:         price,
		PathDocAttachment:       a.PathDocAttachment,
		PathPdfAttachment:       a.PathPdfAttachment,
		PathSignedPdfAttachment: a.PathSignedPdfAttachment,
		SignedAttachment:        a.SignedAttachment,
		ActiveAttachment:        a.ActiveAttachment,
	}
}
