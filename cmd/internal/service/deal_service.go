package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/sqlite/repository"
	"simplecrm/cmd/internal/utils"
	"simplecrm/cmd/internal/utils/apierror"
	"simplecrm/cmd/internal/utils/uid"
)

var dealOrder = orderColumns{"date_deal", "id_deal", "number_deal", "id_client", "id_executor"}

type DealRepository interface {
	FindAll(ctx context.Context, ord repository.Ordering) ([]*entity.Deal, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, deal *entity.Deal) error
	Delete(ctx context.Context, id string) error
}

type DefaultDealService struct {
	DealRepo     DealRepository
	ClientRepo   ClientRepository
	ExecutorRepo ExecutorRepository
	Validate     *validator.Validate
}

func NewDealService(
	dealRepo DealRepository,
	clientRepo ClientRepository,
	executorRepo ExecutorRepository,
	validate *validator.Validate,
) *DefaultDealService {
	return &DefaultDealService{
		DealRepo:     dealRepo,
		ClientRepo:   clientRepo,
		ExecutorRepo: executorRepo,
		Validate:     validate,
	}
}

func (s *DefaultDealService) List(ctx context.Context, q *contract.ListQuery) ([]*contract.DealResponse, apierror.ErrorResponse) {
	ord, apierr := dealOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	deals, err := s.DealRepo.FindAll(ctx, ord)
	if err != nil {
		log.Errorf("failed to fetch deals: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapSlice(deals, toDealResponse), nil
}

func (s *DefaultDealService) Create(ctx context.Context, req *contract.DealRequest) (*contract.DealResponse, apierror.ErrorResponse) {
	req.PathSignedPdfDeal = utils.NilIfBlank(req.PathSignedPdfDeal)
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	date, apierr := parseDateField("date_deal", req.DateDeal)
	if apierr != nil {
		return nil, apierr
	}

	deal := &entity.Deal{
		IDDeal:            uid.New(entity.PrefixDeal),
		IDClient:          req.IDClient,
		IDExecutor:        req.IDExecutor,
		NumberDeal:        req.NumberDeal,
		DateDeal:          date,
		StatusDeal:        req.StatusDeal,
		PathDocDeal:       req.PathDocDeal,
		PathPdfDeal:       req.PathPdfDeal,
		PathSignedPdfDeal: req.PathSignedPdfDeal,
		StatusOrigDeal:    req.StatusOrigDeal,
	}
	if apierr := fromViolations(entity.ValidateDeal(deal)); apierr != nil {
		return nil, apierr
	}

	found, err := s.ClientRepo.Exists(ctx, deal.IDClient)
	if apierr := requireExists("Client", deal.IDClient, found, err); apierr != nil {
		return nil, apierr
	}

	found, err = s.ExecutorRepo.Exists(ctx, deal.IDExecutor)
	if apierr := requireExists("Executor", deal.IDExecutor, found, err); apierr != nil {
		return nil, apierr
	}

	if err := s.DealRepo.Create(ctx, deal); err != nil {
		return nil, mapWriteError("deal", err)
	}
	return toDealResponse(deal), nil
}

// Delete removes a deal together with all its attachments.
func (s *DefaultDealService) Delete(ctx context.Context, id string) apierror.ErrorResponse {
	if err := s.DealRepo.Delete(ctx, id); err != nil {
		return mapDeleteError("deal", id, err)
	}
	return nil
}

func toDealResponse(d *entity.Deal) *contract.DealResponse {
	return &contract.DealResponse{
		IDDeal:            d.IDDeal,
		IDClient:          d.IDClient,
		IDExecutor:        d.IDExecutor,
		NumberDeal:        d.NumberDeal,
		DateDeal:          d.DateDeal,
		StatusDeal:        d.StatusDeal,
		PathDocDeal:       d.PathDocDeal,
		PathPdfDeal:       d.PathPdfDeal,
		PathSignedPdfDeal: d.PathSignedPdfDeal,
		StatusOrigDeal:    d.StatusOrigDeal,
	}
}
