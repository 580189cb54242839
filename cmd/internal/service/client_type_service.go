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
)

var clientTypeOrder = orderColumns{"id_type_client", "id_type_short", "id_type_long"}

type ClientTypeRepository interface {
	FindAll(ctx context.Context, ord repository.Ordering) ([]*entity.ClientType, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, ct *entity.ClientType) error
	Delete(ctx context.Context, id int) error
}

type DefaultClientTypeService struct {
	Repo     ClientTypeRepository
	Validate *validator.Validate
}

func NewClientTypeService(repo ClientTypeRepository, validate *validator.Validate) *DefaultClientTypeService {
	return &DefaultClientTypeService{
		Repo:     repo,
		Validate: validate,
	}
}

func (s *DefaultClientTypeService) List(ctx context.Context, q *contract.ListQuery) ([]*contract.ClientTypeResponse, apierror.ErrorResponse) {
	ord, apierr := clientTypeOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	types, err := s.Repo.FindAll(ctx, ord)
	if err != nil {
		log.Errorf("failed to fetch client types: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapSlice(types, toClientTypeResponse), nil
}

func (s *DefaultClientTypeService) Create(ctx context.Context, req *contract.ClientTypeRequest) (*contract.ClientTypeResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	ct := &entity.ClientType{
		IDTypeClient: req.IDTypeClient,
		IDTypeShort:  utils.NilIfBlank(req.IDTypeShort),
		IDTypeLong:   utils.NilIfBlank(req.IDTypeLong),
	}
	if apierr := fromViolations(entity.ValidateClientType(ct)); apierr != nil {
		return nil, apierr
	}

	if err := s.Repo.Create(ctx, ct); err != nil {
		return nil, mapWriteError("client type", err)
	}
	return toClientTypeResponse(ct), nil
}

func (s *DefaultClientTypeService) Delete(ctx context.Context, id int) apierror.ErrorResponse {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return mapDeleteError("client type", id, err)
	}
	return nil
}

func toClientTypeResponse(ct *entity.ClientType) *contract.ClientTypeResponse {
	return &contract.ClientTypeResponse{
		IDTypeClient: ct.IDTypeClient,
		IDTypeShort:  ct.IDTypeShort,
		IDTypeLong:   ct.IDTypeLong,
	}
}
