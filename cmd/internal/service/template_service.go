package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/sqlite/repository"
	"simplecrm/cmd/internal/utils/apierror"
	"simplecrm/cmd/internal/utils/uid"
)

var (
	sampleContractOrder = orderColumns{"name_sample_contract", "id_sample_contract", "path_sample_contract"}
	sampleAttachOrder   = orderColumns{"name_sample_attach", "id_sample_attach", "id_sample_contract", "path_sample_attach"}
	serviceOrder        = orderColumns{"name_service", "id_service", "id_sample_contract"}
)

type SampleContractRepository interface {
	FindAll(ctx context.Context, ord repository.Ordering) ([]*entity.SampleContract, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, sc *entity.SampleContract) error
	Delete(ctx context.Context, id string) error
}

type SampleAttachRepository interface {
	FindAll(ctx context.Context, ord repository.Ordering) ([]*entity.SampleAttach, error)
	FindByContract(ctx context.Context, contractID string, ord repository.Ordering) ([]*entity.SampleAttach, error)
	Create(ctx context.Context, sa *entity.SampleAttach) error
	Delete(ctx context.Context, id string) error
}

type ServiceRepository interface {
	FindAll(ctx context.Context, ord repository.Ordering) ([]*entity.Service, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, s *entity.Service) error
	Delete(ctx context.Context, id string) error
}

// DefaultTemplateService manages contract templates, their attachment
// templates and the services rendered under them.
type DefaultTemplateService struct {
	ContractRepo SampleContractRepository
	AttachRepo   SampleAttachRepository
	ServiceRepo  ServiceRepository
	Validate     *validator.Validate
}

func NewTemplateService(
	contractRepo SampleContractRepository,
	attachRepo SampleAttachRepository,
	serviceRepo ServiceRepository,
	validate *validator.Validate,
) *DefaultTemplateService {
	return &DefaultTemplateService{
		ContractRepo: contractRepo,
		AttachRepo:   attachRepo,
		ServiceRepo:  serviceRepo,
		Validate:     validate,
	}
}

func (s *DefaultTemplateService) ListSampleContracts(ctx context.Context, q *contract.ListQuery) ([]*contract.SampleContractResponse, apierror.ErrorResponse) {
	ord, apierr := sampleContractOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	contracts, err := s.ContractRepo.FindAll(ctx, ord)
	if err != nil {
		log.Errorf("failed to fetch sample contracts: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapSlice(contracts, toSampleContractResponse), nil
}

func (s *DefaultTemplateService) CreateSampleContract(ctx context.Context, req *contract.SampleContractRequest) (*contract.SampleContractResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	sc := &entity.SampleContract{
		IDSampleContract:   uid.New(entity.PrefixSampleContract),
		NameSampleContract: req.NameSampleContract,
		PathSampleContract: req.PathSampleContract,
	}
	if apierr := fromViolations(entity.ValidateSampleContract(sc)); apierr != nil {
		return nil, apierr
	}

	if err := s.ContractRepo.Create(ctx, sc); err != nil {
		return nil, mapWriteError("sample contract", err)
	}
	return toSampleContractResponse(sc), nil
}

// DeleteSampleContract removes a template with all its attachment
// templates. Templates still used by a service are kept.
func (s *DefaultTemplateService) DeleteSampleContract(ctx context.Context, id string) apierror.ErrorResponse {
	if err := s.ContractRepo.Delete(ctx, id); err != nil {
		return mapDeleteError("sample contract", id, err)
	}
	return nil
}

func (s *DefaultTemplateService) ListSampleContractAttaches(ctx context.Context, id string, q *contract.ListQuery) ([]*contract.SampleAttachResponse, apierror.ErrorResponse) {
	ord, apierr := sampleAttachOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	found, err := s.ContractRepo.Exists(ctx, id)
	if err != nil {
		log.Errorf("failed to look up sample contract %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if !found {
		return nil, apierror.NotFoundError
	}

	attaches, err := s.AttachRepo.FindByContract(ctx, id, ord)
	if err != nil {
		log.Errorf("failed to fetch attaches of sample contract %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return mapSlice(attaches, toSampleAttachResponse), nil
}

func (s *DefaultTemplateService) ListSampleAttaches(ctx context.Context, q *contract.ListQuery) ([]*contract.SampleAttachResponse, apierror.ErrorResponse) {
	ord, apierr := sampleAttachOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	attaches, err := s.AttachRepo.FindAll(ctx, ord)
	if err != nil {
		log.Errorf("failed to fetch sample attaches: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapSlice(attaches, toSampleAttachResponse), nil
}

func (s *DefaultTemplateService) CreateSampleAttach(ctx context.Context, req *contract.SampleAttachRequest) (*contract.SampleAttachResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	sa := &entity.SampleAttach{
		IDSampleAttach:   uid.New(entity.PrefixSampleAttach),
		IDSampleContract: req.IDSampleContract,
		NameSampleAttach: req.NameSampleAttach,
		PathSampleAttach: req.PathSampleAttach,
	}
	if apierr := fromViolations(entity.ValidateSampleAttach(sa)); apierr != nil {
		return nil, apierr
	}

	found, err := s.ContractRepo.Exists(ctx, sa.IDSampleContract)
	if apierr := requireExists("Sample contract", sa.IDSampleContract, found, err); apierr != nil {
		return nil, apierr
	}

	if err := s.AttachRepo.Create(ctx, sa); err != nil {
		return nil, mapWriteError("sample attach", err)
	}
	return toSampleAttachResponse(sa), nil
}

func (s *DefaultTemplateService) DeleteSampleAttach(ctx context.Context, id string) apierror.ErrorResponse {
	if err := s.AttachRepo.Delete(ctx, id); err != nil {
		return mapDeleteError("sample attach", id, err)
	}
	return nil
}

func (s *DefaultTemplateService) ListServices(ctx context.Context, q *contract.ListQuery) ([]*contract.ServiceResponse, apierror.ErrorResponse) {
	ord, apierr := serviceOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	services, err := s.ServiceRepo.FindAll(ctx, ord)
	if err != nil {
		log.Errorf("failed to fetch services: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapSlice(services, toServiceResponse), nil
}

func (s *DefaultTemplateService) CreateService(ctx context.Context, req *contract.ServiceRequest) (*contract.ServiceResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	svc := &entity.Service{
		IDService:        uid.New(entity.PrefixService),
		NameService:      req.NameService,
		IDSampleContract: req.IDSampleContract,
	}
	if apierr := fromViolations(entity.ValidateService(svc)); apierr != nil {
		return nil, apierr
	}

	found, err := s.ContractRepo.Exists(ctx, svc.IDSampleContract)
	if apierr := requireExists("Sample contract", svc.IDSampleContract, found, err); apierr != nil {
		return nil, apierr
	}

	if err := s.ServiceRepo.Create(ctx, svc); err != nil {
		return nil, mapWriteError("service", err)
	}
	return toServiceResponse(svc), nil
}

func (s *DefaultTemplateService) DeleteService(ctx context.Context, id string) apierror.ErrorResponse {
	if err := s.ServiceRepo.Delete(ctx, id); err != nil {
		return mapDeleteError("service", id, err)
	}
	return nil
}

func toSampleContractResponse(sc *entity.SampleContract) *contract.SampleContractResponse {
	return &contract.SampleContractResponse{
		IDSampleContract:   sc.IDSampleContract,
		NameSampleContract: sc.NameSampleContract,
		PathSampleContract: sc.PathSampleContract,
	}
}

func toSampleAttachResponse(sa *entity.SampleAttach) *contract.SampleAttachResponse {
	return &contract.SampleAttachResponse{
		IDSampleAttach:   sa.IDSampleAttach,
		IDSampleContract: sa.IDSampleContract,
		NameSampleAttach: sa.NameSampleAttach,
		PathSampleAttach: sa.PathSampleAttach,
	}
}

func toServiceResponse(s *entity.Service) *contract.ServiceResponse {
	return &contract.ServiceResponse{
		IDService:        s.IDService,
		NameService:      s.NameService,
		IDSampleContract: s.IDSampleContract,
	}
}
