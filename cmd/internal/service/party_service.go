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

var (
	clientOrder   = orderColumns{"name_client", "id_client", "type_client", "inn_client", "ogrn_client"}
	executorOrder = orderColumns{"name_executor", "id_executor", "type_executor", "inn_executor", "ogrn_executor"}
)

type ClientRepository interface {
	FindAll(ctx context.Context, ord repository.Ordering) ([]*entity.Client, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, client *entity.Client) error
	CreateWithDeal(ctx context.Context, client *entity.Client, deal *entity.Deal) error
	Delete(ctx context.Context, id string) error
}

type ExecutorRepository interface {
	FindAll(ctx context.Context, ord repository.Ordering) ([]*entity.Executor, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, executor *entity.Executor) error
	Delete(ctx context.Context, id string) error
}

// DefaultPartyService manages both sides of a deal: clients and executors.
type DefaultPartyService struct {
	ClientRepo     ClientRepository
	ExecutorRepo   ExecutorRepository
	ClientTypeRepo ClientTypeRepository
	Validate       *validator.Validate
}

func NewPartyService(
	clientRepo ClientRepository,
	executorRepo ExecutorRepository,
	clientTypeRepo ClientTypeRepository,
	validate *validator.Validate,
) *DefaultPartyService {
	return &DefaultPartyService{
		ClientRepo:     clientRepo,
		ExecutorRepo:   executorRepo,
		ClientTypeRepo: clientTypeRepo,
		Validate:       validate,
	}
}

func (s *DefaultPartyService) ListClients(ctx context.Context, q *contract.ListQuery) ([]*contract.ClientResponse, apierror.ErrorResponse) {
	ord, apierr := clientOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	clients, err := s.ClientRepo.FindAll(ctx, ord)
	if err != nil {
		log.Errorf("failed to fetch clients: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapSlice(clients, toClientResponse), nil
}

// CreateClient stores a new client. With req.Deal set, the first deal is
// stored in the same transaction and returned inside the response.
func (s *DefaultPartyService) CreateClient(ctx context.Context, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	req.KppClient = utils.NilIfBlank(req.KppClient)
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	client := &entity.Client{
		IDClient:          uid.New(entity.PrefixClient),
		TypeClient:        req.TypeClient,
		NameClient:        req.NameClient,
		InnClient:         req.InnClient,
		OgrnClient:        req.OgrnClient,
		KppClient:         req.KppClient,
		AdressClient:      req.AdressClient,
		BankClient:        req.BankClient,
		CorBankClient:     req.CorBankClient,
		AccBankClient:     req.AccBankClient,
		BikBankClient:     req.BikBankClient,
		ContactNameClient: req.ContactNameClient,
		MailClient:        req.MailClient,
		TelClient:         req.TelClient,
		MessClient:        req.MessClient,
	}
	if apierr := fromViolations(entity.ValidateClient(client)); apierr != nil {
		return nil, apierr
	}

	var deal *entity.Deal
	if req.Deal != nil {
		date, apierr := parseDateField("deal.contract_date", req.Deal.ContractDate)
		if apierr != nil {
			return nil, apierr
		}

		deal = &entity.Deal{
			IDDeal:     uid.New(entity.PrefixDeal),
			IDClient:   client.IDClient,
			IDExecutor: req.Deal.ExecutorID,
			NumberDeal: req.Deal.ContractNumber,
			DateDeal:   date,
		}
		if apierr := fromViolations(entity.ValidateDeal(deal)); apierr != nil {
			return nil, apierr
		}
	}

	found, err := s.ClientTypeRepo.Exists(ctx, client.TypeClient)
	if apierr := requireExists("Client type", client.TypeClient, found, err); apierr != nil {
		return nil, apierr
	}

	if deal == nil {
		if err := s.ClientRepo.Create(ctx, client); err != nil {
			return nil, mapWriteError("client", err)
		}
		return toClientResponse(client), nil
	}

	found, err = s.ExecutorRepo.Exists(ctx, deal.IDExecutor)
	if apierr := requireExists("Executor", deal.IDExecutor, found, err); apierr != nil {
		return nil, apierr
	}

	if err := s.ClientRepo.CreateWithDeal(ctx, client, deal); err != nil {
		return nil, mapWriteError("client", err)
	}

	resp := toClientResponse(client)
	resp.Deal = toDealResponse(deal)
	return resp, nil
}

func (s *DefaultPartyService) DeleteClient(ctx context.Context, id string) apierror.ErrorResponse {
	if err := s.ClientRepo.Delete(ctx, id); err != nil {
		return mapDeleteError("client", id, err)
	}
	return nil
}

func (s *DefaultPartyService) ListExecutors(ctx context.Context, q *contract.ListQuery) ([]*contract.ExecutorResponse, apierror.ErrorResponse) {
	ord, apierr := executorOrder.resolve(q)
	if apierr != nil {
		return nil, apierr
	}

	executors, err := s.ExecutorRepo.FindAll(ctx, ord)
	if err != nil {
		log.Errorf("failed to fetch executors: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapSlice(executors, toExecutorResponse), nil
}

func (s *DefaultPartyService) CreateExecutor(ctx context.Context, req *contract.ExecutorRequest) (*contract.ExecutorResponse, apierror.ErrorResponse) {
	req.KppExecutor = utils.NilIfBlank(req.KppExecutor)
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	executor := &entity.Executor{
		IDExecutor:          uid.New(entity.PrefixExecutor),
		TypeExecutor:        req.TypeExecutor,
		NameExecutor:        req.NameExecutor,
		InnExecutor:         req.InnExecutor,
		OgrnExecutor:        req.OgrnExecutor,
		KppExecutor:         req.KppExecutor,
		AdressExecutor:      req.AdressExecutor,
		BankExecutor:        req.BankExecutor,
		CorBankExecutor:     req.CorBankExecutor,
		AccBankExecutor:     req.AccBankExecutor,
		BikBankExecutor:     req.BikBankExecutor,
		ContactNameExecutor: req.ContactNameExecutor,
		MailExecutor:        req.MailExecutor,
		TelExecutor:         req.TelExecutor,
		MessExecutor:        req.MessExecutor,
	}
	if apierr := fromViolations(entity.ValidateExecutor(executor)); apierr != nil {
		return nil, apierr
	}

	found, err := s.ClientTypeRepo.Exists(ctx, executor.TypeExecutor)
	if apierr := requireExists("Client type", executor.TypeExecutor, found, err); apierr != nil {
		return nil, apierr
	}

	if err := s.ExecutorRepo.Create(ctx, executor); err != nil {
		return nil, mapWriteError("executor", err)
	}
	return toExecutorResponse(executor), nil
}

func (s *DefaultPartyService) DeleteExecutor(ctx context.Context, id string) apierror.ErrorResponse {
	if err := s.ExecutorRepo.Delete(ctx, id); err != nil {
		return mapDeleteError("executor", id, err)
	}
	return nil
}

func toClientResponse(c *entity.Client) *contract.ClientResponse {
	return &contract.ClientResponse{
		IDClient:          c.IDClient,
		TypeClient:        c.TypeClient,
		NameClient:        c.NameClient,
		InnClient:         c.InnClient,
		OgrnClient:        c.OgrnClient,
		KppClient:         c.KppClient,
		AdressClient:      c.AdressClient,
		BankClient:        c.BankClient,
		CorBankClient:     c.CorBankClient,
		AccBankClient:     c.AccBankClient,
		BikBankClient:     c.BikBankClient,
		ContactNameClient: c.ContactNameClient,
		MailClient:        c.MailClient,
		TelClient:         c.TelClient,
		MessClient:        c.MessClient,
	}
}

func toExecutorResponse(e *entity.Executor) *contract.ExecutorResponse {
	return &contract.ExecutorResponse{
		IDExecutor:          e.IDExecutor,
		TypeExecutor:        e.TypeExecutor,
		NameExecutor:        e.NameExecutor,
		InnExecutor:         e.InnExecutor,
		OgrnExecutor:        e.OgrnExecutor,
		KppExecutor:         e.KppExecutor,
		AdressExecutor:      e.AdressExecutor,
		BankExecutor:        e.BankExecutor,
		CorBankExecutor:     e.CorBankExecutor,
		AccBankExecutor:     e.AccBankExecutor,
		BikBankExecutor:     e.BikBankExecutor,
		ContactNameExecutor: e.ContactNameExecutor,
		MailExecutor:        e.MailExecutor,
		TelExecutor:         e.TelExecutor,
		MessExecutor:        e.MessExecutor,
	}
}
