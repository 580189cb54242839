package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/utils/apierror"
)

type PartyService interface {
	ListClients(ctx context.Context, q *contract.ListQuery) ([]*contract.ClientResponse, apierror.ErrorResponse)
	CreateClient(ctx context.Context, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	DeleteClient(ctx context.Context, id string) apierror.ErrorResponse

	ListExecutors(ctx context.Context, q *contract.ListQuery) ([]*contract.ExecutorResponse, apierror.ErrorResponse)
	CreateExecutor(ctx context.Context, req *contract.ExecutorRequest) (*contract.ExecutorResponse, apierror.ErrorResponse)
	DeleteExecutor(ctx context.Context, id string) apierror.ErrorResponse
}

type DefaultPartyRoute struct {
	PartyService PartyService
}

func NewPartyRoute(partyService PartyService) *DefaultPartyRoute {
	return &DefaultPartyRoute{PartyService: partyService}
}

func (r *DefaultPartyRoute) GetClients(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	clients, apierr := r.PartyService.ListClients(c.Request().Context(), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, clients)
}

func (r *DefaultPartyRoute) CreateClient(c echo.Context) error {
	var req contract.ClientRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return fail(c, apierr)
	}

	client, apierr := r.PartyService.CreateClient(c.Request().Context(), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, client)
}

func (r *DefaultPartyRoute) DeleteClient(c echo.Context) error {
	if apierr := r.PartyService.DeleteClient(c.Request().Context(), c.Param("id")); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultPartyRoute) GetExecutors(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	executors, apierr := r.PartyService.ListExecutors(c.Request().Context(), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, executors)
}

func (r *DefaultPartyRoute) CreateExecutor(c echo.Context) error {
	var req contract.ExecutorRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return fail(c, apierr)
	}

	executor, apierr := r.PartyService.CreateExecutor(c.Request().Context(), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, executor)
}

func (r *DefaultPartyRoute) DeleteExecutor(c echo.Context) error {
	if apierr := r.PartyService.DeleteExecutor(c.Request().Context(), c.Param("id")); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
