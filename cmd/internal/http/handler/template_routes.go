package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/utils/apierror"
)

type TemplateService interface {
	ListSampleContracts(ctx context.Context, q *contract.ListQuery) ([]*contract.SampleContractResponse, apierror.ErrorResponse)
	CreateSampleContract(ctx context.Context, req *contract.SampleContractRequest) (*contract.SampleContractResponse, apierror.ErrorResponse)
	DeleteSampleContract(ctx context.Context, id string) apierror.ErrorResponse
	ListSampleContractAttaches(ctx context.Context, id string, q *contract.ListQuery) ([]*contract.SampleAttachResponse, apierror.ErrorResponse)

	ListSampleAttaches(ctx context.Context, q *contract.ListQuery) ([]*contract.SampleAttachResponse, apierror.ErrorResponse)
	CreateSampleAttach(ctx context.Context, req *contract.SampleAttachRequest) (*contract.SampleAttachResponse, apierror.ErrorResponse)
	DeleteSampleAttach(ctx context.Context, id string) apierror.ErrorResponse

	ListServices(ctx context.Context, q *contract.ListQuery) ([]*contract.ServiceResponse, apierror.ErrorResponse)
	CreateService(ctx context.Context, req *contract.ServiceRequest) (*contract.ServiceResponse, apierror.ErrorResponse)
	DeleteService(ctx context.Context, id string) apierror.ErrorResponse
}

type DefaultTemplateRoute struct {
	TemplateService TemplateService
}

func NewTemplateRoute(templateService TemplateService) *DefaultTemplateRoute {
	return &DefaultTemplateRoute{TemplateService: templateService}
}

func (r *DefaultTemplateRoute) GetSampleContracts(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	contracts, apierr := r.TemplateService.ListSampleContracts(c.Request().Context(), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, contracts)
}

func (r *DefaultTemplateRoute) CreateSampleContract(c echo.Context) error {
	var req contract.SampleContractRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return fail(c, apierr)
	}

	sc, apierr := r.TemplateService.CreateSampleContract(c.Request().Context(), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, sc)
}

func (r *DefaultTemplateRoute) DeleteSampleContract(c echo.Context) error {
	if apierr := r.TemplateService.DeleteSampleContract(c.Request().Context(), c.Param("id")); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultTemplateRoute) GetSampleContractAttaches(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	attaches, apierr := r.TemplateService.ListSampleContractAttaches(c.Request().Context(), c.Param("id"), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, attaches)
}

func (r *DefaultTemplateRoute) GetSampleAttaches(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	attaches, apierr := r.TemplateService.ListSampleAttaches(c.Request().Context(), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, attaches)
}

func (r *DefaultTemplateRoute) CreateSampleAttach(c echo.Context) error {
	var req contract.SampleAttachRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return fail(c, apierr)
	}

	sa, apierr := r.TemplateService.CreateSampleAttach(c.Request().Context(), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, sa)
}

func (r *DefaultTemplateRoute) DeleteSampleAttach(c echo.Context) error {
	if apierr := r.TemplateService.DeleteSampleAttach(c.Request().Context(), c.Param("id")); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultTemplateRoute) GetServices(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	services, apierr := r.TemplateService.ListServices(c.Request().Context(), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, services)
}

func (r *DefaultTemplateRoute) CreateService(c echo.Context) error {
	var req contract.ServiceRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return fail(c, apierr)
	}

	svc, apierr := r.TemplateService.CreateService(c.Request().Context(), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, svc)
}

func (r *DefaultTemplateRoute) DeleteService(c echo.Context) error {
	if apierr := r.TemplateService.DeleteService(c.Request().Context(), c.Param("id")); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
