package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/utils/apierror"
)

type ClientTypeService interface {
	List(ctx context.Context, q *contract.ListQuery) ([]*contract.ClientTypeResponse, apierror.ErrorResponse)
	Create(ctx context.Context, req *contract.ClientTypeRequest) (*contract.ClientTypeResponse, apierror.ErrorResponse)
	Delete(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultClientTypeRoute struct {
	ClientTypeService ClientTypeService
}

func NewClientTypeRoute(clientTypeService ClientTypeService) *DefaultClientTypeRoute {
	return &DefaultClientTypeRoute{ClientTypeService: clientTypeService}
}

func (r *DefaultClientTypeRoute) GetClientTypes(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	types, apierr := r.ClientTypeService.List(c.Request().Context(), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, types)
}

func (r *DefaultClientTypeRoute) CreateClientType(c echo.Context) error {
	var req contract.ClientTypeRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return fail(c, apierr)
	}

	ct, apierr := r.ClientTypeService.Create(c.Request().Context(), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, ct)
}

func (r *DefaultClientTypeRoute) DeleteClientType(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := r.ClientTypeService.Delete(c.Request().Context(), id); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
