package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/utils/apierror"
)

type DealService interface {
	List(ctx context.Context, q *contract.ListQuery) ([]*contract.DealResponse, apierror.ErrorResponse)
	Create(ctx context.Context, req *contract.DealRequest) (*contract.DealResponse, apierror.ErrorResponse)
	Delete(ctx context.Context, id string) apierror.ErrorResponse
}

type AttachmentService interface {
	List(ctx context.Context, q *contract.ListQuery) ([]*contract.AttachmentResponse, apierror.ErrorResponse)
	ListByDeal(ctx context.Context, dealID string, q *contract.ListQuery) ([]*contract.AttachmentResponse, apierror.ErrorResponse)
	Create(ctx context.Context, req *contract.AttachmentRequest) (*contract.AttachmentResponse, apierror.ErrorResponse)
	RefreshStatus(ctx context.Context, id string) (*contract.AttachmentResponse, apierror.ErrorResponse)
	Delete(ctx context.Context, id string) apierror.ErrorResponse
}

type DefaultDealRoute struct {
	DealService       DealService
	AttachmentService AttachmentService
}

func NewDealRoute(dealService DealService, attachmentService AttachmentService) *DefaultDealRoute {
	return &DefaultDealRoute{
		DealService:       dealService,
		AttachmentService: attachmentService,
	}
}

func (r *DefaultDealRoute) GetDeals(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	deals, apierr := r.DealService.List(c.Request().Context(), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, deals)
}

func (r *DefaultDealRoute) CreateDeal(c echo.Context) error {
	var req contract.DealRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return fail(c, apierr)
	}

	deal, apierr := r.DealService.Create(c.Request().Context(), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, deal)
}

func (r *DefaultDealRoute) DeleteDeal(c echo.Context) error {
	if apierr := r.DealService.Delete(c.Request().Context(), c.Param("id")); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultDealRoute) GetDealAttachments(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	attachments, apierr := r.AttachmentService.ListByDeal(c.Request().Context(), c.Param("id"), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, attachments)
}

func (r *DefaultDealRoute) GetAttachments(c echo.Context) error {
	q, apierr := bindList(c)
	if apierr != nil {
		return fail(c, apierr)
	}

	attachments, apierr := r.AttachmentService.List(c.Request().Context(), q)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, attachments)
}

func (r *DefaultDealRoute) CreateAttachment(c echo.Context) error {
	var req contract.AttachmentRequest
	if apierr := bindBody(c, &req); apierr != nil {
		return fail(c, apierr)
	}

	attachment, apierr := r.AttachmentService.Create(c.Request().Context(), &req)
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusCreated, attachment)
}

func (r *DefaultDealRoute) RefreshAttachmentStatus(c echo.Context) error {
	attachment, apierr := r.AttachmentService.RefreshStatus(c.Request().Context(), c.Param("id"))
	if apierr != nil {
		return fail(c, apierr)
	}
	return c.JSON(http.StatusOK, attachment)
}

func (r *DefaultDealRoute) DeleteAttachment(c echo.Context) error {
	if apierr := r.AttachmentService.Delete(c.Request().Context(), c.Param("id")); apierr != nil {
		return fail(c, apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
