package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/utils/apierror"
)

// bindList reads the order/desc query parameters of a listing request.
func bindList(c echo.Context) (*contract.ListQuery, apierror.ErrorResponse) {
	var q contract.ListQuery
	err := echo.QueryParamsBinder(c).
		String("order", &q.Order).
		Bool("desc", &q.Desc).
		BindError()
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("desc", "bool")
	}
	return &q, nil
}

// bindBody decodes a JSON request body into req.
func bindBody(c echo.Context, req any) apierror.ErrorResponse {
	if err := c.Bind(req); err != nil {
		return apierror.MalformedJSONError
	}
	return nil
}

func fail(c echo.Context, apierr apierror.ErrorResponse) error {
	return c.JSON(apierr.Code(), apierr)
}

// Health answers liveness checks.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
