package service

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/sqlite/repository"
	"simplecrm/cmd/internal/utils"
	"simplecrm/cmd/internal/utils/apierror"
)

// orderColumns lists the columns a listing may be sorted by. The first entry is
// the default.
type orderColumns []string

func (o orderColumns) resolve(q *contract.ListQuery) (repository.Ordering, apierror.ErrorResponse) {
	if q == nil || strings.TrimSpace(q.Order) == "" {
		desc := q != nil && q.Desc
		return repository.Ordering{Column: o[0], Desc: desc}, nil
	}

	col := strings.TrimSpace(q.Order)
	if !slices.Contains(o, col) {
		return repository.Ordering{}, apierror.NewInvalidOrderError(col, o)
	}
	return repository.Ordering{Column: col, Desc: q.Desc}, nil
}

// validateRequest trims the request and runs its struct tags.
func validateRequest(v *validator.Validate, req any) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := v.Struct(req); valerr != nil {
		if apierr := apierror.FromValidationError(valerr); apierr != nil {
			return apierr
		}
		log.Errorf("unexpected validator failure: %v", valerr)
		return apierror.InternalServerError
	}
	return nil
}

// fromViolations reports entity rule failures the same way as request
// validation failures.
func fromViolations(err error) apierror.ErrorResponse {
	if err == nil {
		return nil
	}

	var vs entity.Violations
	if !errors.As(err, &vs) {
		log.Errorf("unexpected entity validation error: %v", err)
		return apierror.InternalServerError
	}

	problems := apierror.NewStructured(http.StatusUnprocessableEntity)
	for _, v := range vs {
		problems.Add(v.Field, v.Rule)
	}
	return problems
}

// parseDateField parses a date that already passed the crmdate rule.
func parseDateField(field, raw string) (entity.Date, apierror.ErrorResponse) {
	d, err := entity.ParseDate(raw)
	if err != nil {
		problems := apierror.NewStructured(http.StatusUnprocessableEntity)
		problems.Add(field, "Invalid date format (use dd.mm.yyyy or yyyy-mm-dd)")
		return entity.Date{}, problems
	}
	return d, nil
}

// mapWriteError turns a failed insert into its API response.
func mapWriteError(what string, err error) apierror.ErrorResponse {
	switch {
	case errors.Is(err, repository.ErrForeignKey):
		return apierror.ReferenceError
	case errors.Is(err, repository.ErrDuplicate):
		return apierror.DuplicateError
	case errors.Is(err, repository.ErrCheck):
		log.Warnf("%s rejected by schema constraint: %v", what, err)
		return apierror.ConstraintError
	default:
		log.Errorf("failed to save %s: %v", what, err)
		return apierror.InternalServerError
	}
}

// mapDeleteError turns a failed delete into its API response.
func mapDeleteError(what string, id any, err error) apierror.ErrorResponse {
	var depErr *repository.DependentsError
	switch {
	case errors.As(err, &depErr):
		return apierror.NewDependentsError(what, id, depErr.Dependents)
	case errors.Is(err, repository.ErrNotFound):
		return apierror.NotFoundError
	case errors.Is(err, repository.ErrForeignKey):
		return apierror.ReferenceInUseError
	default:
		log.Errorf("failed to delete %s %v: %v", what, id, err)
		return apierror.InternalServerError
	}
}

// requireExists returns a 400 naming the missing reference.
func requireExists(what string, id any, found bool, err error) apierror.ErrorResponse {
	if err != nil {
		log.Errorf("failed to look up %s %v: %v", what, id, err)
		return apierror.InternalServerError
	}

	if !found {
		return apierror.NewReferenceNotFoundError(what, id)
	}
	return nil
}

func mapSlice[T, R any](in []*T, fn func(*T) *R) []*R {
	out := make([]*R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
