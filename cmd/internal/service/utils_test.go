package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/cmd/internal/contract"
	"simplecrm/cmd/internal/domain/sqlite/repository"
	"simplecrm/cmd/internal/utils/apierror"
)

func TestOrderColumnsResolve(t *testing.T) {
	cols := orderColumns{"name_client", "id_client"}

	tests := []struct {
		name string
		q    *contract.ListQuery
		want repository.Ordering
	}{
		{"nil query", nil, repository.Ordering{Column: "name_client"}},
		{"default column", &contract.ListQuery{Desc: true}, repository.Ordering{Column: "name_client", Desc: true}},
		{"explicit column", &contract.ListQuery{Order: " id_client "}, repository.Ordering{Column: "id_client"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, apierr := cols.resolve(tt.q)
			require.Nil(t, apierr)
			assert.Equal(t, tt.want, got)
		})
	}

	_, apierr := cols.resolve(&contract.ListQuery{Order: "inn_client; DROP TABLE clients"})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		err  error
		want apierror.ErrorResponse
	}{
		{fmt.Errorf("%w: x", repository.ErrForeignKey), apierror.ReferenceError},
		{fmt.Errorf("%w: x", repository.ErrDuplicate), apierror.DuplicateError},
		{fmt.Errorf("%w: x", repository.ErrCheck), apierror.ConstraintError},
		{errors.New("disk full"), apierror.InternalServerError},
	}

	for _, tt := range tests {
		assert.Same(t, tt.want, mapWriteError("client", tt.err), tt.err.Error())
	}
}

func TestMapDeleteError(t *testing.T) {
	apierr := mapDeleteError("client", "client1", &repository.DependentsError{
		Table: "clients", ID: "client1", Dependents: []string{"deals"},
	})
	assert.Equal(t, http.StatusConflict, apierr.Code())

	assert.Same(t, apierror.NotFoundError, mapDeleteError("client", "client1", repository.ErrNotFound))
	assert.Same(t, apierror.InternalServerError, mapDeleteError("client", "client1", errors.New("boom")))
}

func TestFromViolationsPassesThroughUnknownErrors(t *testing.T) {
	assert.Nil(t, fromViolations(nil))
	assert.Same(t, apierror.InternalServerError, fromViolations(errors.New("boom")))
}
