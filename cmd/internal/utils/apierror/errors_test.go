package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/cmd/internal/utils/validators"
)

type dealForm struct {
	ExecutorID   string `json:"executor_id" validate:"required,startswith=executor"`
	ContractDate string `json:"contract_date" validate:"required,crmdate"`
}

type clientForm struct {
	Name string    `json:"name_client" validate:"required"`
	Inn  string    `json:"inn_client" validate:"required,digits,min=10,max=12"`
	Deal *dealForm `json:"deal"`
}

func TestFromValidationError(t *testing.T) {
	v := validators.New()
	err := v.Struct(&clientForm{
		Inn:  "12",
		Deal: &dealForm{ExecutorID: "client1", ContractDate: "15-03-2024"},
	})

	apierr := FromValidationError(err)
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusUnprocessableEntity, apierr.Code())
	assert.Equal(t, map[string][]string{
		"name_client":        {"This field is required"},
		"inn_client":         {"Value is too short, min: 10"},
		"deal.executor_id":   {"Value must start with 'executor'"},
		"deal.contract_date": {"Invalid date format (use dd.mm.yyyy or yyyy-mm-dd)"},
	}, apierr.Errors)
}

func TestFromValidationErrorIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FromValidationError(errors.New("boom")))
	assert.Nil(t, FromValidationError(&validator.InvalidValidationError{}))
}

func TestErrorBodies(t *testing.T) {
	tests := []struct {
		name string
		err  ErrorResponse
		code int
		body string
	}{
		{"reference", NewReferenceNotFoundError("Executor", "executor9"), http.StatusBadRequest, `{"message":"Executor executor9 not found"}`},
		{"dependents", NewDependentsError("client type", 1, []string{"clients", "executors"}), http.StatusConflict, `{"message":"Cannot delete client type 1: it has dependents in clients, executors"}`},
		{"order", NewInvalidOrderError("password", []string{"name_client", "id_client"}), http.StatusBadRequest, `{"message":"Cannot order by 'password', allowed: name_client, id_client"}`},
		{"param", NewInvalidParamTypeError("id", "int"), http.StatusBadRequest, `{"message":"Parameter 'id' has invalid type, expected: int"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			body, err := json.Marshal(tt.err)
			require.NoError(t, err)
			assert.JSONEq(t, tt.body, string(body))
		})
	}
}
