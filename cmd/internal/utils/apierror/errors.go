package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

func (s *StructuredError) Empty() bool {
	return len(s.Errors) == 0
}

var (
	MalformedJSONError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")

	NotFoundError       = NewSimple(http.StatusNotFound, "Resource not found")
	DuplicateError      = NewSimple(http.StatusConflict, "A record with the same key already exists")
	ConstraintError     = NewSimple(http.StatusUnprocessableEntity, "Value violates a schema constraint")
	ReferenceError      = NewSimple(http.StatusBadRequest, "A referenced record does not exist")
	ReferenceInUseError = NewSimple(http.StatusConflict, "Record is still referenced by other records")
)

// FromValidationError converts validator failures into a 422 listing every
// violated rule per field. Nested fields are reported with their JSON path,
// like "deal.contract_date".
func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	problems := NewStructured(http.StatusUnprocessableEntity)
	for _, fe := range ve {
		field := fieldPath(fe)

		switch fe.Tag() {
		case "required":
			problems.Add(field, "This field is required")
		case "min":
			problems.Add(field, "Value is too short, min: "+fe.Param())
		case "max":
			problems.Add(field, "Value is too long, max: "+fe.Param())
		case "len":
			problems.Add(field, "Value must have exactly "+fe.Param()+" characters")
		case "digits":
			problems.Add(field, "Value must contain digits only")
		case "startswith":
			problems.Add(field, "Value must start with '"+fe.Param()+"'")
		case "crmdate":
			problems.Add(field, "Invalid date format (use dd.mm.yyyy or yyyy-mm-dd)")
		case "nospaces":
			problems.Add(field, "Value must not contain whitespace")
		case "email":
			problems.Add(field, "Value must be a valid email address")

		default:
			problems.Add(field, "Invalid value provided")
		}
	}
	return problems
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewReferenceNotFoundError(what string, id any) *APIError {
	return NewSimple(http.StatusBadRequest, "%s %v not found", what, id)
}

func NewDependentsError(what string, id any, dependents []string) *APIError {
	return NewSimple(http.StatusConflict, "Cannot delete %s %v: it has dependents in %s",
		what, id, strings.Join(dependents, ", "))
}

func NewInvalidOrderError(field string, allowed []string) *APIError {
	return NewSimple(http.StatusBadRequest, "Cannot order by '%s', allowed: %s", field, strings.Join(allowed, ", "))
}
