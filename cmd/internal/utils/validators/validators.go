package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"simplecrm/cmd/internal/domain/entity"
)

var hasSpaces = regexp.MustCompile(`\s+`)

// New returns a validator with the custom rules registered and field names
// reported by their JSON tag.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonName)

	_ = validate.RegisterValidation("digits", Digits)
	_ = validate.RegisterValidation("crmdate", Date)
	_ = validate.RegisterValidation("nospaces", NoWhiteSpaces)
	return validate
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// Digits accepts non-empty strings made of ASCII digits only. Unlike the
// builtin "numeric" it rejects signs and decimal points.
func Digits(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return IsDigits(field.String())
}

func IsDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Date accepts the date formats understood by entity.ParseDate.
func Date(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	_, err := entity.ParseDate(field.String())
	return err == nil
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}
