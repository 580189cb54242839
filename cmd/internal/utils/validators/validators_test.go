package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Inn    string  `json:"inn" validate:"required,digits,len=10"`
	Kpp    *string `json:"kpp" validate:"omitempty,digits,len=9"`
	Date   string  `json:"date" validate:"required,crmdate"`
	Login  string  `json:"login" validate:"omitempty,nospaces"`
	Nested *struct {
		Number string `json:"number" validate:"required,digits"`
	} `json:"nested"`
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0012345678"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("-12"))
	assert.False(t, IsDigits("1.5"))
	assert.False(t, IsDigits("١٢٣"), "only ASCII digits count")
}

func TestCustomRules(t *testing.T) {
	v := New()
	kpp := "7701001"

	valid := form{Inn: "0012345678", Date: "15.03.2024"}
	require.NoError(t, v.Struct(&valid))

	bad := form{Inn: "00123456ab", Kpp: &kpp, Date: "2024-02-30", Login: "a b"}
	err := v.Struct(&bad)
	require.Error(t, err)

	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)

	got := map[string]string{}
	for _, fe := range ve {
		got[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"inn":   "digits",
		"kpp":   "len",
		"date":  "crmdate",
		"login": "nospaces",
	}, got)
}

func TestNestedFieldsUseJSONNames(t *testing.T) {
	v := New()
	f := form{Inn: "0012345678", Date: "2024-03-15"}
	f.Nested = &struct {
		Number string `json:"number" validate:"required,digits"`
	}{Number: "12a"}

	err := v.Struct(&f)
	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve, 1)
	assert.Equal(t, "form.nested.number", ve[0].Namespace())
}
