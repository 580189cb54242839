package utils

import (
	"reflect"
	"strings"
)

// NilIfBlank returns nil for nil or whitespace-only strings.
func NilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// Sanitize trims every string reachable from o, following string pointers,
// string slices and nested struct pointers.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}
	sanitizeStruct(v)
}

func sanitizeStruct(v reflect.Value) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}

		case reflect.Ptr:
			if field.IsNil() {
				continue
			}
			switch elem := field.Elem(); elem.Kind() {
			case reflect.String:
				elem.SetString(sanitizeString(elem.String()))
			case reflect.Struct:
				sanitizeStruct(elem)
			}

		case reflect.Struct:
			sanitizeStruct(field)
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
