package form

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/amaumene/sheetsignup/internal/domain"
)

// Decode copies url values into the string fields of the struct pointed to
// by dst. Fields are matched by their `form` tag; a tag carrying the
// `required` option must be present and non-empty.
func Decode(values url.Values, dst interface{}) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("form: Decode() expects non-nil struct pointer, got %T", dst)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("form: Decode() expects struct pointer, got pointer to %v", rv.Kind())
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		tag := fieldType.Tag.Get("form")
		if tag == "" || tag == "-" {
			continue
		}

		name, required := parseTag(tag)
		value := values.Get(name)
		if required && value == "" {
			return &domain.FieldError{Field: name}
		}

		if err := setValue(field, value); err != nil {
			return fmt.Errorf("form: field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func parseTag(tag string) (string, bool) {
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "required" {
			return parts[0], true
		}
	}
	return parts[0], false
}

func setValue(v reflect.Value, value string) error {
	if !v.CanSet() {
		return fmt.Errorf("unexported field")
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
