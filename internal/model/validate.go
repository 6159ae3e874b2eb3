package model

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their yaml names so messages match what `inspect` prints.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("href", func(fl validator.FieldLevel) bool {
		return IsHref(fl.Field().String())
	})
	_ = v.RegisterValidation("iconref", func(fl validator.FieldLevel) bool {
		return slices.Contains(Icons(), IconRef(fl.Field().String()))
	})

	return v
}

// IsHref reports whether s is a target the navigation layer can follow: a
// root-relative route, an http(s) URL with a host, or a mailto: address.
// Whitespace and backslashes are never accepted; browsers read "/\host" as a
// link to another host.
func IsHref(s string) bool {
	if s == "" || strings.ContainsRune(s, '\\') || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		_, err := url.ParseRequestURI(s)
		return err == nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return strings.Contains(u.Opaque, "@")
	}
	return false
}

// FieldError is one failed rule.
type FieldError struct {
	Field string
	Rule  string
	Value string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: failed %q (value %q)", e.Field, e.Rule, e.Value)
}

// ValidationError collects every failed rule of one value.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return "invalid content: " + strings.Join(msgs, "; ")
}

// Validate checks v (a record, section, metadata or any struct built from
// them) against its validate tags. Pointers and slices of structs are
// walked.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice {
		var errs []error
		for i := 0; i < rv.Len(); i++ {
			if err := Validate(rv.Index(i).Interface()); err != nil {
				errs = append(errs, fmt.Errorf("[%d]: %w", i, err))
			}
		}
		return errors.Join(errs...)
	}

	err := validate.Struct(rv.Interface())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", v, err)
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Value: fmt.Sprint(fe.Value()),
		})
	}
	return out
}

// ValidateAll runs Validate on each value and joins the failures.
func ValidateAll(vs ...any) error {
	var errs []error
	for _, v := range vs {
		if err := Validate(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
