// Package validation holds the declarative input schemas of the board and
// evaluates them with go-playground/validator. Schemas are plain structs whose
// tags double as binding targets for JSON and form bodies; validating a value
// never mutates it.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed rule on one input field. Field is the
// external (JSON/form) name of the field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error is returned when a value does not satisfy its schema.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// AsError unwraps err into a *Error when it carries one.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("httpuri", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || isURI(s, "http", "https")
	})
	_ = v.RegisterValidation("httpsuri", func(fl validator.FieldLevel) bool {
		return isURI(fl.Field().String(), "https")
	})
	return v
}

// isURI reports whether s is an absolute URI with a host and one of schemes.
func isURI(s string, schemes ...string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	for _, sc := range schemes {
		if strings.EqualFold(u.Scheme, sc) {
			return true
		}
	}
	return false
}

// Struct validates v against its tags. It returns nil, a *Error listing every
// failed field, or the validator's own error when v is not a struct.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return out
}

func message(field, rule, param string) string {
	switch rule {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "alphanum":
		return fmt.Sprintf("%q must only contain alpha-numeric characters", field)
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, param)
	case "gt":
		return fmt.Sprintf("%q must be greater than %s", field, param)
	case "httpuri":
		return fmt.Sprintf("%q must be a valid uri with a scheme matching the http|https pattern", field)
	case "httpsuri":
		return fmt.Sprintf("%q must be a valid uri with a scheme matching the https pattern", field)
	default:
		return fmt.Sprintf("%q failed on the %s rule", field, rule)
	}
}
