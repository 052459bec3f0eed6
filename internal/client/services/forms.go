package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidForm = errors.New("invalid form")
	ErrNotImage    = errors.New("thumbnail is not an image")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "notblank" rejects strings made only of whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

type RegisterForm struct {
	Name     string `validate:"notblank"`
	Email    string `validate:"required,email"`
	Password string `validate:"notblank"`
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"notblank"`
}

type FieldError struct {
	Field   string
	Problem string
}

// FormError lists every field that failed validation.
type FormError struct {
	Fields []FieldError
}

func (e *FormError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Problem)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(parts, "; "))
}

func (e *FormError) Unwrap() error { return ErrInvalidForm }

// validateForm checks v against its validate tags.
func validateForm(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	fe := &FormError{Fields: make([]FieldError, 0, len(verrs))}
	for _, e := range verrs {
		fe.Fields = append(fe.Fields, FieldError{Field: lowerFirst(e.Field()), Problem: problem(e)})
	}
	return fe
}

func problem(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
