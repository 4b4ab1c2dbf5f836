package apperror

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	CodeValidation         = "validation_failed"
	CodeInvalidSalesperson = "invalid_salesperson"
)

var (
	ErrNotFound           = NewAppError("not found")
	ErrDecodeBody         = NewAppError("failed to decode request body")
	ErrSuperseded         = NewAppError("request superseded by a newer one")
	ErrSubmitInProgress   = NewAppError("order submission is already in progress")
	ErrBackendUnavailable = NewAppError("order backend is unavailable, try again")
	ErrEmptyCart          = NewAppError("the cart is empty")
	ErrInvalidQuantity    = NewAppError("quantity must be an integer between 1 and 9999")
)

type AppError struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

// IsValidation reports whether the error carries field or reference violations.
func (e *AppError) IsValidation() bool {
	return len(e.Fields) > 0 || e.Code == CodeValidation || e.Code == CodeInvalidSalesperson
}

// NewValidator returns a validator whose field names are the JSON names, so
// violation keys match what the client sent.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// NewValidationErr collects every violated field, keyed by the field's JSON name.
func NewValidationErr(errs validator.ValidationErrors) *AppError {
	fields := make(map[string]string, len(errs))
	var errMsgs []string

	for _, err := range errs {
		msg := fieldMessage(err)
		fields[err.Field()] = msg
		errMsgs = append(errMsgs, msg)
	}

	return &AppError{
		Message: strings.Join(errMsgs, ", "),
		Code:    CodeValidation,
		Fields:  fields,
	}
}

// NewInvalidSalespersonErr keeps any field violations found alongside the
// unknown salesperson id so all of them reach the shopper at once.
func NewInvalidSalespersonErr(fields map[string]string) *AppError {
	return &AppError{
		Message: "the salesperson id is not valid for this establishment",
		Code:    CodeInvalidSalesperson,
		Fields:  fields,
	}
}

func fieldMessage(err validator.FieldError) string {
	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", err.Field())
	case "email", "mailshape":
		return fmt.Sprintf("field %s is not a valid email", err.Field())
	case "len":
		return fmt.Sprintf("field %s must have exactly %s digits", err.Field(), err.Param())
	case "number":
		return fmt.Sprintf("field %s must contain only digits", err.Field())
	case "min":
		return fmt.Sprintf("the minimum length of the %s field is %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("field %s is not valid", err.Field())
	}
}

func internalError() *AppError {
	return NewAppError("internal error")
}
