package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vetrovegor/storefront/internal/apperror"
)

// mailShape is a basic local@domain.tld check.
var mailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := apperror.NewValidator()

	// registration of a well-formed tag with a non-nil func cannot fail
	_ = v.RegisterValidation("mailshape", func(fl validator.FieldLevel) bool {
		return mailShape.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate checks every field and the salesperson id together and returns all
// violations at once. A salesperson id missing from an available roster is
// reported with the distinct invalid-salesperson code.
func (v *Validator) Validate(form Form, roster Roster) error {
	fields := map[string]string{}

	if err := v.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		fields = apperror.NewValidationErr(verrs).Fields
	}

	_, salespersonMissing := fields["salespersonId"]
	if !salespersonMissing && roster.Available() && !roster.Contains(form.SalespersonID) {
		return apperror.NewInvalidSalespersonErr(fields)
	}

	if len(fields) > 0 {
		return &apperror.AppError{
			Message: joinMessages(fields),
			Code:    apperror.CodeValidation,
			Fields:  fields,
		}
	}

	return nil
}

func joinMessages(fields map[string]string) string {
	// stable order keeps messages comparable across requests
	order := []string{"name", "email", "phone", "nit", "salespersonId"}

	msgs := make([]string, 0, len(fields))
	for _, key := range order {
		if msg, ok := fields[key]; ok {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, ", ")
}
