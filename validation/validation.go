// Package validation enforces payload shape and constraints before any
// hashing or persistence happens. It wraps go-playground/validator and
// reports the first violated rule as a client-readable message.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/model"
)

const tierVariantTag = "tiervariant"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(tierStructLevel, model.Tier{})
	return v
}

// Struct validates v and returns nil on success, or a ValidationError
// carrying the first violated rule's message. Pointer fields tagged
// omitempty are skipped when nil, which is what makes partial-update
// payloads share the per-field rules of the full schemas.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		return apperror.NewValidationError(messageFor(fieldErrors[0]), err)
	}
	// InvalidValidationError: v was not a struct. Programming error.
	return apperror.NewInternalError("validation failed", err)
}

// messageFor renders a single field error the way clients expect to read
// it, e.g. "Username must be at least 3 characters".
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not contain more than %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case tierVariantTag:
		return "Tierlist is invalid"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// tierStructLevel rejects tiers whose nested list mixes character- and
// weapon-shaped entries, or contains an entry matching neither variant.
// The stored schema declares the list as an array of one variant, so a
// heterogeneous list must never reach the store.
func tierStructLevel(sl validator.StructLevel) {
	tier := sl.Current().Interface().(model.Tier)
	if len(tier.Nested) == 0 {
		return
	}

	kind := tier.Nested[0].Kind()
	if kind == model.KindInvalid {
		sl.ReportError(tier.Nested, "Nested", "Nested", tierVariantTag, "")
		return
	}
	for i := 1; i < len(tier.Nested); i++ {
		if tier.Nested[i].Kind() != kind {
			sl.ReportError(tier.Nested, "Nested", "Nested", tierVariantTag, "")
			return
		}
	}
}
