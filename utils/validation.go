package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationDetails converts a binding error into the per-field message map
// used by the validation-error envelope. Non-validator errors (e.g. malformed
// JSON) are returned as a plain string.
func ValidationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	details := make(map[string][]string)
	for _, fe := range verrs {
		field := SnakeCase(fe.Field())
		details[field] = append(details[field], fieldMessage(field, fe))
	}
	return details
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "oneof":
		allowed := strings.Join(strings.Fields(fe.Param()), ", ")
		return fmt.Sprintf("Invalid %s. Allowed values are: %s.", field, allowed)
	case "eqfield":
		return fmt.Sprintf("The %s does not match.", field)
	case "uuid":
		return fmt.Sprintf("The %s must be a valid UUID.", field)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// SnakeCase converts a Go struct field name to its snake_case JSON name.
// Acronym runs collapse into a single word ("AttributeID" -> "attribute_id").
func SnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
