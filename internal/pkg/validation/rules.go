package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DateOfBirthLayout is the layout the console prompt asks for (DD-MM-YYYY)
const DateOfBirthLayout = "02-01-2006"

// StudentRecord carries the fields checked when a student is added.
// Failures are reported as warnings; the record is still stored.
type StudentRecord struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	StudentID   string `json:"studentId" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=02-01-2006"`
}

// Warning describes one field that failed a check
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// String renders the warning as "<field> <message>"
func (w Warning) String() string {
	return w.Field + " " + w.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
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

// CheckStudent returns one warning per failed rule, in field order
func CheckStudent(record StudentRecord) []Warning {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Warning{{Field: "record", Message: err.Error()}}
	}

	warnings := make([]Warning, 0, len(verrs))
	for _, fe := range verrs {
		warnings = append(warnings, Warning{Field: fe.Field(), Message: formatFieldError(fe)})
	}
	return warnings
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "datetime":
		if fe.Param() == DateOfBirthLayout {
			return "must use the DD-MM-YYYY format"
		}
		return "must match datetime format: " + fe.Param()
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("validation failed for '%s'", fe.Tag())
	}
}
