// Package validation binds request data into typed payloads and runs their
// validation before any handler logic executes.
//
// Payloads implement Validatable. Validation is two-phase: phase one parses
// and checks every field, collecting all field errors instead of stopping
// at the first; phase two, only when phase one fully succeeded, runs
// cross-field rules. Either phase reports through Errors so the client
// receives every field-scoped reason at once.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chainfolio/chainfolio/internal/assets"
	"github.com/chainfolio/chainfolio/internal/errs"
)

// Deps carries the collaborators validation may consult. They are passed
// explicitly instead of being baked into schema instances so schemas stay
// stateless and per-request.
type Deps struct {
	Assets *assets.Registry
}

// Validatable is implemented by request payload types that know how to
// validate themselves. Validate returns nil, Errors, or
// validator.ValidationErrors.
type Validatable interface {
	Validate(deps Deps) error
}

// Errors collects field-scoped validation failures across both phases.
type Errors []errs.FieldError

func (e Errors) Error() string {
	return errs.JoinFieldErrors(e)
}

// Add records a failure for a field.
func (e *Errors) Add(field, message string) {
	*e = append(*e, errs.FieldError{Field: field, Error: message})
}

// Addf records a formatted failure for a field.
func (e *Errors) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// AddErr records an error value for a field.
func (e *Errors) AddErr(field string, err error) {
	e.Add(field, err.Error())
}

// OrNil returns the collected errors as an error, or nil if none were
// recorded.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// FileBinder is implemented by payloads that also accept a multipart file
// upload in place of a filesystem path. BindFile runs after c.Bind and
// before Validate.
type FileBinder interface {
	BindFile(c echo.Context) error
}

// BindAndValidate binds request data into payload and validates it.
// Binding failures and validation failures both surface as 400 HTTPErrors;
// invalid input never reaches handler logic.
func BindAndValidate(c echo.Context, payload Validatable, deps Deps) error {
	if err := c.Bind(payload); err != nil {
		if echoErr, ok := err.(*echo.HTTPError); ok {
			return errs.NewBadRequestError(fmt.Sprintf("failed to deserialize request: %v", echoErr.Message))
		}
		return errs.NewBadRequestError(fmt.Sprintf("failed to deserialize request: %v", err))
	}

	if binder, ok := payload.(FileBinder); ok {
		if err := binder.BindFile(c); err != nil {
			return errs.NewBadRequestError(fmt.Sprintf("failed to read uploaded file: %v", err))
		}
	}

	if err := payload.Validate(deps); err != nil {
		return errs.NewValidationError(extractFieldErrors(err))
	}

	return nil
}

var structValidator = validator.New()

// Struct runs tag-based validation for payloads whose rules are fully
// expressible as validator tags.
func Struct(v any) error {
	return structValidator.Struct(v)
}

func extractFieldErrors(err error) []errs.FieldError {
	switch verr := err.(type) {
	case Errors:
		return verr
	case validator.ValidationErrors:
		fieldErrors := make([]errs.FieldError, 0, len(verr))
		for _, fe := range verr {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: strings.ToLower(fe.Field()),
				Error: tagMessage(fe),
			})
		}
		return fieldErrors
	default:
		return []errs.FieldError{{Error: err.Error()}}
	}
}

// tagMessage converts a validator tag failure into a client-readable
// message.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
		}
		return fe.Tag()
	}
}
