// file: internals/helpers/apperrors.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

/* ===============================
   Error taxonomy
=================================*/

// ValidationError: malformed/missing input, amounts not reconciling, etc.
// Always raised before any write.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewFieldValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  map[string][]string{field: {message}},
	}
}

// NotFoundError: the referenced row does not exist or belongs to another
// school. Cross-tenant access reads as not-found, never forbidden.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ConflictError: duplicate structure, cross-mode violation, delete blocked.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// PermissionError: role below required level or inactive account.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

func NewPermissionError(message string) *PermissionError {
	return &PermissionError{Message: message}
}

/* ===============================
   Writer (error → JSON response)
=================================*/

// WriteError maps a domain error to the standard JSON error shape.
// Storage-layer error text never reaches the client.
func WriteError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Message, ve.Fields)
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	}
	var cf *ConflictError
	if errors.As(err, &cf) {
		return JsonError(c, fiber.StatusConflict, cf.Message)
	}
	var pe *PermissionError
	if errors.As(err, &pe) {
		return JsonError(c, fiber.StatusForbidden, pe.Message)
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "record not found")
	}
	return JsonError(c, fiber.StatusInternalServerError, "internal server error")
}

// ValidatorError translates validator.v10 failures into the 422 shape.
func ValidatorError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "invalid input")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}
	return JsonValidationError(c, "validation failed", fields)
}

/* ===============================
   Postgres helpers
=================================*/

// IsUniqueViolation reports whether err is a unique-constraint violation
// (SQLSTATE 23505). Falls back to message sniffing for wrapped drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "unique constraint")
}
