// file: internals/features/finance/fees/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

/* ==============================================
   Taksonomi error ledger.

   Error dikembalikan sebagai VALUE dari seluruh
   operasi publik service ini - caller melakukan
   branching pada Kind, bukan menangkap panic.
   Tidak ada retry di layer ini; semua kegagalan
   bersifat terminal untuk call tsb.
============================================== */

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindInternal   ErrorKind = "internal"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string // detail per field utk KindValidation
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func validationErr(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func notFoundErr(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflictErr(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func internalErr(cause error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}

// AsError meng-unwrap error apapun menjadi *Error ledger (kalau memang itu).
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HTTPStatus memetakan Kind ke status code utk lapisan controller.
func HTTPStatus(err error) int {
	e, ok := AsError(err)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// wrapUnknown memastikan error non-ledger keluar sebagai KindInternal.
func wrapUnknown(err error, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}
	return internalErr(err, message)
}
