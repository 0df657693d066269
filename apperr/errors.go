package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Error kinds. Compare with errors.Is.
var (
	NotFound        = errors.New("not found")
	InvalidArgument = errors.New("invalid argument")
	InvalidState    = errors.New("invalid state")
	AlreadyExists   = errors.New("already exists")
	Conflict        = errors.New("conflict")
	Internal        = errors.New("internal error")
)

// Error carries the failing operation, its kind and a human-readable message.
type Error struct {
	Op      string // e.g. "cart.AddItem"
	Kind    error  // one of the kinds above
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the error's kind so errors.Is(err, apperr.NotFound) works
// without the kind being in the unwrap chain.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

func E(op string, kind error, msg string) *Error {
	return &Error{Op: op, Kind: kind, Message: msg}
}

func Wrap(op string, kind error, msg string, err error) *Error {
	return &Error{Op: op, Kind: kind, Message: msg, Err: err}
}

// FromDB classifies a gorm error. Record-not-found becomes NotFound with msg,
// duplicate keys become Conflict and everything else is Internal.
func FromDB(op, msg string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.As(err, new(*Error)):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return E(op, NotFound, msg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(op, Conflict, "duplicate key", err)
	default:
		return Wrap(op, Internal, "database error", err)
	}
}

// KindOf returns the kind of the outermost *Error in err, then any kind
// found in its chain, defaulting to Internal.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) && e.Kind != nil {
		return e.Kind
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict
	}
	for _, k := range []error{NotFound, InvalidArgument, InvalidState, AlreadyExists, Conflict, Internal} {
		if errors.Is(err, k) {
			return k
		}
	}
	return Internal
}

// HTTPStatus maps err to the status code it surfaces as.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case InvalidArgument, InvalidState:
		return http.StatusBadRequest
	case AlreadyExists, Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the message of the outermost *Error, or err.Error().
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsConflict reports whether err is worth retrying as an optimistic-lock clash.
func IsConflict(err error) bool {
	return errors.Is(err, Conflict) || errors.Is(err, gorm.ErrDuplicatedKey)
}
