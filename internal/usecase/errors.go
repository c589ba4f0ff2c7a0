package usecase

import (
	"errors"
	"fmt"

	"e-presensi-backend/internal/validation"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

// Error membawa jenis kegagalan dan pesan yang boleh ditampilkan ke user.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func invalid(err error) *Error {
	e := &Error{Kind: KindValidation, Message: validation.Message(err), Err: err}
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		e.Fields = fe
	}
	if e.Message == "" {
		e.Message = err.Error()
	}
	return e
}

func badRequest(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func notFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// internal membungkus kegagalan database; pesan backend ikut ditampilkan.
func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf("%s: %v", msg, err), Err: err}
}

// KindOf mengembalikan KindInternal untuk error yang bukan *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
