package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrValidation         = errors.New("validation error")
	ErrForbidden          = errors.New("forbidden")
	ErrNoProcessorAccount = errors.New("no processor account")
	ErrAccountNotReady    = errors.New("processor account is not ready to accept charges")
	ErrInvalidRedirectURL = errors.New("invalid redirect url")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrMalformedPayload   = errors.New("malformed webhook payload")
)

// NewValidationError оборачивает ErrValidation сообщением, пригодным для показа клиенту.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// InvalidStateError операция недопустима в текущем статусе транзакции.
type InvalidStateError struct {
	Current TransactionStatus
}

func NewInvalidStateError(current TransactionStatus) error {
	return &InvalidStateError{Current: current}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("transaction is %s", e.Current)
}

// UpstreamError ошибка платежного процессора. Message заполняется только если текст безопасно показывать клиенту.
type UpstreamError struct {
	Op      string
	Message string
	Err     error
}

func NewUpstreamError(op, message string, err error) error {
	return &UpstreamError{Op: op, Message: message, Err: err}
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("upstream %s: %s", e.Op, e.Err.Error())
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
