package client

import (
	"errors"
	"fmt"
)

// ErrDeviceNotRegistered устройство больше не принимает уведомления, токен нужно удалить.
var ErrDeviceNotRegistered = errors.New("device not registered")

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

// TicketError отказ push шлюза доставить сообщение на конкретный токен.
type TicketError struct {
	Token   string
	Code    string
	Message string
}

func (e *TicketError) Error() string {
	return fmt.Sprintf("push ticket error %s: %s", e.Code, e.Message)
}

func (e *TicketError) Unwrap() error {
	if e.Code == detailsDeviceNotRegistered {
		return ErrDeviceNotRegistered
	}
	return nil
}
