package entity

import "errors"

var (
	ErrNilDescriptor  = errors.New("class descriptor is nil")
	ErrInvalidHandle  = errors.New("invalid session handle")
	ErrSessionClosed  = errors.New("session closed")
	ErrHandlerExists  = errors.New("event handler already registered")
	ErrEmptyEventName = errors.New("event name is empty")
	ErrFlushOnLoop    = errors.New("flush called from the session loop")
)
