package app

import "github.com/pkg/errors"

var (
	ErrDuplicateMonitor = errors.New("identical alert already exists")
	ErrMonitorNotFound  = errors.New("alert not found")
	ErrModelNotFound    = errors.New("model not found")
	ErrUnauthorized     = errors.New("unauthorized")
)
