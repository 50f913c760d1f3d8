package recorder

import (
	"errors"

	"network-ping/internal/interpret"
	"network-ping/internal/ping"
)

// ErrorKind classifies an outcome error for the journal
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}

	var spawnErr *ping.SpawnError
	var processErr *interpret.ProcessFailure
	var parseErr *interpret.ParseError

	switch {
	case errors.As(err, &spawnErr):
		return "spawn"
	case errors.As(err, &processErr):
		return "process"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "other"
	}
}
