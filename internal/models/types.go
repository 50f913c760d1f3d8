package models

import (
	"context"
	"time"
)

// Invoker runs the platform ping utility for a request
type Invoker interface {
	Invoke(ctx context.Context, req Request) (RawCapture, error)
}

// Interpreter turns a raw capture into an outcome
type Interpreter interface {
	Name() string
	Interpret(capture RawCapture) Outcome
}

// Journal defines operations for outcome persistence
type Journal interface {
	SaveOutcome(rec OutcomeRecord) error
	GetRecent(hours int) ([]OutcomeRecord, error)
	GetStats(hours int) ([]Stats, error)
	Prune(retention time.Duration) error
	Close() error
}
