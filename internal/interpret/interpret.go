// Package interpret turns captured ping output into outcomes. Strategies are
// pure functions of the capture.
package interpret

import (
	"fmt"
	"strings"

	"network-ping/internal/models"
)

const (
	StrategyVerbatim = "verbatim"
	StrategyLatency  = "latency"
)

const timingMarker = "time="

// ProcessFailure means ping ran but exited unsuccessfully.
// Its message is the process stdout.
type ProcessFailure struct {
	Output   string
	ExitCode int
}

func (e *ProcessFailure) Error() string {
	return e.Output
}

// ParseError means the output lacked the expected structure
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}

// Verbatim passes the transcript through unchanged
type Verbatim struct{}

func (Verbatim) Name() string { return StrategyVerbatim }

func (Verbatim) Interpret(capture models.RawCapture) models.Outcome {
	if capture.Succeeded {
		return models.Success(capture.Stdout)
	}
	return models.Failure(&ProcessFailure{Output: capture.Stdout, ExitCode: capture.ExitCode})
}

// Latency extracts the figure following "time=" on the first timing line
type Latency struct{}

func (Latency) Name() string { return StrategyLatency }

func (Latency) Interpret(capture models.RawCapture) models.Outcome {
	value, ok := ExtractLatency(capture.Stdout)
	if !ok {
		return models.Failure(&ParseError{Reason: "no timing line found"})
	}
	return models.Success(value)
}

// ExtractLatency returns the first whitespace-delimited token after "time="
// on the first line that contains it.
func ExtractLatency(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		_, rest, found := strings.Cut(line, timingMarker)
		if !found {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return "", false
		}
		return fields[0], true
	}
	return "", false
}

// ByName returns the strategy registered under name
func ByName(name string) (models.Interpreter, error) {
	switch name {
	case StrategyVerbatim:
		return Verbatim{}, nil
	case StrategyLatency:
		return Latency{}, nil
	default:
		return nil, fmt.Errorf("unknown output strategy %q", name)
	}
}
