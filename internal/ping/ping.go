package ping

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"network-ping/internal/models"
)

// DefaultBinary is the ping utility looked up on PATH
const DefaultBinary = "ping"

// SpawnError is returned when the ping process could not be started at all
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return e.Err.Error()
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Invoker launches the platform ping utility
type Invoker struct {
	Binary string
	GOOS   string
}

// New creates a new Invoker for the given binary; empty means "ping"
func New(binary string) *Invoker {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Invoker{Binary: binary, GOOS: runtime.GOOS}
}

// Invoke runs ping to completion and returns its stdout and exit status.
// A non-zero exit is not an error; only a failure to spawn is.
func (p *Invoker) Invoke(ctx context.Context, req models.Request) (models.RawCapture, error) {
	cmd := exec.CommandContext(ctx, p.Binary, Args(p.GOOS, req)...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()

	capture := models.RawCapture{
		Stdout:    decode(stdout.Bytes()),
		Succeeded: err == nil,
		ExitCode:  exitCode(err),
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return capture, &SpawnError{Binary: p.Binary, Err: err}
	}

	return capture, nil
}

// Args builds the platform-specific ping arguments for a request
func Args(goos string, req models.Request) []string {
	var args []string

	if goos == "windows" {
		if req.Count > 0 {
			args = append(args, "-n", strconv.Itoa(req.Count))
		}
		if req.Deadline > 0 {
			args = append(args, "-w", strconv.FormatInt(req.Deadline.Milliseconds(), 10))
		}
		return append(args, req.Target)
	}

	if req.Count > 0 {
		args = append(args, "-c", strconv.Itoa(req.Count))
	}
	if req.Interval > 0 {
		args = append(args, "-i", strconv.FormatFloat(req.Interval.Seconds(), 'f', -1, 64))
	}
	if req.Deadline > 0 {
		args = append(args, "-w", strconv.Itoa(int(math.Ceil(req.Deadline.Seconds()))))
	}

	return append(args, req.Target)
}

// decode converts process output to text, replacing invalid UTF-8
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
