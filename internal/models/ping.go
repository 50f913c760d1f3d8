package models

import "time"

// Request is a single ping invocation. It is built on user action (or at
// startup) and consumed immediately by the invoker.
type Request struct {
	Seq      uint64
	Target   string
	Interval time.Duration // delay between packets, 0 leaves ping's default
	Deadline time.Duration // overall wall-clock limit, 0 for none
	Count    int           // packets to send, 0 for unlimited
}

// RawCapture is what the invoker observed from a finished ping process
type RawCapture struct {
	Stdout    string
	Succeeded bool
	ExitCode  int
}

// OutcomeKind tags an Outcome
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	if k == OutcomeSuccess {
		return "success"
	}
	return "failure"
}

// Outcome is the interpreted result of one invocation cycle
type Outcome struct {
	Kind OutcomeKind
	Text string
	Err  error
}

// Success creates a successful outcome carrying the interpreted text
func Success(text string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Text: text}
}

// Failure creates a failed outcome; its text is the error's message
func Failure(err error) Outcome {
	return Outcome{Kind: OutcomeFailure, Text: err.Error(), Err: err}
}

// OK reports whether the outcome is a success
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Description returns the user-visible text of the outcome
func (o Outcome) Description() string {
	return o.Text
}

// OutcomeRecord is an outcome as persisted by the journal
type OutcomeRecord struct {
	SessionID string    `json:"session_id"`
	Seq       uint64    `json:"seq"`
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target"`
	Strategy  string    `json:"strategy"`
	Success   bool      `json:"success"`
	Text      string    `json:"text"`
	RTT       float64   `json:"rtt_ms"` // milliseconds, 0 when unknown
	ErrorKind string    `json:"error_kind,omitempty"`
}
