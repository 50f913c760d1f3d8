// Package app holds the toolkit-agnostic application state machine.
//
// Update is a pure transition function: it never performs I/O and returns
// the side effects the caller must run.
package app

import (
	"time"

	"network-ping/internal/models"
)

// Variant selects how the target is obtained and when the first ping runs
type Variant string

const (
	// VariantInteractive lets the user type a target and press Ping
	VariantInteractive Variant = "interactive"
	// VariantFixed pings a constant target as soon as the app starts
	VariantFixed Variant = "fixed"
)

// Phase is the coarse state shown by the view
type Phase int

const (
	Idle Phase = iota
	Loading
	Ready
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Profile holds the fixed invocation parameters of a variant
type Profile struct {
	Variant      Variant
	Target       string // used by VariantFixed
	Interval     time.Duration
	Deadline     time.Duration
	Count        int
	DiscardStale bool
}

// InteractiveProfile returns the defaults for the interactive variant
func InteractiveProfile() Profile {
	return Profile{
		Variant:  VariantInteractive,
		Interval: 100 * time.Millisecond,
		Deadline: 30 * time.Second,
	}
}

// FixedProfile returns the defaults for the fixed-target variant
func FixedProfile() Profile {
	return Profile{
		Variant: VariantFixed,
		Target:  "8.8.8.8",
		Count:   1,
	}
}

// State is the single record the view renders from
type State struct {
	Profile Profile
	Phase   Phase
	Input   string
	Outcome models.Outcome // meaningful only when Phase == Ready

	// LastSubmitted is the sequence number of the newest request issued
	LastSubmitted uint64
	// LastApplied is the sequence number of the outcome currently held
	LastApplied uint64
}

// HasOutcome reports whether an outcome has been received
func (s State) HasOutcome() bool {
	return s.Phase == Ready
}
