package app

import "network-ping/internal/models"

// Msg is an input to the state machine
type Msg interface {
	isMsg()
}

// InputChanged replaces the held input text
type InputChanged struct {
	Text string
}

// SubmitRequested starts a new ping
type SubmitRequested struct{}

// ResultArrived delivers the outcome of a finished request
type ResultArrived struct {
	Seq     uint64
	Outcome models.Outcome
}

func (InputChanged) isMsg()    {}
func (SubmitRequested) isMsg() {}
func (ResultArrived) isMsg()   {}

// Effect is a side effect requested by Update
type Effect interface {
	isEffect()
}

// Invoke asks the caller to run one ping request asynchronously
type Invoke struct {
	Request models.Request
}

func (Invoke) isEffect() {}

// Init returns the initial state and effects for a profile.
// The fixed variant starts loading immediately.
func Init(p Profile) (State, []Effect) {
	s := State{Profile: p, Phase: Idle}
	if p.Variant == VariantFixed {
		return submit(s)
	}
	return s, nil
}

// Update applies one message. Messages are expected one at a time, in
// arrival order, from a single goroutine.
func Update(s State, msg Msg) (State, []Effect) {
	switch m := msg.(type) {
	case InputChanged:
		if s.Profile.Variant == VariantInteractive {
			s.Input = m.Text
		}
		return s, nil

	case SubmitRequested:
		return submit(s)

	case ResultArrived:
		if s.Profile.DiscardStale && m.Seq < s.LastSubmitted {
			return s, nil
		}
		s.Phase = Ready
		s.Outcome = m.Outcome
		s.LastApplied = m.Seq
		return s, nil
	}

	return s, nil
}

func submit(s State) (State, []Effect) {
	s.LastSubmitted++
	s.Phase = Loading
	return s, []Effect{Invoke{Request: s.request(s.LastSubmitted)}}
}

func (s State) request(seq uint64) models.Request {
	target := s.Profile.Target
	if s.Profile.Variant == VariantInteractive {
		target = s.Input
	}
	return models.Request{
		Seq:      seq,
		Target:   target,
		Interval: s.Profile.Interval,
		Deadline: s.Profile.Deadline,
		Count:    s.Profile.Count,
	}
}
