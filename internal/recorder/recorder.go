// Package recorder persists outcomes to the journal off the UI goroutine.
package recorder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"network-ping/internal/interpret"
	"network-ping/internal/models"
)

// Recorder coordinates outcome persistence
type Recorder struct {
	journal   models.Journal
	retention time.Duration
	session   string
	log       *zap.Logger
	results   chan models.OutcomeRecord
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	now       func() time.Time
}

// New creates a new Recorder. An empty session gets a fresh id.
func New(journal models.Journal, retention time.Duration, session string, log *zap.Logger) *Recorder {
	if session == "" {
		session = uuid.New().String()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Recorder{
		journal:   journal,
		retention: retention,
		session:   session,
		log:       log,
		results:   make(chan models.OutcomeRecord, 100),
		ctx:       ctx,
		cancel:    cancel,
		now:       time.Now,
	}
}

// Session returns the id stamped on every record of this run
func (r *Recorder) Session() string {
	return r.session
}

// Record queues an outcome for persistence without blocking
func (r *Recorder) Record(req models.Request, strategy string, outcome models.Outcome) {
	rec := r.newRecord(req, strategy, outcome)

	select {
	case r.results <- rec:
	default:
		r.log.Warn("result channel full, dropping outcome",
			zap.String("target", req.Target), zap.Uint64("seq", req.Seq))
	}
}

func (r *Recorder) newRecord(req models.Request, strategy string, outcome models.Outcome) models.OutcomeRecord {
	rec := models.OutcomeRecord{
		SessionID: r.session,
		Seq:       req.Seq,
		Timestamp: r.now(),
		Target:    req.Target,
		Strategy:  strategy,
		Success:   outcome.OK(),
		Text:      outcome.Description(),
		ErrorKind: ErrorKind(outcome.Err),
	}
	if outcome.OK() {
		if rtt, ok := interpret.RTT(outcome.Text); ok {
			rec.RTT = rtt
		}
	}
	return rec
}
