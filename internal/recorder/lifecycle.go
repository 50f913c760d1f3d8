package recorder

import (
	"time"

	"go.uber.org/zap"

	"network-ping/internal/models"
)

// Start begins persisting queued outcomes and the maintenance loop
func (r *Recorder) Start() {
	r.log.Info("starting recorder", zap.String("session", r.session))

	r.wg.Add(1)
	go r.processResults()

	r.wg.Add(1)
	go r.maintenanceWorker()
}

// Stop gracefully stops the recorder. Queued outcomes are flushed first.
func (r *Recorder) Stop() {
	r.log.Info("stopping recorder")
	r.cancel()
}

// Wait blocks until all goroutines finish
func (r *Recorder) Wait() {
	r.wg.Wait()
	r.log.Info("recorder stopped")
}

// processResults saves outcomes from the results channel
func (r *Recorder) processResults() {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			r.drain()
			return
		case rec := <-r.results:
			r.save(rec)
		}
	}
}

func (r *Recorder) drain() {
	for {
		select {
		case rec := <-r.results:
			r.save(rec)
		default:
			return
		}
	}
}

func (r *Recorder) save(rec models.OutcomeRecord) {
	if err := r.journal.SaveOutcome(rec); err != nil {
		r.log.Error("failed to save outcome", zap.Error(err),
			zap.String("target", rec.Target), zap.Uint64("seq", rec.Seq))
	}
}

// maintenanceWorker prunes the journal periodically
func (r *Recorder) maintenanceWorker() {
	defer r.wg.Done()

	// Run maintenance every hour
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	// Run immediately on start
	r.performMaintenance()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.performMaintenance()
		}
	}
}

func (r *Recorder) performMaintenance() {
	if err := r.journal.Prune(r.retention); err != nil {
		r.log.Error("failed to prune journal", zap.Error(err))
	}
}
