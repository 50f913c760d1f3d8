package recorder

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"network-ping/internal/interpret"
	"network-ping/internal/models"
	"network-ping/internal/ping"
)

type memJournal struct {
	mu      sync.Mutex
	records []models.OutcomeRecord
	pruned  []time.Duration
}

func (m *memJournal) SaveOutcome(rec models.OutcomeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *memJournal) GetRecent(int) ([]models.OutcomeRecord, error) { return nil, nil }
func (m *memJournal) GetStats(int) ([]models.Stats, error)          { return nil, nil }
func (m *memJournal) Close() error                                  { return nil }

func (m *memJournal) Prune(retention time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruned = append(m.pruned, retention)
	return nil
}

func (m *memJournal) snapshot() []models.OutcomeRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.OutcomeRecord(nil), m.records...)
}

func TestRecorderPersistsOutcomes(t *testing.T) {
	journal := &memJournal{}
	r := New(journal, 24*time.Hour, "", zap.NewNop())
	r.Start()

	r.Record(models.Request{Seq: 1, Target: "8.8.8.8"}, interpret.StrategyLatency, models.Success("23.4"))
	r.Record(models.Request{Seq: 2, Target: "8.8.8.8"}, interpret.StrategyLatency,
		models.Failure(&interpret.ParseError{Reason: "no timing line found"}))

	require.Eventually(t, func() bool { return len(journal.snapshot()) == 2 }, time.Second, 10*time.Millisecond)

	r.Stop()
	r.Wait()

	records := journal.snapshot()
	assert.Equal(t, r.Session(), records[0].SessionID)
	assert.True(t, records[0].Success)
	assert.Equal(t, 23.4, records[0].RTT)

	assert.False(t, records[1].Success)
	assert.Equal(t, "parse", records[1].ErrorKind)
	assert.Equal(t, "no timing line found", records[1].Text)

	assert.Equal(t, []time.Duration{24 * time.Hour}, journal.pruned)
}

func TestRecorderFlushesOnStop(t *testing.T) {
	journal := &memJournal{}
	r := New(journal, 0, "session-7", zap.NewNop())

	for i := 1; i <= 5; i++ {
		r.Record(models.Request{Seq: uint64(i), Target: "1.1.1.1"}, interpret.StrategyVerbatim, models.Success(fmt.Sprint(i)))
	}

	r.Start()
	r.Stop()
	r.Wait()

	records := journal.snapshot()
	require.Len(t, records, 5)
	assert.Equal(t, "session-7", records[4].SessionID)
}

func TestRecordDropsWhenFull(t *testing.T) {
	journal := &memJournal{}
	r := New(journal, 0, "session-7", zap.NewNop())

	for i := 0; i < cap(r.results)+10; i++ {
		r.Record(models.Request{Seq: uint64(i)}, interpret.StrategyVerbatim, models.Success("x"))
	}
	assert.Len(t, r.results, cap(r.results))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "spawn", ErrorKind(&ping.SpawnError{Err: errors.New("not found")}))
	assert.Equal(t, "process", ErrorKind(&interpret.ProcessFailure{Output: "x"}))
	assert.Equal(t, "parse", ErrorKind(&interpret.ParseError{Reason: "x"}))
	assert.Equal(t, "other", ErrorKind(errors.New("boom")))
}
