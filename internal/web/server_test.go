package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"network-ping/internal/models"
)

type fakeStore struct {
	recent    []models.OutcomeRecord
	stats     []models.Stats
	err       error
	lastHours int
}

func (f *fakeStore) GetRecent(hours int) ([]models.OutcomeRecord, error) {
	f.lastHours = hours
	return f.recent, f.err
}

func (f *fakeStore) GetStats(hours int) ([]models.Stats, error) {
	f.lastHours = hours
	return f.stats, f.err
}

func TestHandleRecent(t *testing.T) {
	store := &fakeStore{recent: []models.OutcomeRecord{{
		Seq:       3,
		Timestamp: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		Target:    "8.8.8.8",
		Success:   true,
		Text:      "23.4",
		RTT:       23.4,
	}}}
	s := New(store, ":0", zap.NewNop())

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/recent?hours=6", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 6, store.lastHours)

	var got []models.OutcomeRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 23.4, got[0].RTT)
}

func TestHandleStatsDefaultsAndEmpty(t *testing.T) {
	store := &fakeStore{}
	s := New(store, ":0", zap.NewNop())

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 24, store.lastHours)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHandleStoreError(t *testing.T) {
	s := New(&fakeStore{err: errors.New("database is locked")}, ":0", zap.NewNop())

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandleHoursOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"overflowing window", "/api/recent?hours=3000000"},
		{"negative window", "/api/recent?hours=-1"},
		{"zero window", "/api/stats?hours=0"},
		{"just past a year", "/api/stats?hours=8761"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			s := New(store, ":0", zap.NewNop())

			resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, tt.url, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Zero(t, store.lastHours, "store must not be queried")
		})
	}
}

func TestHandleHoursUpperBound(t *testing.T) {
	store := &fakeStore{}
	s := New(store, ":0", zap.NewNop())

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/stats?hours=8760", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, maxHours, store.lastHours)
}
