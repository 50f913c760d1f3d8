package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"network-ping/internal/models"
)

// Source is the journal data a report is built from
type Source interface {
	GetStats(hours int) ([]models.Stats, error)
	GetRecent(hours int) ([]models.OutcomeRecord, error)
	GetLatencySeries(hours int) (map[string][]models.OutcomeRecord, error)
}

// Generator creates latency charts and a text summary from the journal
type Generator struct {
	src Source
	log *zap.Logger
	now func() time.Time
}

// NewGenerator creates a new report generator
func NewGenerator(src Source, log *zap.Logger) *Generator {
	return &Generator{src: src, log: log, now: time.Now}
}

// GenerateReport writes a timestamped report directory under outputDir and
// returns its path. A failing chart does not abort the rest of the report.
func (g *Generator) GenerateReport(outputDir string, hours int) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}

	timestamp := g.now().Format("2006-01-02_15-04-05")
	reportDir := filepath.Join(outputDir, fmt.Sprintf("ping_report_%s", timestamp))
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create report directory")
	}

	if err := g.generateLatencyCharts(reportDir, hours); err != nil {
		g.log.Error("failed to generate latency charts", zap.Error(err))
	}

	if err := g.generateTextReport(reportDir, hours); err != nil {
		return reportDir, errors.Wrap(err, "failed to generate text report")
	}

	g.log.Info("report generated", zap.String("dir", reportDir))
	return reportDir, nil
}
