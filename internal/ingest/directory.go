// Package ingest enumerates report documents in an input directory and
// feeds them through the document processor one at a time.
package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wfzhang/report-extractor/constants"
	"github.com/wfzhang/report-extractor/internal/common"
	"github.com/wfzhang/report-extractor/internal/docx"
	"github.com/wfzhang/report-extractor/internal/extract"
	"github.com/wfzhang/report-extractor/internal/pipeline"
)

// DirStats aggregates per-run counters.
type DirStats struct {
	Scanned   int
	Matched   int
	Succeeded int
	NoData    int
	Failed    int
	Records   int
}

// Runner processes every eligible document in a directory, strictly
// sequentially and in name order, so output order is deterministic.
type Runner struct {
	Logger *slog.Logger
	Proc   *pipeline.Processor
}

func NewRunner(logger *slog.Logger, proc *pipeline.Processor) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Logger: logger, Proc: proc}
}

// Run enumerates .docx files in dir (non-recursive), skipping Office
// lock files and hidden files, and returns the concatenated records. A
// single document's failure is logged and skipped; only a missing or
// unreadable directory is a run-level error.
func (r *Runner) Run(dir string) ([]extract.DetectionRecord, DirStats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, DirStats{}, fmt.Errorf("read input directory: %w", err)
	}

	var results []extract.DetectionRecord
	var stats DirStats

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stats.Scanned++
		name := entry.Name()
		if !eligible(name) {
			continue
		}
		stats.Matched++

		path := filepath.Join(dir, name)
		doc, err := docx.Open(path)
		if err != nil {
			stats.Failed++
			r.Logger.Error("run.document.unreadable", "file", name, "err", err)
			continue
		}

		records, err := r.Proc.ProcessDocument(doc, name)
		if err != nil {
			if errors.Is(err, common.ErrNoData) {
				stats.NoData++
				r.Logger.Warn("run.document.nodata", "file", name)
			} else {
				stats.Failed++
				r.Logger.Error("run.document.failed", "file", name, "err", err)
			}
			continue
		}

		stats.Succeeded++
		stats.Records += len(records)
		results = append(results, records...)
	}

	r.Logger.Info("run.done",
		"dir", dir,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"nodata", stats.NoData,
		"failed", stats.Failed,
		"records", stats.Records,
	)
	return results, stats, nil
}

// eligible filters to allowed extensions, excluding Office owner files
// (~$...) and dot-hidden files.
func eligible(name string) bool {
	if strings.HasPrefix(name, constants.LockFilePrefix) || strings.HasPrefix(name, ".") {
		return false
	}
	return constants.IsAllowedExt(filepath.Ext(name))
}
