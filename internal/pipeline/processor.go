// Package pipeline orchestrates extraction for one document: scalar
// fields, the table pipeline, and the text fallback when tables yield
// nothing.
package pipeline

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/wfzhang/report-extractor/constants"
	"github.com/wfzhang/report-extractor/internal/common"
	"github.com/wfzhang/report-extractor/internal/docx"
	"github.com/wfzhang/report-extractor/internal/extract"
)

// Processor coordinates field extraction, the per-table pipeline and the
// text fallback for a single document.
type Processor struct {
	Logger   *slog.Logger
	Keywords map[constants.Role][]string
}

func NewProcessor(logger *slog.Logger, keywords map[constants.Role][]string) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if keywords == nil {
		keywords = constants.DefaultKeywords
	}
	return &Processor{Logger: logger, Keywords: keywords}
}

// ProcessDocument extracts all detection records from one document,
// stamping every record with the document's scalar metadata. It returns
// common.ErrNoData when neither the tables nor the text fallback yield a
// record; callers treat that as a warning, not a failure.
func (p *Processor) ProcessDocument(doc *docx.Document, name string) ([]extract.DetectionRecord, error) {
	jobID := uuid.New()
	text := doc.Text()
	fields := extract.ExtractFields(text)

	items := p.tableRecords(doc, jobID, name)
	if len(items) == 0 {
		items = extract.FallbackExtract(text)
		p.Logger.Info("processor.fallback.done",
			"job_id", jobID,
			"file", name,
			"records", len(items),
		)
	}
	if len(items) == 0 {
		return nil, common.ErrNoData
	}

	records := make([]extract.DetectionRecord, 0, len(items))
	for _, item := range items {
		records = append(records, extract.DetectionRecord{
			ReportNumber:  fields.ReportNumber,
			SampleName:    fields.SampleName,
			TestItem:      item.Item,
			MeasuredValue: item.Value,
			Judgment:      item.Judgment,
			TestDate:      fields.TestDate,
		})
	}
	p.Logger.Info("processor.document.ok",
		"job_id", jobID,
		"file", name,
		"records", len(records),
		"report_number", fields.ReportNumber,
		"test_date", fields.TestDate,
	)
	return records, nil
}

// tableRecords runs the table pipeline over the document's tables in
// order and stops at the first table that yields any records; later
// tables are never consulted.
func (p *Processor) tableRecords(doc *docx.Document, jobID uuid.UUID, name string) []extract.Record {
	for i, table := range doc.Tables {
		roles, dataStart := extract.DetectHeader(table, p.Keywords)
		if !roles.Valid() {
			continue
		}
		raw := extract.ExtractRows(table, roles, dataStart)
		records := extract.Aggregate(raw)
		if len(records) > 0 {
			p.Logger.Info("processor.tables.ok",
				"job_id", jobID,
				"file", name,
				"table_index", i,
				"rows_accepted", len(raw),
				"records", len(records),
			)
			return records
		}
	}
	return nil
}
