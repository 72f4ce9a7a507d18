// Package export renders detection records into the XLSX summary
// workbook and saves it atomically.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"

	"github.com/wfzhang/report-extractor/internal/extract"
)

// columnHeaders is the fixed output schema, one column per
// DetectionRecord field, in contract order.
var columnHeaders = []string{"报告编号", "样品名称", "检测项目", "实测值", "单项判定", "检测日期"}

const defaultMaxColWidth = 50

// Writer produces XLSX workbooks from detection records.
type Writer struct {
	Logger      *slog.Logger
	SheetName   string
	MaxColWidth float64
}

func NewWriter(logger *slog.Logger, sheetName string, maxColWidth float64) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	if sheetName == "" {
		sheetName = "检测结果汇总"
	}
	if maxColWidth <= 0 {
		maxColWidth = defaultMaxColWidth
	}
	return &Writer{Logger: logger, SheetName: sheetName, MaxColWidth: maxColWidth}
}

// Workbook returns the summary workbook as bytes: header row, one row
// per record, and column widths sized to content.
func (w *Writer) Workbook(records []extract.DetectionRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	sheet := w.SheetName
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defaultIndex, _ := f.GetSheetIndex("Sheet1"); defaultIndex != -1 && sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	widths := make([]float64, len(columnHeaders))
	for i, h := range columnHeaders {
		widths[i] = displayWidth(h)
	}

	for rowIdx, r := range records {
		cells := []string{r.ReportNumber, r.SampleName, r.TestItem, r.MeasuredValue, r.Judgment, r.TestDate}
		for colIdx, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
			if dw := displayWidth(v); dw > widths[colIdx] {
				widths[colIdx] = dw
			}
		}
	}

	for i, dw := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		adjusted := dw + 2
		if adjusted > w.MaxColWidth {
			adjusted = w.MaxColWidth
		}
		_ = f.SetColWidth(sheet, col, col, adjusted)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	w.Logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// Save writes the workbook for records to path atomically: the bytes go
// to a temp file in the destination directory which is then renamed over
// path, so a failed run never leaves a partial workbook behind.
func (w *Writer) Save(records []extract.DetectionRecord, path string) error {
	b, err := w.Workbook(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".report-extractor-*.xlsx")
	if err != nil {
		return fmt.Errorf("create temp workbook: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp workbook: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace workbook: %w", err)
	}

	w.Logger.Info("run.save.ok", "path", path, "rows", len(records))
	return nil
}

// displayWidth approximates the rendered width of a cell in character
// columns: East Asian wide and fullwidth runes take two.
func displayWidth(s string) float64 {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return float64(n)
}
