package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/wfzhang/report-extractor/internal/common"
	"github.com/wfzhang/report-extractor/internal/export"
	"github.com/wfzhang/report-extractor/internal/extract"
	"github.com/wfzhang/report-extractor/internal/ingest"
	"github.com/wfzhang/report-extractor/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := common.LoadConfig()

	// Parse CLI flags (flags override env config)
	var (
		dir      = flag.String("dir", cfg.Input.Dir, "directory containing .docx reports to process")
		out      = flag.String("out", cfg.Output.File, "output XLSX file path")
		keywords = flag.String("keywords", cfg.Input.KeywordsFile, "optional JSON file overriding header keyword sets")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose || cfg.Log.Level == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg.Input.Dir = *dir
	cfg.Output.File = *out
	cfg.Input.KeywordsFile = *keywords
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	kw, err := extract.LoadKeywords(cfg.Input.KeywordsFile)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	proc := pipeline.NewProcessor(logger, kw)
	runner := ingest.NewRunner(logger, proc)

	records, stats, err := runner.Run(cfg.Input.Dir)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if stats.Matched == 0 {
		printError("Error: no .docx files found in %s\n", cfg.Input.Dir)
		os.Exit(1)
	}
	if len(records) == 0 {
		logger.Warn("run.norecords", "dir", cfg.Input.Dir)
		fmt.Println("没有数据可保存")
		return
	}

	writer := export.NewWriter(logger, cfg.Output.SheetName, cfg.Output.MaxColWidth)
	if err := writer.Save(records, cfg.Output.File); err != nil {
		printError("Error: save workbook: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("结果已保存到: %s（共 %d 条记录）\n", cfg.Output.File, len(records))
}
