// Package batch exports every notes file under a directory tree.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"sdk-formatter/internal/export"
	"sdk-formatter/internal/filewalker"
	"sdk-formatter/internal/sdkfile"
	"sdk-formatter/internal/worker"
)

// OutputSuffix replaces the notes file extension in batch output names.
const OutputSuffix = "_SDK.cs"

// FileReport describes the export of one notes file.
type FileReport struct {
	Source  string
	Output  string
	Classes int
	Fields  int
	Err     error
}

// Report summarizes a batch run.
type Report struct {
	Files   []FileReport
	Written int
	Failed  int
	Skipped int
}

// Options controls a batch run.
type Options struct {
	InputDir   string
	OutputDir  string
	Extensions []string
	Workers    int
}

// Run converts each notes file under InputDir with the whole-document
// exporter. Parsing runs in parallel; every output file is distinct and is
// written in discovery order. Empty notes files are skipped.
func Run(ctx context.Context, opts Options) (Report, error) {
	entries, err := filewalker.NewWalker(opts.Extensions).Walk(opts.InputDir)
	if err != nil {
		return Report{}, err
	}

	outAbs, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return Report{}, fmt.Errorf("resolve output dir: %w", err)
	}

	pool := worker.NewPool(opts.Workers, func(ctx context.Context, e filewalker.FileEntry) (export.DocumentResult, error) {
		data, err := os.ReadFile(e.Path)
		if err != nil {
			return export.DocumentResult{}, fmt.Errorf("read notes file: %w", err)
		}
		return export.Document(string(data))
	})

	var report Report
	for _, task := range pool.Execute(ctx, entries) {
		fr := FileReport{Source: task.Input.Path}

		switch {
		case errors.Is(task.Err, export.ErrEmptyInput):
			report.Skipped++
			log.Debug().Str("file", task.Input.Path).Msg("Skipping empty notes file")
			report.Files = append(report.Files, fr)
			continue
		case task.Err != nil:
			fr.Err = task.Err
			report.Failed++
			log.Error().Err(task.Err).Str("file", task.Input.Path).Msg("Export failed")
			report.Files = append(report.Files, fr)
			continue
		}

		fr.Output = outputPath(outAbs, task.Input.Rel)
		fr.Classes = task.Result.Count()
		fr.Fields = task.Result.Fields

		if err := sdkfile.WriteWhole(ctx, fr.Output, task.Result.Text); err != nil {
			fr.Err = err
			report.Failed++
			log.Error().Err(err).Str("path", fr.Output).Msg("Write SDK file")
		} else {
			report.Written++
			log.Info().
				Str("input", fr.Source).
				Str("output", fr.Output).
				Int("classes", fr.Classes).
				Msg("File exported")
		}
		report.Files = append(report.Files, fr)
	}

	log.Info().
		Int("files", len(entries)).
		Int("written", report.Written).
		Int("failed", report.Failed).
		Str("output", outAbs).
		Msg("Batch export complete")

	return report, ctx.Err()
}

func outputPath(outDir, rel string) string {
	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(outDir, base+OutputSuffix)
}
