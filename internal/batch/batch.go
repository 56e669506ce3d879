// Package batch discovers .srt files and drives their conversion one at a
// time. A failure converting one file is logged and contained; remaining
// files are still processed and the aggregate result reports the failure.
package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"srt2vtt/internal/logging"
	"srt2vtt/internal/subtitle"
)

// Runner converts the .srt files found under a path.
type Runner struct {
	conv      *subtitle.Converter
	outputDir string
	recursive bool
	logger    *logging.Logger
}

func NewRunner(
	cfg subtitle.Config,
	outputDir string,
	recursive bool,
	logger *logging.Logger,
) *Runner {
	return &Runner{
		conv:      subtitle.NewConverter(cfg),
		outputDir: strings.TrimRight(outputDir, `/\`),
		recursive: recursive,
		logger:    logger,
	}
}

// Run converts path, which names either a single .srt file or a directory
// to search. Directory walks continue past per-file failures; the returned
// error is non-nil if any file failed.
func (r *Runner) Run(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %q: %w", path, err)
	}

	if info.IsDir() {
		return r.convertDirectory(path)
	}
	return r.ConvertFile(path)
}

func (r *Runner) convertDirectory(dir string) error {
	r.logger.Infow("Searching for files to convert", "dir", dir)

	failed := 0
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// an unreadable entry fails on its own; the walk continues
			r.logger.Errorw("Cannot read path", "path", path, "error", err)
			failed++
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !r.recursive && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if !isSRT(path) {
			return nil
		}
		if err := r.ConvertFile(path); err != nil {
			r.logger.Errorw("Conversion failed", "file", path, "error", err)
			failed++
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("cannot read directory %q: %w", dir, walkErr)
	}
	if failed > 0 {
		return fmt.Errorf("failed to convert %d file(s) under %q", failed, dir)
	}
	return nil
}

// ConvertFile converts a single .srt file, deriving the output path from
// the input path and the configured output directory.
func (r *Runner) ConvertFile(path string) error {
	outPath, err := r.outputPath(path)
	if err != nil {
		return err
	}

	r.logger.Infow("Converting file", "input", path, "output", outPath)

	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output: %w", err)
	}

	if err := r.conv.Convert(in, out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}

	r.logger.Debugw("Done", "file", outPath)
	return nil
}

// outputPath swaps the input's .srt extension (matched case-insensitively)
// for .vtt, relocating the file into the output directory when one is
// configured (creating the directory if absent). Other extensions are kept
// and .vtt is appended.
func (r *Runner) outputPath(path string) (string, error) {
	out := path
	if isSRT(out) {
		out = out[:len(out)-len(".srt")]
	}
	out += ".vtt"
	if r.outputDir == "" {
		return out, nil
	}

	if _, err := os.Stat(r.outputDir); os.IsNotExist(err) {
		r.logger.Infow("Creating directory", "dir", r.outputDir)
	}
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("cannot create output directory %q: %w", r.outputDir, err)
	}
	return filepath.Join(r.outputDir, filepath.Base(out)), nil
}

func isSRT(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".srt"
}
