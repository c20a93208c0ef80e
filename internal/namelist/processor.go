// Package namelist rewrites name list files so that every non-blank line is
// trimmed and capitalized.
package namelist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/compozy/capnames/pkg/capitalize"
	"github.com/compozy/capnames/pkg/logger"
	"github.com/spf13/afero"
)

const (
	// StdStream selects stdin as input or stdout as output.
	StdStream = "-"

	outputPerm os.FileMode = 0o644
)

var (
	errEmptyPath   = errors.New("path cannot be empty")
	errIsDirectory = errors.New("is a directory")
	errSameFile    = errors.New("output would overwrite the input")
	errInvalidUTF8 = errors.New("not valid UTF-8")
)

// Job is one input/output pair.
type Job struct {
	Input  string `json:"input"  yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// Result holds the counters of a successful run.
type Result struct {
	Input        string `json:"input"`
	Output       string `json:"output"`
	LinesRead    int    `json:"lines_read"`
	LinesWritten int    `json:"lines_written"`
	BlankLines   int    `json:"blank_lines"`
}

// Processor capitalizes name lists read from and written to Fs.
type Processor struct {
	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
}

// NewProcessor returns a Processor over fs wired to the process stdio.
func NewProcessor(fs afero.Fs) *Processor {
	return &Processor{
		Fs:     fs,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// Process rewrites input into output on the OS filesystem.
func Process(ctx context.Context, input, output string) error {
	_, err := NewProcessor(afero.NewOsFs()).Process(ctx, input, output)
	return err
}

// Process reads input line by line and writes each non-blank line, trimmed
// and capitalized, to output. The input is opened first so a failure to open
// it leaves output untouched. Output is truncated on open and is left as is
// if a later step fails.
func (p *Processor) Process(ctx context.Context, input, output string) (result *Result, err error) {
	log := logger.FromContext(ctx).With("input", input, "output", output)
	if err := p.checkPaths(input, output); err != nil {
		return nil, err
	}

	in, err := p.openInput(input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := p.openOutput(output)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			result, err = nil, newOutputError(output, "close", closeErr)
		}
	}()

	log.Debug("processing name list")
	result = &Result{Input: input, Output: output}
	writer := bufio.NewWriter(out)
	scanner := newLineScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			_ = writer.Flush()
			return nil, fmt.Errorf("processing %q interrupted: %w", input, err)
		}
		result.LinesRead++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			_ = writer.Flush()
			return nil, newInputError(input, "decode", fmt.Errorf("line %d: %w", result.LinesRead, errInvalidUTF8))
		}
		name, ok := capitalize.NormalizeLine(line)
		if !ok {
			result.BlankLines++
			continue
		}
		if _, err := writer.WriteString(name + "\n"); err != nil {
			return nil, newOutputError(output, "write", err)
		}
		result.LinesWritten++
	}
	if err := scanner.Err(); err != nil {
		_ = writer.Flush()
		return nil, newInputError(input, "read", err)
	}
	if err := writer.Flush(); err != nil {
		return nil, newOutputError(output, "write", err)
	}

	log.Info("name list written",
		"names", result.LinesWritten,
		"blank_lines", result.BlankLines,
	)
	return result, nil
}

func (p *Processor) checkPaths(input, output string) error {
	if input == "" {
		return newInputError(input, "open", errEmptyPath)
	}
	if output == "" {
		return newOutputError(output, "create", errEmptyPath)
	}
	if input != StdStream && filepath.Clean(input) == filepath.Clean(output) {
		return newOutputError(output, "create", errSameFile)
	}
	return nil
}

func (p *Processor) openInput(path string) (io.ReadCloser, error) {
	if path == StdStream {
		return io.NopCloser(p.Stdin), nil
	}
	file, err := p.Fs.Open(path)
	if err != nil {
		return nil, newInputError(path, "open", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, newInputError(path, "open", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, newInputError(path, "open", errIsDirectory)
	}
	return file, nil
}

func (p *Processor) openOutput(path string) (io.WriteCloser, error) {
	if path == StdStream {
		return nopWriteCloser{p.Stdout}, nil
	}
	file, err := p.Fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputPerm)
	if err != nil {
		return nil, newOutputError(path, "create", err)
	}
	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
