package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type options struct {
	outputDir string
	recursive bool
	inputDir  string
	file      string
	format    string
}

type cliApp struct {
	opts options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute() error {
	opts := app.opts
	format, err := parseFormat(opts.format)
	if err != nil {
		return err
	}
	var files []sourceFile
	if opts.inputDir != "" {
		files, err = scanDir(opts.inputDir, opts.recursive)
	} else {
		files, err = scanFile(opts.file)
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return err
	}
	failed := 0
	for _, src := range files {
		if err := app.processFile(src, format); err != nil {
			fmt.Fprintf(os.Stderr, "pydocmd: %s: %v\n", src.path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to process %d of %d files", failed, len(files))
	}
	return nil
}

// processFile runs the extraction pipeline for one source file: read,
// extract, render, write.
func (app *cliApp) processFile(src sourceFile, format outputFormat) error {
	source, err := os.ReadFile(src.path)
	if err != nil {
		return err
	}
	entries := Extract(src.name, source)
	data := renderMarkdown(src.name, entries)
	if format == formatHTML {
		if data, err = renderHTML(src.name, data); err != nil {
			return err
		}
	}
	target := filepath.Join(app.opts.outputDir, src.name+format.ext())
	return os.WriteFile(target, data, 0o644)
}

type outputFormat string

const (
	formatMarkdown outputFormat = "markdown"
	formatHTML     outputFormat = "html"
)

func parseFormat(s string) (outputFormat, error) {
	switch s {
	case "", "markdown", "md":
		return formatMarkdown, nil
	case "html":
		return formatHTML, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want markdown or html)", s)
}

func (f outputFormat) ext() string {
	if f == formatHTML {
		return ".html"
	}
	return ".md"
}

// legacyLongFlags maps the single-dash long spellings accepted by earlier
// releases to their canonical flag names, so invocations like
// `pydocmd -id ./src -o ./docs` keep working.
var legacyLongFlags = map[string]string{
	"output-dir": "output-dir",
	"recursive":  "recursive",
	"input-dir":  "input-dir",
	"id":         "input-dir",
	"file":       "file",
	"format":     "format",
}

func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, arg)
			converted = append(converted, args[i+1:]...)
			if i != len(args)-1 {
				modified = true
			}
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || arg == "-" {
			converted = append(converted, arg)
			continue
		}
		if len(arg) == 2 {
			converted = append(converted, arg)
			continue
		}
		if idx := strings.Index(arg, "="); idx > 0 {
			if name, ok := legacyLongFlags[arg[1:idx]]; ok {
				converted = append(converted, "--"+name+arg[idx:])
				modified = true
				continue
			}
		}
		if name, ok := legacyLongFlags[arg[1:]]; ok {
			converted = append(converted, "--"+name)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified && len(converted) == len(args) {
		return args
	}
	return converted
}
