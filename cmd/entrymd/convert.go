package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	entrymd "github.com/openscribe/entrymd"
	"github.com/openscribe/entrymd/internal/config"
	"github.com/openscribe/entrymd/internal/fileutil"
	"github.com/openscribe/entrymd/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags     = errors.New("invalid flags")
	ErrNoInput          = errors.New("no input file (use a path or - for stdin)")
	ErrReadInput        = errors.New("failed to read input")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrUnknownDirection = errors.New("cannot determine conversion direction")
)

// run reads the input, resolves the conversion direction, converts, and
// writes the result. stdin/stdout are addressed with "-".
func run(f *cliFlags, args []string, cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return ErrNoInput
	}
	inputPath := args[0]

	content, err := readInput(inputPath, stdin)
	if err != nil {
		return err
	}

	direction, err := resolveDirection(f, cfg, inputPath, content)
	if err != nil {
		return err
	}

	var result string
	if direction == config.DirectionMarkdown {
		result = entrymd.HTMLToMarkdown(content)
		if limit := resolveTruncateLimit(f, cfg); limit > 0 {
			result = entrymd.Truncate(result, limit)
		}
	} else {
		result = entrymd.MarkdownToHTML(content)
	}

	outputPath := resolveOutputPath(f, cfg, args, inputPath, direction)
	if outputPath == "-" {
		if _, err := io.WriteString(stdout, result+"\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(result), 0o644); err != nil { // #nosec G306 -- converted documents are not secrets
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if !f.quiet {
		fmt.Fprintf(stdout, "Created %s\n", outputPath)
	}
	return nil
}

// readInput reads the input file, or stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// resolveDirection applies flag > config > extension > content-sniff
// precedence. Direction "md" means HTML input converted to Markdown.
func resolveDirection(f *cliFlags, cfg *config.Config, inputPath, content string) (string, error) {
	direction := f.to
	if direction == "" {
		direction = cfg.Convert.Direction
	}

	switch direction {
	case config.DirectionMarkdown, config.DirectionHTML:
		return direction, nil
	case "", config.DirectionAuto:
	default:
		return "", fmt.Errorf("%w: --to %q%s", ErrInvalidFlags, direction, hints.ForDirection())
	}

	switch {
	case fileutil.IsHTMLPath(inputPath):
		return config.DirectionMarkdown, nil
	case fileutil.IsMarkdownPath(inputPath):
		return config.DirectionHTML, nil
	case entrymd.ContainsHTML(content):
		return config.DirectionMarkdown, nil
	case content != "":
		return config.DirectionHTML, nil
	}
	return "", fmt.Errorf("%w%s", ErrUnknownDirection, hints.ForDirection())
}

// resolveTruncateLimit applies flag > config precedence for the Markdown
// output cap.
func resolveTruncateLimit(f *cliFlags, cfg *config.Config) int {
	if f.truncate > 0 {
		return f.truncate
	}
	if cfg.Truncate.Enabled {
		return cfg.Truncate.Limit
	}
	return 0
}

// resolveOutputPath picks the destination: --output, second positional,
// config default directory, or a sibling of the input with the swapped
// extension. Stdin input with no explicit destination writes to stdout.
func resolveOutputPath(f *cliFlags, cfg *config.Config, args []string, inputPath, direction string) string {
	if f.output != "" {
		return f.output
	}
	if len(args) > 1 {
		return args[1]
	}
	if inputPath == "-" {
		return "-"
	}

	ext := ".md"
	if direction == config.DirectionHTML {
		ext = ".html"
	}
	out := fileutil.SwapExtension(inputPath, ext)
	if cfg.Output.DefaultDir != "" {
		out = filepath.Join(cfg.Output.DefaultDir, filepath.Base(out))
	}
	return out
}
