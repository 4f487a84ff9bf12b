package xcspec

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/logger"
)

// Placeholders substituted into the converter command line.
const (
	InputPlaceholder  = "{input}"
	OutputPlaceholder = "{output}"
)

// DefaultConverterCommand converts a spec file to an XML property list with plutil.
const DefaultConverterCommand = "plutil -convert xml1 -o {output} {input}"

// Converter runs an external tool that rewrites a vendor spec file as a
// property list. Every conversion happens in its own temporary directory,
// which is removed however the conversion ends.
type Converter struct {
	// Command is a shell-quoted command line with {input} and {output} placeholders
	Command string
	// TempDir is the parent of the per-conversion directories ("" = os.TempDir())
	TempDir string

	log *zap.SugaredLogger
}

// NewConverter creates a converter for command.
func NewConverter(command string, log *zap.SugaredLogger) *Converter {
	if command == "" {
		command = DefaultConverterCommand
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Converter{Command: command, log: log}
}

// Args expands the command line for the given input and output paths.
func (c *Converter) Args(input, output string) ([]string, error) {
	words, err := shellquote.Split(c.Command)
	if err != nil {
		return nil, errors.WrapConversion(err, "invalid converter command %q", c.Command)
	}
	if len(words) == 0 {
		return nil, errors.Wrap(errors.ErrConversionFailed, "converter command is empty")
	}
	if !strings.Contains(c.Command, InputPlaceholder) || !strings.Contains(c.Command, OutputPlaceholder) {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrConversionFailed, "converter command %q lacks placeholders", c.Command),
			"use %s and %s in converter.command", InputPlaceholder, OutputPlaceholder)
	}

	replacer := strings.NewReplacer(InputPlaceholder, input, OutputPlaceholder, output)
	for i, w := range words {
		words[i] = replacer.Replace(w)
	}
	return words, nil
}

// Convert copies path into a fresh temporary directory, runs the converter
// and passes the converted file to use. The directory is deleted before
// Convert returns, on success and on failure alike.
func (c *Converter) Convert(ctx context.Context, path string, use func(converted string) error) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewInputNotFound("spec file %s does not exist", path)
		}
		return errors.Wrapf(errors.Mark(err, errors.ErrInputNotFound), "failed to stat %s", path)
	}

	dir, err := os.MkdirTemp(c.TempDir, "xcsettings-convert-*")
	if err != nil {
		return errors.WrapConversion(err, "failed to create conversion directory")
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			c.log.Warnw("Failed to remove conversion directory",
				logger.FieldPath, dir, logger.FieldError, rmErr)
		}
	}()

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := strings.ToLower(strings.ReplaceAll(stem, " ", ""))
	if name == "" {
		name = "spec"
	}
	input := filepath.Join(dir, name+filepath.Ext(path))
	output := filepath.Join(dir, name+".plist")

	if err := copyFile(path, input); err != nil {
		return errors.WrapConversion(err, "failed to stage %s", path)
	}

	args, err := c.Args(input, output)
	if err != nil {
		return err
	}

	c.log.Debugw("Running converter", logger.FieldCommand, shellquote.Join(args...))
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.WithDetail(
			errors.WrapConversion(err, "converter failed for %s", path),
			strings.TrimSpace(string(out)))
	}

	info, err := os.Stat(output)
	if err != nil || info.Size() == 0 {
		return errors.Wrapf(errors.ErrConversionFailed, "converter produced no output for %s", path)
	}

	return use(output)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
