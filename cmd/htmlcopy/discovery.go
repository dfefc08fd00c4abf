package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htmlcopy/internal/fileutil"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrInvalidExtension = errors.New("file must have .html, .htm, .md or .markdown extension")
)

// stdinInput is the positional argument that reads from standard input.
const stdinInput = "-"

// copySuffix is inserted before the extension of outputs written next to
// their input, so an .html input is never overwritten.
const copySuffix = ".copy"

// FileToApply represents a single input to rewrite.
// An empty OutputPath writes to standard output.
type FileToApply struct {
	InputPath  string
	OutputPath string
	Kind       int
}

// discoverFiles expands the inputs into files to process. Directories are
// walked for HTML and Markdown files; explicit files must have one of those
// extensions.
func discoverFiles(inputs []string, output string) ([]FileToApply, error) {
	if len(inputs) == 1 && inputs[0] == stdinInput {
		return []FileToApply{{InputPath: stdinInput, OutputPath: output, Kind: fileutil.KindHTML}}, nil
	}

	var files []FileToApply
	for _, input := range inputs {
		if input == stdinInput {
			return nil, fmt.Errorf("%w: %q must be the only input", ErrNoInput, stdinInput)
		}
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			kind := fileutil.InputKind(input)
			if kind == fileutil.KindUnknown {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(input))
			}
			files = append(files, FileToApply{InputPath: input, Kind: kind})
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			kind := fileutil.InputKind(path)
			if kind == fileutil.KindUnknown || strings.HasSuffix(trimExt(path), copySuffix) {
				return nil
			}
			files = append(files, FileToApply{
				InputPath:  path,
				OutputPath: resolveOutputPath(path, output, input),
				Kind:       kind,
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// A single explicit file without -o goes to stdout.
	if len(inputs) == 1 && len(files) == 1 && files[0].OutputPath == "" && output == "" {
		return files, nil
	}
	for i := range files {
		if files[i].OutputPath == "" {
			files[i].OutputPath = resolveOutputPath(files[i].InputPath, output, "")
		}
	}
	return files, nil
}

// resolveOutputPath determines the output path for an input file.
//
//   - no output: next to the input, as name.copy.html
//   - output ending in .html: that file
//   - otherwise: output is a directory mirroring baseInputDir
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	base := filepath.Base(trimExt(inputPath))

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), base+copySuffix+".html")
	}

	if fileutil.InputKind(output) == fileutil.KindHTML {
		return output
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(output, filepath.Dir(relPath), base+".html")
		}
	}
	return filepath.Join(output, base+".html")
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
