package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-check/pkg/imports"
	"github.com/siyuan-infoblox/py-imports-check/pkg/utils"
)

type FormatterConfig struct {
	FilePath    string          // path to the Python source file
	Check       bool            // only report issues, never modify files
	Diff        bool            // print a unified diff instead of modifying files
	Options     imports.Options // how imports are rewritten
	Extensions  []string        // file extensions considered when walking directories
	ExcludeDirs []string        // directory names skipped when walking directories
	Stdout      io.Writer       // destination of diagnostics and diffs, os.Stdout when nil
	Logger      *log.Logger     // progress messages, stderr when nil
}

// formatter runs the import checker over files
type formatter struct {
	config   FormatterConfig
	checker  *imports.Checker
	reporter imports.Reporter
	logger   *log.Logger
}

// New creates a new formatter with the given configuration
func New(config FormatterConfig) *formatter {
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pic"})
	}
	return &formatter{
		config:   config,
		checker:  imports.New(config.Options),
		reporter: imports.NewWriterReporter(config.Stdout),
		logger:   config.Logger,
	}
}

func (g *formatter) getFilePath() string {
	return g.config.FilePath
}

// Result describes what happened to one source
type Result struct {
	Valid   bool
	Changed bool
	Output  string // the rewritten source, or the original one when nothing was rewritten
}

// ProcessSource checks the source of filename and, unless in check mode,
// splits and sorts its imports. Diagnostics are written to the configured output.
func (g *formatter) ProcessSource(filename, src string) Result {
	if g.config.Check {
		valid := g.checker.CheckOnly(filename, src, g.reporter)
		return Result{Valid: valid, Output: src}
	}

	valid, out := g.checker.CheckAndSort(filename, src, g.reporter)
	return Result{Valid: valid, Changed: out != src, Output: out}
}

// ProcessFile processes the configured file
func (g *formatter) ProcessFile() error {
	path := g.getFilePath()
	g.logger.Debug("processing", "file", path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	res := g.ProcessSource(path, string(src))
	if !res.Valid {
		if !g.config.Check {
			g.logger.Warnf(errors.InfoMsgInvalid, path)
		}
		return fmt.Errorf("%s: %s", errors.ErrMsgInvalidImports, path)
	}

	if !res.Changed {
		g.logger.Debugf(errors.InfoMsgUnchanged, path)
		return nil
	}

	if g.config.Diff {
		d, err := unifiedDiff(path, string(src), res.Output)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenderDiff, err)
		}
		fmt.Fprint(g.config.Stdout, d)
		return nil
	}

	if err := os.WriteFile(path, []byte(res.Output), info.Mode().Perm()); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	g.logger.Infof(errors.InfoMsgReordered, path)
	return nil
}

// ProcessFiles processes multiple source files and reports how many failed
func (g *formatter) ProcessFiles(filePaths []string) error {
	processedCount := 0
	errorCount := 0

	for _, filePath := range filePaths {
		g.config.FilePath = filePath
		if err := g.ProcessFile(); err != nil {
			g.logger.Errorf(errors.InfoMsgErrorProcessing, filePath, err)
			errorCount++
		} else {
			processedCount++
		}
	}

	g.logger.Infof(errors.InfoMsgProcessedCount, processedCount)
	if errorCount > 0 {
		g.logger.Warnf(errors.InfoMsgErrorCount, errorCount)
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPath processes a file or every source file below a directory
func (g *formatter) ProcessPath(path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		g.config.FilePath = path
		return g.ProcessFile()
	}

	files, err := utils.FindPythonFiles(path, g.config.Extensions, g.config.ExcludeDirs)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindFiles, err)
	}

	if len(files) == 0 {
		g.logger.Infof(errors.InfoMsgNoFilesFound, path)
		return nil
	}

	g.logger.Infof(errors.InfoMsgFoundFiles, len(files), path)
	return g.ProcessFiles(files)
}

// unifiedDiff renders the change between before and after
func unifiedDiff(path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}
