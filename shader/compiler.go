// Package shader compiles OSL shader sources with an external compiler.
package shader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Olluo/renderman-bottle/log"
)

const (
	SourceExt   = ".osl"
	CompiledExt = ".oso"
)

var (
	ErrNoCommand     = errors.New("shader: no compiler command specified")
	ErrCompileFailed = errors.New("shader: compilation failed")
	ErrNotCompiled   = errors.New("shader: compiled shader not found")
)

// Shaders with this prefix ship with RenderMan.
const builtinPrefix = "Pxr"

// A Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Compiler turns .osl sources into .oso files, skipping sources whose
// compiled output is up to date.
type Compiler struct {
	// Directory containing the shader sources. Compiled shaders are
	// written next to their sources.
	SourceDir string

	// The compiler executable and any extra arguments.
	Command []string

	run    Runner
	logger log.Logger
}

// NewCompiler creates a compiler for the sources in sourceDir. If run is nil,
// the command is executed as a child process.
func NewCompiler(sourceDir string, command []string, run Runner) (*Compiler, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, ErrNoCommand
	}
	if run == nil {
		run = execRunner
	}
	return &Compiler{
		SourceDir: sourceDir,
		Command:   command,
		run:       run,
		logger:    log.New("shader compiler"),
	}, nil
}

// Sources lists the shader sources in lexical order.
func (c *Compiler) Sources() ([]string, error) {
	sources, err := filepath.Glob(filepath.Join(c.SourceDir, "*"+SourceExt))
	if err != nil {
		return nil, err
	}
	sort.Strings(sources)
	return sources, nil
}

// Output returns the compiled shader path for src.
func Output(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + CompiledExt
}

// Stale reports whether src needs to be compiled: its output is missing or
// older than the source.
func (c *Compiler) Stale(src string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, err
	}
	outInfo, err := os.Stat(Output(src))
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	} else if err != nil {
		return false, err
	}
	return outInfo.ModTime().Before(srcInfo.ModTime()), nil
}

// Compile src unconditionally.
func (c *Compiler) Compile(ctx context.Context, src string) error {
	args := append(append([]string{}, c.Command[1:]...), "-o", Output(src), src)
	c.logger.Infof("compiling %s", src)
	out, err := c.run(ctx, c.Command[0], args...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("%w: %s: %s", ErrCompileFailed, src, msg)
	}
	return nil
}

// CompileAll compiles every stale source and returns the number of shaders
// compiled. It stops at the first failure.
func (c *Compiler) CompileAll(ctx context.Context) (int, error) {
	sources, err := c.Sources()
	if err != nil {
		return 0, err
	}

	compiled := 0
	for _, src := range sources {
		stale, err := c.Stale(src)
		if err != nil {
			return compiled, err
		}
		if !stale {
			c.logger.Debugf("%s is up to date", src)
			continue
		}
		if err = c.Compile(ctx, src); err != nil {
			return compiled, err
		}
		compiled++
	}

	c.logger.Noticef("compiled %d of %d shaders", compiled, len(sources))
	return compiled, nil
}

// Check verifies that every custom shader in names has a compiled output in
// the source directory. RenderMan's own shaders are skipped.
func (c *Compiler) Check(names []string) error {
	var missing []string
	for _, name := range names {
		if strings.HasPrefix(name, builtinPrefix) {
			continue
		}
		if _, err := os.Stat(filepath.Join(c.SourceDir, name+CompiledExt)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) != 0 {
		return fmt.Errorf("%w in %s: %s", ErrNotCompiled, c.SourceDir, strings.Join(missing, ", "))
	}
	return nil
}
