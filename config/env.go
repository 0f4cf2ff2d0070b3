// Package config reads tool locations from the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-shellwords"
)

// Env holds the environment driven configuration.
type Env struct {
	// Root of the RenderMan installation. Bare tool names are looked up in
	// its bin directory when set.
	RenderManTree string `env:"RMANTREE"`

	// Commands used to render RIB streams and compile shaders. They may
	// include arguments, e.g. "prman -progress".
	Prman string `env:"BOTTLE_PRMAN" envDefault:"prman"`
	Oslc  string `env:"BOTTLE_OSLC" envDefault:"oslc"`

	// Directory containing the OSL shader sources.
	ShaderDir string `env:"BOTTLE_SHADER_DIR" envDefault:"shaders"`
}

// ParseEnv loads the configuration from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Tool splits command into arguments. A bare executable name is resolved
// against $RMANTREE/bin when RenderManTree is set.
func (e Env) Tool(command string) ([]string, error) {
	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("config: invalid command %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, errors.New("config: empty command")
	}
	if e.RenderManTree != "" && !strings.ContainsRune(args[0], '/') && !strings.ContainsRune(args[0], filepath.Separator) {
		args[0] = filepath.Join(e.RenderManTree, "bin", args[0])
	}
	return args, nil
}
