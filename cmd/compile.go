package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/Olluo/renderman-bottle/config"
	"github.com/Olluo/renderman-bottle/scene"
	"github.com/Olluo/renderman-bottle/shader"
	"github.com/urfave/cli"
)

// Compile the OSL shaders used by the bottle materials.
func CompileShaders(ctx *cli.Context) error {
	setupLogging(ctx)

	goCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	dir := env.ShaderDir
	if ctx.String("dir") != "" {
		dir = ctx.String("dir")
	}

	compiler, err := newShaderCompiler(env, dir)
	if err != nil {
		return err
	}
	if _, err = compiler.CompileAll(goCtx); err != nil {
		return err
	}
	if !ctx.Bool("watch") {
		return nil
	}
	return compiler.Watch(goCtx, nil)
}

func newShaderCompiler(env config.Env, dir string) (*shader.Compiler, error) {
	command, err := env.Tool(env.Oslc)
	if err != nil {
		return nil, err
	}
	return shader.NewCompiler(dir, command, nil)
}

// Compile stale shaders when requested and make sure every custom shader the
// layout uses has been compiled. When compilation is skipped, missing shaders
// are logged instead of failing the render.
func prepareShaders(ctx context.Context, env config.Env, layout scene.Layout, compile bool) error {
	compiler, err := newShaderCompiler(env, env.ShaderDir)
	if err != nil {
		return err
	}
	if compile {
		if _, err = compiler.CompileAll(ctx); err != nil {
			return err
		}
	}

	if err = compiler.Check(layout.Shaders()); err != nil {
		if compile {
			return err
		}
		logger.Warning(err)
	}
	return nil
}
