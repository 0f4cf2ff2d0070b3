package cmd

import (
	"github.com/Olluo/renderman-bottle/log"
	"github.com/urfave/cli"
)

var logger = log.New("bottle")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.Verbosity(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}
