package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/pkg/cli"
	"github.com/willbeason/escape-fractal/pkg/config"
	"github.com/willbeason/escape-fractal/pkg/console"
)

func mainCmd() *cobra.Command {
	return cli.NewCommand(config.Mandelbrot)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		console.Error(err)
		os.Exit(1)
	}
}
