package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/compozy/capnames/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	cmd := cli.RootCmd()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.PrintError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
