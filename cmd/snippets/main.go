package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/snippets/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	c := cli.New(cli.NewApp, os.Stdin, os.Stdout, os.Stderr)
	code := c.Execute(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
