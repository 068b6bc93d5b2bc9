package main

import (
	"fmt"
	"log/slog"
	"os"

	"picedit/edit"
	"picedit/orient"
	"picedit/parallel"
	"picedit/picture"

	"github.com/alecthomas/kong"
)

type opsCmd struct{}

func (opsCmd) Run() error {
	fmt.Print(edit.Usage())
	return nil
}

type cli struct {
	Workers  int    `help:"Number of pictures processed in parallel, 0 for one per CPU" default:"0"`
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`

	Edit   edit.CLICmd   `cmd:"" help:"Apply a chain of operations to every picture of a folder"`
	Orient orient.CLICmd `cmd:"" help:"Sort pictures by orientation"`
	Ops    opsCmd        `cmd:"" help:"List the operations accepted by edit --op"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("picedit"),
		kong.Description("Batch picture editor"),
		kong.UsageOnError(),
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		kctx.FatalIfErrorf(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	picture.SetLogger(logger)

	pool := parallel.Start(c.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(parallel.WorkerFunc(pool.Do), parallel.WaitFunc(pool.Wait))
	pool.Wait(true)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
