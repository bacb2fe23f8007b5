// SPDX-License-Identifier: MIT

// Command fxarb detects currency arbitrage in exchange-rate matrices.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/fxarb/internal/cli"
	"github.com/katalvlaran/fxarb/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
