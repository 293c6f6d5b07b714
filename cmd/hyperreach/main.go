// SPDX-License-Identifier: MIT

// Command hyperreach computes minimal temporal distances in code-review
// communication networks.
//
//	hyperreach run --select trivago --workers 8
//	hyperreach query --network data/networks/trivago.json.bz2 --source 42
//	hyperreach generate --vertices 50 --hyperedges 400 --output net.json.gz
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
