package main

import (
	"context"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	err := newRootCmd().ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
