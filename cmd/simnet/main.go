package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			// Interrupted builds already logged their partial state.
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "simnet:", err)
		os.Exit(1)
	}
}
