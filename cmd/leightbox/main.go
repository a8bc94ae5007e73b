package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	opts := &rootOptions{}
	err := fang.Execute(context.Background(), newRootCmd(opts))
	if closeErr := opts.teardown(); closeErr != nil {
		fmt.Fprintln(os.Stderr, closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
