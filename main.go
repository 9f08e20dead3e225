package main

import (
	"context"
	"fmt"
	"os"

	"github.com/secmon-lab/atodeyomu/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
