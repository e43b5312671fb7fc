package main

import (
	"context"
	"os"

	"github.com/m-mizutani/relnote/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
