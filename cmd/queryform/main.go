package main

import (
	"context"
	"os"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := newRootCommand(a).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
