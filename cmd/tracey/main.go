package main

import (
	"fmt"
	"os"

	"traceytext/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tracey: %v\n", err)
		os.Exit(1)
	}
}
