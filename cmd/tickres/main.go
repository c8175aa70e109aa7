// Package main is the entry point for the tickres application
package main

import (
	"fmt"
	"os"

	"github.com/ethpandaops/tickres/cmd"
	"github.com/ethpandaops/tickres/internal/config"
)

func main() {
	if err := config.LoadEnvFile(""); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Initialize cmd.Logger after loading env file
	cmd.InitLogger()
	cmd.Execute()
}
