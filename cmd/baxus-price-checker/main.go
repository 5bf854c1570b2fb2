// Package main is the entry point for the baxus-price-checker server.
package main

import (
	"os"

	"github.com/Ebun22/baxus-price-checker/cmd/baxus-price-checker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
