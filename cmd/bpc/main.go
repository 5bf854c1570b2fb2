// Package main is the entry point for the bpc CLI client.
package main

import (
	"github.com/Ebun22/baxus-price-checker/cmd/bpc/cmd"
)

func main() {
	cmd.Execute()
}
