package main

import (
	"fmt"
	"os"

	"github.com/kastheco/orgtheme/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
