package main

import (
	"fmt"
	"os"

	"primed/internal/ctl"
)

func main() {
	if err := ctl.BuildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
