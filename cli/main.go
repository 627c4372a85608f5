package main

import (
	"os"

	"github.com/vippsas/docwiki/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
