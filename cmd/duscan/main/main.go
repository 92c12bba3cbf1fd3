package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/duscan/cmd/duscan"
	"github.com/arthur-debert/duscan/pkg/style"
)

func main() {
	rootCmd := duscan.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
