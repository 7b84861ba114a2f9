package main

import (
	"fmt"
	"os"

	"github.com/mizuki0629/rrcm/cmd/rrcm"
	"github.com/mizuki0629/rrcm/pkg/style"
)

func main() {
	rootCmd := rrcm.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ConflictStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
