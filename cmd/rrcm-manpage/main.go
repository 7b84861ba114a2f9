package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/mizuki0629/rrcm/cmd/rrcm"
	"github.com/mizuki0629/rrcm/internal/version"
)

func main() {
	rootCmd := rrcm.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RRCM",
		Section: "1",
		Source:  "rrcm " + version.Version,
		Manual:  "rrcm manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
