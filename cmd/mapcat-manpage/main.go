package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/mapcat/cmd/mapcat"
	"github.com/arthur-debert/mapcat/internal/version"
)

func main() {
	rootCmd := mapcat.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MAPCAT",
		Section: "1",
		Source:  "mapcat " + version.Version,
		Manual:  "mapcat manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
