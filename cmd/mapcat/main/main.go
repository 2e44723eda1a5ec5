package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/mapcat/cmd/mapcat"
	"github.com/arthur-debert/mapcat/pkg/style"
)

func main() {
	rootCmd := mapcat.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	// check-var already reported its failure
	if mapcat.IsCheckFailure(err) {
		return 1
	}

	styles := style.New(style.NewRenderer(os.Stderr, mapcat.IsTerminal(os.Stderr)))
	fmt.Fprintln(os.Stderr, styles.Label("ERROR")+" "+err.Error())
	return 1
}
