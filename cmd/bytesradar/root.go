// Command bytesradar counts lines of code across a remote source
// repository without ever checking it out to disk.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "bytesradar",
	Short:   "Remote repository line-count analyzer",
	Long:    `bytesradar turns a repository reference into a per-language line-count report by streaming its archive over HTTP — no clone, no disk extraction.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
