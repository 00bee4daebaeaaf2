// Package main provides the netlog CLI for explaining network errors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "netlog",
	Short: "AI-powered network error translator",
	Long: `Netlog explains network errors in plain language using AI,
classifies them by category and severity, and suggests quick fixes.

Explanations are available in ten languages and can be converted
to speech.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(errorsCmd)
	rootCmd.AddCommand(versionCmd)
}
