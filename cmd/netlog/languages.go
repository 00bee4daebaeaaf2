package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Humam-hub/network-log-translator/internal/classifier"
	"github.com/Humam-hub/network-log-translator/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported output languages",
	Run: func(cmd *cobra.Command, args []string) {
		bold := color.New(color.Bold)
		for _, l := range language.Supported() {
			bold.Printf("%-12s", l.Name)
			fmt.Printf(" %s\n", l.Code)
		}
	},
}

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "List common network errors",
	Run: func(cmd *cobra.Command, args []string) {
		bold := color.New(color.Bold)
		for _, e := range classifier.CommonErrors() {
			bold.Println(e.Name)
			fmt.Printf("  %s\n", e.Description)
		}
	},
}
