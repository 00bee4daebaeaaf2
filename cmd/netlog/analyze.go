package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Humam-hub/network-log-translator/internal/classifier"
	"github.com/Humam-hub/network-log-translator/internal/explain"
	"github.com/Humam-hub/network-log-translator/internal/language"
	"github.com/Humam-hub/network-log-translator/internal/llm"
)

var (
	analyzeLanguage string
	analyzeJSON     bool
	analyzeCopy     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <error text>",
	Short: "Explain a network error and suggest a quick fix",
	Long: `Analyze sends the error text to the AI assistant, prints the
explanation in the selected language, and classifies the result.

Examples:
  netlog analyze "Connection Refused"
  netlog analyze "DNS_PROBE_FINISHED_NO_INTERNET" --language Spanish
  netlog analyze "SSL Handshake Failed" --copy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeLanguage, "language", "l", "English", "Output language")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeCopy, "copy", false, "Copy the quick fix command to the clipboard")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("please enter error details")
	}

	if !language.IsSupported(analyzeLanguage) {
		return fmt.Errorf("unsupported language: %s (run 'netlog languages' for the list)", analyzeLanguage)
	}

	client, err := llm.NewGroqClientFromEnv()
	if err != nil {
		return err
	}
	requester := explain.NewRequester(client, 0)

	interactive := isatty.IsTerminal(os.Stderr.Fd())

	var s *spinner.Spinner
	if interactive {
		s = spinner.New(spinner.CharSets[11], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr))
		s.Suffix = " Analyzing error..."
		s.Start()
	}

	langCode := language.FallbackCode(analyzeLanguage)
	explanation, err := requester.Explain(context.Background(), text, langCode)

	if s != nil {
		s.Stop()
	}
	if err != nil {
		return fmt.Errorf("failed to generate explanation: %w", err)
	}

	category := classifier.Classify(explanation)
	severity := classifier.DetectSeverity(explanation)
	quickFix := classifier.QuickFixFor(category)

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"error":       text,
			"explanation": explanation,
			"category":    category,
			"severity":    severity,
			"quick_fix":   quickFix,
		})
	}

	printResult(explanation, category, severity, quickFix)

	if analyzeCopy {
		if err := clipboard.WriteAll(quickFix); err != nil {
			fmt.Fprintf(os.Stderr, "could not copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Command copied to clipboard!")
		}
	}

	return nil
}

func printResult(explanation string, category classifier.Category, severity classifier.Severity, quickFix string) {
	severityColor := map[classifier.Severity]*color.Color{
		classifier.SeverityCritical: color.New(color.FgRed, color.Bold),
		classifier.SeverityWarning:  color.New(color.FgYellow, color.Bold),
		classifier.SeverityInfo:     color.New(color.FgGreen, color.Bold),
	}[severity]

	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	severityColor.Printf("%s Issue\n", severity)
	bold.Printf("Category: %s\n\n", category)

	fmt.Println(explanation)
	fmt.Println()

	bold.Println("Quick fix:")
	fmt.Printf("  %s\n", quickFix)
	dim.Println("  (use --copy to copy this command)")
}
