package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Humam-hub/network-log-translator/internal/language"
	"github.com/Humam-hub/network-log-translator/internal/speech"
)

var (
	speakLanguage string
	speakOut      string
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Convert text to speech and save it as an MP3",
	Long: `Speak synthesizes the given text in the selected language and
writes the audio to a file.

Examples:
  netlog speak "DNS resolution failed" --out explanation.mp3
  netlog speak "Se rechazó la conexión" --language Spanish`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSpeak,
}

func init() {
	speakCmd.Flags().StringVarP(&speakLanguage, "language", "l", "English", "Speech language")
	speakCmd.Flags().StringVarP(&speakOut, "out", "o", "explanation.mp3", "Output MP3 path")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("text required")
	}

	if !language.IsSupported(speakLanguage) {
		return fmt.Errorf("unsupported language: %s (run 'netlog languages' for the list)", speakLanguage)
	}

	synth := speech.NewSynthesizer()
	audio, err := synth.Synthesize(context.Background(), text, language.FallbackCode(speakLanguage))
	if err != nil {
		return err
	}
	defer audio.Close()

	src, err := audio.Open()
	if err != nil {
		return fmt.Errorf("failed to read audio: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(speakOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Saved speech to %s\n", speakOut)
	return nil
}
