// Package main is the study guide CLI. It runs the same pipeline as the API,
// in-process, for a single file.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

// version is set at build time via ldflags.
var version = config.AppVersion

var rootCmd = &cobra.Command{
	Use:   "guide",
	Short: "Build a study guide from a syllabus",
	Long: `guide reads a syllabus (pdf, docx, odt, rtf, txt or md), detects its topics and
looks up videos and articles for each one. Search keys are read from the
environment or a dotenv file:

  YOUTUBE_API_KEY, GOOGLE_SEARCH_API_KEY, SEARCH_ENGINE_ID`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger_i.InitWithWriter(cmd.ErrOrStderr(), level)
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "dotenv file with the search API keys")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log pipeline details to stderr")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
