package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/internal/extract"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
	"github.com/akolanti/StudyGuideAPI/internal/resources"
	"github.com/akolanti/StudyGuideAPI/internal/topics"
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Build a study guide for one syllabus",
	Long: `build stages a copy of the file, extracts its text, detects topics and finds
resources for each topic, one topic per delay interval. The original file is
never modified. Warnings such as "no topics found" are printed and do not fail
the command.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("format", "f", formatText, "output format: text, markdown or json")
	buildCmd.Flags().Duration("delay", config.TopicLookupDelay, "pause between topic lookups")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if !isKnownFormat(format) {
		return fmt.Errorf("unknown format %q, expected text, markdown or json", format)
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	envFile, _ := cmd.Flags().GetString("env-file")

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	staged, err := stageCopy(args[0])
	if err != nil {
		fmt.Fprintln(errOut, color.RedString("Could not read %s: %v", args[0], err))
		return err
	}

	creds, err := config.LoadCredentials(envFile)
	if err != nil {
		fmt.Fprintln(errOut, color.YellowString("Ignoring %s: %v", envFile, err))
	}
	if !creds.Complete() {
		fmt.Fprintln(errOut, color.YellowString("Missing search keys: %v", creds.Missing()))
	}

	finder, err := resources.NewGoogleFinder(cmd.Context(), creds)
	if err != nil {
		os.Remove(staged)
		return err
	}
	service := guide.NewService(
		extract.NewExtractor(),
		topics.NewDetector(nil),
		finder,
		delay,
	)

	reporter := newBarReporter(errOut)
	start := time.Now()
	studyGuide, err := service.BuildGuide(cmd.Context(), staged, reporter)
	reporter.Finish()

	switch {
	case guide.IsWarning(err):
		color.New(color.FgYellow).Fprintln(out, guide.WarningMessage(err))
		return nil
	case err != nil:
		fmt.Fprintln(errOut, color.RedString("Guide incomplete after %d topics: %v", len(studyGuide.Entries), err))
	default:
		fmt.Fprintln(errOut, color.GreenString("Found %d topics in %s", len(studyGuide.Entries), time.Since(start).Round(time.Millisecond)))
	}

	return writeGuide(out, studyGuide, format)
}

// stageCopy copies the user's file into the staging dir so the pipeline can
// delete its input without touching the original.
func stageCopy(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return guide.StageDocument(guide.StagingDir(config.StagingDirName), filepath.Base(path), f)
}
