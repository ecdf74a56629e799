package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
)

// barReporter prints one line per pipeline step and a progress bar over the
// topic lookups.
type barReporter struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func newBarReporter(out io.Writer) *barReporter {
	return &barReporter{out: out}
}

func (r *barReporter) Stage(step jobModel.InternalStatus) {
	switch step {
	case jobModel.ExtractText:
		fmt.Fprintln(r.out, color.CyanString("Extracting text..."))
	case jobModel.DetectTopics:
		fmt.Fprintln(r.out, color.CyanString("Detecting topics..."))
	case jobModel.FetchResources:
		fmt.Fprintln(r.out, color.CyanString("Finding resources..."))
	}
}

func (r *barReporter) Advance(done int, total int, topic string) {
	if r.bar == nil {
		r.bar = newTopicBar(r.out, total)
	}
	r.bar.Describe(color.BlueString(topic))
	_ = r.bar.Set(done)
}

// Finish closes the bar, if one was started, so the guide starts on a clean line.
func (r *barReporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	fmt.Fprintln(r.out)
}

func newTopicBar(out io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetItsString("topics"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
