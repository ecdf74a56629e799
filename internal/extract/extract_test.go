package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDocTypeOf(t *testing.T) {
	tests := []struct {
		path     string
		expected commonModels.DocType
	}{
		{"syllabus.pdf", commonModels.PDF},
		{"SYLLABUS.PDF", commonModels.PDF},
		{"course.docx", commonModels.DOCX},
		{"course.odt", commonModels.DOCX},
		{"course.rtf", commonModels.DOCX},
		{"notes.txt", commonModels.TXT},
		{"notes.md", commonModels.TXT},
		{"scan.png", commonModels.ERR},
		{"no_extension", commonModels.ERR},
	}

	for _, tt := range tests {
		if got := DocTypeOf(tt.path); got != tt.expected {
			t.Errorf("DocTypeOf(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestExtract_PlainText(t *testing.T) {
	path := writeFile(t, "syllabus.txt", "Course Outline\nUnit 1: Arrays and Lists\n1. Binary Search\n")

	text := NewExtractor().Extract(path)

	if !strings.Contains(text, "Unit 1: Arrays and Lists") {
		t.Errorf("expected unit line in extracted text, got %q", text)
	}
	if !strings.Contains(text, "1. Binary Search") {
		t.Errorf("expected numbered line in extracted text, got %q", text)
	}
}

func TestExtract_FailuresYieldEmptyText(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "gone.pdf") }},
		{"corrupt pdf", func(t *testing.T) string { return writeFile(t, "broken.pdf", "this is not a pdf at all") }},
		{"unsupported type", func(t *testing.T) string { return writeFile(t, "scan.png", "\x89PNG") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := NewExtractor().Extract(tt.path(t))
			if text != "" {
				t.Errorf("expected empty text, got %q", text)
			}
			if !IsBlank(text) {
				t.Error("empty text should be blank")
			}
		})
	}
}

func TestExtract_WhitespaceOnlyIsBlank(t *testing.T) {
	path := writeFile(t, "blank.txt", "   \n\t\n   ")

	if text := NewExtractor().Extract(path); !IsBlank(text) {
		t.Errorf("expected blank text, got %q", text)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{" \n\t\r\n", true},
		{"Unit 1", false},
		{"\n\nx\n", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.text); got != tt.want {
			t.Errorf("IsBlank(%q) = %v; want %v", tt.text, got, tt.want)
		}
	}
}

func TestJoinPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []rawPage
		want  string
	}{
		{"no pages", nil, ""},
		{"single page", []rawPage{{Number: 1, Content: "Unit 1: Arrays"}}, "Unit 1: Arrays"},
		{
			"separator added between pages",
			[]rawPage{{Number: 1, Content: "Unit 1: Arrays"}, {Number: 2, Content: "Unit 2: Trees"}},
			"Unit 1: Arrays\nUnit 2: Trees",
		},
		{
			"no double newline when page already ends with one",
			[]rawPage{{Number: 1, Content: "Unit 1: Arrays\n"}, {Number: 2, Content: "Unit 2: Trees\n"}},
			"Unit 1: Arrays\nUnit 2: Trees\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinPages(tt.pages); got != tt.want {
				t.Errorf("joinPages() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("course.pdf") || !IsSupported("course.docx") {
		t.Error("pdf and docx uploads must be supported")
	}
	if IsSupported("course.exe") {
		t.Error("executables must be rejected")
	}
}
