// Package extract turns an uploaded syllabus into raw text. Failures never
// propagate: the caller gets an empty string and the reason is logged.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/StudyGuideAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyGuideAPI/internal/metrics"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("TextExtractor")

// Extractor is the default text extractor backed by dslipak/pdf and lu4p/cat.
type Extractor struct{}

func NewExtractor() *Extractor {
	logger = logger_i.NewLogger("TextExtractor")
	return &Extractor{}
}

// Extract returns the text of every page of the document at path, in page order.
// Any failure yields "".
func (e *Extractor) Extract(path string) (text string) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_extraction", time.Since(start)) }()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Document parser panicked", "path", path, "panic", r)
			text = ""
		}
	}()

	pages, err := extractPages(path, DocTypeOf(path))
	if err != nil {
		logger.Error("Error opening or reading document", "path", path, "error", err)
		return ""
	}

	text = joinPages(pages)
	if IsBlank(text) {
		logger.Warn("No text could be extracted. The document might be image-based.", "path", path, "pages", len(pages))
	}
	return text
}

// IsBlank reports whether text has nothing but whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// DocTypeOf picks the parser from the file extension.
func DocTypeOf(docPath string) commonModels.DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return commonModels.PDF
	case ".docx", ".odt", ".rtf":
		return commonModels.DOCX
	case ".txt", ".md":
		return commonModels.TXT
	default:
		return commonModels.ERR
	}
}

// IsSupported is what the upload handler checks before staging a file.
func IsSupported(name string) bool {
	return DocTypeOf(name) != commonModels.ERR
}

func extractPages(path string, contentType commonModels.DocType) ([]rawPage, error) {
	switch contentType {
	case commonModels.PDF:
		return extractPDF(path)
	case commonModels.DOCX, commonModels.TXT:
		return extractPlainDocument(path)
	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}

// joinPages keeps a line break between pages so the last line of one page never
// runs into the first line of the next.
func joinPages(pages []rawPage) string {
	var b strings.Builder
	for i, p := range pages {
		if i > 0 && !strings.HasSuffix(pages[i-1].Content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(p.Content)
	}
	return b.String()
}
