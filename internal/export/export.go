package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"webaudit-srv/internal/model"
)

const (
	FormatJSON     = "json"
	FormatPDF      = "pdf"
	FormatKeywords = "keywords"

	ContentTypeJSON = "application/json"
	ContentTypePDF  = "application/pdf"
	ContentTypeText = "text/plain; charset=utf-8"
)

// ErrUnsupportedFormat is returned by Render for unknown formats.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Supported reports whether format names a known export format.
func Supported(format string) bool {
	switch strings.ToLower(format) {
	case FormatJSON, FormatPDF, FormatKeywords:
		return true
	}
	return false
}

// File is a rendered export ready for download or upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Render builds the export of r in the given format.
func Render(format string, r model.Report) (File, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := JSON(r)
		if err != nil {
			return File{}, err
		}
		return File{Name: JSONFileName(r), ContentType: ContentTypeJSON, Data: data}, nil
	case FormatPDF:
		var buf bytes.Buffer
		if err := PDF(r, &buf); err != nil {
			return File{}, err
		}
		return File{Name: PDFFileName(r), ContentType: ContentTypePDF, Data: buf.Bytes()}, nil
	case FormatKeywords:
		return File{Name: "keywords_" + Hostname(r) + ".txt", ContentType: ContentTypeText, Data: []byte(KeywordsText(r))}, nil
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// JSON serializes r with 2-space indentation. Key order follows the struct fields.
func JSON(r model.Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// JSONFileName is audit_report_<hostname>.json.
func JSONFileName(r model.Report) string {
	return "audit_report_" + Hostname(r) + ".json"
}

// PDFFileName is Audit_Report_<hostname>.pdf.
func PDFFileName(r model.Report) string {
	return "Audit_Report_" + Hostname(r) + ".pdf"
}

// Hostname returns the host of the report target, or "report" when it cannot be parsed.
func Hostname(r model.Report) string {
	u, err := url.Parse(r.TargetURL)
	if err != nil || u.Hostname() == "" {
		return "report"
	}
	return u.Hostname()
}

// KeywordsText is the plain text keyword list offered for copying.
func KeywordsText(r model.Report) string {
	var b strings.Builder
	b.WriteString("Commercial Keywords:\n")
	b.WriteString(strings.Join(r.Keywords, "\n"))
	b.WriteString("\n\nBlog Ideas:\n")
	if r.ContentStrategy != nil {
		b.WriteString(strings.Join(r.ContentStrategy.BlogTitles, "\n"))
	}
	return b.String()
}
