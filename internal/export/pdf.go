package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"webaudit-srv/internal/model"
)

const (
	fontFamily = "Helvetica"
	marginMM   = 15.0
	lineHeight = 5.0
)

type rgb struct{ r, g, b int }

var (
	colorInk     = rgb{30, 41, 59}
	colorMuted   = rgb{100, 116, 139}
	colorBorder  = rgb{203, 213, 225}
	colorGood    = rgb{34, 197, 94}
	colorFair    = rgb{245, 158, 11}
	colorPoor    = rgb{239, 68, 68}
	colorBanner  = rgb{15, 23, 42}
	colorBrandFg = rgb{56, 189, 248}
)

// PDF renders r as a multi-page A4 document and writes it to w.
func PDF(r model.Report, w io.Writer) error {
	host := Hostname(r)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM+5)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		setText(pdf, colorMuted)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Page %d of {nb} | %s: %s", pdf.PageNo(), footerBrand, host)),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	rd := &renderer{pdf: pdf, tr: tr}
	for _, b := range buildDocument(r) {
		rd.render(b)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export.PDF: %w", err)
	}
	return nil
}

type renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (rd *renderer) render(b block) {
	switch b.kind {
	case kindPageBreak:
		rd.pdf.AddPage()
	case kindBanner:
		rd.banner(b)
	case kindTitle:
		rd.title(b.text)
	case kindHeading:
		rd.heading(b.text)
	case kindField:
		rd.field(b.label, b.text)
	case kindParagraph:
		rd.paragraph(b.text)
	case kindBullets:
		rd.bullets(b.label, b.items)
	case kindScore:
		rd.scoreBadge(b)
	case kindSectionHeader:
		rd.sectionHeader(b)
	case kindTable:
		rd.table(b)
	}
}

func (rd *renderer) banner(b block) {
	pdf := rd.pdf
	pageW, _ := pdf.GetPageSize()
	setFill(pdf, colorBanner)
	pdf.Rect(0, 0, pageW, 40, "F")

	pdf.SetXY(marginMM, 12)
	pdf.SetFont(fontFamily, "B", 22)
	setText(pdf, colorBrandFg)
	pdf.CellFormat(0, 10, rd.tr(b.text), "", 1, "L", false, 0, "")
	pdf.SetX(marginMM)
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 6, rd.tr(b.label), "", 1, "L", false, 0, "")
	pdf.SetY(50)
}

func (rd *renderer) title(text string) {
	pdf := rd.pdf
	pdf.SetFont(fontFamily, "B", 18)
	setText(pdf, colorInk)
	pdf.MultiCell(0, 9, rd.tr(text), "", "L", false)
	pdf.Ln(3)
}

func (rd *renderer) heading(text string) {
	pdf := rd.pdf
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "B", 13)
	setText(pdf, colorInk)
	pdf.MultiCell(0, 7, rd.tr(text), "", "L", false)
	pdf.Ln(1)
}

func (rd *renderer) field(label, value string) {
	pdf := rd.pdf
	pdf.SetFont(fontFamily, "B", 10)
	setText(pdf, colorMuted)
	pdf.CellFormat(35, lineHeight+1, rd.tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	setText(pdf, colorInk)
	pdf.MultiCell(0, lineHeight+1, rd.tr(value), "", "L", false)
}

func (rd *renderer) paragraph(text string) {
	if text == "" {
		return
	}
	pdf := rd.pdf
	pdf.SetFont(fontFamily, "", 10)
	setText(pdf, colorInk)
	pdf.MultiCell(0, lineHeight, rd.tr(text), "", "L", false)
	pdf.Ln(2)
}

func (rd *renderer) bullets(label string, items []string) {
	pdf := rd.pdf
	if label != "" {
		pdf.SetFont(fontFamily, "B", 10)
		setText(pdf, colorInk)
		pdf.CellFormat(0, lineHeight+1, rd.tr(label), "", 1, "L", false, 0, "")
	}
	pdf.SetFont(fontFamily, "", 10)
	setText(pdf, colorInk)
	left, _, _, _ := pdf.GetMargins()
	for _, item := range items {
		pdf.SetX(left + 2)
		pdf.CellFormat(4, lineHeight, "-", "", 0, "L", false, 0, "")
		pdf.MultiCell(0, lineHeight, rd.tr(item), "", "L", false)
	}
	pdf.Ln(2)
}

func (rd *renderer) scoreBadge(b block) {
	pdf := rd.pdf
	left, _, _, _ := pdf.GetMargins()
	y := pdf.GetY() + 4
	const radius = 14.0
	setFill(pdf, scoreColor(b.score, b.max))
	pdf.Circle(left+radius, y+radius, radius, "F")

	pdf.SetFont(fontFamily, "B", 16)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(left, y+radius-4)
	pdf.CellFormat(2*radius, 8, fmt.Sprintf("%d/%d", b.score, b.max), "", 0, "C", false, 0, "")

	pdf.SetXY(left+2*radius+6, y+radius-4)
	pdf.SetFont(fontFamily, "B", 13)
	setText(pdf, colorInk)
	pdf.CellFormat(0, 8, rd.tr(b.text), "", 0, "L", false, 0, "")
	pdf.SetXY(left, y+2*radius+4)
}

func (rd *renderer) sectionHeader(b block) {
	pdf := rd.pdf
	pdf.Ln(3)
	pdf.SetFont(fontFamily, "B", 13)
	setText(pdf, colorInk)
	pdf.CellFormat(150, 8, rd.tr(b.text), "B", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "B", 11)
	setText(pdf, scoreColor(b.score, b.max))
	pdf.CellFormat(0, 8, fmt.Sprintf("Score: %d/%d", b.score, b.max), "B", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func (rd *renderer) table(b block) {
	pdf := rd.pdf
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	widths := make([]float64, len(b.widths))
	for i, f := range b.widths {
		widths[i] = f * usable
	}

	pdf.SetFont(fontFamily, "B", 9)
	setFill(pdf, colorInk)
	pdf.SetTextColor(255, 255, 255)
	rd.row(widths, b.headers, true)

	pdf.SetFont(fontFamily, "", 9)
	setText(pdf, colorInk)
	for _, row := range b.rows {
		rd.row(widths, row, false)
	}
	pdf.Ln(4)
}

// row draws one table row with every cell stretched to the tallest cell.
func (rd *renderer) row(widths []float64, cells []string, header bool) {
	pdf := rd.pdf
	texts := make([]string, len(cells))
	lines := 1
	for i, c := range cells {
		texts[i] = rd.tr(c)
		if n := len(pdf.SplitLines([]byte(texts[i]), widths[i])); n > lines {
			lines = n
		}
	}
	h := float64(lines)*lineHeight + 2

	_, pageH := pdf.GetPageSize()
	auto, breakMargin := pdf.GetAutoPageBreak()
	if pdf.GetY()+h > pageH-breakMargin {
		pdf.AddPage()
	}
	pdf.SetAutoPageBreak(false, breakMargin)
	defer pdf.SetAutoPageBreak(auto, breakMargin)

	left, _, _, _ := pdf.GetMargins()
	x, y := left, pdf.GetY()
	style := "D"
	if header {
		style = "FD"
	}
	pdf.SetDrawColor(colorBorder.r, colorBorder.g, colorBorder.b)
	for i, text := range texts {
		pdf.Rect(x, y, widths[i], h, style)
		pdf.SetXY(x, y+1)
		pdf.MultiCell(widths[i], lineHeight, text, "", "L", false)
		x += widths[i]
	}
	pdf.SetXY(left, y+h)
}

func scoreColor(score, maxScore int) rgb {
	if maxScore <= 0 {
		return colorPoor
	}
	pct := score * 100 / maxScore
	switch {
	case pct >= 80:
		return colorGood
	case pct >= 50:
		return colorFair
	default:
		return colorPoor
	}
}

func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
