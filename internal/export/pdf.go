package export

import (
	"io"
	"strconv"

	"github.com/advisorly/advisor-session/internal"
	"github.com/go-pdf/fpdf"
)

// Page geometry, in millimeters on A4
const (
	pdfMargin       = 20.0
	pdfLineHeight   = 7.0
	pdfListIndent   = 5.0
	pdfParagraphGap = 4.0
	pdfListItemGap  = 2.0
	pdfBottomMargin = 20.0
)

// Canvas is the drawing surface the PDF layout targets. Styles set with
// SetFontStyle ("", "B", "I", "BI") and colors stay active until changed.
type Canvas interface {
	AddPage()
	PageSize() (w, h float64)
	SetFontSize(size float64)
	SetFontStyle(style string)
	SplitText(text string, width float64) []string
	TextWidth(text string) float64
	DrawText(x, y float64, text string)
	DrawLink(x, y float64, text, url string)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	DrawLine(x1, y1, x2, y2 float64)
}

// PDFExporter exports sessions as a paginated PDF transcript
type PDFExporter struct{}

// Export lays the transcript out onto an A4 document and writes the
// binary result
func (e *PDFExporter) Export(session *internal.Session, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0) // pagination is handled by the layout

	canvas := newFpdfCanvas(pdf)
	canvas.AddPage()
	layoutTranscript(canvas, session.Messages)

	if err := pdf.Output(w); err != nil {
		return &internal.ExportError{Format: "pdf", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *PDFExporter) Extension() string {
	return "pdf"
}

// pdfLayout tracks the vertical cursor and, within a line, the
// horizontal cursor while runs are placed
type pdfLayout struct {
	canvas   Canvas
	pageW    float64
	pageH    float64
	maxWidth float64
	y        float64
	currentX float64
}

func layoutTranscript(canvas Canvas, messages []internal.Message) {
	pageW, pageH := canvas.PageSize()
	l := &pdfLayout{
		canvas:   canvas,
		pageW:    pageW,
		pageH:    pageH,
		maxWidth: pageW - 2*pdfMargin,
		y:        pdfMargin,
		currentX: pdfMargin,
	}

	summary := BuildSummary(messages)

	canvas.SetFontStyle("B")
	canvas.SetFontSize(18)
	canvas.DrawText(pdfMargin, l.y, transcriptTitle)
	l.y += 10

	canvas.SetFontStyle("")
	canvas.SetFontSize(10)
	canvas.DrawText(pdfMargin, l.y, "Generated: "+summary.GeneratedAt.Format(timestampLayout))
	l.y += 6
	canvas.DrawText(pdfMargin, l.y, "Total Messages: "+strconv.Itoa(summary.TotalMessages))
	l.y += 10

	for i, msg := range messages {
		l.ensureRoom(pdfMargin)

		canvas.SetFontSize(12)
		canvas.SetFontStyle("B")
		canvas.DrawText(pdfMargin, l.y, internal.RoleLabel(msg.Role)+" - "+msg.Timestamp.Format(timestampLayout))
		canvas.SetFontStyle("")
		l.y += pdfLineHeight

		canvas.SetFontSize(11)
		for _, element := range ParseDocument(msg.Content) {
			switch element.Kind {
			case ElementParagraph:
				l.currentX = pdfMargin
				l.drawRuns(element.Runs, pdfMargin, l.maxWidth)
				l.y += pdfLineHeight + pdfParagraphGap
			case ElementList:
				for _, item := range element.Items {
					l.ensureRoom(pdfMargin)
					canvas.DrawText(pdfMargin, l.y, "•")
					l.currentX = pdfMargin + pdfListIndent
					l.drawRuns(item, pdfMargin+pdfListIndent, l.maxWidth-pdfListIndent)
					l.y += pdfLineHeight + pdfListItemGap
				}
				l.y += pdfParagraphGap - pdfListItemGap
			}
		}

		if i < len(messages)-1 {
			l.ensureRoom(pdfMargin)
			canvas.SetDrawColor(200, 200, 200)
			canvas.DrawLine(pdfMargin, l.y, pageW-pdfMargin, l.y)
			l.y += pdfLineHeight
		}
	}
}

// drawRuns places styled runs starting at the current cursor, wrapping
// against maxWidth and paginating as needed. leftX is where wrapped
// continuation lines restart.
func (l *pdfLayout) drawRuns(runs []InlineRun, leftX, maxWidth float64) {
	for _, run := range runs {
		if run.Text == "" {
			if run.Break {
				l.newLine(leftX)
			}
			continue
		}
		l.canvas.SetFontStyle(runStyle(run))
		if run.Link != "" {
			l.canvas.SetTextColor(0, 102, 204)
		}

		lines := l.canvas.SplitText(run.Text, maxWidth)
		for i, line := range lines {
			width := l.canvas.TextWidth(line)
			if l.currentX+width > leftX+maxWidth && l.currentX > leftX {
				l.newLine(leftX)
			}
			l.ensureRoom(leftX)
			if run.Link != "" {
				l.canvas.DrawLink(l.currentX, l.y, line, run.Link)
			} else {
				l.canvas.DrawText(l.currentX, l.y, line)
			}
			l.currentX += width
			if i < len(lines)-1 {
				l.newLine(leftX)
			}
		}

		if run.Link != "" {
			l.canvas.SetTextColor(40, 40, 40)
		}
		if run.Break {
			l.newLine(leftX)
		}
	}
	l.canvas.SetFontStyle("")
}

func (l *pdfLayout) newLine(leftX float64) {
	l.y += pdfLineHeight
	l.currentX = leftX
}

// ensureRoom starts a new page when the cursor passed the bottom
// threshold
func (l *pdfLayout) ensureRoom(leftX float64) {
	if l.y > l.pageH-pdfBottomMargin {
		l.canvas.AddPage()
		l.y = pdfMargin
		l.currentX = leftX
	}
}

func runStyle(run InlineRun) string {
	switch {
	case run.Bold && run.Italic:
		return "BI"
	case run.Bold:
		return "B"
	case run.Italic:
		return "I"
	default:
		return ""
	}
}

// fpdfCanvas adapts an fpdf document to the Canvas interface using the
// Helvetica core font
type fpdfCanvas struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	style     string
	size      float64
}

func newFpdfCanvas(pdf *fpdf.Fpdf) *fpdfCanvas {
	c := &fpdfCanvas{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		size:      11,
	}
	pdf.SetFont("Helvetica", "", c.size)
	pdf.SetTextColor(40, 40, 40)
	return c
}

func (c *fpdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *fpdfCanvas) PageSize() (float64, float64) {
	w, h := c.pdf.GetPageSize()
	return w, h
}

func (c *fpdfCanvas) SetFontSize(size float64) {
	c.size = size
	c.pdf.SetFont("Helvetica", c.style, c.size)
}

func (c *fpdfCanvas) SetFontStyle(style string) {
	c.style = style
	c.pdf.SetFont("Helvetica", c.style, c.size)
}

func (c *fpdfCanvas) SplitText(text string, width float64) []string {
	return c.pdf.SplitText(text, width)
}

func (c *fpdfCanvas) TextWidth(text string) float64 {
	return c.pdf.GetStringWidth(c.translate(text))
}

func (c *fpdfCanvas) DrawText(x, y float64, text string) {
	c.pdf.Text(x, y, c.translate(text))
}

func (c *fpdfCanvas) DrawLink(x, y float64, text, url string) {
	translated := c.translate(text)
	width := c.pdf.GetStringWidth(translated)
	height := c.size * 25.4 / 72 // font size in mm
	c.pdf.Text(x, y, translated)
	c.pdf.LinkString(x, y-height, width, height, url)
}

func (c *fpdfCanvas) SetTextColor(r, g, b int) { c.pdf.SetTextColor(r, g, b) }
func (c *fpdfCanvas) SetDrawColor(r, g, b int) { c.pdf.SetDrawColor(r, g, b) }
func (c *fpdfCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}
