package brief

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/verdictlabs/verdict/pkg/models"
)

// PDFInput is what the renderer needs beyond the scored brief.
type PDFInput struct {
	CaseName        string
	WitnessName     string
	SessionDate     time.Time
	QuestionCount   int
	SessionScore    float64
	ConsistencyRate float64
	Weakness        models.WeaknessMap
	Narrative       string
	Recommendations []string
}

// RenderPDF produces the attorney-facing brief as a single-pass A4 document.
func RenderPDF(in PDFInput) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Deposition Rehearsal Brief", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Deposition Rehearsal Brief", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Case: %s", in.CaseName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Witness: %s", in.WitnessName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Session date: %s", in.SessionDate.Format("January 2, 2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Questions asked: %d", in.QuestionCount), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Overall score: %.0f / 100", in.SessionScore), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Consistency rate: %.0f%%", in.ConsistencyRate*100), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Performance dimensions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range []struct {
		label string
		score float64
	}{
		{"Composure", in.Weakness.Composure},
		{"Tactical discipline", in.Weakness.TacticalDiscipline},
		{"Professionalism", in.Weakness.Professionalism},
		{"Directness", in.Weakness.Directness},
		{"Consistency", in.Weakness.Consistency},
	} {
		pdf.CellFormat(60, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%.0f", row.score), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Assessment", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5.5, in.Narrative, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Recommendations", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for i, rec := range in.Recommendations {
		pdf.MultiCell(0, 5.5, fmt.Sprintf("%d. %s", i+1, rec), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("brief: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
