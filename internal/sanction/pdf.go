package sanction

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"loan-gateway/pkg/format"
)

// PDFRenderer renders the sanction letter as an A4 PDF. Amounts use "Rs."
// rather than the rupee sign because the core PDF fonts cannot encode it.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(_ context.Context, letter Letter) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Personal Loan Sanction Letter", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	date := time.Now().Format("02/01/2006")
	pdf.CellFormat(0, 7, "Date: "+date, "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.CellFormat(0, 7, "To,", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, letter.ApplicantName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, letter.City, "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.CellFormat(0, 7, "Subject: Sanction of Personal Loan", "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.MultiCell(0, 7, "We are pleased to inform you that your personal loan application has been approved with the following terms:", "", "L", false)
	pdf.Ln(2)

	terms := []string{
		fmt.Sprintf("Sanctioned Amount: Rs. %s", format.IndianAmount(letter.Amount)),
		fmt.Sprintf("Tenure: %d months", letter.TenureMonths),
		fmt.Sprintf("Interest Rate: %s%% p.a.", format.Rate(letter.InterestRate)),
	}
	for _, term := range terms {
		pdf.CellFormat(0, 7, "  - "+term, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.MultiCell(0, 7, "Please note that this sanction is subject to execution of standard loan documentation and successful completion of any pending KYC requirements.", "", "L", false)
	pdf.Ln(3)
	pdf.CellFormat(0, 7, "Digitally signed by:", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "AI Loan Assistant", "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.CellFormat(0, 7, "Regards,", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Loan Gateway", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
