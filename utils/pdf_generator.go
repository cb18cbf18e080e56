package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sskcargo/core"
	"sskcargo/models"
	"sskcargo/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateLRPDF renders a lorry receipt as a three-copy A4 document. Each
// copy stays whole: it moves to a new page only when it would be cut.
// Returns (nil, nil) when the receipt does not exist.
func GenerateLRPDF(ctx context.Context, repo *repository.PDFRepository, ownerID int64, lrNo string) ([]byte, error) {
	company, err := repo.GetCompanyForPDF(ownerID)
	if err != nil {
		return nil, err
	}

	lr, err := repo.GetLRForPDF(ownerID, lrNo)
	if err != nil {
		return nil, err
	}
	if lr == nil {
		return nil, nil
	}

	formattedDate := "-"
	if !lr.Date.IsZero() {
		formattedDate = lr.Date.Format("02-Jan-2006")
	}

	totals := core.Compute(lr)

	copyTitles := []string{"Consignor Copy", "Consignee Copy", "Driver Copy"}

	tmpl, err := template.ParseFiles("templates/lr_template.html")
	if err != nil {
		return nil, err
	}

	var fullHTML bytes.Buffer
	for _, title := range copyTitles {
		data := models.LRPDFData{
			Company:    company,
			LR:         lr,
			Contacts:   strings.Join(company.Contact, ", "),
			Date:       formattedDate,
			GrandTotal: totals.GrandTotal,
			TotalWords: AmountInWords(totals.GrandTotal),
			CopyTitle:  title,
			ItemCount:  len(lr.Items),
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, err
		}

		// Wrap each copy in a div that avoids breaking across pages
		fullHTML.WriteString("<div class='lr-copy'>")
		fullHTML.Write(buf.Bytes())
		fullHTML.WriteString("</div>")
	}

	return renderPDF(ctx, "lr", wrapDocument(fullHTML.String()))
}

// GenerateInvoicePDF renders a consolidated bill as an A4 document.
func GenerateInvoicePDF(ctx context.Context, company *models.CompanyDetails, bill *models.ConsolidatedBill) ([]byte, error) {
	tmpl, err := template.ParseFiles("templates/invoice_template.html")
	if err != nil {
		return nil, err
	}

	formattedDate := "-"
	if !bill.Date.IsZero() {
		formattedDate = bill.Date.Format("02-Jan-2006")
	}

	data := models.InvoicePDFData{
		Company: company,
		Bill:    bill,
		Date:    formattedDate,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return renderPDF(ctx, "invoice", wrapDocument(buf.String()))
}

func wrapDocument(body string) string {
	return `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.lr-copy {
			page-break-inside: avoid; /* Prevent cutting copy in middle */
			border: none;
		}
		</style>
		</head>
		<body>` + body + `</body></html>`
}

// renderPDF loads the HTML in headless Chrome and prints it to A4 PDF.
func renderPDF(ctx context.Context, kind, html string) ([]byte, error) {
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, kind+"_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(html), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	chromeCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err := chromedp.Run(chromeCtx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
