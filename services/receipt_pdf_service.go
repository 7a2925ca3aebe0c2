package services

import (
	"bytes"
	"context"
	"html/template"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// GenerateReceiptPDF renders the bill through the receipt template and
// prints it to PDF with a headless browser, for the print/download
// button in the frontend.
func GenerateReceiptPDF(bill *Bill) ([]byte, error) {
	htmlData, err := renderReceiptHTML(bill)
	if err != nil {
		return nil, err
	}
	return generatePDFFromHTML(htmlData)
}

func renderReceiptHTML(bill *Bill) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, bill); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
