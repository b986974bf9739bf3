// Package export renders assembled documents as plain text, Markdown, hOCR
// flavoured HTML or JSON.
//
//	err := export.Write(os.Stdout, doc, export.FormatMarkdown)
//
// The HTML rendering follows the hOCR class vocabulary (ocr_page, ocr_par,
// ocr_line, ocrx_word) with bounding boxes in per-mille page units, so the
// output can be loaded by hOCR tooling.
package export
