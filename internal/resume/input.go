package resume

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const pdfMIME = "application/pdf"

// uploadPrefix marks placeholder text standing in for an uploaded file.
const uploadPrefix = "PDF uploaded: "

// Upload is an accepted resume file. Only its name is kept.
type Upload struct {
	FileName string
	Text     string
}

// ValidateText rejects text that is empty after trimming whitespace.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyResume
	}
	return nil
}

// AcceptUpload checks that a file is a PDF and returns its placeholder text.
// declaredType is the client-supplied content type; when it is missing or generic
// the leading bytes in head are sniffed instead. PDF content is not extracted.
func AcceptUpload(filename, declaredType string, head []byte) (Upload, error) {
	if filename == "" {
		return Upload{}, ErrNotPDF
	}
	if !isPDF(declaredType, head) {
		return Upload{}, ErrNotPDF
	}
	return Upload{
		FileName: filename,
		Text:     uploadPrefix + filename,
	}, nil
}

func isPDF(declaredType string, head []byte) bool {
	mediaType, _, err := mime.ParseMediaType(declaredType)
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case pdfMIME:
		return true
	case "", "application/octet-stream":
		return len(head) > 0 && mimetype.Detect(head).Is(pdfMIME)
	default:
		return false
	}
}
