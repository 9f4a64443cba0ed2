package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MIMEText = "text/plain"
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// DetectMIME resolves the content type of an uploaded résumé. A declared
// type other than application/octet-stream wins; otherwise the file
// extension decides.
func DetectMIME(filename, declared string) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	switch declared {
	case MIMEText, MIMEPDF, MIMEDocx:
		return declared
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md", ".text":
		return MIMEText
	case ".pdf":
		return MIMEPDF
	case ".docx":
		return MIMEDocx
	}
	return declared
}

// ExtractText returns the plain text of a résumé file.
func ExtractText(mime string, data []byte) (string, error) {
	switch mime {
	case MIMEText:
		return string(data), nil
	case MIMEPDF:
		return extractPDFText(bytes.NewReader(data))
	case MIMEDocx:
		return extractDocxText(bytes.NewReader(data))
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
}

func extractPDFText(r *bytes.Reader) (string, error) {
	reader, err := pdf.NewReader(r, r.Size())
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func extractDocxText(r *bytes.Reader) (string, error) {
	doc, err := docx.ReadDocxFromMemory(r, r.Size())
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return documentXMLText(doc.Editable().GetContent())
}

// documentXMLText flattens word/document.xml into text, one line per
// paragraph. Tabs and breaks inside a run become whitespace.
func documentXMLText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var (
		b      strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("docx body: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
