package document

import (
	"errors"
	"testing"
)

func TestDetectMIME(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		declared string
		want     string
	}{
		{"declared pdf", "resume.bin", "application/pdf", MIMEPDF},
		{"declared text with charset", "cv", "text/plain; charset=utf-8", MIMEText},
		{"octet stream falls back to extension", "Jane.DOCX", "application/octet-stream", MIMEDocx},
		{"empty declared uses extension", "notes.txt", "", MIMEText},
		{"unknown stays unknown", "photo.png", "image/png", "image/png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectMIME(tc.filename, tc.declared); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestExtractText_PlainText(t *testing.T) {
	got, err := ExtractText(MIMEText, []byte("Jane Doe\nSkills: Go"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "Jane Doe\nSkills: Go" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractText_Unsupported(t *testing.T) {
	_, err := ExtractText("image/png", []byte{0x89})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestExtractText_InvalidPDF(t *testing.T) {
	if _, err := ExtractText(MIMEPDF, []byte("not a pdf")); err == nil {
		t.Fatalf("expected error for invalid pdf")
	}
}

func TestDocumentXMLText(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills:</w:t></w:r><w:r><w:br/><w:t>Go, SQL</w:t></w:r></w:p>
</w:body>
</w:document>`

	got, err := documentXMLText(body)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "Jane Doe\nSkills:\nGo, SQL"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
