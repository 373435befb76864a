package mimetypes

import (
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/require"
)

func TestEssence(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name     string
		detected string
		want     MIME
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain},
		{"HTML with charset", "text/html; charset=utf-8", TextHTML},
		{"JSON", "application/json", ApplicationJSON},
		{"PDF", "application/pdf", ApplicationPDF},
		{"ZIP", "application/zip", ApplicationZIP},
		{"PNG", "image/png", ImagePNG},
		{"Binary", "application/octet-stream", OctetStream},
		{"Upper case is lowered", "IMAGE/JPEG", ImageJPEG},
		{"Invalid MIME", "not a mime", Unknown},
		{"Empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, Essence(tt.detected))
		})
	}
}

func TestEssence_OfSniffedContent(t *testing.T) {
	req := require.New(t)

	req.Equal(TextPlain, Essence(mimetype.Detect([]byte("hello there\n")).String()))
	req.Equal(ApplicationPDF, Essence(mimetype.Detect([]byte("%PDF-1.4\n%âãÏÓ\n")).String()))
}
