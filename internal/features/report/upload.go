package report

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// uploadedFile adapts a multipart file header to intake.File.
type uploadedFile struct {
	header      *multipart.FileHeader
	contentType string
}

// newUploadedFile trusts the part's Content-Type unless it is missing or
// generic, in which case the type is sniffed from the content.
func newUploadedFile(h *multipart.FileHeader) *uploadedFile {
	ct := strings.TrimSpace(h.Header.Get("Content-Type"))
	if ct == "" || ct == "application/octet-stream" {
		ct = sniff(h)
	}
	return &uploadedFile{header: h, contentType: ct}
}

func sniff(h *multipart.FileHeader) string {
	f, err := h.Open()
	if err != nil {
		return ""
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return ""
	}
	return mt.String()
}

func (f *uploadedFile) Name() string                 { return f.header.Filename }
func (f *uploadedFile) Size() int64                  { return f.header.Size }
func (f *uploadedFile) ContentType() string          { return f.contentType }
func (f *uploadedFile) Open() (io.ReadCloser, error) { return f.header.Open() }
