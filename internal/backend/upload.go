package backend

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
)

// Upload is an image attached to a write.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type formField struct {
	name  string
	value string
}

// multipartBody encodes fields plus an optional file part.
func multipartBody(fields []formField, fileField string, up *Upload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	if up != nil && up.Body != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, up.Filename))
		ct := up.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, up.Body); err != nil {
			return nil, "", fmt.Errorf("copy file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
