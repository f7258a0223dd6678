package form

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"previplan/internal/engine/schema"
)

// MaxImageBytes caps uploaded image payloads.
const MaxImageBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// EncodeImage validates an uploaded file and packs it into the
// {mimeType, imageData} shape Image fields store. The content type is
// sniffed from the bytes, never trusted from the client.
func EncodeImage(data []byte) (schema.Record, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image is empty")
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}
	mime := http.DetectContentType(data)
	if !allowedImageTypes[mime] {
		return nil, fmt.Errorf("unsupported image type %s", mime)
	}
	return schema.Record{
		"mimeType":  mime,
		"imageData": base64.StdEncoding.EncodeToString(data),
	}, nil
}

// DecodeImage unpacks an Image field value back into raw bytes.
func DecodeImage(v any) (mime string, data []byte, err error) {
	m, ok := v.(map[string]any)
	if !ok {
		if r, isRec := v.(schema.Record); isRec {
			m = r
		} else {
			return "", nil, fmt.Errorf("not an image value")
		}
	}
	mime, _ = m["mimeType"].(string)
	b64, _ := m["imageData"].(string)
	if mime == "" || b64 == "" {
		return "", nil, fmt.Errorf("image value incomplete")
	}
	data, err = base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}
	return mime, data, nil
}

// AttachImage encodes and stores an image upload into the given field.
func (s *Session) AttachImage(key string, data []byte) error {
	f := s.cfg.Field(key)
	if f == nil || f.Type != schema.TypeImage {
		return fmt.Errorf("field %q is not an image field", key)
	}
	img, err := EncodeImage(data)
	if err != nil {
		return err
	}
	s.Set(key, map[string]any(img))
	return nil
}
