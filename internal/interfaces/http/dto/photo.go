package dto

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

var (
	jpegMagic  = []byte{0xFF, 0xD8, 0xFF}
	pngMagic   = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif87Magic = []byte("GIF87a")
	gif89Magic = []byte("GIF89a")
)

// sniffImageMIME detects the image type from magic bytes. Unrecognized
// content is reported as jpeg, matching how the photos were historically
// stored without a content type.
func sniffImageMIME(data []byte) string {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return "image/png"
	case bytes.HasPrefix(data, gif87Magic), bytes.HasPrefix(data, gif89Magic):
		return "image/gif"
	case bytes.HasPrefix(data, jpegMagic):
		return "image/jpeg"
	default:
		return "image/jpeg"
	}
}

// PhotoDataURI serializes raw photo bytes as a data URI for embedding in
// JSON responses. Returns "" for an empty photo.
func PhotoDataURI(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", sniffImageMIME(data), base64.StdEncoding.EncodeToString(data))
}
