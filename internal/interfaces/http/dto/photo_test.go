package dto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoDataURI(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantMIME string
	}{
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x01}, "image/png"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, "image/jpeg"},
		{"gif87a", append([]byte("GIF87a"), 0x01), "image/gif"},
		{"gif89a", append([]byte("GIF89a"), 0x01), "image/gif"},
		{"unknown defaults to jpeg", []byte{0x00, 0x01, 0x02}, "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri := PhotoDataURI(tt.data)
			assert.True(t, strings.HasPrefix(uri, "data:"+tt.wantMIME+";base64,"))

			encoded := strings.TrimPrefix(uri, "data:"+tt.wantMIME+";base64,")
			decoded, err := base64.StdEncoding.DecodeString(encoded)
			assert.NoError(t, err)
			assert.Equal(t, tt.data, decoded)
		})
	}

	t.Run("empty photo", func(t *testing.T) {
		assert.Empty(t, PhotoDataURI(nil))
		assert.Empty(t, PhotoDataURI([]byte{}))
	})
}
