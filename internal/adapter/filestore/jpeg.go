package filestore

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder
)

// DefaultJPEGQuality is used when no quality is configured.
const DefaultJPEGQuality = 80

// JPEGEncoder re-encodes images to JPEG at a fixed quality.
type JPEGEncoder struct {
	Quality int
}

// NewJPEGEncoder returns an encoder for quality in 1..100; other values fall
// back to DefaultJPEGQuality.
func NewJPEGEncoder(quality int) *JPEGEncoder {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &JPEGEncoder{Quality: quality}
}

// Encode decodes a JPEG, PNG or GIF image and returns it as JPEG.
func (e *JPEGEncoder) Encode(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
