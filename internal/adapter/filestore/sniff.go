package filestore

import "net/http"

// sniffExtension picks a file extension from the leading bytes of data.
func sniffExtension(data []byte) string {
	// ISO base media (ftyp box) is how m4a audio arrives from recorders.
	if len(data) >= 12 && string(data[4:8]) == "ftyp" {
		return ".m4a"
	}

	switch http.DetectContentType(data) {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "audio/mpeg":
		return ".mp3"
	case "audio/wave":
		return ".wav"
	case "audio/aiff":
		return ".aiff"
	}

	// MPEG audio frame sync without an ID3 header.
	if len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0 {
		return ".mp3"
	}
	return ".bin"
}
