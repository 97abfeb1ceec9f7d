package messages

import (
	"encoding/base64"
	"testing"
)

func TestDecodeInlineMedia(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	encoded := base64.StdEncoding.EncodeToString(pngHeader)

	tests := []struct {
		name     string
		input    string
		wantMime string
		wantErr  bool
	}{
		{"bare base64", encoded, "image/png", false},
		{"data uri", "data:image/png;base64," + encoded, "image/png", false},
		{"data uri mime wins", "data:application/pdf;base64," + encoded, "application/pdf", false},
		{"invalid base64", "not-base64!!!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			media, err := decodeInlineMedia(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if media.MimeType != tt.wantMime {
				t.Fatalf("mime = %q, want %q", media.MimeType, tt.wantMime)
			}
			if len(media.Data) == 0 {
				t.Fatal("empty payload")
			}
		})
	}
}
