package bookalope

import (
	"testing"
)

func TestDecodeDataURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMIME string
		wantData string
		wantErr  bool
	}{
		{
			name:     "valid document payload",
			input:    "data:application/msword;base64,aGVsbG8gd29ybGQ=",
			wantMIME: "application/msword",
			wantData: "hello world",
		},
		{
			name:     "valid image payload",
			input:    "data:image/png;base64,AAEC",
			wantMIME: "image/png",
			wantData: "\x00\x01\x02",
		},
		{
			name:    "missing scheme",
			input:   "application/msword;base64,aGVsbG8=",
			wantErr: true,
		},
		{
			name:    "not base64 encoded",
			input:   "data:text/plain,hello",
			wantErr: true,
		},
		{
			name:    "corrupt base64 payload",
			input:   "data:text/plain;base64,!!!",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, data, err := DecodeDataURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeDataURL(%q) expected an error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeDataURL(%q) failed: %v", tt.input, err)
			}
			if mime != tt.wantMIME {
				t.Errorf("expected MIME %q, got %q", tt.wantMIME, mime)
			}
			if string(data) != tt.wantData {
				t.Errorf("expected data %q, got %q", tt.wantData, data)
			}
		})
	}
}
