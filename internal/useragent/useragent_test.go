package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestParseRecognizedBrowser(t *testing.T) {
	b := Parse(chromeUA)
	assert.Equal(t, "Chrome", b.Name)
	assert.NotEmpty(t, b.Version)
	assert.NotEqual(t, Unknown, b.Version)
}

func TestParseUnrecognizedInput(t *testing.T) {
	tests := []struct {
		name string
		ua   string
	}{
		{"empty", ""},
		{"garbage", "definitely-not-a-browser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Parse(tt.ua)
			assert.Equal(t, Unknown, b.Name)
			assert.Equal(t, Unknown, b.Version)
		})
	}
}

func TestBrowserString(t *testing.T) {
	assert.Equal(t, "Chrome (120.0)", Browser{Name: "Chrome", Version: "120.0"}.String())
	assert.Equal(t, "unknown (unknown)", Browser{}.String())
	assert.Equal(t, "Firefox (unknown)", Browser{Name: "Firefox"}.String())
}
