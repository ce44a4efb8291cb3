package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNextPath(t *testing.T) {
	tests := []struct {
		name string
		next string
		want string
	}{
		{"empty falls back to root", "", "/"},
		{"relative path passes", "/ticket/5", "/ticket/5"},
		{"path with query passes", "/ticket/5?tab=comments", "/ticket/5?tab=comments"},
		{"absolute URL is rejected", "https://evil.example.com/", "/"},
		{"protocol-relative is rejected", "//evil.example.com/", "/"},
		{"missing leading slash is rejected", "ticket/5", "/"},
		{"backslash protocol-relative is rejected", "/\\evil.example.com", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeNextPath(tt.next))
		})
	}
}
