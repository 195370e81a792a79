package integrations

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient()
	if client == nil {
		t.Fatal("NewHTTPClient() returned nil")
	}
	if client.Timeout != httpTimeout {
		t.Errorf("Timeout = %v, want %v", client.Timeout, httpTimeout)
	}
	if client.Jar == nil {
		t.Error("NewHTTPClient() returned client without cookie jar")
	}
}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("%w: %w", ErrNetwork, context.DeadlineExceeded), true},
		{"url error timeout", &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded}, true},
		{"url error refused", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("connection refused")}, false},
		{"status error", fmt.Errorf("%w: status 500", ErrNetwork), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.want {
				t.Errorf("IsTimeout(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"url error refused", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("connection refused")}, true},
		{"wrapped url error", fmt.Errorf("%w: %w", ErrNetwork, &url.Error{Op: "Get", URL: "http://x", Err: errors.New("reset")}), true},
		{"status error", fmt.Errorf("%w: status 502", ErrNetwork), false},
		{"not found", ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestURLEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"space", "hello world", "hello+world"},
		{"special chars", "a=1&b=2", "a%3D1%26b%3D2"},
		{"slash", "path/to/resource", "path%2Fto%2Fresource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URLEncode(tt.input); got != tt.want {
				t.Errorf("URLEncode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
