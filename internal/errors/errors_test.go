package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestRusticError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *RusticError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestRusticError_WithContext(t *testing.T) {
	err := New(CategoryMetadata, SeverityError, "extraction failed").
		WithContext("source", "content/post.md").
		WithContext("stage", "extract")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["source"] != "content/post.md" {
		t.Errorf("Context[source] = %v, want content/post.md", err.Context["source"])
	}

	if err.Context["stage"] != "extract" {
		t.Errorf("Context[stage] = %v, want extract", err.Context["stage"])
	}
}

func TestRusticError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(cause, CategoryFileSystem, SeverityFatal, "write failed")

	if !stdErrors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	metaErr := New(CategoryMetadata, SeverityError, "metadata error")
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match metadata category", configErr, CategoryMetadata, false},
		{"metadata error matches metadata category", metaErr, CategoryMetadata, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestGetCategory(t *testing.T) {
	if got := GetCategory(New(CategoryTemplate, SeverityFatal, "x")); got != CategoryTemplate {
		t.Errorf("GetCategory() = %v, want %v", got, CategoryTemplate)
	}
	if got := GetCategory(fmt.Errorf("plain")); got != CategoryInternal {
		t.Errorf("GetCategory() = %v, want %v", got, CategoryInternal)
	}
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation error", New(CategoryValidation, SeverityFatal, "bad flag"), 2},
		{"config error", New(CategoryConfig, SeverityFatal, "no config"), 7},
		{"metadata error", New(CategoryMetadata, SeverityError, "missing title"), 3},
		{"template error", New(CategoryTemplate, SeverityFatal, "render failed"), 11},
		{"filesystem error", New(CategoryFileSystem, SeverityFatal, "write failed"), 11},
		{"internal error", New(CategoryInternal, SeverityFatal, "bug"), 10},
		{"plain error", fmt.Errorf("boom"), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(test.err); got != test.expected {
				t.Errorf("ExitCodeFor() = %d, want %d", got, test.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	err := New(CategoryConfig, SeverityFatal, "configuration file not found")
	if got := adapter.FormatError(err); got != "configuration file not found" {
		t.Errorf("FormatError() = %q, want bare message for config errors", got)
	}

	buildErr := New(CategoryBuild, SeverityFatal, "build failed")
	if got := adapter.FormatError(buildErr); got != "build: build failed" {
		t.Errorf("FormatError() = %q, want category-prefixed message", got)
	}

	verbose := NewCLIErrorAdapter(true, nil)
	if got := verbose.FormatError(buildErr); got != buildErr.Error() {
		t.Errorf("verbose FormatError() = %q, want full error string", got)
	}
}
