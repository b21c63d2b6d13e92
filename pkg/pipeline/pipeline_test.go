package pipeline

import (
	"testing"
)

func TestValidateEngine(t *testing.T) {
	tests := []struct {
		engine  string
		wantErr bool
	}{
		{"dot", false},
		{"neato", false},
		{"fdp", false},
		{"sfdp", false},
		{"circo", false},
		{"twopi", false},
		{"osage", false},
		{"patchwork", false},
		{"DOT", false}, // parsing is case-insensitive
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateEngine(tt.engine)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEngine(%q) error = %v, wantErr %v", tt.engine, err, tt.wantErr)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"xdot", false},
		{"plain", false},
		{"SVG", false}, // parsing is case-insensitive
		{"webp", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidateForParse(t *testing.T) {
	// Missing source and path
	opts := Options{}
	if err := opts.ValidateForParse(); err == nil {
		t.Error("Missing source should fail")
	}

	// Inline source
	opts = Options{Source: "digraph g {}"}
	if err := opts.ValidateForParse(); err != nil {
		t.Errorf("Inline source should pass: %v", err)
	}
	if opts.Logger == nil {
		t.Error("Logger default should be set")
	}

	// File path
	opts = Options{SourcePath: "graph.dot"}
	if err := opts.ValidateForParse(); err != nil {
		t.Errorf("Source path should pass: %v", err)
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Engine != DefaultEngine {
		t.Errorf("Engine should be %s, got %s", DefaultEngine, opts.Engine)
	}
	if opts.Logger == nil {
		t.Error("Logger default should be set")
	}
}

func TestValidateForLayoutCanonicalizes(t *testing.T) {
	opts := Options{Engine: " DOT "}
	if err := opts.ValidateForLayout(); err != nil {
		t.Fatalf("ValidateForLayout: %v", err)
	}
	if opts.Engine != "dot" {
		t.Errorf("Engine should be canonicalized to dot, got %s", opts.Engine)
	}

	opts = Options{Engine: "invalid"}
	if err := opts.ValidateForLayout(); err == nil {
		t.Error("Invalid engine should fail")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != DefaultFormat {
		t.Errorf("Formats should be [%s], got %v", DefaultFormat, opts.Formats)
	}
}

func TestValidateForRenderCanonicalizes(t *testing.T) {
	opts := Options{Formats: []string{"SVG", " png "}}
	if err := opts.ValidateForRender(); err != nil {
		t.Fatalf("ValidateForRender: %v", err)
	}
	if opts.Formats[0] != "svg" || opts.Formats[1] != "png" {
		t.Errorf("Formats should be canonicalized, got %v", opts.Formats)
	}

	opts = Options{Formats: []string{"webp"}}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("Invalid format should fail")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{
		Source: "digraph g { a -> b; }",
	}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalEngine := opts.Engine
	originalFormats := len(opts.Formats)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Engine != originalEngine {
		t.Error("Engine changed on second call")
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
}

func TestOptionsValidateAndSetDefaultsRejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"NoSource", Options{Engine: "dot"}},
		{"BadEngine", Options{Source: "digraph g {}", Engine: "magic"}},
		{"BadFormat", Options{Source: "digraph g {}", Formats: []string{"webp"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("ValidateAndSetDefaults should fail")
			}
		})
	}
}
