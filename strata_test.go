package strata

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/strata/classify"
)

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open("testdata/does-not-exist.pdf").Outline()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	if err := os.WriteFile(path, []byte("plain text masquerading as a pdf"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, _, err := Open(path).Outline()
	if err == nil {
		t.Fatal("expected error for non-PDF content")
	}
	if !strings.Contains(err.Error(), "not a PDF") {
		t.Errorf("error = %v, want header validation failure", err)
	}
}

func TestOpenNoFilename(t *testing.T) {
	_, _, err := (&Extractor{options: defaultOptions()}).Outline()
	if err == nil || !strings.Contains(err.Error(), "no filename") {
		t.Errorf("error = %v, want missing filename", err)
	}
}

func TestConfigurationImmutability(t *testing.T) {
	base := Open("document.pdf")

	withPages := base.Pages(1, 2)
	if len(base.options.pages) != 0 {
		t.Error("Pages mutated the original extractor")
	}
	if len(withPages.options.pages) != 2 {
		t.Errorf("pages = %v, want [1 2]", withPages.options.pages)
	}

	noLang := base.DetectLanguage(false)
	if !base.options.detectLanguage {
		t.Error("DetectLanguage mutated the original extractor")
	}
	if noLang.options.detectLanguage {
		t.Error("DetectLanguage(false) not applied")
	}

	cfg := classify.DefaultConfig()
	cfg.Weights.Bold = 99
	tuned := base.WithClassifyConfig(cfg)
	if base.options.classify.Weights.Bold == 99 {
		t.Error("WithClassifyConfig mutated the original extractor")
	}
	if tuned.options.classify.Weights.Bold != 99 {
		t.Error("WithClassifyConfig not applied")
	}
}

func TestPageRangeExpansion(t *testing.T) {
	e := Open("document.pdf").PageRange(3, 6)
	want := []int{3, 4, 5, 6}
	if len(e.options.pages) != len(want) {
		t.Fatalf("pages = %v, want %v", e.options.pages, want)
	}
	for i, p := range want {
		if e.options.pages[i] != p {
			t.Errorf("pages[%d] = %d, want %d", i, e.options.pages[i], p)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	e := Open("document.pdf")
	if err := e.Close(); err != nil {
		t.Errorf("Close on unopened extractor: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must did not panic")
		}
	}()
	Must(0, errors.New("boom"))
}

func TestMustReturnsValue(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}
}

func TestMustOutlinePanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustOutline did not panic")
		}
	}()
	MustOutline("", nil, errors.New("boom"))
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Page: 3, Message: "content stream parse failed"},
		{Message: "language detection inconclusive"},
	}
	got := FormatWarnings(warnings)
	want := "page 3: content stream parse failed; language detection inconclusive"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}

	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}
}
