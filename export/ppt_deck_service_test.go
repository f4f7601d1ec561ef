package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestAssets generates the three required PNG assets in a temp dir.
func writeTestAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	fills := map[string]color.RGBA{
		"cover.png":        {R: 11, G: 16, B: 32, A: 255},
		"architecture.png": {R: 110, G: 231, B: 255, A: 255},
		"ai-healing.png":   {R: 52, G: 211, B: 153, A: 255},
	}
	for name, c := range fills {
		img := image.NewRGBA(image.Rect(0, 0, 16, 10))
		for y := 0; y < 10; y++ {
			for x := 0; x < 16; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encode %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// slideParts extracts the slide XML parts of a pptx archive, keyed by
// part name (ppt/slides/slideN.xml).
func slideParts(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a valid zip archive: %v", err)
	}
	parts := make(map[string][]byte)
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/slide") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = content
	}
	return parts
}

func buildDeck(t *testing.T, assetsDir string) []byte {
	t.Helper()
	assets, err := LoadAssetLibrary(assetsDir)
	if err != nil {
		t.Fatalf("load assets: %v", err)
	}
	data, err := NewPPTDeckService().ExportDeckToPPTX(FrameworkDeck(), assets)
	if err != nil {
		t.Fatalf("build deck: %v", err)
	}
	return data
}

// TestExportDeckStructure verifies the written pptx contains exactly ten
// slide parts with the fixed titles in the fixed order.
func TestExportDeckStructure(t *testing.T) {
	data := buildDeck(t, writeTestAssets(t))
	parts := slideParts(t, data)

	if len(parts) != 10 {
		t.Fatalf("expected 10 slide parts, got %d", len(parts))
	}
	for i, title := range expectedTitles {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		xml, ok := parts[name]
		if !ok {
			t.Fatalf("missing slide part %s", name)
		}
		if !strings.Contains(string(xml), title) {
			t.Errorf("%s does not contain title %q", name, title)
		}
	}
}

// TestExportDeckTextFidelity verifies bullet literals land verbatim in
// their slide's XML.
func TestExportDeckTextFidelity(t *testing.T) {
	data := buildDeck(t, writeTestAssets(t))
	parts := slideParts(t, data)

	checks := map[string][]string{
		"ppt/slides/slide3.xml": {
			"Flaky runs due to timing and dynamic DOM",
			"Selector churn during UI releases",
			"Broken Selectors",
		},
		"ppt/slides/slide6.xml": {
			"smartFill(selector, value): wait → clear → type",
			"Explicit wait (visibility/clickable)",
		},
		"ppt/slides/slide10.xml": {
			"Page Object Model",
			"Thank you — Questions?",
		},
	}
	for name, wants := range checks {
		xml := string(parts[name])
		for _, want := range wants {
			if !strings.Contains(xml, want) {
				t.Errorf("%s does not contain %q", name, want)
			}
		}
	}
}

// TestExportDeckDeterministic verifies two builds from the same assets
// produce identical slide parts.
func TestExportDeckDeterministic(t *testing.T) {
	dir := writeTestAssets(t)

	first := slideParts(t, buildDeck(t, dir))
	second := slideParts(t, buildDeck(t, dir))

	if len(first) != len(second) {
		t.Fatalf("slide part count differs: %d vs %d", len(first), len(second))
	}
	for name, content := range first {
		if !bytes.Equal(content, second[name]) {
			t.Errorf("slide part %s differs between builds", name)
		}
	}
}

// TestMissingAssetFailsBeforeOutput verifies the asset precondition: a
// missing image file aborts the export before any bytes are produced.
func TestMissingAssetFailsBeforeOutput(t *testing.T) {
	empty := t.TempDir()

	if _, err := LoadAssetLibrary(empty); err == nil {
		t.Fatal("expected error for empty assets directory")
	}

	data, err := NewDeckExportService().ExportFrameworkDeck(empty)
	if err == nil {
		t.Fatal("expected export error for empty assets directory")
	}
	if data != nil {
		t.Fatalf("expected no output bytes on failure, got %d", len(data))
	}

	// Partially populated directory must fail too.
	partial := t.TempDir()
	src := writeTestAssets(t)
	for _, name := range []string{"cover.png", "architecture.png"} {
		content, err := os.ReadFile(filepath.Join(src, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(partial, name), content, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := LoadAssetLibrary(partial); err == nil {
		t.Fatal("expected error when ai-healing.png is missing")
	}
}

func TestWordHandout(t *testing.T) {
	data, err := NewWordHandoutService().ExportDeckToWord(FrameworkDeck())
	if err != nil {
		t.Fatalf("export handout: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("handout is not a valid zip archive: %v", err)
	}
	var doc []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatal(err)
			}
			doc, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				t.Fatal(err)
			}
		}
	}
	if doc == nil {
		t.Fatal("handout has no word/document.xml")
	}
	for _, want := range []string{"Slide 1: Selenium Automation Framework", "Slide 10: Why this framework"} {
		if !strings.Contains(string(doc), want) {
			t.Errorf("handout does not contain %q", want)
		}
	}
}

func TestRenderSlidePreviews(t *testing.T) {
	assetsDir := writeTestAssets(t)
	outDir := t.TempDir()

	service := NewDeckExportService()
	if err := service.RenderFrameworkPreviews(assetsDir, outDir, 320); err != nil {
		t.Fatalf("render previews: %v", err)
	}

	for i := 1; i <= 10; i++ {
		path := filepath.Join(outDir, fmt.Sprintf("slide_%d.png", i))
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("preview %d missing: %v", i, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("preview %d is not a valid PNG: %v", i, err)
		}
		if img.Bounds().Dx() != 320 {
			t.Errorf("preview %d: expected width 320, got %d", i, img.Bounds().Dx())
		}
	}
}
