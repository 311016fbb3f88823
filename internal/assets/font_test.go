package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadEmbeddedFont(t *testing.T) {
	f, err := LoadFont("", 48)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if !strings.HasPrefix(f.Name, "Go") {
		t.Fatalf("name = %q, want Go Regular", f.Name)
	}
	if f.Ascent <= 0 || f.Advances['A'] <= 0 || f.Advances[' '] <= 0 {
		t.Fatalf("bad metrics: ascent %v, A %v, space %v", f.Ascent, f.Advances['A'], f.Advances[' '])
	}
	if f.Advances['W'] <= f.Advances['i'] {
		t.Fatalf("W (%v) should be wider than i (%v)", f.Advances['W'], f.Advances['i'])
	}
}

func TestLoadFontFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFont(path, 24)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Size != 24 || len(f.Advances) == 0 {
		t.Fatalf("got size %v with %d advances", f.Size, len(f.Advances))
	}
}

func TestLoadFontErrors(t *testing.T) {
	if _, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 24); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file: got %v", err)
	}
	junk := filepath.Join(t.TempDir(), "junk.ttf")
	if err := os.WriteFile(junk, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(junk, 24); err == nil {
		t.Fatal("junk file: expected parse error")
	}
}

func TestLoadFontAsyncFallsBack(t *testing.T) {
	ch := LoadFontAsync(filepath.Join(t.TempDir(), "missing.ttf"), 24)
	select {
	case res := <-ch:
		if res.Err == nil || !res.Fallback || res.Font == nil {
			t.Fatalf("got %+v, want fallback with error", res)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("font load did not complete")
	}
	if _, ok := <-ch; ok {
		t.Fatal("channel not closed after the result")
	}
}

func TestLoadFontAsync(t *testing.T) {
	res := <-LoadFontAsync("", 24)
	if res.Err != nil || res.Fallback || res.Font == nil {
		t.Fatalf("got %+v", res)
	}
}
