package plugins

import (
	"strings"
	"testing"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"base64", "url", "hash", "wordcount", "color", "qr"} {
		if _, ok := r.Get(name); !ok {
			t.Errorf("built-in plugin %q missing from registry", name)
		}
	}

	if _, ok := r.Get("  QR "); !ok {
		t.Error("plugin lookup should ignore case and surrounding whitespace")
	}
	if _, ok := r.Get("nope"); ok {
		t.Error("unknown plugin name should miss")
	}

	list := r.List()
	if len(list) != 6 {
		t.Fatalf("List() returned %d plugins, want 6", len(list))
	}
	if list[0].Name() != "base64" || list[len(list)-1].Name() != "qr" {
		t.Error("List() should preserve registration order")
	}
	for _, p := range list {
		if p.Description() == "" {
			t.Errorf("plugin %q has no description", p.Name())
		}
	}
}

func TestBase64Plugin(t *testing.T) {
	out, err := base64Plugin{}.Run("hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "aGVsbG8=" {
		t.Errorf("Run() = %q, want aGVsbG8=", out)
	}
}

func TestURLPlugin(t *testing.T) {
	out, err := urlPlugin{}.Run("a b&c")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "a+b%26c" {
		t.Errorf("Run() = %q, want a+b%%26c", out)
	}
}

func TestHashPlugin(t *testing.T) {
	out, err := hashPlugin{}.Run("abc")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	wants := []string{
		"md5: 900150983cd24fb0d6963f7d28e17f72",
		"sha1: a9993e364706816aba3e25717850c26c9cd0d89d",
		"sha256: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("Run() output missing %q:\n%s", want, out)
		}
	}
}

func TestWordCountPlugin(t *testing.T) {
	out, err := wordCountPlugin{}.Run("one two\nthree")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "words: 3\ncharacters: 13\nlines: 2" {
		t.Errorf("Run() = %q", out)
	}

	empty, err := wordCountPlugin{}.Run("")
	if err != nil {
		t.Fatal(err)
	}
	if empty != "words: 0\ncharacters: 0\nlines: 0" {
		t.Errorf("Run(\"\") = %q", empty)
	}
}

func TestColorPlugin(t *testing.T) {
	out, err := colorPlugin{}.Run("#1e90ff")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{"hex: #1e90ff", "rgb: rgb(30, 144, 255)", "hsl: hsl(210, 100%, 56%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Run() output missing %q:\n%s", want, out)
		}
	}

	// Bare hex without the leading hash is accepted.
	bare, err := colorPlugin{}.Run("1e90ff")
	if err != nil {
		t.Fatalf("Run() error for bare hex = %v", err)
	}
	if bare != out {
		t.Errorf("bare hex output differs: %q vs %q", bare, out)
	}

	if _, err := (colorPlugin{}).Run("not-a-color"); err == nil {
		t.Error("Run() should fail for an invalid color")
	}
	if _, err := (colorPlugin{}).Run(""); err == nil {
		t.Error("Run() should fail for empty input")
	}
}

func TestQRPlugin(t *testing.T) {
	out, err := qrPlugin{}.Run("https://example.com")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(strings.Split(out, "\n")) < 10 {
		t.Errorf("QR output looks too small:\n%s", out)
	}

	if _, err := (qrPlugin{}).Run(""); err == nil {
		t.Error("Run() should fail for empty input")
	}
}
