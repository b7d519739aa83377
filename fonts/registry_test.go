package fonts

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestResolveFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"", "Segoe UI", "does-not-exist"} {
		f := r.Resolve(name)
		if f == nil || f.Name != DefaultFamily {
			t.Fatalf("Resolve(%q) = %+v, want default family", name, f)
		}
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"go mono", "GO MONO", " Go Mono "} {
		if f := r.Resolve(name); f.Name != "Go Mono" {
			t.Fatalf("Resolve(%q) = %s", name, f.Name)
		}
	}
	if f := r.Resolve("latin modern roman"); f.Name != "Latin Modern Roman" {
		t.Fatalf("unexpected family %s", f.Name)
	}
}

func TestInstall(t *testing.T) {
	r := NewRegistry()
	data, err := Load("embed:Go Mono")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := r.Install("Label Mono", data); err != nil {
		t.Fatalf("install: %v", err)
	}
	if f, ok := r.TryFind("label mono"); !ok || f.Name != "Label Mono" {
		t.Fatalf("installed family not found: %+v", f)
	}
	if _, err := r.Install("Broken", []byte("not a font")); err == nil {
		t.Fatalf("expected error for invalid font data")
	}
	if _, err := r.Install(" ", data); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestConcurrentResolve(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	seen := make([]*Family, 16)
	for i := range seen {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = r.Resolve("Go")
		}(i)
	}
	wg.Wait()
	for i, f := range seen {
		if f != seen[0] {
			t.Fatalf("goroutine %d saw a different family instance", i)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("embed:Inter"); err == nil {
		t.Fatalf("expected error for unknown built-in font")
	}
}

func TestRead(t *testing.T) {
	if _, err := Read("embed:Latin Modern Roman", ""); err != nil {
		t.Fatalf("embedded font: %v", err)
	}
	if _, err := Read("fonts/body.ttf", ""); err == nil {
		t.Fatalf("relative path without base dir must be rejected")
	}
	dir := t.TempDir()
	data, _ := Load("Go")
	if err := os.WriteFile(filepath.Join(dir, "go.ttf"), data, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	got, err := Read("go.ttf", dir)
	if err != nil {
		t.Fatalf("read from base dir: %v", err)
	}
	if len(got) != len(data) {
		t.Fatalf("expected %d bytes, got %d", len(data), len(got))
	}
}

func TestBuiltinsSharedAcrossRegistries(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	if a.Resolve("Go") != b.Resolve("Go") {
		t.Fatalf("built-in families should be parsed once and shared")
	}
	data, err := Load("Go Mono")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := a.Install("Only In A", data); err != nil {
		t.Fatalf("install: %v", err)
	}
	if _, ok := b.TryFind("Only In A"); ok {
		t.Fatalf("installed fonts must stay local to their registry")
	}
}
