package relay

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestResolveDeduplicatesFirstWins(t *testing.T) {
	r := NewResolver(zerolog.Nop())
	candidates := []Candidate{
		{Value: "https://cdn.example.com/a.png", Path: "choices.[0]"},
		{Value: "https://cdn.example.com/b.png", Path: "choices.[1]"},
		{Value: "https://cdn.example.com/a.png", Path: "choices.[2]"},
	}

	got := r.Resolve(context.Background(), candidates, "")
	want := []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"}
	assertStrings(t, got, want)
}

func TestResolveDropsEchoOfUploadedImage(t *testing.T) {
	r := NewResolver(zerolog.Nop())
	uploaded := "data:image/png;base64," + strings.Repeat("A", 80)
	candidates := []Candidate{
		{Value: uploaded, Path: "choices.[0]"},
		{Value: "https://cdn.example.com/new.png", Path: "choices.[1]"},
	}

	got := r.Resolve(context.Background(), candidates, uploaded)
	assertStrings(t, got, []string{"https://cdn.example.com/new.png"})
}

func TestResolveDropsEchoAfterNormalization(t *testing.T) {
	// The model may return the uploaded payload as a bare base64 blob; the
	// echo check compares normalized forms so it still matches.
	r := NewResolver(zerolog.Nop())
	raw := strings.Repeat("A", 80)
	candidates := []Candidate{
		{Value: "data:image/png;base64," + raw, Path: "b64_json"},
	}

	got := r.Resolve(context.Background(), candidates, raw)
	if len(got) != 0 {
		t.Fatalf("expected echo to be dropped, got %v", got)
	}
}

func TestResolveReadsLocalFiles(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("fake-webp-bytes")
	path := filepath.Join(dir, "out.WEBP")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(zerolog.Nop())
	got := r.Resolve(context.Background(), []Candidate{{Value: path, Path: "file"}}, "")

	want := "data:image/webp;base64," + base64.StdEncoding.EncodeToString(payload)
	assertStrings(t, got, []string{want})
}

func TestResolveDefaultsUnknownExtensionToPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	if err := os.WriteFile(path, []byte{0x1}, 0o600); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(zerolog.Nop())
	got := r.Resolve(context.Background(), []Candidate{{Value: path, Path: "file"}}, "")
	if len(got) != 1 || !strings.HasPrefix(got[0], "data:image/png;base64,") {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestResolveDropsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	okPath := filepath.Join(dir, "ok.png")
	if err := os.WriteFile(okPath, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(zerolog.Nop())
	candidates := []Candidate{
		{Value: filepath.Join(dir, "missing.png"), Path: "a"},
		{Value: okPath, Path: "b"},
		{Value: "https://cdn.example.com/remote.png", Path: "c"},
	}

	got := r.Resolve(context.Background(), candidates, "")
	want := []string{
		"https://cdn.example.com/remote.png",
		"data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png")),
	}
	assertStrings(t, got, want)
}

func TestResolveRemoteBeforeLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.png")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(zerolog.Nop())
	candidates := []Candidate{
		{Value: path, Path: "a"},
		{Value: "https://cdn.example.com/remote.png", Path: "b"},
	}

	got := r.Resolve(context.Background(), candidates, "")
	if len(got) != 2 || got[0] != "https://cdn.example.com/remote.png" {
		t.Fatalf("remote candidates should precede materialized locals, got %v", got)
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	r := NewResolver(zerolog.Nop())
	candidates := []Candidate{
		{Value: "https://cdn.example.com/a.png", Path: "a"},
		{Value: "https://cdn.example.com/a.png", Path: "b"},
		{Value: "https://cdn.example.com/c.png", Path: "c"},
	}
	copied := make([]Candidate, len(candidates))
	copy(copied, candidates)

	r.Resolve(context.Background(), candidates, "")
	for i := range candidates {
		if candidates[i] != copied[i] {
			t.Fatalf("input slice was mutated at %d: %+v", i, candidates[i])
		}
	}
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d values %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d = %q, want %q", i, got[i], want[i])
		}
	}
}
