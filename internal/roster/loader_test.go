package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trainings.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write roster file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeRoster(t, `[
		{
			"name": "A",
			"completions": [
				{"name": "X-Ray Safety", "timestamp": "01/15/2024", "expires": "01/15/2025"},
				{"name": "Laboratory Safety Training", "timestamp": "03/02/2023", "expires": null}
			]
		},
		{
			"name": "B",
			"completions": [
				{"name": "Fire Extinguisher Use", "timestamp": "1/5/2023"}
			]
		}
	]`)

	roster, err := LoadFile(path)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(roster) != 2 {
		t.Fatalf("expected 2 people, got %d", len(roster))
	}

	a := roster[0]
	if a.Name != "A" || len(a.Completions) != 2 {
		t.Fatalf("unexpected first person %+v", a)
	}

	withExpiry := a.Completions[0]
	if withExpiry.Expires == nil || *withExpiry.Expires != "01/15/2025" {
		t.Errorf("expected expires 01/15/2025, got %v", withExpiry.Expires)
	}

	// Explicit null and absent both decode to nil
	if a.Completions[1].Expires != nil {
		t.Errorf("expected null expires to decode as nil, got %v", a.Completions[1].Expires)
	}
	if roster[1].Completions[0].Expires != nil {
		t.Errorf("expected absent expires to decode as nil, got %v", roster[1].Completions[0].Expires)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))

	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := writeRoster(t, `{"name": "not an array"`)

	_, err := LoadFile(path)

	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
