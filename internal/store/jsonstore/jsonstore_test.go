package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idilsaglam/shopping/internal/model"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoad(t *testing.T) {
	want := []model.Item{
		{Name: "apples"},
		{ID: "m1", Name: "milk", Checked: true},
	}
	tests := []struct {
		file string
		body string
	}{
		{"seed.json", `[{"name":"apples"},{"id":"m1","name":"milk","checked":true}]`},
		{"seed.yaml", "- name: apples\n- id: m1\n  name: milk\n  checked: true\n"},
		{"seed.YML", "- name: apples\n- id: m1\n  name: milk\n  checked: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if d := cmp.Diff(want, got); d != "" {
				t.Fatalf("items (-want +got):\n%s", d)
			}
		})
	}
}

func TestLoad_IgnoresEditingFlag(t *testing.T) {
	got, err := Load(writeFile(t, "seed.json", `[{"name":"a","IsEditing":true}]`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got[0].IsEditing {
		t.Fatalf("editing flag must not be read from a seed file")
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	got, err := Load(writeFile(t, "seed.yaml", ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Fatalf("expected json error")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "name: [")); err == nil {
		t.Fatalf("expected yaml error")
	}
}
