package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinsAreRegistered(t *testing.T) {
	for _, name := range []string{"default", "gruvbox", "nord"} {
		if !Has(name) {
			t.Errorf("builtin theme %q not registered", name)
		}
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	got := Get("no-such-theme")
	if got.Name != "default" {
		t.Errorf("Get(unknown) = %q, want default", got.Name)
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	if got := Get("GRUVBOX"); got.Name != "gruvbox" {
		t.Errorf("Get(GRUVBOX) = %q, want gruvbox", got.Name)
	}
}

func TestNamesAreSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}

func TestLoadFileRegistersTheme(t *testing.T) {
	src := `
name = "test-custom"

[base]
accent = "#ff0000"

[gauge]
filled = "#00ff00"
`
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if th.Accent != "#ff0000" || th.GaugeFilled != "#00ff00" {
		t.Errorf("overrides not applied: accent=%q filled=%q", th.Accent, th.GaugeFilled)
	}
	// Unset fields inherit from the default palette.
	if th.Border != defaultTheme().Border {
		t.Errorf("border = %q, want default %q", th.Border, defaultTheme().Border)
	}
	if !Has("test-custom") {
		t.Error("loaded theme not registered")
	}
}

func TestLoadFileRejectsBadColor(t *testing.T) {
	src := "name = \"bad\"\n[base]\naccent = \"purple\"\n"
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestLoadFileRequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.toml")
	if err := os.WriteFile(path, []byte("[base]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for missing name")
	}
}
