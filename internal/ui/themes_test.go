package ui

import (
	"os"
	"testing"
)

// TestSetTheme verifies that SetTheme correctly switches between themes.
func TestSetTheme(t *testing.T) {
	// Save original theme to restore after test
	originalTheme := GetCurrentTheme()
	defer func() { SetCurrentTheme(originalTheme) }()

	testCases := []struct {
		name          string
		themeName     string
		expectedTheme Theme
	}{
		{"Set dark theme", "dark", DarkTheme},
		{"Set light theme", "light", LightTheme},
		{"Set none theme", "none", NoColorTheme},
		{"Unknown theme defaults to dark", "unknown", DarkTheme},
		{"Empty string defaults to dark", "", DarkTheme},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			SetTheme(tc.themeName)
			current := GetCurrentTheme()
			if current.Name != tc.expectedTheme.Name {
				t.Errorf("SetTheme(%q): got theme %q, want %q",
					tc.themeName, current.Name, tc.expectedTheme.Name)
			}
		})
	}
}

// TestInitTheme verifies flag and environment handling.
func TestInitTheme(t *testing.T) {
	originalTheme := GetCurrentTheme()
	originalNoColor, hadNoColor := os.LookupEnv("NO_COLOR")
	defer func() {
		SetCurrentTheme(originalTheme)
		if hadNoColor {
			os.Setenv("NO_COLOR", originalNoColor)
		} else {
			os.Unsetenv("NO_COLOR")
		}
	}()

	os.Unsetenv("NO_COLOR")

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		current := GetCurrentTheme()
		if current.Name != "none" {
			t.Errorf("InitTheme(true): got theme %q, want none", current.Name)
		}
		if current.Primary != "" {
			t.Errorf("InitTheme(true): Primary should be empty, got %q", current.Primary)
		}
	})

	t.Run("default is dark theme", func(t *testing.T) {
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "dark" {
			t.Errorf("InitTheme(false): got theme %q, want dark", got)
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		os.Setenv("NO_COLOR", "1")
		defer os.Unsetenv("NO_COLOR")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("InitTheme(false) with NO_COLOR: got theme %q, want none", got)
		}
	})
}

// TestColorHelpersFollowTheme verifies the helper functions read the live theme.
func TestColorHelpersFollowTheme(t *testing.T) {
	originalTheme := GetCurrentTheme()
	defer func() { SetCurrentTheme(originalTheme) }()

	SetTheme("dark")
	if ColorGreen() != DarkTheme.Success {
		t.Errorf("ColorGreen() = %q, want %q", ColorGreen(), DarkTheme.Success)
	}
	if ColorBold() != DarkTheme.Bold {
		t.Errorf("ColorBold() = %q, want %q", ColorBold(), DarkTheme.Bold)
	}

	SetTheme("none")
	if ColorGreen() != "" || ColorReset() != "" {
		t.Error("no-color theme should produce empty escape codes")
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() = %v, want 3 entries", names)
	}
	for _, name := range names {
		SetTheme(name)
		if GetCurrentTheme().Name != name {
			t.Errorf("theme %q not selectable by name", name)
		}
	}
	SetTheme("dark")
}
