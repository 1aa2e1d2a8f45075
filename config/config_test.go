package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// withConfigDir points the config package at a temporary directory.
func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	setConfigDir(t, dir)

	t.Setenv("CODEARK_LANGUAGE", "")
	os.Unsetenv("CODEARK_LANGUAGE")
	t.Setenv("CODEARK_RECENT_LIMIT", "")
	os.Unsetenv("CODEARK_RECENT_LIMIT")
	return dir
}

func setConfigDir(t *testing.T, dir string) {
	t.Helper()
	orig := userConfigDir
	userConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDir = orig })
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "codeark", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readConfigFile(t *testing.T, dir string) Settings {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "codeark", "config.json"))
	if err != nil {
		t.Fatalf("read config file: %v", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("decode config file: %v", err)
	}
	return s
}

func TestLoadDefaults(t *testing.T) {
	withConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Language != "auto" {
		t.Errorf("Language = %q, want auto", cfg.Language)
	}
	if cfg.RecentLimit != DefaultRecentLimit {
		t.Errorf("RecentLimit = %d, want %d", cfg.RecentLimit, DefaultRecentLimit)
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := withConfigDir(t)
	writeConfigFile(t, dir, `{"language":"en","recent_limit":3}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Language != "en" || cfg.RecentLimit != 3 {
		t.Errorf("Load() = %+v, want language en, limit 3", cfg.Settings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := withConfigDir(t)
	writeConfigFile(t, dir, `{"language":"zh","recent_limit":4}`)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if got := readConfigFile(t, dir); got.Language != "zh" || got.RecentLimit != 4 {
		t.Errorf("saved = %+v, want language zh, limit 4", got)
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	dir := withConfigDir(t)
	writeConfigFile(t, dir, `{"language":"klingon","recent_limit":-4}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Language != "auto" || cfg.RecentLimit != DefaultRecentLimit {
		t.Errorf("Load() = %+v, want normalized defaults", cfg.Settings)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	dir := withConfigDir(t)
	writeConfigFile(t, dir, `{not json`)

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want unmarshal error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := withConfigDir(t)
	writeConfigFile(t, dir, `{"language":"zh","recent_limit":5}`)
	t.Setenv("CODEARK_LANGUAGE", "en")
	t.Setenv("CODEARK_RECENT_LIMIT", "20")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Language != "en" || cfg.RecentLimit != 20 {
		t.Errorf("Load() = %+v, want env values", cfg.Settings)
	}
}

func TestEnvOverridesAreNeverPersisted(t *testing.T) {
	dir := withConfigDir(t)
	t.Setenv("CODEARK_RECENT_LIMIT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetLanguage("en"); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}

	got := readConfigFile(t, dir)
	if got.Language != "en" {
		t.Errorf("saved language = %q, want en", got.Language)
	}
	if got.RecentLimit != DefaultRecentLimit {
		t.Errorf("saved recent_limit = %d, want %d (env value leaked)", got.RecentLimit, DefaultRecentLimit)
	}
	if cfg.RecentLimit != 3 {
		t.Errorf("effective RecentLimit = %d, want env value 3", cfg.RecentLimit)
	}
}

func TestSetLanguage(t *testing.T) {
	withConfigDir(t)

	tests := []struct {
		lang    string
		wantErr bool
	}{
		{"zh", false},
		{"en", false},
		{"auto", false},
		{"fr", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			cfg := Default()
			err := cfg.SetLanguage(tt.lang)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetLanguage(%q) error = %v, wantErr %v", tt.lang, err, tt.wantErr)
			}
			if tt.wantErr {
				if cfg.Language != "auto" {
					t.Errorf("rejected language changed setting to %q", cfg.Language)
				}
				return
			}
			loaded, err := Load()
			if err != nil {
				t.Fatal(err)
			}
			if loaded.Language != tt.lang {
				t.Errorf("persisted language = %q, want %q", loaded.Language, tt.lang)
			}
		})
	}
}

func TestSetLanguageKeepsSettingWhenSaveFails(t *testing.T) {
	withConfigDir(t)

	// A regular file where the config directory should be makes every
	// write fail.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	setConfigDir(t, blocker)

	cfg := Default()
	if err := cfg.SetLanguage("en"); err == nil {
		t.Fatal("SetLanguage() error = nil, want write failure")
	}
	if cfg.Language != "auto" {
		t.Errorf("Language = %q after failed save, want auto", cfg.Language)
	}

	// A later successful save still writes the old file value.
	withConfigDir(t)
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Language != "auto" {
		t.Errorf("persisted language = %q, want auto", loaded.Language)
	}
}

func TestHistoryDir(t *testing.T) {
	dir := withConfigDir(t)

	got, err := HistoryDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "codeark", "history"); got != want {
		t.Errorf("HistoryDir() = %q, want %q", got, want)
	}
}
