package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParsePlatformer(defaultPlatformerYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded defaults drifted from DefaultPlatformerConfig:\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
}

func TestParsePlatformerPartialOverride(t *testing.T) {
	cfg, err := ParsePlatformer([]byte("physics:\n  gravity: 0.75\nboss:\n  every: 5\n"))
	if err != nil {
		t.Fatalf("ParsePlatformer() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("gravity = %v, expected 0.75", cfg.Physics.Gravity)
	}
	if cfg.Boss.Every != 5 {
		t.Errorf("boss.every = %d, expected 5", cfg.Boss.Every)
	}
	if cfg.Physics.JumpImpulse != -5.0 {
		t.Errorf("untouched keys should keep defaults, jump_impulse = %v", cfg.Physics.JumpImpulse)
	}
}

func TestParsePlatformerErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "physics: [", "cannot parse yaml"},
		{"upward gravity", "physics:\n  gravity: -1\n", "physics.gravity"},
		{"jump goes down", "physics:\n  jump_impulse: 2\n", "physics.jump_impulse"},
		{"board overfull", "boss:\n  player_chance: 0.8\n  boss_chance: 0.5\n", "boss cell chances"},
		{"no boss cadence", "boss:\n  every: 0\n", "boss.every"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePlatformer([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("hearts:\n  drop_chance: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Hearts.DropChance != 0.5 {
		t.Errorf("drop_chance = %v, expected 0.5", cfg.Hearts.DropChance)
	}

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("a missing custom path should be an error")
	}
}

func TestLoadPlatformerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadPlatformerUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".platformer", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, PlatformerFile), []byte("boss:\n  win_score: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Boss.WinScore != 4 {
		t.Errorf("win_score = %d, expected the user file's 4", cfg.Boss.WinScore)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset     string
		timeCap    float64
		dropChance float64
	}{
		{"", 20, 0.1},
		{"normal", 20, 0.1},
		{"easy", 30, 0.2},
		{"hard", 15, 0.05},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			preset, err := ParseDifficulty(tc.preset)
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.preset, err)
			}
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, preset)

			if cfg.Boss.TimeCapSeconds != tc.timeCap {
				t.Errorf("time cap = %v, expected %v", cfg.Boss.TimeCapSeconds, tc.timeCap)
			}
			if cfg.Hearts.DropChance != tc.dropChance {
				t.Errorf("drop chance = %v, expected %v", cfg.Hearts.DropChance, tc.dropChance)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}

	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestBossDurations(t *testing.T) {
	b := DefaultPlatformerConfig().Boss
	if b.RegenInterval() != 5*time.Second {
		t.Errorf("RegenInterval() = %v", b.RegenInterval())
	}
	if b.TimeCap() != 20*time.Second {
		t.Errorf("TimeCap() = %v", b.TimeCap())
	}
	if b.ResultDelay() != 2*time.Second {
		t.Errorf("ResultDelay() = %v", b.ResultDelay())
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, PlatformerFile)
	if err := os.WriteFile(path, []byte("boss:\n  every: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("boss:\n  every: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Boss.Every != 3 {
			t.Errorf("reloaded boss.every = %d, expected 3", cfg.Boss.Every)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}
