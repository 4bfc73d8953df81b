package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fight_card_config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

const validConfig = `{
  "character_list": [
    {
      "id": 1,
      "name": "Ash",
      "element": "fire",
      "stats": {"hp": 100, "atk": {"fire": 12}},
      "skills": [
        {"name": "Flame Strike", "effect": "a burst of fire", "damage": {"fire": 30}}
      ],
      "attributes": [
        {"name": "Ember Skin", "resistance": {"fire": 10, "water": -5}}
      ]
    },
    {
      "id": 2,
      "name": "Brook",
      "element": "water",
      "stats": {"hp": 90, "atk": {"water": 14}},
      "skills": [
        {"name": "Tidal Crush", "effect": "a crushing wave", "damage": {"water": 28}}
      ],
      "attributes": []
    }
  ]
}`

func TestLoadConfig_NormalizesElementMaps(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Characters) != 2 {
		t.Fatalf("expected 2 characters, got %d", len(cfg.Characters))
	}

	ash := cfg.Characters[0]
	if ash.ID != 1 || ash.Name != "Ash" {
		t.Fatalf("unexpected first character: %+v", ash)
	}
	if !ash.Stats.Attack.Complete() {
		t.Fatalf("attack map must be normalized to all elements")
	}
	if !ash.Skills[0].Damage.Complete() {
		t.Fatalf("skill damage map must be normalized to all elements")
	}
	if !ash.Attributes[0].Resistance.Complete() {
		t.Fatalf("attribute resistance map must be normalized to all elements")
	}
	if ash.Skills[0].Damage[game.Fire] != 30 || ash.Skills[0].Damage[game.Mental] != 0 {
		t.Fatalf("normalization must keep authored values and zero-fill the rest")
	}
	if ash.Attributes[0].Resistance[game.Water] != -5 {
		t.Fatalf("negative resistance must survive normalization")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address :8080, got %q", cfg.ServerAddress)
	}
	if cfg.SessionTTL != 60*time.Minute {
		t.Fatalf("expected default session TTL of 60m, got %v", cfg.SessionTTL)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	body := strings.TrimSuffix(validConfig, "}") + `,
  "server": {"address": ":9999"},
  "session_ttl_minutes": 5
}`
	cfg, err := LoadConfig(writeConfig(t, body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9999" {
		t.Fatalf("expected :9999, got %q", cfg.ServerAddress)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Fatalf("expected 5m session TTL, got %v", cfg.SessionTTL)
	}
}

func TestLoadConfig_DuplicateID(t *testing.T) {
	body := strings.Replace(validConfig, `"id": 2`, `"id": 1`, 1)
	if _, err := LoadConfig(writeConfig(t, body)); err == nil || !strings.Contains(err.Error(), "duplicate character id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestLoadConfig_DuplicateName(t *testing.T) {
	body := strings.Replace(validConfig, `"name": "Brook"`, `"name": "ash"`, 1)
	if _, err := LoadConfig(writeConfig(t, body)); err == nil || !strings.Contains(err.Error(), "duplicate character name") {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

func TestLoadConfig_EmptyRoster(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"character_list": []}`)); err == nil || !strings.Contains(err.Error(), "character_list is empty") {
		t.Fatalf("expected empty roster error, got %v", err)
	}
}

func TestLoadConfig_NonPositiveHP(t *testing.T) {
	body := strings.Replace(validConfig, `"hp": 90`, `"hp": 0`, 1)
	if _, err := LoadConfig(writeConfig(t, body)); err == nil {
		t.Fatalf("expected validation error for non-positive hp")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
