package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shanewhatthesix/Fight-Card/internal/game"

	"gorm.io/gorm"
)

type skillEntry struct {
	Name   string          `json:"name"`
	Effect string          `json:"effect"`
	Damage game.ElementMap `json:"damage"`
}

type attributeEntry struct {
	Name       string          `json:"name"`
	Resistance game.ElementMap `json:"resistance"`
}

type characterEntry struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Element string `json:"element"`
	Stats   struct {
		HP     int             `json:"hp"`
		Attack game.ElementMap `json:"atk"`
	} `json:"stats"`
	Skills     []skillEntry     `json:"skills"`
	Attributes []attributeEntry `json:"attributes"`
}

type rawConfig struct {
	CharacterList []characterEntry `json:"character_list"`
	Server        *struct {
		Address string `json:"address"`
	} `json:"server"`
	// In minutes. Idle interactive battles past this age are evicted.
	SessionTTLMinutes int `json:"session_ttl_minutes"`
}

// LoadedConfig contains the roster to seed, the server address to bind to
// and the interactive session time-to-live.
type LoadedConfig struct {
	Characters    []game.Character
	ServerAddress string
	SessionTTL    time.Duration
}

// LoadConfig reads the configuration file at path. It requires the key
// `character_list` (snake_case). Element maps may omit elements; missing
// entries are normalized to 0 here so everything downstream sees complete
// maps.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.CharacterList
	if len(entries) == 0 {
		return nil, fmt.Errorf("config file %s: character_list is empty (provide 'character_list' array)", path)
	}

	out := make([]game.Character, 0, len(entries))
	idSet := make(map[uint]struct{}, len(entries))
	nameSet := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.ID == 0 {
			return nil, fmt.Errorf("config file %s: character %q missing 'id'", path, e.Name)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("config file %s: character entry %d missing 'name'", path, e.ID)
		}
		if _, exists := idSet[e.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate character id %d", path, e.ID)
		}
		idSet[e.ID] = struct{}{}
		ln := strings.ToLower(strings.TrimSpace(e.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate character name %q", path, e.Name)
		}
		nameSet[ln] = struct{}{}

		c := game.Character{
			Model:   gorm.Model{ID: e.ID},
			Name:    e.Name,
			Element: e.Element,
			Stats: game.Stats{
				HP:     e.Stats.HP,
				Attack: e.Stats.Attack.Normalized(),
			},
		}
		for _, s := range e.Skills {
			c.Skills = append(c.Skills, game.Skill{
				CharacterID: e.ID,
				Name:        s.Name,
				Effect:      s.Effect,
				Damage:      s.Damage.Normalized(),
			})
		}
		for _, a := range e.Attributes {
			c.Attributes = append(c.Attributes, game.Attribute{
				CharacterID: e.ID,
				Name:        a.Name,
				Resistance:  a.Resistance.Normalized(),
			})
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		out = append(out, c)
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	ttl := 60 * time.Minute
	if rc.SessionTTLMinutes > 0 {
		ttl = time.Duration(rc.SessionTTLMinutes) * time.Minute
	}

	return &LoadedConfig{
		Characters:    out,
		ServerAddress: addr,
		SessionTTL:    ttl,
	}, nil
}
