package storage

import (
	"github.com/shanewhatthesix/Fight-Card/internal/game"
	"github.com/shanewhatthesix/Fight-Card/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database, migrates the schema and seeds
// the roster from the config file when the characters table is empty. The
// config stays the source of truth for stats; the DB is authoritative only
// for the win-rate ledger and live sessions.
func OpenAndMigrate(dataSourceName string, charactersFromConfig []game.Character) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&game.Character{}, &game.Skill{}, &game.Attribute{}, &game.WinRate{}, &game.BattleSession{})
	if err != nil {
		return nil, err
	}

	seedDefaultCharacters(db, charactersFromConfig)
	return db, nil
}

func seedDefaultCharacters(db *gorm.DB, charactersFromConfig []game.Character) {
	var count int64
	db.Model(&game.Character{}).Count(&count)
	if count > 0 {
		return
	}
	if len(charactersFromConfig) == 0 {
		return
	}
	seed := make([]game.Character, len(charactersFromConfig))
	copy(seed, charactersFromConfig)
	if err := db.Create(&seed).Error; err != nil {
		logging.Error("failed to seed default characters", err, nil)
		return
	}
	logging.Info("seeded default characters", logging.Fields{"count": len(seed)})
}
