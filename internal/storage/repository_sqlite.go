package storage

import (
	"errors"
	"strconv"
	"time"

	"github.com/shanewhatthesix/Fight-Card/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetCharacters() ([]game.Character, error) {
	var chars []game.Character
	if err := r.db.Preload("Skills").Preload("Attributes").Order("id").Find(&chars).Error; err != nil {
		return nil, err
	}
	return chars, nil
}

func (r *sqliteRepository) GetCharacterByID(id uint) (*game.Character, error) {
	var c game.Character
	err := r.db.Preload("Skills").Preload("Attributes").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) GetCharactersByIDs(ids []uint) ([]game.Character, error) {
	var chars []game.Character
	if len(ids) == 0 {
		return chars, nil
	}
	if err := r.db.Preload("Skills").Preload("Attributes").Where("id IN ?", ids).Find(&chars).Error; err != nil {
		return nil, err
	}
	return chars, nil
}

func (r *sqliteRepository) GetWinRates() (map[string]game.WinRate, error) {
	var rates []game.WinRate
	if err := r.db.Find(&rates).Error; err != nil {
		return nil, err
	}
	out := make(map[string]game.WinRate, len(rates))
	for _, wr := range rates {
		out[strconv.FormatUint(uint64(wr.CharacterID), 10)] = wr
	}
	return out, nil
}

func (r *sqliteRepository) RecordBattleResult(participantIDs, winnerIDs []uint) error {
	if len(participantIDs) == 0 {
		return nil
	}
	winners := make(map[uint]bool, len(winnerIDs))
	for _, id := range winnerIDs {
		winners[id] = true
	}
	// One transaction per battle so ledger counters never drift between
	// participants when a write fails part-way.
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range participantIDs {
			win := 0
			if winners[id] {
				win = 1
			}
			row := game.WinRate{CharacterID: id, TotalBattles: 1, Wins: win}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "character_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"total_battles": gorm.Expr("total_battles + 1"),
					"wins":          gorm.Expr("wins + ?", win),
					"updated_at":    time.Now(),
				}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteRepository) CreateSession(s *game.BattleSession) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByBattleID(battleID string) (*game.BattleSession, error) {
	var s game.BattleSession
	err := r.db.Where("battle_id = ?", battleID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.BattleSession) error {
	return r.db.Save(s).Error
}

func (r *sqliteRepository) DeleteExpiredSessions(now time.Time) (int64, error) {
	res := r.db.Unscoped().Where("expires_at <= ?", now).Delete(&game.BattleSession{})
	return res.RowsAffected, res.Error
}
