package storage

import (
	"time"

	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

type Repository interface {
	GetCharacters() ([]game.Character, error)
	// GetCharacterByID returns (nil, nil) when no character has the id.
	GetCharacterByID(id uint) (*game.Character, error)
	GetCharactersByIDs(ids []uint) ([]game.Character, error)

	// GetWinRates returns the ledger keyed by character id string.
	// Characters with no recorded battles are absent from the map.
	GetWinRates() (map[string]game.WinRate, error)
	// RecordBattleResult increments total_battles for every participant
	// and wins for every winner, atomically. A drawn battle passes an
	// empty winner list.
	RecordBattleResult(participantIDs, winnerIDs []uint) error

	CreateSession(s *game.BattleSession) error
	// GetSessionByBattleID returns (nil, nil) when the battle id is unknown.
	GetSessionByBattleID(battleID string) (*game.BattleSession, error)
	UpdateSession(s *game.BattleSession) error
	// DeleteExpiredSessions removes sessions whose deadline is at or
	// before now and returns how many were removed.
	DeleteExpiredSessions(now time.Time) (int64, error)
}
