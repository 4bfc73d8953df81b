package service

import (
	"time"

	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

// CharacterRepo is the slice of storage used by team selection and
// batch battles.
type CharacterRepo interface {
	GetCharacters() ([]game.Character, error)
	GetCharacterByID(id uint) (*game.Character, error)
	GetCharactersByIDs(ids []uint) ([]game.Character, error)
}

// LedgerRepo records completed battles against the persistent win-rate
// ledger.
type LedgerRepo interface {
	RecordBattleResult(participantIDs, winnerIDs []uint) error
}

// BattleRepo is what a one-shot battle needs from storage.
type BattleRepo interface {
	CharacterRepo
	LedgerRepo
}

// SessionRepo persists interactive battle sessions.
type SessionRepo interface {
	CreateSession(s *game.BattleSession) error
	GetSessionByBattleID(battleID string) (*game.BattleSession, error)
	UpdateSession(s *game.BattleSession) error
	DeleteExpiredSessions(now time.Time) (int64, error)
}
