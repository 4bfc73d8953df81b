package game

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BattleSession is the persisted state machine of an interactive battle:
// one action is resolved per client request instead of looping on the
// server. Participants and the log are stored as JSON columns so the
// whole session round-trips through a single row.
//
// Sessions carry an expiry deadline; a background scanner evicts rows past
// it (there is no explicit "close" call from clients).
type BattleSession struct {
	gorm.Model        `json:"-"`
	BattleID          string                           `json:"battle_id" gorm:"uniqueIndex"`
	Participants      datatypes.JSONSlice[Participant] `json:"participants"`
	CurrentTurn       int                              `json:"current_turn"`
	ActiveCharacterID uint                             `json:"active_character_id"`
	Log               datatypes.JSONSlice[LogEntry]    `json:"log"`
	Ended             bool                             `json:"ended"`
	ResultMessage     string                           `json:"result_message"`
	StatsCounted      bool                             `json:"-"`
	ExpiresAt         time.Time                        `json:"-" gorm:"index"`
}

// TableName keeps the persisted table name explicit.
func (BattleSession) TableName() string { return "battle_sessions" }

// ParticipantByID returns a pointer into the session's participant slice,
// or nil when the character is not part of this battle.
func (s *BattleSession) ParticipantByID(id uint) *Participant {
	for i := range s.Participants {
		if s.Participants[i].Character.ID == id {
			return &s.Participants[i]
		}
	}
	return nil
}

// AliveOpponents returns every living participant other than the one with
// the given character id, in stored order.
func (s *BattleSession) AliveOpponents(id uint) []*Participant {
	var out []*Participant
	for i := range s.Participants {
		if s.Participants[i].Character.ID != id && s.Participants[i].Alive() {
			out = append(out, &s.Participants[i])
		}
	}
	return out
}

// AliveCount returns the number of living participants.
func (s *BattleSession) AliveCount() int {
	n := 0
	for i := range s.Participants {
		if s.Participants[i].Alive() {
			n++
		}
	}
	return n
}
