package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shanewhatthesix/Fight-Card/internal/constants"
	"github.com/shanewhatthesix/Fight-Card/internal/engine"
	"github.com/shanewhatthesix/Fight-Card/internal/game"
	"github.com/shanewhatthesix/Fight-Card/internal/logging"
)

// StartSession creates an interactive two-combatant battle, picks the
// first actor at random and persists the initial session state.
func StartSession(chars CharacterRepo, sessions SessionRepo, eng *engine.Engine, player1ID, player2ID uint, ttl time.Duration) (*game.BattleSession, error) {
	pair, err := lookupTeam(chars, []uint{player1ID, player2ID})
	if err != nil {
		return nil, err
	}

	participants := []game.Participant{
		*game.NewParticipant(pair[0], ""),
		*game.NewParticipant(pair[1], ""),
	}
	active := participants[eng.Intn(2)].Character.ID

	log := []game.LogEntry{
		{
			Event: game.EventStart,
			Message: fmt.Sprintf("Battle begins: %q vs %q",
				participants[0].Character.Name, participants[1].Character.Name),
		},
		{
			Event:   game.EventTurnStart,
			Turn:    1,
			Message: "--- Turn 1 ---",
		},
	}

	session := &game.BattleSession{
		BattleID:          uuid.NewString(),
		Participants:      participants,
		CurrentTurn:       1,
		ActiveCharacterID: active,
		Log:               log,
		ExpiresAt:         time.Now().Add(ttl),
	}
	if err := sessions.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitAction applies one attack to a running session. Every validation
// failure is returned before any state changes, so a rejected action
// leaves the stored session untouched.
func SubmitAction(sessions SessionRepo, ledger LedgerRepo, eng *engine.Engine, battleID string, characterID uint, skillName string, ttl time.Duration) (*game.BattleSession, error) {
	session, err := sessions.GetSessionByBattleID(battleID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrBattleNotFound
	}
	if session.Ended {
		return nil, ErrBattleEnded
	}

	attacker := session.ParticipantByID(characterID)
	if attacker == nil {
		return nil, fmt.Errorf("%w: id %d is not in this battle", ErrCharacterNotFound, characterID)
	}
	if session.ActiveCharacterID != characterID {
		return nil, ErrNotYourTurn
	}
	if !attacker.Alive() {
		return nil, ErrActorDefeated
	}
	skill := attacker.Character.SkillByName(skillName)
	if skill == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, skillName)
	}

	log := []game.LogEntry(session.Log)

	opponents := session.AliveOpponents(characterID)
	if len(opponents) == 0 {
		finishSession(session, ledger, fmt.Sprintf("Congratulations %q on the victory!", attacker.Name()),
			[]uint{attacker.Character.ID}, log)
		return session, sessions.UpdateSession(session)
	}

	log = append(log, game.LogEntry{
		Event:     game.EventCharacterTurn,
		Character: attacker.Name(),
		Message:   fmt.Sprintf("%q takes their turn.", attacker.Name()),
	})

	defender := opponents[eng.Intn(len(opponents))]
	eng.ResolveAttack(attacker, defender, skill, &log)

	if len(session.AliveOpponents(characterID)) == 0 {
		finishSession(session, ledger, fmt.Sprintf("Congratulations %q on the victory!", attacker.Name()),
			[]uint{attacker.Character.ID}, log)
		return session, sessions.UpdateSession(session)
	}
	if !attacker.Alive() && session.AliveCount() == 0 {
		finishSession(session, ledger, "The battle ends in a draw! (both combatants were defeated)", nil, log)
		return session, sessions.UpdateSession(session)
	}

	if wrapped := advanceTurn(session); wrapped {
		session.CurrentTurn++
		if session.CurrentTurn > engine.MaxTurns {
			finishSession(session, ledger, "The battle ends in a draw! (turn limit reached)", nil, log)
			return session, sessions.UpdateSession(session)
		}
		log = append(log, game.LogEntry{
			Event:   game.EventTurnStart,
			Turn:    session.CurrentTurn,
			Message: fmt.Sprintf("--- Turn %d ---", session.CurrentTurn),
		})
	}

	session.Log = log
	session.ExpiresAt = time.Now().Add(ttl)
	return session, sessions.UpdateSession(session)
}

// advanceTurn moves ActiveCharacterID to the next living participant in
// stored order. It reports whether the rotation wrapped back to (or past)
// the first living slot, which marks the start of a new turn.
func advanceTurn(session *game.BattleSession) bool {
	cur := -1
	for i := range session.Participants {
		if session.Participants[i].Character.ID == session.ActiveCharacterID {
			cur = i
			break
		}
	}
	n := len(session.Participants)
	for step := 1; step <= n; step++ {
		idx := (cur + step) % n
		if session.Participants[idx].Alive() {
			session.ActiveCharacterID = session.Participants[idx].Character.ID
			return idx <= cur
		}
	}
	return false
}

func finishSession(session *game.BattleSession, ledger LedgerRepo, result string, winnerIDs []uint, log []game.LogEntry) {
	stats := make([]game.CharacterStats, 0, len(session.Participants))
	ids := make([]uint, 0, len(session.Participants))
	for i := range session.Participants {
		stats = append(stats, session.Participants[i].FinalStats())
		ids = append(ids, session.Participants[i].Character.ID)
	}
	log = append(log, game.LogEntry{
		Event:          game.EventEnd,
		Result:         result,
		CharacterStats: stats,
		Message:        result,
	})

	session.Log = log
	session.Ended = true
	session.ResultMessage = result

	if !session.StatsCounted {
		session.StatsCounted = true
		if err := ledger.RecordBattleResult(ids, winnerIDs); err != nil {
			logging.Warn("failed to record battle result", err, logging.Fields{
				constants.LogFieldBattleID: session.BattleID,
			})
		}
	}
}

// ExpireSessions deletes sessions whose deadline has passed. It is run
// periodically from the server's background scanner.
func ExpireSessions(sessions SessionRepo, now time.Time) {
	n, err := sessions.DeleteExpiredSessions(now)
	if err != nil {
		logging.Error("failed to evict expired battle sessions", err, nil)
		return
	}
	if n > 0 {
		logging.Info("evicted expired battle sessions", logging.Fields{"count": n})
	}
}
