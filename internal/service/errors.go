package service

import "errors"

// Selection failures: bad requests, never fatal.
var (
	ErrInvalidMode         = errors.New("invalid battle mode")
	ErrCharacterNotFound   = errors.New("character not found")
	ErrInvalidCharacter    = errors.New("character record is malformed")
	ErrWrongTeamSize       = errors.New("incorrect number of characters for the selected mode")
	ErrNotEnoughCharacters = errors.New("not enough characters for a random battle")
	ErrNotEnoughCombatants = errors.New("free-for-all needs at least two characters")
)

// Battle-state failures: rejected interactive actions. The stored session
// is left unchanged by any of these.
var (
	ErrBattleNotFound = errors.New("battle not found")
	ErrBattleEnded    = errors.New("battle has already ended")
	ErrNotYourTurn    = errors.New("character is not the active combatant")
	ErrActorDefeated  = errors.New("character has already been defeated")
	ErrUnknownSkill   = errors.New("skill not found on character")
)
