package constants

// Centralized constants for env keys, routes and handler messages.
const (
	// Environment variable keys
	EnvConfigPath = "FIGHTCARD_CONFIG"
	EnvDBPath     = "FIGHTCARD_DB"

	// Defaults used when the env keys are unset
	DefaultConfigPath = "./fight_card_config.json"
	DefaultDBPath     = "./data/fight_card.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteCharacters    = "/characters"
	RouteCharacterByID = "/characters/:id"
	RouteBattle        = "/battle"
	RouteWinRates      = "/win-rates"
	RouteSessions      = "/battle-sessions"
	RouteSessionByID   = "/battle-sessions/:battleId"
	RouteSessionAction = "/battle-sessions/:battleId/action"
	RouteVersion       = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeySuccess = "success"
	JSONKeyState   = "state"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest        = "Invalid request"
	ErrInvalidBattleMode     = "Invalid battle mode"
	ErrInvalidCharacterID    = "Invalid character ID"
	ErrCharacterNotFound     = "Character not found"
	ErrBattleNotFound        = "Battle not found"
	ErrFailedFetchCharacters = "Failed to fetch characters"
	ErrFailedFetchWinRates   = "Failed to fetch win rates"
	ErrFailedRunBattle       = "Failed to run battle"
	ErrFailedStartBattle     = "Failed to start battle"
	ErrFailedSubmitAction    = "Failed to submit action"
)

// Log field names
const (
	LogFieldAddr     = "addr"
	LogFieldBattleID = "battle_id"
	LogFieldMode     = "mode"
)
