package main

import (
	"os"
	"time"

	"github.com/shanewhatthesix/Fight-Card/internal/api"
	"github.com/shanewhatthesix/Fight-Card/internal/config"
	"github.com/shanewhatthesix/Fight-Card/internal/constants"
	"github.com/shanewhatthesix/Fight-Card/internal/engine"
	"github.com/shanewhatthesix/Fight-Card/internal/logging"
	"github.com/shanewhatthesix/Fight-Card/internal/service"
	"github.com/shanewhatthesix/Fight-Card/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load the character roster (required). Path may be provided via
	// FIGHTCARD_CONFIG env var or defaults to ./fight_card_config.json in
	// the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": configPath, "hint": "create a fight_card_config.json with a 'character_list' array of character objects (id,name,element,stats{hp,atk},skills,attributes) and optional keys: server.address, session_ttl_minutes"})
	}

	// Allow the DB path to be configured via FIGHTCARD_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.Characters)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	eng := engine.New()
	handler := api.NewGameHandler(repo, eng, cfg.SessionTTL)

	// Background scanner: periodically evict interactive sessions whose
	// expiry deadline has passed. Abandoned battles never count on the
	// win-rate ledger.
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			service.ExpireSessions(repo, time.Now())
		}
	}()

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteCharacters, handler.ListCharacters)
		apiRoutes.GET(constants.RouteCharacterByID, handler.GetCharacter)
		apiRoutes.GET(constants.RouteBattle, handler.RunBattle)
		apiRoutes.GET(constants.RouteWinRates, handler.ListWinRates)
		apiRoutes.POST(constants.RouteSessions, handler.StartBattle)
		apiRoutes.GET(constants.RouteSessionByID, handler.GetBattleState)
		apiRoutes.POST(constants.RouteSessionAction, handler.SubmitAction)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
