package app

import (
	"context"

	gamestateAPI "kiosk_backend/internal/api/gamestate"
	leaderboardAPI "kiosk_backend/internal/api/leaderboard"
	playerAPI "kiosk_backend/internal/api/player"
	spinAPI "kiosk_backend/internal/api/spin"
	wsAPI "kiosk_backend/internal/api/ws"
	"kiosk_backend/internal/config"
	"kiosk_backend/internal/config/env"
	"kiosk_backend/internal/events"
	"kiosk_backend/internal/repository"
	"kiosk_backend/internal/repository/game_state_repo"
	"kiosk_backend/internal/repository/player_repo"
	"kiosk_backend/internal/repository/spin_repo"
	"kiosk_backend/internal/service"
	"kiosk_backend/internal/service/gamestate"
	"kiosk_backend/internal/service/leaderboard"
	"kiosk_backend/internal/service/player"
	"kiosk_backend/internal/service/spin"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Game math
	gameCfg config.GameConfig

	// Events
	hub *events.Hub

	// Player bits
	playerRepo repository.PlayerRepository
	playerServ service.PlayerService
	playerHand *playerAPI.Handler

	// Spin bits
	spinRepo      repository.SpinRepository
	reelGenerator *spin.Generator
	spinServ      service.SpinService
	spinHand      *spinAPI.Handler

	// Game state bits
	gameStateRepo repository.GameStateRepository
	gameStateServ service.GameStateService
	gameStateHand *gamestateAPI.Handler

	// Leaderboard bits
	leaderboardServ service.LeaderboardService
	leaderboardHand *leaderboardAPI.Handler

	// Realtime channel
	wsHand *wsAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Hub() *events.Hub {
	if sp.hub == nil {
		sp.hub = events.NewHub()
	}
	return sp.hub
}

func (sp *ServiceProvider) PlayerRepository(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx))
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) PlayerService(ctx context.Context) service.PlayerService {
	if sp.playerServ == nil {
		sp.playerServ = player.NewPlayerService(sp.PlayerRepository(ctx))
	}
	return sp.playerServ
}

func (sp *ServiceProvider) PlayerHandler(ctx context.Context) *playerAPI.Handler {
	if sp.playerHand == nil {
		sp.playerHand = playerAPI.NewHandler(playerAPI.HandlerDeps{
			Serv: sp.PlayerService(ctx),
		})
	}
	return sp.playerHand
}

func (sp *ServiceProvider) SpinRepository(ctx context.Context) repository.SpinRepository {
	if sp.spinRepo == nil {
		sp.spinRepo = spin_repo.NewSpinRepository(sp.DBClient(ctx))
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) ReelGenerator() *spin.Generator {
	if sp.reelGenerator == nil {
		sp.reelGenerator = spin.NewGenerator(sp.GameCfg().ReelValues())
	}
	return sp.reelGenerator
}

func (sp *ServiceProvider) SpinService(ctx context.Context) service.SpinService {
	if sp.spinServ == nil {
		sp.spinServ = spin.NewSpinService(
			sp.SpinRepository(ctx),
			sp.PlayerRepository(ctx),
			sp.ReelGenerator(),
			sp.TXManager(ctx),
		)
	}
	return sp.spinServ
}

func (sp *ServiceProvider) SpinHandler(ctx context.Context) *spinAPI.Handler {
	if sp.spinHand == nil {
		sp.spinHand = spinAPI.NewHandler(spinAPI.HandlerDeps{
			Serv: sp.SpinService(ctx),
		})
	}
	return sp.spinHand
}

func (sp *ServiceProvider) GameStateRepository(ctx context.Context) repository.GameStateRepository {
	if sp.gameStateRepo == nil {
		sp.gameStateRepo = game_state_repo.NewGameStateRepository(sp.DBClient(ctx))
	}
	return sp.gameStateRepo
}

func (sp *ServiceProvider) GameStateService(ctx context.Context) service.GameStateService {
	if sp.gameStateServ == nil {
		sp.gameStateServ = gamestate.NewGameStateService(sp.GameStateRepository(ctx), sp.Hub())
	}
	return sp.gameStateServ
}

func (sp *ServiceProvider) GameStateHandler(ctx context.Context) *gamestateAPI.Handler {
	if sp.gameStateHand == nil {
		sp.gameStateHand = gamestateAPI.NewHandler(gamestateAPI.HandlerDeps{
			Serv: sp.GameStateService(ctx),
		})
	}
	return sp.gameStateHand
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.leaderboardServ == nil {
		sp.leaderboardServ = leaderboard.NewLeaderboardService(
			sp.SpinRepository(ctx),
			sp.GameCfg().LeaderboardSize(),
		)
	}
	return sp.leaderboardServ
}

func (sp *ServiceProvider) LeaderboardHandler(ctx context.Context) *leaderboardAPI.Handler {
	if sp.leaderboardHand == nil {
		sp.leaderboardHand = leaderboardAPI.NewHandler(leaderboardAPI.HandlerDeps{
			Serv: sp.LeaderboardService(ctx),
		})
	}
	return sp.leaderboardHand
}

func (sp *ServiceProvider) WSHandler() *wsAPI.Handler {
	if sp.wsHand == nil {
		sp.wsHand = wsAPI.NewHandler(wsAPI.HandlerDeps{
			Hub: sp.Hub(),
		})
	}
	return sp.wsHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Player endpoints
		playerHandler := sp.PlayerHandler(ctx)
		r.Route("/players", func(rr chi.Router) {
			rr.Post("/", playerHandler.Register)
			rr.Get("/{id}", playerHandler.Get)
		})

		// Game state endpoints
		gameStateHandler := sp.GameStateHandler(ctx)
		r.Route("/game_state", func(rr chi.Router) {
			rr.Get("/", gameStateHandler.Show)
			rr.Post("/", gameStateHandler.Update)
		})

		// Spin endpoints
		spinHandler := sp.SpinHandler(ctx)
		r.Route("/spins", func(rr chi.Router) {
			rr.Post("/", spinHandler.Create)
			rr.Get("/{id}", spinHandler.Show)
			rr.Patch("/{id}/apply_bonus", spinHandler.ApplyBonus)
		})

		// Leaderboard endpoint
		r.Get("/leaderboard", sp.LeaderboardHandler(ctx).Index)

		// Realtime channel for displays
		r.Get("/cable", sp.WSHandler().Serve)

		sp.router = r
	}

	return sp.router
}
