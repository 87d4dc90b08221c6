package app

import (
	plinkoAPI "plinko_backend/internal/api/plinko"
	"plinko_backend/internal/config"
	"plinko_backend/internal/config/env"
	"plinko_backend/internal/model"
	"plinko_backend/internal/repository"
	"plinko_backend/internal/repository/stats_repo"
	"plinko_backend/internal/service"
	"plinko_backend/internal/service/plinko"
	"plinko_backend/pkg/rng"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type ServiceProvider struct {
	configPath string

	// Configs
	simulationCfg config.SimulationConfig
	httpCfg       config.HTTPConfig
	logCfg        config.LogConfig

	// Plinko bits
	board      *model.Board
	rnd        rng.Source
	statsRepo  repository.StatsRepository
	plinkoServ service.PlinkoService
	plinkoHand *plinkoAPI.Handler

	// Router
	router chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) SimulationCfg() config.SimulationConfig {
	if sp.simulationCfg == nil {
		cfg, err := env.NewSimulationConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get simulation config: " + err.Error())
		}
		sp.simulationCfg = cfg
	}
	return sp.simulationCfg
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

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

// Board Одно неизменяемое поле на весь процесс
func (sp *ServiceProvider) Board() *model.Board {
	if sp.board == nil {
		sp.board = model.BuildBoard()
	}
	return sp.board
}

// Rand Общий генератор сервиса. Сид из конфига, 0 означает сид от времени.
func (sp *ServiceProvider) Rand() rng.Source {
	if sp.rnd == nil {
		sp.rnd = rng.NewLocked(sp.SimulationCfg().Seed())
	}
	return sp.rnd
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) PlinkoService() service.PlinkoService {
	if sp.plinkoServ == nil {
		sp.plinkoServ = plinko.NewPlinkoService(sp.SimulationCfg(), sp.Board(), sp.Rand(), sp.StatsRepository())
	}
	return sp.plinkoServ
}

func (sp *ServiceProvider) PlinkoHandler() *plinkoAPI.Handler {
	if sp.plinkoHand == nil {
		sp.plinkoHand = plinkoAPI.NewHandler(plinkoAPI.HandlerDeps{
			Serv:          sp.PlinkoService(),
			DefaultTrials: sp.SimulationCfg().Trials(),
		})
	}
	return sp.plinkoHand
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Plinko endpoints
		plinkoHandler := sp.PlinkoHandler()
		r.Route("/plinko", func(rr chi.Router) {
			rr.Get("/board", plinkoHandler.Board)
			rr.Post("/drop", plinkoHandler.Drop)
			rr.Post("/trials", plinkoHandler.Trials)
			rr.Post("/all", plinkoHandler.AllSlots)
			rr.Get("/exact", plinkoHandler.Exact)
			rr.Get("/stats", plinkoHandler.Stats)
			rr.Get("/chart", plinkoHandler.Chart)
		})

		sp.router = r
	}

	return sp.router
}
