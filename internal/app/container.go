package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ghxstship/advancing-engine/internal/api"
	"github.com/ghxstship/advancing-engine/internal/auth"
	"github.com/ghxstship/advancing-engine/internal/conflict"
	conflictHttp "github.com/ghxstship/advancing-engine/internal/conflict/http"
	"github.com/ghxstship/advancing-engine/internal/crew"
	crewHttp "github.com/ghxstship/advancing-engine/internal/crew/http"
	"github.com/ghxstship/advancing-engine/internal/schedule"
	scheduleHttp "github.com/ghxstship/advancing-engine/internal/schedule/http"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	DBPool           *pgxpool.Pool
	Logger           *zap.Logger
	JWTSecret        string
	JWTTTL           time.Duration
	ServiceTokenHash string
	BufferPolicy     schedule.BufferPolicy
	MinWindow        time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	serviceTokens := auth.NewServiceTokenVerifier(cfg.ServiceTokenHash)

	// Schedule module: interval store + availability timelines.
	intervalRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(intervalRepo, cfg.BufferPolicy, cfg.MinWindow)

	// Conflict module: detection and resolution over the interval store.
	conflictRepo := conflict.NewPgxRepository(cfg.DBPool)
	conflictService := conflict.NewService(conflictRepo, intervalRepo, cfg.BufferPolicy, cfg.Logger)

	// Crew module: shift double-booking guard.
	crewRepo := crew.NewPgxRepository(cfg.DBPool)
	crewService := crew.NewService(crewRepo)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		Logger:          cfg.Logger,
		JWTManager:      jwtManager,
		ServiceTokens:   serviceTokens,
		ScheduleHandler: scheduleHttp.NewHandler(scheduleService),
		ConflictHandler: conflictHttp.NewHandler(conflictService),
		CrewHandler:     crewHttp.NewHandler(crewService),
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
