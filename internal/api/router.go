package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ghxstship/advancing-engine/internal/auth"
	conflictHttp "github.com/ghxstship/advancing-engine/internal/conflict/http"
	crewHttp "github.com/ghxstship/advancing-engine/internal/crew/http"
	scheduleHttp "github.com/ghxstship/advancing-engine/internal/schedule/http"
)

// Config holds everything the router needs from the container.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	Logger          *zap.Logger
	JWTManager      *auth.JWTManager
	ServiceTokens   *auth.ServiceTokenVerifier
	ScheduleHandler *scheduleHttp.Handler
	ConflictHandler *conflictHttp.Handler
	CrewHandler     *crewHttp.Handler
}

// NewRouter assembles middleware (CORS, request logging, recovery, auth)
// and registers the module routes under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsCfg.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsCfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:8081"}
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Service-Token"}
	r.Use(cors.New(corsCfg))

	authMiddleware := auth.AuthRequired(cfg.JWTManager, cfg.ServiceTokens)

	v1 := r.Group("/v1")
	{
		scheduleHttp.RegisterRoutes(v1, cfg.ScheduleHandler, authMiddleware)
		conflictHttp.RegisterRoutes(v1, cfg.ConflictHandler, authMiddleware)
		crewHttp.RegisterRoutes(v1, cfg.CrewHandler, authMiddleware)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
