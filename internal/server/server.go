package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/emilythestrangee/qa-forum/backend/internal/config"
	"github.com/emilythestrangee/qa-forum/backend/internal/handlers"
	"github.com/emilythestrangee/qa-forum/backend/internal/metrics"
	"github.com/emilythestrangee/qa-forum/backend/internal/middleware"
	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

type Server struct {
	cfg      config.Config
	profile  profile.Profile
	services *service.Services
	handler  *handlers.Handler
	metrics  *metrics.Metrics
}

// Deps are the collaborators built by the caller. Metrics may be nil.
type Deps struct {
	Services *service.Services
	Health   handlers.HealthChecker
	Metrics  *metrics.Metrics
}

func New(cfg config.Config, p profile.Profile, deps Deps) *Server {
	return &Server{
		cfg:      cfg,
		profile:  p,
		services: deps.Services,
		handler:  handlers.NewHandler(deps.Services, p, deps.Health),
		metrics:  deps.Metrics,
	}
}

// HTTPServer wraps the router in an http.Server listening on the configured port.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.RegisterRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Remote assistant calls can take up to AI_TIMEOUT.
		WriteTimeout: s.cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()

	if s.cfg.OTel.Enabled() {
		r.Use(otelgin.Middleware(s.cfg.OTel.ServiceName))
	}
	var obs middleware.RequestObserver
	if s.metrics != nil {
		obs = s.metrics
	}
	r.Use(middleware.Logger(obs), middleware.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !allowsAnyOrigin(s.cfg.CORS.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	if s.cfg.Metrics.Enabled && s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	authn := s.services.Auth
	required := middleware.RequireAuth(authn)
	optional := middleware.OptionalAuth(authn)

	api := r.Group("/api")
	{
		api.GET("/health", s.handler.Health.Health)

		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Public reads; a valid token is attached when present.
		public := api.Group("", optional)
		{
			public.GET("/questions", s.handler.Question.GetQuestions)
			public.GET("/questions/:id", s.handler.Question.GetQuestion)
			public.GET("/questions/:id/answers", s.handler.Answer.GetAnswers)
			public.GET("/search", s.handler.Search.Search)
		}

		protected := api.Group("", required)
		{
			protected.GET("/me", s.handler.Auth.GetMe)
			protected.POST("/questions", s.handler.Question.CreateQuestion)
			protected.POST("/questions/:id/answers", s.handler.Answer.CreateAnswer)
			protected.POST("/vote", s.handler.Vote.Vote)
			protected.POST(s.profile.ChatPath, s.handler.Assistant.Chat)
			protected.POST("/fact-check-answer", s.handler.Assistant.FactCheck)
		}
	}

	return r
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
