package handler

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/connectai/connect-ai/backend/internal/handler/chat"
	"github.com/connectai/connect-ai/backend/internal/handler/stats"
	"github.com/connectai/connect-ai/backend/internal/logging"
	middlewarePkg "github.com/connectai/connect-ai/backend/internal/middleware"
	chatService "github.com/connectai/connect-ai/backend/internal/service/chat"
	"github.com/connectai/connect-ai/backend/pkg/utils"
)

// RouterConfig carries the non-service inputs of NewRouter.
type RouterConfig struct {
	StaticDir      string
	AllowedOrigins []string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, cfg RouterConfig, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(cfg.AllowedOrigins...))

	chatHandler := chat.New(chatSvc, logger)
	statsHandler := stats.New()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		statsHandler.RegisterRoutes(api)
		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			utils.RespondError(w, http.StatusNotFound, "not found")
		})
	})

	// Chat UI
	index := filepath.Join(cfg.StaticDir, "index.html")
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, index)
	})
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	return r
}
