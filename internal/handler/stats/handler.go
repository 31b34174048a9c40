package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/connectai/connect-ai/backend/internal/model/stats"
	"github.com/connectai/connect-ai/backend/pkg/utils"
)

// Handler serves the fixed deployment description.
type Handler struct {
	payload func() stats.Payload
}

// New 创建stats处理器
func New() *Handler {
	return &Handler{payload: stats.Default}
}

// RegisterRoutes 注册stats相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.payload())
}
