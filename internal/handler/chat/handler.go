package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/connectai/connect-ai/backend/internal/model/chat"
	"github.com/connectai/connect-ai/backend/internal/service/ai"
	chatService "github.com/connectai/connect-ai/backend/internal/service/chat"
	"github.com/connectai/connect-ai/backend/pkg/utils"
)

// Caller-facing messages.
const (
	MsgMessageRequired   = "الرسالة مطلوبة"
	MsgMissingCredential = "❌ أضف مفتاح API في .env"
	upstreamPrefix       = "حدث خطأ في API: "
)

// ReplyIDHeader carries the id the reply was logged under.
const ReplyIDHeader = "X-Reply-Id"

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc  *chatService.Service
	validate *validator.Validate
	logger   *zap.Logger
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		chatSvc:  chatSvc,
		validate: validator.New(),
		logger:   logger.Named("chat_handler"),
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// handleChat answers a single message. Client disconnects do not cancel the
// upstream call; it is bounded by the relay timeout instead.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Debug("invalid chat request body", zap.Error(err))
		utils.RespondJSON(w, http.StatusBadRequest, chat.Failure(MsgMessageRequired))
		return
	}

	if err := h.validate.Struct(payload); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, chat.Failure(MsgMessageRequired))
		return
	}

	reply, err := h.chatSvc.Reply(context.WithoutCancel(r.Context()), payload.Message)
	if reply.ID != "" {
		w.Header().Set(ReplyIDHeader, reply.ID)
	}
	if err != nil {
		status, message := errorResponse(err)
		h.logger.Error("chat reply failed",
			zap.String("reply_id", reply.ID),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Int("status", status),
			zap.Error(err))
		utils.RespondJSON(w, status, chat.Failure(message))
		return
	}

	utils.RespondJSON(w, http.StatusOK, chat.Success(reply.Text))
}

// errorResponse maps a reply error to its status code and caller message.
func errorResponse(err error) (int, string) {
	var upstreamErr *ai.UpstreamError
	switch {
	case errors.Is(err, chatService.ErrMessageRequired):
		return http.StatusBadRequest, MsgMessageRequired
	case errors.Is(err, ai.ErrMissingCredential):
		return http.StatusInternalServerError, MsgMissingCredential
	case errors.As(err, &upstreamErr):
		return http.StatusInternalServerError, upstreamPrefix + upstreamErr.Detail
	default:
		return http.StatusInternalServerError, upstreamPrefix + err.Error()
	}
}
