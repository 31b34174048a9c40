package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/connectai/connect-ai/backend/internal/analysis/intent"
)

var ErrMessageRequired = errors.New("message is required")

// Generator produces a reply for a message that was not intercepted.
type Generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// Reply is the outcome of a single chat turn.
type Reply struct {
	ID     string
	Text   string
	Canned bool
}

// Service answers one message at a time: the creator classifier first, the
// upstream generator only when the classifier does not match.
type Service struct {
	generator Generator
	logger    *zap.Logger
}

// NewService wires the classifier in front of the generator.
func NewService(generator Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator: generator,
		logger:    logger.Named("chat"),
	}
}

// Reply answers message. Errors from the generator are wrapped, so callers
// can still match them with errors.Is / errors.As.
func (s *Service) Reply(ctx context.Context, message string) (Reply, error) {
	if message == "" {
		return Reply{}, ErrMessageRequired
	}

	reply := Reply{ID: uuid.NewString()}

	if phrase, ok := intent.MatchCreator(message); ok {
		s.logger.Debug("creator question intercepted",
			zap.String("reply_id", reply.ID),
			zap.String("phrase", phrase))
		reply.Text = intent.CreatorReply
		reply.Canned = true
		return reply, nil
	}

	text, err := s.generator.Generate(ctx, message)
	if err != nil {
		return reply, fmt.Errorf("reply %s: %w", reply.ID, err)
	}

	reply.Text = text
	s.logger.Debug("upstream reply relayed",
		zap.String("reply_id", reply.ID),
		zap.Int("length", len(text)))
	return reply, nil
}
