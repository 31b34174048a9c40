package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/connectai/connect-ai/backend/internal/config"
)

// Generation parameters sent with every upstream request.
const (
	Temperature     float32 = 0.7
	TopK            float32 = 40
	TopP            float32 = 0.95
	MaxOutputTokens int32   = 1024
)

// genericDetail is reported when an upstream failure carries no message.
const genericDetail = "unknown upstream error"

var (
	// ErrMissingCredential means no API key was configured; no request is sent.
	ErrMissingCredential = errors.New("gemini api key is not configured")
	// ErrMalformedResponse means the upstream body lacked a candidate text.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// UpstreamError is any failure of the Gemini call: transport, non-2xx status,
// timeout or malformed body. Detail is the best message available for callers.
type UpstreamError struct {
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed: %s", e.Detail)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Service relays single messages to the Gemini generateContent endpoint.
type Service struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewService creates the relay. Without an API key the service is still
// returned; every Generate call then fails with ErrMissingCredential.
func NewService(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultUpstreamLimit
	}

	svc := &Service{
		model:   cfg.Model,
		timeout: timeout,
		logger:  logger.Named("relay"),
	}
	if !cfg.Enabled() {
		svc.logger.Warn("GEMINI_API_KEY not set, chat relay will reject requests")
		return svc, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	svc.client = client
	return svc, nil
}

// Enabled reports whether an upstream client was configured.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Generate sends message to the model and returns the first candidate's
// first text part. The call is bounded by the configured timeout and is
// never retried.
func (s *Service) Generate(ctx context.Context, message string) (text string, err error) {
	if s.client == nil {
		return "", ErrMissingCredential
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// The SDK dereferences the decoded error body without a nil check.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &UpstreamError{Detail: genericDetail, Err: fmt.Errorf("panic in upstream client: %v", r)}
		}
	}()

	start := time.Now()
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(message), generationConfig())
	if err != nil {
		return "", newUpstreamError(err)
	}

	text, err = firstText(resp)
	if err != nil {
		return "", &UpstreamError{Detail: err.Error(), Err: err}
	}

	s.logger.Debug("gemini response generated",
		zap.String("model", s.model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("length", len(text)))
	return text, nil
}

func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(Temperature),
		TopK:            genai.Ptr(TopK),
		TopP:            genai.Ptr(TopP),
		MaxOutputTokens: MaxOutputTokens,
	}
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0] == nil {
		return "", fmt.Errorf("%w: candidate has no content parts", ErrMalformedResponse)
	}
	text := candidate.Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("%w: first part has no text", ErrMalformedResponse)
	}
	return text, nil
}

// newUpstreamError prefers the provider's own message over the Go error text.
// Raw response bodies never end up in Detail.
func newUpstreamError(err error) *UpstreamError {
	detail := err.Error()

	var (
		apiErr    genai.APIError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &apiErr):
		detail = apiErrorDetail(apiErr)
	case errors.Is(err, context.DeadlineExceeded):
		detail = "request timed out"
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		// The decode error text carries the whole body.
		return &UpstreamError{
			Detail: ErrMalformedResponse.Error(),
			Err:    fmt.Errorf("%w: %w", ErrMalformedResponse, err),
		}
	}

	if detail == "" {
		detail = genericDetail
	}
	return &UpstreamError{Detail: detail, Err: err}
}

// apiErrorDetail uses Message only when it came from a JSON error object.
// For non-JSON bodies the SDK stores the raw body in Message and the HTTP
// status line ("502 Bad Gateway") in Status.
func apiErrorDetail(apiErr genai.APIError) string {
	if strings.HasPrefix(apiErr.Status, strconv.Itoa(apiErr.Code)+" ") {
		return fmt.Sprintf("request failed with status code %d", apiErr.Code)
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	if apiErr.Status != "" {
		return apiErr.Status
	}
	if apiErr.Code != 0 {
		return fmt.Sprintf("request failed with status code %d", apiErr.Code)
	}
	return ""
}
