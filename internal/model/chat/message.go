package chat

// Request is the inbound body of POST /api/chat.
type Request struct {
	Message string `json:"message" validate:"required"`
}

// Response is the outbound body of POST /api/chat. Exactly one of Response
// and Error is set, and Success is true iff Response is set.
type Response struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Success wraps generated or canned text.
func Success(text string) Response {
	return Response{Success: true, Response: text}
}

// Failure wraps an error message for the caller.
func Failure(message string) Response {
	return Response{Success: false, Error: message}
}
