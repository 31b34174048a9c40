package stats

// Stats describes the deployed assistant.
type Stats struct {
	Model     string   `json:"model"`
	Version   string   `json:"version"`
	Developer string   `json:"developer"`
	Features  []string `json:"features"`
	Contact   string   `json:"contact"`
}

// Payload is the body of GET /api/stats.
type Payload struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

// Default returns the fixed stats of this deployment. Each call returns a
// fresh copy so callers cannot mutate shared state.
func Default() Payload {
	return Payload{
		Success: true,
		Stats: Stats{
			Model:     "Connect AI Pro",
			Version:   "2025",
			Developer: "Othman & Leo - African Startup",
			Features:  []string{"Chat", "AI Assistant", "Multi-language", "Connect Database"},
			Contact:   "othmanalif10@gmail.com",
		},
	}
}
