package inbound

type CreateSessionRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type CreateSessionResponse struct {
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}
