package model

type FactsRequest struct {
	StreamIDs  []string `json:"stream_ids"`
	MessageIDs []string `json:"message_ids"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
