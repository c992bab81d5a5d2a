package domain

type ErrorResponse struct {
	Error string `json:"error"`
}
