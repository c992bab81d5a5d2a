package domain

type SuccessResponse struct {
	Message string `json:"message"`
}
