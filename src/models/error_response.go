package models

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// SuccessResponse is the standard success body used by Swagger.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
