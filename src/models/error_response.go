package models

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP status code
	Message string `json:"message"` // human-readable detail
}

// SuccessResponse is the standard success envelope used by Swagger.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
