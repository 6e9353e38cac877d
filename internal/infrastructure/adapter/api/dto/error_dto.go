package dto

// ErrorResponse is the error body every endpoint returns. Code carries the
// domain error code, which is finer grained than the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
