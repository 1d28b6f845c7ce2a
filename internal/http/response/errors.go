// -----------------------------------------------------------------------------
// Standardized Error Response Helpers
// -----------------------------------------------------------------------------
// This file provides convenient helper functions for common error responses,
// ensuring consistency across all controllers.
//
// Benefits:
//   - Consistent error messages
//   - Consistent HTTP status codes
//   - Reduced boilerplate code
// -----------------------------------------------------------------------------

package response

import (
	"net/http"
)

// InvalidJSON sends a 400 Bad Request error for invalid JSON format.
//
// Example:
//
//	if err := r.ParseJSON(&reqData); err != nil {
//	    response.InvalidJSON(w)
//	    return
//	}
func InvalidJSON(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, "Geçersiz JSON formatı")
}

// ValidationError sends a 422 Unprocessable Entity error with validation errors.
//
// Example:
//
//	if result.HasErrors() {
//	    response.ValidationError(w, result.Errors())
//	    return
//	}
func ValidationError(w http.ResponseWriter, errors map[string][]string) {
	Error(w, http.StatusUnprocessableEntity, errors)
}

// FieldError sends a 422 Unprocessable Entity error for a single field.
func FieldError(w http.ResponseWriter, field string, message string) {
	Error(w, http.StatusUnprocessableEntity, map[string][]string{
		field: {message},
	})
}

// Unauthorized sends a 401 Unauthorized error.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Kimlik doğrulaması gerekli"
	}
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error.
func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bu işlem için yetkiniz yok"
	}
	Error(w, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error.
//
// Example:
//
//	if err == sql.ErrNoRows {
//	    response.NotFound(w, "")
//	    return
//	}
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Kayıt bulunamadı"
	}
	Error(w, http.StatusNotFound, message)
}

// ServerError sends a 500 Internal Server Error.
//
// Use this for unexpected server-side errors. Should be used sparingly
// and logged appropriately.
func ServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Sunucu hatası"
	}
	Error(w, http.StatusInternalServerError, message)
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Conflict sends a 409 Conflict error.
//
// Use this when there's a conflict with the current state of the resource
// (e.g., a number already reserved by someone else).
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message)
}

// TooManyRequests sends a 429 Too Many Requests error.
func TooManyRequests(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Çok fazla istek gönderdiniz. Lütfen daha sonra tekrar deneyin."
	}
	Error(w, http.StatusTooManyRequests, message)
}
