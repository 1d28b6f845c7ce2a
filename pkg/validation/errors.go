// -----------------------------------------------------------------------------
// Validation Errors
// -----------------------------------------------------------------------------
// Bu dosya, validation error'larını oluşturmak için helper fonksiyonlar içerir.
// -----------------------------------------------------------------------------

package validation

import "fmt"

// FieldError, belirli bir field için validation error'u temsil eder.
type FieldError struct {
	Field   string
	Message string
}

// Error, error interface implementasyonu.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError, yeni bir field error oluşturur.
//
// Örnek:
//
//	return validation.NewFieldError("numbers", "Aynı numara birden fazla kez seçilemez")
func NewFieldError(field, message string) error {
	return &FieldError{
		Field:   field,
		Message: message,
	}
}
