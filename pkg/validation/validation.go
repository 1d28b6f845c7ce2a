// Package validation, veri doğrulama (validation) süreçlerini profesyonel bir şekilde
// yönetmek için tasarlanmış küçük, ama güçlü bir yardımcı pakettir. Bu paket, form verileri,
// API payload'ları veya genel veri haritalarının temizlenmesini ve doğrulanmasını
// kolaylaştırır.
//
// Paket sayesinde geliştiriciler, doğrulama sonuçlarını merkezi bir yerde toplar,
// hataları yönetir ve temizlenmiş veriye kolayca erişebilir. Aynı zamanda tip bazlı
// doğrulama (Type Interface) ve şema bazlı doğrulama (Schema Interface) desteklenir.
//
// Modern web uygulamalarında veri doğrulama kritik bir öneme sahiptir; bu paket,
// Laravel veya Symfony gibi frameworklerdeki validation mantığını Go diline taşır.
package validation

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// ValidationResult, bir doğrulama işleminin sonucunu temsil eder.
// Bu yapı hem hataları hem de temizlenmiş, doğrulanmış veriyi tutar.
type ValidationResult struct {
	errors    map[string][]string // Alan bazlı doğrulama hataları
	validData map[string]any      // Doğrulanmış ve temizlenmiş veriler
}

// NewResult, yeni bir ValidationResult nesnesi oluşturur.
// Bu nesne, doğrulama işlemleri için başlangıç noktasıdır.
func NewResult() *ValidationResult {
	return &ValidationResult{
		errors:    make(map[string][]string),
		validData: make(map[string]any),
	}
}

// AddError, belirtilen alan için bir doğrulama hatası ekler.
func (r *ValidationResult) AddError(field, message string) {
	r.errors[field] = append(r.errors[field], message)
}

// HasErrors, ValidationResult içinde herhangi bir hata olup olmadığını kontrol eder.
func (r *ValidationResult) HasErrors() bool {
	return len(r.errors) > 0
}

// Errors, doğrulama sırasında oluşan tüm hataları döndürür.
func (r *ValidationResult) Errors() map[string][]string {
	return r.errors
}

// ValidData, doğrulama sırasında temizlenmiş ve onaylanmış veriyi döndürür.
func (r *ValidationResult) ValidData() map[string]any {
	return r.validData
}

// SetValidData, doğrulama sonucu elde edilen temiz veriyi ayarlar.
func (r *ValidationResult) SetValidData(data map[string]any) {
	r.validData = data
}

// --- ARAYÜZLER (INTERFACES / CONTRACTS) ---

// Her veri tipi (örn: StringType, NumberType) bu arayüzü uygulamalıdır.
// Bu yapı, alan bazlı doğrulama ve ön işleme (transform) mekanizmasını sağlar.
type Type interface {
	// Validate, asıl doğrulama mantığını çalıştırır.
	Validate(field string, value any, result *ValidationResult)

	// Transform, doğrulama öncesinde veriyi temizler ve dönüştürür.
	// Örnek: string trim, sayısal tip dönüşümü vb.
	Transform(value any) (any, error)
}

// Tüm veri setini doğrulamak ve şema tanımlamak için kullanılır.
type Schema interface {
	// Validate, verilen veri haritasını doğrular ve ValidationResult döndürür.
	Validate(data map[string]any) *ValidationResult

	// Shape, şemada alan tiplerini tanımlar.
	Shape(shape map[string]Type) Schema

	// CrossValidate, alanlar arası doğrulama yapmak için kullanılabilir.
	CrossValidate(fn func(data map[string]any) error) Schema

	// Bir alanın değeri beklenen değerle eşleşirse,
	// callback'den dönen alt şemayı (sub-schema) da doğrulamaya dahil eder.
	When(field string, expectedValue any, callback func() Schema) Schema
}
