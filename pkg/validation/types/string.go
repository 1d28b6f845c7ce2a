// Package types, tip bazlı doğrulama nesnelerini ve kurallarını yönetir.
// Bu paket, String, Number, Object, Array gibi tiplerin doğrulama ve
// dönüşüm (transform) işlemlerini kolaylaştırmak için geliştirilmiştir.
package types

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/biyonik/raffle-pix-api/pkg/validation"
	"github.com/biyonik/raffle-pix-api/pkg/validation/rules"
)

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// StringType, metin değerlerinin doğrulamasını ve dönüşümünü yönetir.
// BaseType'ı gömerek ortak doğrulama ve transform fonksiyonlarını kullanır.
type StringType struct {
	BaseType           // Ortak doğrulama ve transform fonksiyonları
	minLength     *int // Minimum uzunluk kısıtı
	maxLength     *int // Maksimum uzunluk kısıtı
	emailRegex    *regexp.Regexp
	allowedValues []string
	requireTaxID  bool
	phoneCountry  *string
}

// --- Akıcı (Fluent) Metotlar ---
// Bu metotlar zincirleme kullanım için tasarlanmıştır.

// Required, alanın zorunlu olduğunu belirtir.
func (s *StringType) Required() *StringType {
	s.SetRequired()
	return s
}

// Label, alan için insan okunabilir bir isim atar.
func (s *StringType) Label(label string) *StringType {
	s.SetLabel(label)
	return s
}

// Default, alan için varsayılan değer atar.
func (s *StringType) Default(value string) *StringType {
	s.SetDefault(value)
	return s
}

// Min, metin alanının minimum uzunluğunu ayarlar.
func (s *StringType) Min(length int) *StringType {
	s.minLength = &length
	return s
}

// Max, metin alanının maksimum uzunluğunu ayarlar.
func (s *StringType) Max(length int) *StringType {
	s.maxLength = &length
	return s
}

// Email, alanın e-posta formatında olmasını zorunlu kılar.
func (s *StringType) Email() *StringType {
	s.emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return s
}

// OneOf, alanın belirli değerlerden biri olmasını sağlar.
func (s *StringType) OneOf(values []string) *StringType {
	s.allowedValues = values
	return s
}

// TaxID, alanın geçerli bir CPF veya CNPJ olmasını gerektirir.
func (s *StringType) TaxID() *StringType {
	s.requireTaxID = true
	return s
}

// Phone, alanın bir telefon numarası olmasını gerektirir.
func (s *StringType) Phone(countryCode string) *StringType {
	s.phoneCountry = &countryCode
	return s
}

// Trim, alanın başındaki ve sonundaki boşlukları temizler.
func (s *StringType) Trim() *StringType {
	s.AddTransform(func(value any) (any, error) {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("Trim sadece string değerler için uygulanabilir")
		}
		return strings.TrimSpace(str), nil
	})
	return s
}

// --- Interface Implementasyonu ---

// Validate, verilen değeri StringType kurallarına göre doğrular.
func (s *StringType) Validate(field string, value any, result *validation.ValidationResult) {
	// Temel doğrulama
	s.BaseType.Validate(field, value, result)
	if result.HasErrors() {
		return
	}

	if value == nil {
		return
	}

	str, ok := value.(string)
	if !ok {
		result.AddError(field, fmt.Sprintf("%s alanı metin tipinde olmalıdır", s.label))
		return
	}

	fieldName := s.label
	if fieldName == "" {
		fieldName = field
	}

	// Minimum ve maksimum uzunluk
	if s.minLength != nil && len(str) < *s.minLength {
		result.AddError(field, fmt.Sprintf("%s alanı en az %d karakter olmalıdır", fieldName, *s.minLength))
	}
	if s.maxLength != nil && len(str) > *s.maxLength {
		result.AddError(field, fmt.Sprintf("%s alanı en fazla %d karakter olmalıdır", fieldName, *s.maxLength))
	}

	// E-posta kontrolü
	if s.emailRegex != nil && !s.emailRegex.MatchString(str) {
		result.AddError(field, fmt.Sprintf("%s alanı geçerli bir e-posta formatında değil", fieldName))
	}

	// İzin verilen değerler kontrolü
	if len(s.allowedValues) > 0 && str != "" {
		found := false
		for _, allowed := range s.allowedValues {
			if str == allowed {
				found = true
				break
			}
		}
		if !found {
			result.AddError(field, fmt.Sprintf("%s alanı geçerli bir değer değil", fieldName))
		}
	}

	// CPF/CNPJ kontrolü
	if s.requireTaxID && str != "" {
		if !rules.IsValidTaxID(str) {
			result.AddError(field, fmt.Sprintf("%s alanı geçerli bir CPF veya CNPJ olmalıdır", fieldName))
		}
	}

	// Telefon numarası kontrolü
	if s.phoneCountry != nil && str != "" {
		if !rules.IsValidPhoneNumber(str, *s.phoneCountry) {
			result.AddError(field, fmt.Sprintf("%s alanı geçerli bir %s telefon numarası olmalıdır", fieldName, *s.phoneCountry))
		}
	}
}
