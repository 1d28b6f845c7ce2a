// Package validation, veri doğrulama süreçlerini Go dilinde yönetmek için
// geliştirilmiş kapsamlı bir yapıdır. Bu paket, tip bazlı, şema bazlı, çapraz doğrulama
// (cross-field validation) gibi modern web uygulamalarında kritik
// olan doğrulama adımlarını kolaylaştırır.
//
// Laravel/Symfony tarzı kullanım hissi verir; developer, tek bir
// ValidationSchema üzerinden hem tip kontrollerini hem de alanlar arası
// doğrulamayı gerçekleştirebilir.
package validation

import (
	"fmt"
)

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// conditionalRule, bir 'When' kuralını saklamak için kullanılır.
type conditionalRule struct {
	field         string
	expectedValue any
	callback      func() Schema // Alt şemayı döndüren fonksiyon
}

// Bu yapı, veri doğrulama sürecini yönetir; tip bazlı doğrulama, çapraz alan
// doğrulama ve dönüşüm (transform) işlemleri bu sınıf üzerinden yürütülür.
type ValidationSchema struct {
	shape            map[string]Type
	crossValidators  []func(data map[string]any) error
	conditionalRules []conditionalRule
}

// Make, yeni bir ValidationSchema nesnesi döndürür.
func Make() *ValidationSchema {
	return &ValidationSchema{
		shape:            make(map[string]Type),
		conditionalRules: make([]conditionalRule, 0),
	}
}

// --- Interface Implementasyonları ---

// Shape, şemada alan adları ve tiplerini tanımlar.
func (vs *ValidationSchema) Shape(shape map[string]Type) Schema {
	vs.shape = shape
	return vs
}

// CrossValidate, alanlar arası doğrulama fonksiyonları ekler.
func (vs *ValidationSchema) CrossValidate(fn func(data map[string]any) error) Schema {
	vs.crossValidators = append(vs.crossValidators, fn)
	return vs
}

// When, koşullu alt şema ekler.
func (vs *ValidationSchema) When(field string, expectedValue any, callback func() Schema) Schema {
	vs.conditionalRules = append(vs.conditionalRules, conditionalRule{
		field:         field,
		expectedValue: expectedValue,
		callback:      callback,
	})
	return vs // Zincirleme (chaining) için
}

// Validate, tüm şemanın doğrulama sürecini başlatır.
// Bu metod, validation sürecinin kalbidir ve aşağıdaki adımları uygular:
//  1. Transform: Ham veriyi temizler ve tip dönüşümlerini uygular.
//  2. Validate: Temizlenmiş veri üzerinden tip bazlı doğrulamayı çalıştırır.
//  3. When: Koşullu alt şemaları uygular.
//  4. Cross-Validate: Alanlar arası mantıksal doğrulamaları uygular.
//  5. Result: Hata yoksa validData ayarlanır, yoksa hata mesajları döner.
func (vs *ValidationSchema) Validate(data map[string]any) *ValidationResult {
	result := NewResult()
	transformedData := make(map[string]any)

	// 1. AŞAMA: DÖNÜŞTÜRME (TRANSFORM)
	for field, typ := range vs.shape {
		value := data[field]

		transformedValue, err := typ.Transform(value)
		if err != nil {
			result.AddError(field, fmt.Sprintf("Dönüşüm hatası: %s", err.Error()))
			continue
		}
		transformedData[field] = transformedValue
	}

	// 2. AŞAMA: TEMEL DOĞRULAMA (VALIDATE)
	for field, typ := range vs.shape {
		typ.Validate(field, transformedData[field], result)
	}

	// 3. AŞAMA: KOŞULLU DOĞRULAMA (WHEN)
	// Temel doğrulamalardan sonra çalışır.
	if len(vs.conditionalRules) > 0 {
		for _, rule := range vs.conditionalRules {
			// Temizlenmiş veriden koşulun değerini al
			value, exists := transformedData[rule.field]

			// Koşul sağlanıyor mu? (örn: 'payment_method' == 'pix')
			if exists && value == rule.expectedValue {
				subSchema := rule.callback()

				// Alt şemanın 'Validate' metodunu, TÜM veri üzerinde çalıştır.
				// Alt şema sadece kendi 'shape'i içindeki alanları kontrol eder.
				subResult := subSchema.Validate(transformedData)

				if subResult.HasErrors() {
					for field, messages := range subResult.Errors() {
						for _, msg := range messages {
							result.AddError(field, msg)
						}
					}
				}
			}
		}
	}

	// 4. AŞAMA: ÇAPRAZ ALAN DOĞRULAMA (CROSS-VALIDATE)
	// Sadece HİÇ hata yoksa çalışır.
	if !result.HasErrors() {
		for _, fn := range vs.crossValidators {
			err := fn(transformedData)
			if err != nil {
				result.AddError("_cross_validation", err.Error())
			}
		}
	}

	// 5. AŞAMA: SONUÇ
	if !result.HasErrors() {
		result.SetValidData(transformedData)
	}

	return result
}
