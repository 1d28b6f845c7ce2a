// Package rules, alan bazlı doğrulama kurallarının saf (pure) implementasyonlarını içerir.
// Bu dosya Brezilya vergi kimlik numarası (CPF/CNPJ) doğrulamasını barındırır.
package rules

import (
	"regexp"
	"strconv"
)

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

var nonDigitRegex = regexp.MustCompile(`\D`)

// cpfCheckDigit, verilen basamaklar için CPF kontrol basamağını hesaplar.
// İlk kontrol basamağı için ağırlık 10'dan, ikincisi için 11'den başlar.
func cpfCheckDigit(digits string, startWeight int) int {
	sum := 0
	weight := startWeight

	for _, digitChar := range digits {
		digit, err := strconv.Atoi(string(digitChar))
		if err != nil {
			return -1
		}
		sum += digit * weight
		weight--
	}

	remainder := (sum * 10) % 11
	if remainder == 10 {
		return 0
	}
	return remainder
}

// IsValidCPF, bir CPF numarasını (Brezilya bireysel vergi kimliği) doğrular.
//
// Doğrulama adımları:
//  1. Nokta ve tire gibi ayraçlar temizlenir (123.456.789-09 -> 12345678909)
//  2. Tam olarak 11 basamak olmalıdır
//  3. Tüm basamaklar aynı olamaz (111.111.111-11 geçersizdir)
//  4. İki kontrol basamağı mod-11 algoritması ile doğrulanır
func IsValidCPF(cpf string) bool {
	number := nonDigitRegex.ReplaceAllString(cpf, "")

	if len(number) != 11 {
		return false
	}

	// Tüm basamaklar aynı mı? (bilinen geçersiz ama check-digit geçen değerler)
	allSame := true
	for i := 1; i < len(number); i++ {
		if number[i] != number[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	// Birinci kontrol basamağı (ilk 9 basamak, ağırlık 10..2)
	first := cpfCheckDigit(number[:9], 10)
	if first < 0 || strconv.Itoa(first) != string(number[9]) {
		return false
	}

	// İkinci kontrol basamağı (ilk 10 basamak, ağırlık 11..2)
	second := cpfCheckDigit(number[:10], 11)
	if second < 0 || strconv.Itoa(second) != string(number[10]) {
		return false
	}

	return true
}

// IsValidCNPJ, bir CNPJ numarasını (Brezilya kurumsal vergi kimliği) doğrular.
func IsValidCNPJ(cnpj string) bool {
	number := nonDigitRegex.ReplaceAllString(cnpj, "")

	if len(number) != 14 {
		return false
	}

	allSame := true
	for i := 1; i < len(number); i++ {
		if number[i] != number[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	// CNPJ ağırlıkları sabittir
	firstWeights := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	check := func(digits string, weights []int) int {
		sum := 0
		for i, digitChar := range digits {
			digit, _ := strconv.Atoi(string(digitChar))
			sum += digit * weights[i]
		}
		remainder := sum % 11
		if remainder < 2 {
			return 0
		}
		return 11 - remainder
	}

	first := check(number[:12], firstWeights)
	if strconv.Itoa(first) != string(number[12]) {
		return false
	}

	second := check(number[:13], secondWeights)
	return strconv.Itoa(second) == string(number[13])
}

// IsValidTaxID, CPF veya CNPJ formatlarından birini kabul eder.
// Müşteri bireysel de kurumsal da olabilir.
func IsValidTaxID(taxID string) bool {
	number := nonDigitRegex.ReplaceAllString(taxID, "")

	switch len(number) {
	case 11:
		return IsValidCPF(number)
	case 14:
		return IsValidCNPJ(number)
	default:
		return false
	}
}
