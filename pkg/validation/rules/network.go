// Package rules, network doğrulama kurallarını içerir.
// Bu dosya IP ve telefon numarası doğrulaması gibi network odaklı kuralları barındırır.
package rules

import (
	"net"    // IP doğrulaması için standart kütüphane
	"regexp" // Regex işlemleri için
)

// @author    Ahmet Altun
// @email     ahmet.altun60@gmail.com
// @github    github.com/biyonik
// @linkedin  linkedin.com/in/biyonik

// IsValidIP, verilen IP adresinin geçerli olup olmadığını kontrol eder.
//
// Parametreler:
//   - ip: Doğrulanacak IP adresi (string)
//   - version: IP versiyonu. 4 = IPv4, 6 = IPv6, 0 = hem IPv4 hem IPv6
func IsValidIP(ip string, version int) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	switch version {
	case 4:
		return parsedIP.To4() != nil
	case 6:
		return parsedIP.To4() == nil && parsedIP.To16() != nil
	case 0:
		return true
	default:
		return false
	}
}

// phonePatterns, ülke bazlı telefon numarası regexlerini tutar.
var phonePatterns = map[string]*regexp.Regexp{
	"BR": regexp.MustCompile(`^(\+55)?[1-9]{2}9?[0-9]{8}$`), // Brezilya (DDD + numara)
	"TR": regexp.MustCompile(`^(05|5)[0-9]{9}$`),            // Türkiye GSM
}

// IsValidPhoneNumber, verilen telefon numarasının geçerli olup olmadığını kontrol eder.
//
// Parametreler:
//   - phone: Doğrulanacak telefon numarası (string)
//   - country: Ülke kodu (string), örn: "BR", "TR"
func IsValidPhoneNumber(phone string, country string) bool {
	pattern, ok := phonePatterns[country]
	if !ok {
		return false
	}

	// Boşluk, tire ve parantezleri temizle
	cleanNumber := regexp.MustCompile(`\s+|-|\(|\)`).ReplaceAllString(phone, "")
	return pattern.MatchString(cleanNumber)
}
