// -----------------------------------------------------------------------------
// Secret Hashing Package
// -----------------------------------------------------------------------------
// Bu dosya, gizli değerlerin (cron secret, admin şifresi) güvenli bir şekilde
// hash'lenmesi ve doğrulanması için fonksiyonlar sağlar. bcrypt algoritması
// kullanılır.
//
// bcrypt neden?
// - Brute force saldırılarına karşı yavaş (kasıtlı olarak)
// - Salt otomatik olarak eklenir
// - Zaman içinde cost factor artırılabilir (güvenlik artışı)
// - Endüstri standardı
// -----------------------------------------------------------------------------

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost, bcrypt hash algoritmasının maliyet faktörüdür.
// Yüksek değer = daha güvenli ama daha yavaş
//
// Önerilen değerler:
//   - Development: 10 (hızlı test için)
//   - Production: 12-14 (güvenlik için)
const HashCost = 12

// Hash, düz metin değeri bcrypt ile hash'ler.
//
// Örnek:
//
//	hashed, err := auth.Hash("mySecret123")
//	// hashed: "$2a$12$LQv3c1yqBWVHxkd0LHAkCO..."
//
// Güvenlik Notu:
// - Asla orijinal değeri veritabanına veya config'e kaydetmeyin!
// - Hash'i kaydedin, doğrulama için Check() kullanın
func Hash(secret string) (string, error) {
	// Boş değer kontrolü
	if secret == "" {
		return "", errors.New("secret cannot be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), HashCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Check, düz metin değeri hash ile karşılaştırır.
//
// Cleanup endpoint'ine gelen cron secret'ı doğrulamak için kullanılır.
//
// Örnek:
//
//	if !auth.Check(providedSecret, cfg.Cleanup.SecretHash) {
//	    return errors.New("invalid cron secret")
//	}
//
// Güvenlik Notu:
// - Bu fonksiyon kasıtlı olarak yavaştır (timing attack koruması)
func Check(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}

// MustHash, Hash fonksiyonunun panic atan versiyonudur.
// Test veya seed data oluştururken kullanışlıdır.
//
// UYARI: Production kodunda MustHash kullanmayın! Sadece test/seed için.
func MustHash(secret string) string {
	hash, err := Hash(secret)
	if err != nil {
		panic("failed to hash secret: " + err.Error())
	}
	return hash
}
