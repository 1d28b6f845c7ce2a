// Package response, web uygulamalarında JSON tabanlı çıktı üretimini
// tek bir merkezden kontrollü şekilde yapmayı amaçlayan küçük ama
// oldukça önemli bir yardımcı pakettir. Bu paket, özellikle API
// geliştirme süreçlerinde sıkça ihtiyaç duyulan; başarılı veya hatalı
// yanıtların standart bir formda istemciye iletilmesini sağlar.
//
// Laravel ve Symfony gibi büyük frameworklerin "Response Factory"
// mantığını örnek alarak sadeleştirilmiş bir yapı sunar. Paket;
// başarılı (success) yanıtlarını, hata (error) yanıtlarını ve meta
// bilgiler içeren kapsamlı JSON çıktılarını standart bir sözleşme
// hâline getirir.
package response

import (
	"encoding/json"
	"net/http"
)

// JSONResponse, tüm API yanıtlarının ortak veri sözleşmesini (contract)
// temsil eden bir modeldir.
//
// Alanlar:
//   - Success: İşlemin başarılı olup olmadığını belirtir. true/false.
//   - Data: İşlem başarılıysa döndürülen asli içerik burada taşınır.
//   - Error: İşlem başarısızsa hata mesajı buraya yazılır.
//   - Meta: Sayfalama, istatistik, toplam kayıt vb. ek bilgiler için
//     kullanılan, isteğe bağlı meta veri alanıdır.
type JSONResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// Send, HTTP yanıtını istenen statü kodu ve JSONResponse yapısı ile
// birlikte istemciye gönderen temel fonksiyondur. Tüm diğer "Success"
// ve "Error" fonksiyonlarının arka planda çağırdığı ana merkezdir.
func Send(w http.ResponseWriter, status int, payload JSONResponse) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		return err
	}

	return nil
}

// Success, başarılı bir işlem sonucunda standart bir JSON çıktı
// oluşturmak için kullanılan kolaylaştırıcı (helper) fonksiyondur.
func Success(w http.ResponseWriter, status int, data interface{}, meta interface{}) error {
	return Send(w, status, JSONResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// JSON, success/error zarfı olmadan ham bir JSON nesnesi gönderir.
// PIX endpoint'leri kendi sözleşmesini üst seviyede kurar; bu
// fonksiyon o gövdeleri olduğu gibi yazmak için kullanılır.
func JSON(w http.ResponseWriter, status int, payload interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// Error, başarısız bir işlem sonucunda istemciye hata mesajı
// döndürmek için kullanılan yardımcı fonksiyondur. API genelinde
// standartlaşmış bir hata yapısı sağlar.
func Error(w http.ResponseWriter, status int, errData any) error {
	payload := JSONResponse{
		Success: false,
	}

	// Gelen hatanın tipine göre JSONResponse'u doldur
	switch e := errData.(type) {
	case string:
		payload.Error = e
	case error:
		payload.Error = e.Error()
	case map[string][]string:
		payload.Error = "Doğrulama hatası" // Genel mesaj
		payload.Data = e                   // Detaylı hataları 'data' alanına koy
	default:
		payload.Error = "Bilinmeyen bir sunucu hatası oluştu"
	}

	return Send(w, status, payload)
}
