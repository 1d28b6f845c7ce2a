// -----------------------------------------------------------------------------
// PIX Gateway Client
// -----------------------------------------------------------------------------
// Bu dosya, harici PIX ödeme sağlayıcısına (QR kod ücreti oluşturan ve
// ödemeyi webhook ile geri bildiren servis) karşı ince bir HTTP istemcisi
// sağlar.
//
// Sağlayıcıdan dönen hata mesajları olduğu gibi (verbatim) yukarı taşınır;
// arayüz alıcıya eyleme dönüştürülebilir bir mesaj gösterebilmelidir.
// -----------------------------------------------------------------------------

package pix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Customer, ücret oluşturma isteğindeki alıcı bilgileridir.
type Customer struct {
	Name      string `json:"name"`
	Cellphone string `json:"cellphone"`
	Email     string `json:"email"`
	TaxID     string `json:"taxId"`
}

// Metadata, ücrete iliştirilen serbest etiketlerdir. ExternalID,
// asenkron webhook'un çekilişe geri dönebilmesini sağlayan tek bağdır.
type Metadata struct {
	ExternalID string `json:"externalId"`
}

// CreateQRCodeRequest, sağlayıcıya gönderilen ücret oluşturma isteğidir.
// Amount, kuruş (minor unit) cinsindendir.
type CreateQRCodeRequest struct {
	Amount      int64    `json:"amount"`
	ExpiresIn   int      `json:"expiresIn"` // saniye
	Description string   `json:"description"`
	Customer    Customer `json:"customer"`
	Metadata    Metadata `json:"metadata"`
}

// QRCode, sağlayıcının oluşturduğu PIX ücretini temsil eder.
type QRCode struct {
	ID           string    `json:"id"`
	Amount       int64     `json:"amount"`
	Status       string    `json:"status"`
	BRCode       string    `json:"brCode"`       // kopyala-yapıştır kodu
	BRCodeBase64 string    `json:"brCodeBase64"` // QR görseli (data URL)
	ExpiresAt    time.Time `json:"expiresAt"`
}

// GatewayError, sağlayıcının reddettiği bir isteği temsil eder.
// Message alanı sağlayıcının mesajını değiştirmeden taşır.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// Gateway, PIX sağlayıcı istemcisinin sözleşmesidir. Servis katmanı bu
// arayüze bağımlıdır; testlerde sahte bir gateway kullanılır.
type Gateway interface {
	CreateQRCode(ctx context.Context, req *CreateQRCodeRequest) (*QRCode, error)
}

// Client, Gateway arayüzünün HTTP implementasyonudur.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient, yeni bir PIX gateway istemcisi oluşturur.
//
// Parametreler:
//   - baseURL: Sağlayıcı API adresi
//   - apiKey: Bearer API anahtarı
//   - timeout: HTTP istek timeout'u
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiEnvelope, sağlayıcının tüm yanıtlarını saran zarftır.
type apiEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// CreateQRCode, sağlayıcıda yeni bir PIX QR kod ücreti oluşturur.
//
// Başarısız yanıtlarda sağlayıcının hata mesajı GatewayError içinde
// olduğu gibi döndürülür.
func (c *Client) CreateQRCode(ctx context.Context, req *CreateQRCodeRequest) (*QRCode, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pix request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pixQrCode/create", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build pix request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("pix gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read pix response: %w", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		// Zarf bile parse edilemiyorsa ham gövdeyi mesaj olarak taşı
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || envelope.Error != "" {
		message := envelope.Error
		if message == "" {
			message = fmt.Sprintf("pix gateway returned status %d", resp.StatusCode)
		}
		log.WithFields(log.Fields{
			"status": resp.StatusCode,
			"error":  message,
		}).Error("PIX ücreti oluşturulamadı")
		return nil, &GatewayError{StatusCode: resp.StatusCode, Message: message}
	}

	var qr QRCode
	if err := json.Unmarshal(envelope.Data, &qr); err != nil {
		return nil, fmt.Errorf("failed to decode pix qrcode: %w", err)
	}

	return &qr, nil
}
