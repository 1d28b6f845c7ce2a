// -----------------------------------------------------------------------------
// PIX Webhook Payload
// -----------------------------------------------------------------------------
// Sağlayıcının asenkron bildirimlerinin wire formatı. Sağlayıcı aynı
// bildirimi birden fazla kez teslim edebilir; tüketiciler buna göre
// idempotent davranmalıdır.
// -----------------------------------------------------------------------------

package pix

// Webhook event tipleri ve ücret durumları.
const (
	EventBillingPaid = "billing.paid"
	StatusPaid       = "PAID"
	StatusPending    = "PENDING"
	StatusExpired    = "EXPIRED"
)

// WebhookQRCode, bildirimin içindeki ücret özeti.
type WebhookQRCode struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

// WebhookData, bildirim verisi.
type WebhookData struct {
	PixQRCode WebhookQRCode `json:"pixQrCode"`
	Metadata  Metadata      `json:"metadata"`
}

// WebhookPayload, sağlayıcının POST ettiği gövdenin tamamı.
type WebhookPayload struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

// IsPaid, bildirimin "ödendi" bildirimi olup olmadığını kontrol eder.
// Hem event tipi hem de gömülü ücret durumu ödendi olmalıdır.
func (p *WebhookPayload) IsPaid() bool {
	return p.Event == EventBillingPaid && p.Data.PixQRCode.Status == StatusPaid
}
