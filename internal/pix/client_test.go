// -----------------------------------------------------------------------------
// PIX Gateway Client Tests
// -----------------------------------------------------------------------------
// Testler:
// - Başarılı ücret oluşturma ve zarf çözümü
// - Authorization ve Content-Type başlıkları
// - Sağlayıcı hatasının verbatim taşınması
// - Zarf dışı yanıtların ham gövde ile taşınması
// -----------------------------------------------------------------------------

package pix

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testRequest() *CreateQRCodeRequest {
	return &CreateQRCodeRequest{
		Amount:      3000,
		ExpiresIn:   300,
		Description: "iPhone Çekilişi - 3 numara",
		Customer: Customer{
			Name:      "Maria Silva",
			Cellphone: "11999998888",
			Email:     "maria@example.com",
			TaxID:     "52998224725",
		},
		Metadata: Metadata{ExternalID: "rifa_42_1717171717171"},
	}
}

func TestCreateQRCodeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/pixQrCode/create" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %s", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %s", got)
		}

		var req CreateQRCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("istek gövdesi çözülemedi: %v", err)
		}
		if req.Amount != 3000 {
			t.Errorf("amount = %d", req.Amount)
		}
		if req.Metadata.ExternalID != "rifa_42_1717171717171" {
			t.Errorf("externalId = %s", req.Metadata.ExternalID)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"id":     "pix_charge_123",
				"amount": 3000,
				"status": "PENDING",
				"brCode": "00020126brcode",
			},
			"error": nil,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)

	qr, err := client.CreateQRCode(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if qr.ID != "pix_charge_123" {
		t.Errorf("qr.ID = %s", qr.ID)
	}
	if qr.BRCode != "00020126brcode" {
		t.Errorf("qr.BRCode = %s", qr.BRCode)
	}
}

func TestCreateQRCodePropagatesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"data":  nil,
			"error": "Invalid taxId for this account",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)

	_, err := client.CreateQRCode(context.Background(), testRequest())

	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("GatewayError beklenirken %v döndü", err)
	}
	if gatewayErr.Message != "Invalid taxId for this account" {
		t.Errorf("mesaj değişmeden taşınmalı, gelen: %s", gatewayErr.Message)
	}
	if gatewayErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d", gatewayErr.StatusCode)
	}
}

func TestCreateQRCodeEnvelopeErrorOn200(t *testing.T) {
	// Bazı sağlayıcılar hata durumunda da 200 döndürüp error alanını doldurur
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data":  nil,
			"error": "Insufficient balance",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)

	_, err := client.CreateQRCode(context.Background(), testRequest())

	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("GatewayError beklenirken %v döndü", err)
	}
	if gatewayErr.Message != "Insufficient balance" {
		t.Errorf("mesaj = %s", gatewayErr.Message)
	}
}

func TestCreateQRCodeNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream timeout"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)

	_, err := client.CreateQRCode(context.Background(), testRequest())

	var gatewayErr *GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("GatewayError beklenirken %v döndü", err)
	}
	if gatewayErr.Message != "upstream timeout" {
		t.Errorf("ham gövde mesaj olarak taşınmalı, gelen: %s", gatewayErr.Message)
	}
}

func TestWebhookPayloadIsPaid(t *testing.T) {
	cases := []struct {
		event  string
		status string
		want   bool
	}{
		{EventBillingPaid, StatusPaid, true},
		{EventBillingPaid, StatusPending, false},
		{EventBillingPaid, StatusExpired, false},
		{"billing.created", StatusPaid, false},
		{"", "", false},
	}

	for _, tc := range cases {
		payload := &WebhookPayload{
			Event: tc.event,
			Data:  WebhookData{PixQRCode: WebhookQRCode{Status: tc.status}},
		}
		if got := payload.IsPaid(); got != tc.want {
			t.Errorf("IsPaid(%q, %q) = %t, beklenen %t", tc.event, tc.status, got, tc.want)
		}
	}
}
