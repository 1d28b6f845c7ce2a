// -----------------------------------------------------------------------------
// Domain Errors
// -----------------------------------------------------------------------------
// Servis katmanının döndürdüğü, controller'larda HTTP status koduna
// çevrilen hata tipleri.
// -----------------------------------------------------------------------------

package models

// AppError, uygulama hata yapısı
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// Errors
var (
	ErrInvalidStateTransition = &AppError{Code: "INVALID_STATE_TRANSITION", Message: "Geçersiz durum geçişi"}

	// ErrNumbersUnavailable, istenen numaralardan en az birinin eşzamanlı
	// bir alıcı tarafından kapatıldığını belirtir. Gateway hatasından ayrı
	// tutulur ki arayüz kullanıcıya yeniden numara seçtirebilsin.
	ErrNumbersUnavailable = &AppError{Code: "NUMBERS_UNAVAILABLE", Message: "Seçilen numaralardan bazıları artık müsait değil, lütfen yeniden seçin"}

	// ErrNoPendingTickets, webhook geldiğinde ödemesi beklenen bilet satırı
	// bulunamadığını belirtir. Mükerrer teslimatta ve rezervasyonun sweeper
	// tarafından silinmesi yarışında beklenen, ölümcül olmayan sonuçtur.
	ErrNoPendingTickets = &AppError{Code: "NO_PENDING_TICKETS", Message: "Ödeme bekleyen bilet bulunamadı"}

	// ErrMalformedExternalID, webhook payload'ındaki externalId etiketinin
	// rifa_<raffleId>_<timestamp> formatına uymadığını belirtir.
	ErrMalformedExternalID = &AppError{Code: "MALFORMED_EXTERNAL_ID", Message: "Geçersiz externalId formatı"}

	ErrRaffleNotFound = &AppError{Code: "RAFFLE_NOT_FOUND", Message: "Çekiliş bulunamadı"}

	// ErrMissingPixCredential, PIX sağlayıcı kimlik bilgisinin yapılandırmada
	// bulunmadığını belirtir. Operatöre görünür bir hatadır, alıcıya değil.
	ErrMissingPixCredential = &AppError{Code: "MISSING_PIX_CREDENTIAL", Message: "PIX sağlayıcı API anahtarı yapılandırılmamış"}
)
