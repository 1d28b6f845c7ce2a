// -----------------------------------------------------------------------------
// Cleanup Expired Tickets Job
// -----------------------------------------------------------------------------
// Süresi dolmuş rezervasyonları süpüren job. Hem zamanlayıcı (ticker) hem de
// korumalı cleanup endpoint'i aynı job'ı tetikler.
// -----------------------------------------------------------------------------

package jobs

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/biyonik/raffle-pix-api/pkg/queue"
)

// ExpiredTicketSweeper, temizlik işini yapan servisin sözleşmesi.
// Job paketi servis paketine doğrudan bağımlı olmasın diye burada tanımlıdır.
type ExpiredTicketSweeper interface {
	SweepExpired() (int, error)
}

// CleanupExpiredTicketsJob, süresi dolmuş rezervasyonları silen job.
type CleanupExpiredTicketsJob struct {
	queue.BaseJob

	TriggeredBy string `json:"triggered_by"` // "scheduler" veya "endpoint"

	sweeper ExpiredTicketSweeper
}

func NewCleanupExpiredTicketsJob(sweeper ExpiredTicketSweeper) *CleanupExpiredTicketsJob {
	return &CleanupExpiredTicketsJob{
		BaseJob: queue.BaseJob{
			Queue:       "maintenance",
			MaxAttempts: 1,
		},
		sweeper: sweeper,
	}
}

// Handle, temizliği çalıştırır.
func (j *CleanupExpiredTicketsJob) Handle() error {
	count, err := j.sweeper.SweepExpired()
	if err != nil {
		return err
	}

	if count > 0 {
		log.WithFields(log.Fields{
			"expired_count": count,
			"triggered_by":  j.TriggeredBy,
		}).Info("Süresi dolmuş rezervasyonlar temizlendi")
	}

	return nil
}

// Failed, temizlik başarısız olduğunda loglar. Bir sonraki tick'te
// tekrar denenecektir.
func (j *CleanupExpiredTicketsJob) Failed(err error) error {
	log.WithError(err).Error("❌ Rezervasyon temizliği başarısız")
	return nil
}

// GetPayload, job'ı JSON'a serialize eder.
func (j *CleanupExpiredTicketsJob) GetPayload() ([]byte, error) {
	return json.Marshal(j)
}

// SetPayload, JSON'dan job'ı doldurur.
func (j *CleanupExpiredTicketsJob) SetPayload(data []byte) error {
	return json.Unmarshal(data, j)
}
