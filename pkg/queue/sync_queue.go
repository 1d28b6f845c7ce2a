// -----------------------------------------------------------------------------
// Sync Queue Driver
// -----------------------------------------------------------------------------
// Job'ları kuyruğa almadan Push anında çalıştıran driver.
//
// Redis gerektirmez; test ve lokal geliştirme için uygundur. Bu driver'da
// onay e-postaları ve temizlik sweep'leri çağıranın akışı içinde senkron
// işlenir. Pop her zaman boş döndüğü için worker'a hiç iş düşmez.
// -----------------------------------------------------------------------------

package queue

import (
	"log"
	"time"
)

// SyncQueue, synchronous queue implementation.
type SyncQueue struct {
	logger *log.Logger
}

// NewSyncQueue, yeni bir Sync queue instance oluşturur.
func NewSyncQueue(logger *log.Logger) *SyncQueue {
	return &SyncQueue{
		logger: logger,
	}
}

// Push, job'ı kuyruğa koymak yerine hemen çalıştırır. Webhook akışında
// onay e-postası bu yolla istek içinde gönderilmiş olur.
func (s *SyncQueue) Push(job Job, queue string) error {
	s.logger.Printf("⚡ Sync executing job: %s (queue: %s)", job.GetID(), queue)

	err := job.Handle()
	if err != nil {
		s.logger.Printf("❌ Job failed: %s (error: %v)", job.GetID(), err)
		job.Failed(err)
		return err
	}

	s.logger.Printf("✅ Job completed: %s", job.GetID())
	return nil
}

// Later, belirtilen gecikmeyi bekledikten sonra job'ı çalıştırır.
// Çağıranı bloklar; gecikmeli işler için redis driver tercih edilmelidir.
func (s *SyncQueue) Later(delay time.Duration, job Job, queue string) error {
	if delay > 0 {
		s.logger.Printf("⏱️  Waiting %v before executing job: %s", delay, job.GetID())
		time.Sleep(delay)
	}
	return s.Push(job, queue)
}

// Pop, her zaman boş döner; job'lar Push anında işlendiği için
// kuyrukta bekleyen iş olmaz.
func (s *SyncQueue) Pop(queue string) (Job, error) {
	return nil, nil
}

// Delete, sync driver'da no-op'tur.
func (s *SyncQueue) Delete(queue string, job Job) error {
	return nil
}

// Release, sync driver'da no-op'tur.
func (s *SyncQueue) Release(queue string, job Job, delay time.Duration) error {
	return nil
}

// Size, sync driver'da her zaman 0 döner.
func (s *SyncQueue) Size(queue string) (int64, error) {
	return 0, nil
}
