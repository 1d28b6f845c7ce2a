// -----------------------------------------------------------------------------
// Queue Interface
// -----------------------------------------------------------------------------
// Laravel-style job queue interface.
//
// Bu interface tüm queue driver'ların implement etmesi gereken metodları tanımlar.
// Driver'lar: Redis, Sync
//
// Özellikler:
// - Push/Later (immediate/delayed dispatch)
// - Pop (job fetch)
// - Failed job handling
// - Retry mechanism
// -----------------------------------------------------------------------------

package queue

import (
	"time"
)

// Queue, tüm queue driver'ların implement etmesi gereken interface.
//
// Bu interface Laravel Queue pattern'ini takip eder.
// Her driver (Redis, Sync) bu interface'i implement eder.
type Queue interface {
	// Push, job'ı hemen kuyruğa ekler.
	//
	// Örnek:
	//   err := queue.Push(confirmationJob, "emails")
	Push(job Job, queue string) error

	// Later, job'ı belirli bir gecikme ile kuyruğa ekler.
	//
	// Örnek:
	//   err := queue.Later(5*time.Minute, confirmationJob, "emails")
	Later(delay time.Duration, job Job, queue string) error

	// Pop, kuyruktan bir job çeker.
	//
	// Kuyruk boşsa nil döner.
	Pop(queue string) (Job, error)

	// Delete, job'ı kuyruktan siler.
	//
	// Job başarıyla işlendiğinde çağrılır.
	Delete(queue string, job Job) error

	// Release, job'ı tekrar kuyruğa ekler.
	//
	// Job başarısız olduğunda retry için kullanılır.
	Release(queue string, job Job, delay time.Duration) error

	// Size, kuyruktaki job sayısını döndürür.
	Size(queue string) (int64, error)
}
