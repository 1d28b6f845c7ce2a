package queue

import (
	"io"
	"log"
	"sync/atomic"
	"testing"
	"time"
)

// emptyQueue, her Pop çağrısında boş dönen ve çağrı sayısını tutan driver.
// Sync driver'ın davranışını taklit eder.
type emptyQueue struct {
	popCalls atomic.Int64
}

func (q *emptyQueue) Push(job Job, queue string) error { return nil }
func (q *emptyQueue) Later(delay time.Duration, job Job, queue string) error {
	return nil
}
func (q *emptyQueue) Pop(queue string) (Job, error) {
	q.popCalls.Add(1)
	return nil, nil
}
func (q *emptyQueue) Delete(queue string, job Job) error { return nil }
func (q *emptyQueue) Release(queue string, job Job, d time.Duration) error {
	return nil
}
func (q *emptyQueue) Size(queue string) (int64, error) { return 0, nil }

func TestWorkerIdlesOnEmptyQueue(t *testing.T) {
	q := &emptyQueue{}
	logger := log.New(io.Discard, "", 0)

	worker := NewWorker(q, logger).SetPollInterval(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		worker.Work("emails")
		close(done)
	}()

	time.Sleep(200 * time.Millisecond)
	worker.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker Stop sonrasında durmadı")
	}

	calls := q.popCalls.Load()
	if calls == 0 {
		t.Fatal("worker hiç Pop çağırmadı")
	}

	// 200ms / 20ms poll aralığı ≈ 10 çağrı; bekleme olmasaydı milyonlarca
	// olurdu. Zamanlayıcı sapmalarına geniş pay bırakılır.
	if calls > 100 {
		t.Errorf("boş kuyrukta %d Pop çağrısı yapıldı, worker beklemiyor", calls)
	}
}

func TestWorkerStopIsPromptWhileIdle(t *testing.T) {
	q := &emptyQueue{}
	logger := log.New(io.Discard, "", 0)

	worker := NewWorker(q, logger).SetPollInterval(10 * time.Second)

	done := make(chan struct{})
	go func() {
		worker.Work("emails", "maintenance")
		close(done)
	}()

	// Worker'ların poll beklemesine girmesine izin ver
	time.Sleep(50 * time.Millisecond)

	start := time.Now()
	worker.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker Stop sonrasında durmadı")
	}

	// Poll aralığı 10s olsa da Stop beklemeyi kesmeli
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Stop %v sürdü, poll beklemesini kesmiyor", elapsed)
	}
}
