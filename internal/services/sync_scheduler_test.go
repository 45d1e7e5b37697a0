package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSchedulerStopIsIdempotent(t *testing.T) {
	svc, _ := newSyncServiceForTest(t, &stubBookingsAPI{})
	scheduler := NewSyncScheduler(svc, time.Minute, zap.NewNop())

	scheduler.Start()

	done := make(chan struct{})
	go func() {
		scheduler.Stop()
		scheduler.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}

func TestSchedulerSkipsWhileRunInFlight(t *testing.T) {
	api := &stubBookingsAPI{}
	svc, _ := newSyncServiceForTest(t, api)
	scheduler := NewSyncScheduler(svc, time.Minute, zap.NewNop())

	svc.running.Store(true)
	defer svc.running.Store(false)

	scheduler.runOnce()
	assert.Equal(t, 0, api.listCalls)
}
