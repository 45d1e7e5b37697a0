package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const schedulerStartupDelay = 15 * time.Second

// SyncScheduler runs the booking sync job on a fixed interval. The first run
// is delayed briefly so startup does not race database and Square
// connectivity checks.
type SyncScheduler struct {
	syncService *BookingSyncService
	interval    time.Duration
	logger      *zap.Logger
	stopCh      chan struct{}
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

// NewSyncScheduler creates a scheduler around the booking sync job.
func NewSyncScheduler(syncService *BookingSyncService, interval time.Duration, logger *zap.Logger) *SyncScheduler {
	return &SyncScheduler{
		syncService: syncService,
		interval:    interval,
		logger:      logger,
		stopCh:      make(chan struct{}),
	}
}

// Start launches the scheduling loop in a background goroutine.
func (s *SyncScheduler) Start() {
	s.logger.Info("Starting booking sync scheduler",
		zap.Duration("interval", s.interval))

	s.wg.Add(1)
	go s.run()
}

// Stop shuts the scheduler down and waits for any in-flight run to finish.
// Safe to call more than once.
func (s *SyncScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping booking sync scheduler")
		close(s.stopCh)
	})
	s.wg.Wait()
}

func (s *SyncScheduler) run() {
	defer s.wg.Done()

	select {
	case <-time.After(schedulerStartupDelay):
		s.runOnce()
	case <-s.stopCh:
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stopCh:
			return
		}
	}
}

func (s *SyncScheduler) runOnce() {
	if s.syncService.IsRunning() {
		s.logger.Warn("Skipping scheduled booking sync; previous run still in flight")
		return
	}

	if _, err := s.syncService.Run(context.Background()); err != nil {
		s.logger.Error("Scheduled booking sync failed", zap.Error(err))
	}
}
