package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/client/square"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSyncAlreadyRunning is returned when a run is requested while another
// one is still in flight. Runs are idempotent and time-boxed, so callers
// skip rather than queue.
var ErrSyncAlreadyRunning = errors.New("booking sync is already running")

// BookingSyncError records a single booking that failed during a sync run.
type BookingSyncError struct {
	BookingID string `json:"booking_id"`
	Message   string `json:"message"`
}

// SyncResult summarizes one sync run for the dashboard.
type SyncResult struct {
	StartedAt   time.Time          `json:"started_at"`
	CompletedAt time.Time          `json:"completed_at"`
	Synced      int                `json:"synced"`
	Created     int                `json:"created"`
	Updated     int                `json:"updated"`
	Errors      []BookingSyncError `json:"errors"`
}

// BookingSyncService polls Square for bookings in a rolling window and feeds
// them through the same reconciliation logic as the webhook path. It is the
// safety net for missed webhooks.
type BookingSyncService struct {
	squareClient square.BookingsAPI
	bookings     *BookingService
	logger       *zap.Logger
	lookbehind   time.Duration
	lookahead    time.Duration

	running    atomic.Bool
	mu         sync.RWMutex
	lastResult *SyncResult
}

// NewBookingSyncService creates the periodic booking sync job.
func NewBookingSyncService(squareClient square.BookingsAPI, bookings *BookingService, lookbehind, lookahead time.Duration, logger *zap.Logger) *BookingSyncService {
	return &BookingSyncService{
		squareClient: squareClient,
		bookings:     bookings,
		logger:       logger,
		lookbehind:   lookbehind,
		lookahead:    lookahead,
	}
}

// IsRunning reports whether a sync run is in flight.
func (s *BookingSyncService) IsRunning() bool {
	return s.running.Load()
}

// LastResult returns the most recent run summary, or nil before the first run.
func (s *BookingSyncService) LastResult() *SyncResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastResult == nil {
		return nil
	}
	result := *s.lastResult
	result.Errors = append([]BookingSyncError(nil), s.lastResult.Errors...)
	return &result
}

// Run executes one sync pass. A failure to reach Square fails the whole run;
// a failure on an individual booking is recorded and does not stop the rest
// of the batch.
func (s *BookingSyncService) Run(ctx context.Context) (*SyncResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("Booking sync requested while another run is in flight; skipping")
		return nil, ErrSyncAlreadyRunning
	}
	defer s.running.Store(false)

	result := &SyncResult{StartedAt: time.Now().UTC()}

	windowStart := result.StartedAt.Add(-s.lookbehind)
	windowEnd := result.StartedAt.Add(s.lookahead)

	s.logger.Info("Starting booking sync",
		zap.Time("window_start", windowStart),
		zap.Time("window_end", windowEnd))

	bookings, err := s.squareClient.ListBookings(ctx, windowStart, windowEnd)
	if err != nil {
		result.CompletedAt = time.Now().UTC()
		result.Errors = append(result.Errors, BookingSyncError{
			BookingID: "*",
			Message:   err.Error(),
		})
		s.storeResult(result)
		s.logger.Error("Booking sync failed to query Square", zap.Error(err))
		return nil, errors.Wrap(err, "failed to list bookings from square")
	}

	for _, booking := range bookings {
		reconcileResult, err := s.reconcileOne(ctx, booking)
		if err != nil {
			s.logger.Error("Failed to sync booking",
				zap.String("booking_id", booking.ID),
				zap.Error(err))
			result.Errors = append(result.Errors, BookingSyncError{
				BookingID: booking.ID,
				Message:   err.Error(),
			})
			continue
		}

		result.Synced++
		if reconcileResult.Created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	result.CompletedAt = time.Now().UTC()
	s.storeResult(result)

	s.logger.Info("Booking sync completed",
		zap.Int("synced", result.Synced),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("errors", len(result.Errors)))

	return result, nil
}

func (s *BookingSyncService) reconcileOne(ctx context.Context, booking square.Booking) (*BookingReconcileResult, error) {
	if booking.ID == "" {
		return nil, errors.New("booking is missing an id")
	}

	var startAt time.Time
	if booking.StartAt != "" {
		parsed, err := time.Parse(time.RFC3339, booking.StartAt)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid start time %q", booking.StartAt)
		}
		startAt = parsed
	}

	duration := 0
	if len(booking.AppointmentSegments) > 0 {
		duration = booking.AppointmentSegments[0].DurationMinutes
	}

	return s.bookings.ReconcileBooking(ctx, BookingData{
		SquareID:         booking.ID,
		CustomerSquareID: booking.CustomerID,
		StartAt:          startAt,
		DurationMinutes:  duration,
		SellerNote:       booking.SellerNote,
		Status:           booking.Status,
	})
}

func (s *BookingSyncService) storeResult(result *SyncResult) {
	s.mu.Lock()
	s.lastResult = result
	s.mu.Unlock()
}
