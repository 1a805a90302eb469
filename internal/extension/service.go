package extension

import (
	"context"

	"motel-admin-backend/internal/booking"
	"motel-admin-backend/internal/metrics"
	"motel-admin-backend/internal/pkg/listcache"
	"motel-admin-backend/internal/pricing"
)

// Extensions mutate booking rows, so cached booking list pages are cleared
// whenever one is applied or adjusted.
const bookingListCachePrefix = "booking:list:"

type Service interface {
	Create(ctx context.Context, bookingID string, durationHours int) (*Extension, error)
	GetByID(ctx context.Context, id string) (*Extension, error)
	ListByBooking(ctx context.Context, bookingID string, page, pageSize int) ([]*Extension, int, error)
	UpdateDuration(ctx context.Context, id string, durationHours int) (*Extension, error)
}

type service struct {
	repo           Repository
	bookingService booking.Service
	calc           pricing.Calculator
	cache          listcache.Cache
}

func NewService(repo Repository, bookingService booking.Service, calc pricing.Calculator, cache listcache.Cache) Service {
	return &service{
		repo:           repo,
		bookingService: bookingService,
		calc:           calc,
		cache:          cache,
	}
}

func (s *service) Create(ctx context.Context, bookingID string, durationHours int) (*Extension, error) {
	if durationHours <= 0 {
		return nil, ErrInvalidDuration
	}

	b, err := s.bookingService.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.CanExtend(b.Status) {
		return nil, booking.ErrInvalidExtension
	}

	e := &Extension{
		RoomBookingID:  b.ID,
		DurationHours:  durationHours,
		AdditionalCost: s.calc.ExtensionCost(b.RoomPricePerHour, durationHours),
	}

	// The repository re-checks extendability inside the transaction, so a
	// concurrent check-out or cancellation cannot slip an extension in.
	if err := s.repo.Apply(ctx, e); err != nil {
		return nil, err
	}

	metrics.IncExtensionApplied()
	s.cache.Clear(ctx, bookingListCachePrefix)
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Extension, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByBooking(ctx context.Context, bookingID string, page, pageSize int) ([]*Extension, int, error) {
	// Listing against a missing booking is a 404, not an empty page.
	if _, err := s.bookingService.GetByID(ctx, bookingID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListByBooking(ctx, bookingID, page, pageSize)
}

func (s *service) UpdateDuration(ctx context.Context, id string, durationHours int) (*Extension, error) {
	if durationHours <= 0 {
		return nil, ErrInvalidDuration
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := s.bookingService.GetByID(ctx, e.RoomBookingID)
	if err != nil {
		return nil, err
	}
	if !booking.CanExtend(b.Status) {
		return nil, booking.ErrInvalidExtension
	}

	newCost := s.calc.ExtensionCost(b.RoomPricePerHour, durationHours)
	hoursDelta := durationHours - e.DurationHours
	costDelta := newCost.Sub(e.AdditionalCost)

	e.DurationHours = durationHours
	e.AdditionalCost = newCost

	if err := s.repo.AdjustDuration(ctx, e, hoursDelta, costDelta); err != nil {
		return nil, err
	}

	s.cache.Clear(ctx, bookingListCachePrefix)
	return e, nil
}
