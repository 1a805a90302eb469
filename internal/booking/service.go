package booking

import (
	"context"
	"fmt"
	"time"

	"motel-admin-backend/internal/customer"
	"motel-admin-backend/internal/metrics"
	"motel-admin-backend/internal/pkg/listcache"
	"motel-admin-backend/internal/pricing"
	"motel-admin-backend/internal/room"
)

// listCachePrefix keys cached booking list pages; cleared on every booking mutation.
const listCachePrefix = "booking:list:"

type CreateRequest struct {
	RoomCode  string
	StartTime time.Time
	EndTime   time.Time
	Customers []customer.Customer
}

// UpdateRequest carries a PATCH: either a status transition or a time
// re-quote. Mixing both in one request is rejected.
type UpdateRequest struct {
	Status    *Status
	StartTime *time.Time
	EndTime   *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	calc        pricing.Calculator
	cache       listcache.Cache
	now         func() time.Time
}

func NewService(repo Repository, roomService room.Service, calc pricing.Calculator, cache listcache.Cache) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		calc:        calc,
		cache:       cache,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if len(req.Customers) == 0 {
		return nil, ErrNoCustomers
	}
	for _, cu := range req.Customers {
		if err := cu.Validate(); err != nil {
			return nil, err
		}
	}

	rm, err := s.roomService.GetByCode(ctx, req.RoomCode)
	if err != nil {
		if err == room.ErrNotFound {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if rm.Status != room.StatusOpen {
		return nil, ErrRoomNotOpen
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, req.RoomCode, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	hours := s.calc.HoursBetween(req.StartTime, req.EndTime)
	b := &Booking{
		RoomCode:         req.RoomCode,
		RoomPricePerHour: rm.PricePerHour,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		OriginalEndTime:  req.EndTime,
		Status:           StatusBooked,
		TotalPrice:       s.calc.TotalPrice(rm.PricePerHour, hours),
		Customers:        req.Customers,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.cache.Clear(ctx, listCachePrefix)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

type cachedBookingList struct {
	Bookings []*Booking `json:"bookings"`
	Total    int        `json:"total"`
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	key := listCachePrefix + filter.cacheKey()

	var cached cachedBookingList
	if s.cache.Get(ctx, key, &cached) {
		return cached.Bookings, cached.Total, nil
	}

	bookings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	s.cache.Save(ctx, key, cachedBookingList{Bookings: bookings, Total: total})
	return bookings, total, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	timeChange := req.StartTime != nil || req.EndTime != nil
	if req.Status != nil && timeChange {
		return nil, ErrMixedUpdate
	}
	if req.Status == nil && !timeChange {
		return nil, ErrEmptyUpdate
	}

	if req.Status != nil {
		return s.transition(ctx, id, *req.Status)
	}
	return s.reschedule(ctx, id, req.StartTime, req.EndTime)
}

// transition applies the lifecycle state machine to the stored booking. The
// repository re-checks the precondition so a concurrent transition surfaces
// as ErrConflict and the caller refetches.
func (s *service) transition(ctx context.Context, id string, target Status) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := Transition(*b, target, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.ApplyTransition(ctx, &updated, b.Status); err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(string(target))
	s.cache.Clear(ctx, listCachePrefix)
	return &updated, nil
}

// reschedule re-quotes the reserved interval. Only allowed while the booking
// is still in booked state and before any extension, because extensions are
// priced against the original end time.
func (s *service) reschedule(ctx context.Context, id string, start, end *time.Time) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusBooked {
		return nil, ErrNotReschedulable
	}

	extended, err := s.repo.HasExtensions(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if extended {
		return nil, ErrHasExtensions
	}

	newStart := b.StartTime
	newEnd := b.EndTime
	if start != nil {
		newStart = *start
	}
	if end != nil {
		newEnd = *end
	}
	if !newEnd.After(newStart) {
		return nil, ErrInvalidTimeRange
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, b.RoomCode, newStart, newEnd, b.ID)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	b.StartTime = newStart
	b.EndTime = newEnd
	b.OriginalEndTime = newEnd
	hours := s.calc.HoursBetween(newStart, newEnd)
	b.TotalPrice = s.calc.TotalPrice(b.RoomPricePerHour, hours)

	if err := s.repo.UpdateTimes(ctx, b); err != nil {
		return nil, err
	}

	s.cache.Clear(ctx, listCachePrefix)
	return b, nil
}

// cacheKey serializes the filter into a stable cache key segment.
func (f Filter) cacheKey() string {
	start, end := "", ""
	if f.StartTime != nil {
		start = f.StartTime.UTC().Format(time.RFC3339)
	}
	if f.EndTime != nil {
		end = f.EndTime.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("status=%s&room=%s&start=%s&end=%s&guest=%s&page=%d&size=%d",
		f.Status, f.RoomCode, start, end, f.GuestName, f.Page, f.PageSize)
}
