package room

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"motel-admin-backend/internal/pkg/listcache"
)

// listCachePrefix keys cached room list pages; cleared on every room mutation.
const listCachePrefix = "room:list:"

type CreateRequest struct {
	Code             string
	Capacity         int
	IsAirConditioned bool
	Status           Status
	PricePerHour     decimal.Decimal
	BedDetails       map[string]int
}

type UpdateRequest struct {
	Capacity         *int
	IsAirConditioned *bool
	Status           *Status
	PricePerHour     *decimal.Decimal
	BedDetails       map[string]int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByCode(ctx context.Context, code string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, code string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, code string) error
}

type service struct {
	repo  Repository
	cache listcache.Cache
}

func NewService(repo Repository, cache listcache.Cache) Service {
	return &service{
		repo:  repo,
		cache: cache,
	}
}

func validateBedDetails(beds map[string]int) error {
	for _, count := range beds {
		if count < 0 {
			return ErrNegativeBedCount
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, ErrEmptyCode
	}
	if req.Status == "" {
		req.Status = StatusOpen
	}
	if !req.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if req.PricePerHour.IsNegative() {
		return nil, ErrNegativePrice
	}
	if err := validateBedDetails(req.BedDetails); err != nil {
		return nil, err
	}
	if req.BedDetails == nil {
		req.BedDetails = map[string]int{}
	}

	room := &Room{
		Code:             req.Code,
		Capacity:         req.Capacity,
		IsAirConditioned: req.IsAirConditioned,
		Status:           req.Status,
		PricePerHour:     req.PricePerHour,
		BedDetails:       req.BedDetails,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}

	s.cache.Clear(ctx, listCachePrefix)
	return room, nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*Room, error) {
	return s.repo.GetByCode(ctx, code)
}

type cachedRoomList struct {
	Rooms []*Room `json:"rooms"`
	Total int     `json:"total"`
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	key := listCachePrefix + filter.cacheKey()

	var cached cachedRoomList
	if s.cache.Get(ctx, key, &cached) {
		return cached.Rooms, cached.Total, nil
	}

	rooms, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	s.cache.Save(ctx, key, cachedRoomList{Rooms: rooms, Total: total})
	return rooms, total, nil
}

func (s *service) Update(ctx context.Context, code string, req UpdateRequest) (*Room, error) {
	room, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.IsAirConditioned != nil {
		room.IsAirConditioned = *req.IsAirConditioned
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		room.Status = *req.Status
	}
	if req.PricePerHour != nil {
		if req.PricePerHour.IsNegative() {
			return nil, ErrNegativePrice
		}
		room.PricePerHour = *req.PricePerHour
	}
	if req.BedDetails != nil {
		if err := validateBedDetails(req.BedDetails); err != nil {
			return nil, err
		}
		room.BedDetails = req.BedDetails
	}

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}

	s.cache.Clear(ctx, listCachePrefix)
	return room, nil
}

func (s *service) Delete(ctx context.Context, code string) error {
	if _, err := s.repo.GetByCode(ctx, code); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}

	s.cache.Clear(ctx, listCachePrefix)
	return nil
}

// cacheKey serializes the filter into a stable cache key segment.
func (f Filter) cacheKey() string {
	minPrice, maxPrice := "", ""
	if f.MinPrice != nil {
		minPrice = f.MinPrice.String()
	}
	if f.MaxPrice != nil {
		maxPrice = f.MaxPrice.String()
	}
	return fmt.Sprintf("status=%s&code=%s&min=%s&max=%s&page=%d&size=%d",
		f.Status, f.Code, minPrice, maxPrice, f.Page, f.PageSize)
}
