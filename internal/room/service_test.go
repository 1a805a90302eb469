package room

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motel-admin-backend/internal/pkg/listcache"
)

type fakeRepo struct {
	rooms     map[string]*Room
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: make(map[string]*Room)}
}

func (f *fakeRepo) Create(ctx context.Context, room *Room) error {
	if _, ok := f.rooms[room.Code]; ok {
		return ErrCodeTaken
	}
	room.CreatedAt = time.Now().UTC()
	room.UpdatedAt = room.CreatedAt
	copied := *room
	f.rooms[room.Code] = &copied
	return nil
}

func (f *fakeRepo) GetByCode(ctx context.Context, code string) (*Room, error) {
	r, ok := f.rooms[code]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	f.listCalls++
	var out []*Room
	for _, r := range f.rooms {
		copied := *r
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(ctx context.Context, room *Room) error {
	if _, ok := f.rooms[room.Code]; !ok {
		return ErrNotFound
	}
	copied := *room
	f.rooms[room.Code] = &copied
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, code string) error {
	if _, ok := f.rooms[code]; !ok {
		return ErrNotFound
	}
	delete(f.rooms, code)
	return nil
}

func validCreate() CreateRequest {
	return CreateRequest{
		Code:         "R101",
		Capacity:     2,
		PricePerHour: decimal.RequireFromString("10.00"),
		BedDetails:   map[string]int{"queen": 1},
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the status to open", func(t *testing.T) {
		svc := NewService(newFakeRepo(), listcache.Disabled())

		r, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		assert.Equal(t, StatusOpen, r.Status)
	})

	t.Run("rejects an empty code", func(t *testing.T) {
		svc := NewService(newFakeRepo(), listcache.Disabled())

		req := validCreate()
		req.Code = "  "
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrEmptyCode)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc := NewService(newFakeRepo(), listcache.Disabled())

		req := validCreate()
		req.Status = "haunted"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		svc := NewService(newFakeRepo(), listcache.Disabled())

		req := validCreate()
		req.PricePerHour = decimal.RequireFromString("-1")
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("rejects negative bed counts", func(t *testing.T) {
		svc := NewService(newFakeRepo(), listcache.Disabled())

		req := validCreate()
		req.BedDetails = map[string]int{"queen": -1}
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNegativeBedCount)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		svc := NewService(newFakeRepo(), listcache.Disabled())

		_, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		_, err = svc.Create(ctx, validCreate())
		assert.ErrorIs(t, err, ErrCodeTaken)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *fakeRepo) {
		repo := newFakeRepo()
		svc := NewService(repo, listcache.Disabled())
		_, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		return svc, repo
	}

	t.Run("patches only the provided fields", func(t *testing.T) {
		svc, _ := setup(t)

		status := StatusMaintenance
		r, err := svc.Update(ctx, "R101", UpdateRequest{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, StatusMaintenance, r.Status)
		assert.Equal(t, 2, r.Capacity, "untouched fields keep their values")
		assert.Equal(t, "10.00", r.PricePerHour.StringFixed(2))
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		svc, _ := setup(t)

		price := decimal.RequireFromString("-5")
		_, err := svc.Update(ctx, "R101", UpdateRequest{PricePerHour: &price})
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("unknown room is a 404", func(t *testing.T) {
		svc, _ := setup(t)

		status := StatusClosed
		_, err := svc.Update(ctx, "R404", UpdateRequest{Status: &status})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceListCaching(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := listcache.NewRedis(client, time.Minute)

	repo := newFakeRepo()
	svc := NewService(repo, cache)

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	_, total, err := svc.List(ctx, Filter{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, repo.listCalls)

	// Second read is served from the cache.
	_, _, err = svc.List(ctx, Filter{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	// A different filter misses.
	_, _, err = svc.List(ctx, Filter{Status: "open", Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)

	// Mutations invalidate cached pages.
	req := validCreate()
	req.Code = "R102"
	_, err = svc.Create(ctx, req)
	require.NoError(t, err)

	_, total, err = svc.List(ctx, Filter{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 3, repo.listCalls)
}
