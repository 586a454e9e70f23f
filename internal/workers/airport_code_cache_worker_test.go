package workers

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/metrics"
)

type stubLister struct {
	codes []repositories.AirportCode
	err   error
	calls int
}

func (s *stubLister) ListCodes(ctx context.Context) ([]repositories.AirportCode, error) {
	s.calls++
	return s.codes, s.err
}

func TestAirportCodeCacheWorker_Refresh(t *testing.T) {
	lister := &stubLister{codes: []repositories.AirportCode{
		{ID: 1, IATA: "JFK", ICAO: "KJFK"},
		{ID: 2, IATA: "lax", ICAO: "KLAX"},
		{ID: 3, IATA: "", ICAO: "EGLL"},
		{ID: 4, IATA: "JFK", ICAO: ""},
	}}
	cache := common.NewCacheService(time.Minute, time.Minute)
	m := metrics.NewTestRegistry()

	w := NewAirportCodeCacheWorker(lister, cache, m, time.Minute)
	n, err := w.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != 5 {
		t.Errorf("Expected 5 distinct codes, got %d", n)
	}

	val, ok := cache.Get(repositories.AirportCodeCacheKey("jfk"))
	if !ok || !reflect.DeepEqual(val, []uint{1, 4}) {
		t.Errorf("Expected JFK → [1 4], got %v", val)
	}
	if val, ok := cache.Get(repositories.AirportCodeCacheKey("LAX")); !ok || !reflect.DeepEqual(val, []uint{2}) {
		t.Errorf("Expected LAX → [2], got %v", val)
	}
	if _, ok := cache.Get(repositories.AirportCodeCacheKey("EGLL")); !ok {
		t.Error("Expected ICAO-only airport to be cached")
	}
	if got := testutil.ToFloat64(m.AirportCacheRefreshSize); got != 5 {
		t.Errorf("Expected gauge 5, got %v", got)
	}
}

func TestAirportCodeCacheWorker_RefreshError(t *testing.T) {
	boom := errors.New("db down")
	w := NewAirportCodeCacheWorker(&stubLister{err: boom}, common.NewCacheService(time.Minute, time.Minute), nil, time.Minute)
	if _, err := w.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Expected error, got %v", err)
	}
}

func TestAirportCodeCacheWorker_StartStopsOnCancel(t *testing.T) {
	lister := &stubLister{}
	w := NewAirportCodeCacheWorker(lister, common.NewCacheService(time.Minute, time.Minute), nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx, time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
	if lister.calls != 1 {
		t.Errorf("Expected one initial refresh, got %d", lister.calls)
	}
}
