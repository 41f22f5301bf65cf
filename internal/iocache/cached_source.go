package iocache

import (
	"time"

	"github.com/orbweave/orbweave/internal/contract"
	"github.com/orbweave/orbweave/schema"
)

// CachedSource wraps an ephemeris source with a durable position store.
// Positions are keyed by body and minute bucket; two instants in the same
// minute share one entry. Recomputation is idempotent, so a racing writer
// on the same key stores an equal value and the last write wins harmlessly.
type CachedSource struct {
	inner contract.EphemerisSource
	store contract.PositionStore
}

var _ contract.EphemerisSource = &CachedSource{} // Compile-time check

// NewCachedSource layers the store over the inner source. A nil store
// returns the inner source unchanged.
func NewCachedSource(inner contract.EphemerisSource, store contract.PositionStore) contract.EphemerisSource {
	if store == nil {
		return inner
	}
	return &CachedSource{inner: inner, store: store}
}

// PositionAt serves from the store when possible, computing and persisting
// on a miss. Store failures never fail the computation.
func (s *CachedSource) PositionAt(body schema.Body, at time.Time) (schema.BodyPosition, error) {
	bucket := at.Unix() / 60

	if cached, err := s.store.Get(body, bucket); err == nil {
		return schema.BodyPosition{
			Name:      body,
			Longitude: cached.Longitude,
			Speed:     cached.Speed,
			Sign:      schema.SignForLongitude(cached.Longitude),
		}, nil
	}

	pos, err := s.inner.PositionAt(body, at)
	if err != nil {
		return schema.BodyPosition{}, err
	}

	_ = s.store.Set(schema.CachedPosition{
		Body:       body,
		Bucket:     bucket,
		Longitude:  pos.Longitude,
		Speed:      pos.Speed,
		ComputedAt: time.Now().UTC(),
	})
	return pos, nil
}

// MeanDailyMotion is a table lookup; it passes through uncached.
func (s *CachedSource) MeanDailyMotion(body schema.Body) (float64, error) {
	return s.inner.MeanDailyMotion(body)
}
