package notes

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ID schemes accepted by NewIDGenerator.
const (
	IDSchemeTimestamp = "timestamp"
	IDSchemeUUID      = "uuid"
)

// IDGenerator produces note ids.
type IDGenerator interface {
	NewID() string
}

// timestampIDs issues millisecond Unix timestamps in decimal. Within one
// process ids never repeat: a tick that would not advance past the previous
// id is bumped by one.
type timestampIDs struct {
	now  func() time.Time
	last int64
}

// TimestampIDs returns the default generator. now may be nil.
func TimestampIDs(now func() time.Time) IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &timestampIDs{now: now}
}

func (g *timestampIDs) NewID() string {
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

type uuidIDs struct{}

// UUIDs returns a generator of random v4 UUIDs.
func UUIDs() IDGenerator { return uuidIDs{} }

func (uuidIDs) NewID() string { return uuid.NewString() }

// NewIDGenerator maps a configured scheme name to a generator.
func NewIDGenerator(scheme string, now func() time.Time) (IDGenerator, error) {
	switch scheme {
	case "", IDSchemeTimestamp:
		return TimestampIDs(now), nil
	case IDSchemeUUID:
		return UUIDs(), nil
	}
	return nil, fmt.Errorf("unknown id scheme %q", scheme)
}
