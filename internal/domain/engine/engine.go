// Package engine implements the crew recommendation pipeline: qualification
// filter, availability filter, reachability check, location-priority scoring
// and ranking, backed by the four roster index structures.
package engine

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/crewsync/backend/internal/domain/fatigue"
	"github.com/crewsync/backend/internal/domain/model"
	"github.com/crewsync/backend/internal/domain/roster"
	"github.com/crewsync/backend/internal/domain/routes"
	"github.com/crewsync/backend/internal/domain/standby"
	"github.com/crewsync/backend/pkg/logger"
)

// Location bonus constants. At-origin candidates get the large fixed boost,
// at-destination candidates the medium one; everyone else gets a small
// flight-number-derived addend so different flights surface different crew.
const (
	originBonus         = 20.0
	originJitter        = 5.0
	destinationBonus    = 10.0
	destinationJitter   = 3.0
	otherJitter         = 5.0
	defaultKeyThreshold = 85.0
)

// DefaultLocations is the base-location network the graph is built over when
// no explicit set is configured.
var DefaultLocations = []string{"DEL", "BOM", "BLR", "HYD", "GOI"}

// Rand is the source of the bounded random addend applied during scoring.
// *rand.Rand satisfies it; tests pass a constant source to pin ordering.
type Rand interface {
	Float64() float64
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLocations sets the location network the reachability graph covers.
func WithLocations(locations []string) Option {
	return func(e *Engine) {
		if len(locations) > 0 {
			e.locations = locations
		}
	}
}

// WithRand sets the random source used for the scoring jitter.
func WithRand(rng Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithKeyStrengthThreshold overrides the raw-value cutoff above which an
// attribute counts as a key strength.
func WithKeyStrengthThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold > 0 {
			e.keyThreshold = threshold
		}
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// Engine answers "who are the top-K candidates for this flight" over one
// immutable roster snapshot. All four index structures are built at
// construction and never mutated, so Recommend is safe to call concurrently;
// roster changes are handled by building a fresh Engine and swapping it in.
type Engine struct {
	quals        *roster.QualificationIndex
	graph        *routes.LocationGraph
	fatigueHeap  *fatigue.Heap
	standbyPool  *standby.Pool
	locations    []string
	rng          Rand
	keyThreshold float64
	log          logger.Logger
	crewCount    int
}

// New builds an Engine from a roster snapshot. It fails only when the weight
// table invariant is broken.
func New(crew []*model.CrewMember, opts ...Option) (*Engine, error) {
	if err := validateWeights(); err != nil {
		return nil, err
	}

	e := &Engine{
		locations:    DefaultLocations,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // scoring jitter, not security
		keyThreshold: defaultKeyThreshold,
		log:          logger.Get(),
		crewCount:    len(crew),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.quals = roster.NewQualificationIndex(crew)
	e.graph = routes.NewComplete(e.locations)
	e.fatigueHeap = fatigue.NewHeap()
	e.standbyPool = standby.NewPool()
	for _, member := range crew {
		e.fatigueHeap.Insert(member, member.Attributes.Fatigue)
		if member.Availability.IsStandby() {
			e.standbyPool.Enqueue(member)
		}
	}

	return e, nil
}

// scored pairs a candidate with its boosted score during ranking.
type scored struct {
	member  *model.CrewMember
	boosted float64
}

// Recommend returns the top-K candidates for the flight, ranked by boosted
// composite score. An empty slice is a valid result, never an error: a
// flight nobody is qualified, available or positioned for simply has no
// recommendations.
func (e *Engine) Recommend(ctx context.Context, flight *model.Flight, topK int) []model.Recommendation {
	if topK < 1 {
		return []model.Recommendation{}
	}

	eligible := e.quals.ByQualification(flight.Aircraft)
	if len(eligible) == 0 {
		e.log.Warn(ctx, "no crew qualified for aircraft",
			logger.String("flight", flight.FlightNumber),
			logger.String("aircraft", flight.Aircraft),
		)
		return []model.Recommendation{}
	}

	available := make([]*model.CrewMember, 0, len(eligible))
	for _, member := range eligible {
		if member.Availability.IsAvailable() {
			available = append(available, member)
		}
	}
	if len(available) == 0 {
		e.log.Warn(ctx, "no qualified crew available",
			logger.String("flight", flight.FlightNumber),
			logger.Int("eligible", len(eligible)),
		)
		return []model.Recommendation{}
	}

	reachable := make([]*model.CrewMember, 0, len(available))
	for _, member := range available {
		if e.graph.CanReach(member.BaseLocation, flight.Origin) {
			reachable = append(reachable, member)
		}
	}
	if len(reachable) == 0 {
		e.log.Warn(ctx, "no available crew can reach origin",
			logger.String("flight", flight.FlightNumber),
			logger.String("origin", flight.Origin),
		)
		return []model.Recommendation{}
	}

	// Partition by base location relative to the flight, then score bucket
	// by bucket so equal boosted scores keep discovery order under the
	// stable sort below.
	var atOrigin, atDestination, others []*model.CrewMember
	for _, member := range reachable {
		switch member.BaseLocation {
		case flight.Origin:
			atOrigin = append(atOrigin, member)
		case flight.Destination:
			atDestination = append(atDestination, member)
		default:
			others = append(others, member)
		}
	}

	candidates := make([]scored, 0, len(reachable))
	for _, member := range atOrigin {
		base := compositeScore(member.Attributes)
		candidates = append(candidates, scored{member, base + originBonus + e.rng.Float64()*originJitter})
	}
	for _, member := range atDestination {
		base := compositeScore(member.Attributes)
		candidates = append(candidates, scored{member, base + destinationBonus + e.rng.Float64()*destinationJitter})
	}
	seed := float64(numericDigits(flight.FlightNumber) % 10)
	for _, member := range others {
		base := compositeScore(member.Attributes)
		candidates = append(candidates, scored{member, base + seed + e.rng.Float64()*otherJitter})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].boosted != candidates[j].boosted {
			return candidates[i].boosted > candidates[j].boosted
		}
		return candidates[i].member.EmpID < candidates[j].member.EmpID
	})

	if topK > len(candidates) {
		topK = len(candidates)
	}

	recs := make([]model.Recommendation, 0, topK)
	for i, c := range candidates[:topK] {
		recs = append(recs, model.Recommendation{
			Rank:            i + 1,
			EmpID:           c.member.EmpID,
			Name:            c.member.Name,
			Designation:     c.member.Designation,
			BaseLocation:    c.member.BaseLocation,
			CompositeScore:  round2(c.boosted),
			AttributeValues: c.member.Attributes.Map(),
			Weights:         WeightTable(),
			KeyStrengths:    keyStrengths(c.member.Attributes, e.keyThreshold),
		})
	}
	return recs
}

// LeastFatigued returns up to n crew members in ascending fatigue order.
// The heap itself is not drained; this is a monitoring view.
func (e *Engine) LeastFatigued(n int) []*model.CrewMember {
	return e.fatigueHeap.LeastFatigued(n)
}

// StandbyMembers returns the standby pool contents in FIFO order.
func (e *Engine) StandbyMembers() []*model.CrewMember {
	return e.standbyPool.Members()
}

// CrewCount returns the size of the roster snapshot this engine was built from.
func (e *Engine) CrewCount() int {
	return e.crewCount
}

// numericDigits extracts the digits of a flight number ("AI-302" -> 302) and
// parses them as an integer; a number with no digits yields 0.
func numericDigits(flightNumber string) int {
	n := 0
	for _, r := range flightNumber {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}
