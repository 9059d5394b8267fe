// Stochastic travel and service time sampling. Both draws are
// RNG-backed and stateless: callers supply the subsystem stream to use,
// so travel-time draws never perturb service-time draws or vice versa.

package sim

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// DisruptionProbability is the chance a travel-time draw includes an
// extra disruption spike.
const DisruptionProbability = 0.05

// RestThresholdMinutes is the cumulative driving time after which rest
// is mandatory (8 hours).
const RestThresholdMinutes = 480.0

// RestDurationMinutes is how long a rest episode lasts.
const RestDurationMinutes = 60.0

// ServiceTimeMin and ServiceTimeMax bound the clamped Gamma draw.
const (
	ServiceTimeMin = 60.0
	ServiceTimeMax = 300.0
)

// NodeKindServiceMultiplier allows a per-kind adjustment to the baseline
// service time. All kinds default to 1.0, matching the reference
// behaviour where the kind is accepted but not applied; an implementer
// wanting kind-sensitive service times only needs to populate this map.
var NodeKindServiceMultiplier = map[NodeKind]float64{
	NodeWarehouse:  1.0,
	NodeHub:        1.0,
	NodePort:       1.0,
	NodeInspection: 1.0,
	NodeCustomer:   1.0,
}

// DelayModel samples travel and service times, and carries the
// scenario's rest-enforcement thresholds. It holds no RNG state of its
// own; two calls with the same RNG state and the same inputs produce
// identical draws.
type DelayModel struct {
	RestThresholdMinutes float64
	RestDurationMinutes  float64
}

// NewDelayModel constructs a DelayModel with the reference rest
// thresholds (8-hour driving limit, 1-hour rest).
func NewDelayModel() *DelayModel {
	return &DelayModel{
		RestThresholdMinutes: RestThresholdMinutes,
		RestDurationMinutes:  RestDurationMinutes,
	}
}

// TravelTime draws a travel time for an edge with base minutes `base`.
// noise ~ U[0,1]; with probability DisruptionProbability an extra
// U[0.5,2.0] spike is added; the result is floored at 1.0 minute.
func (DelayModel) TravelTime(rng *rand.Rand, base float64) float64 {
	noise := rng.Float64()
	if rng.Float64() < DisruptionProbability {
		noise += 0.5 + rng.Float64()*1.5
	}
	t := base * (1 + noise)
	if t < 1.0 {
		t = 1.0
	}
	return t
}

// ServiceTime draws a service time at a node of the given kind.
// Sampled from Gamma(shape=4, scale=35) and clamped to
// [ServiceTimeMin, ServiceTimeMax]. kind is accepted and indexes
// NodeKindServiceMultiplier, which defaults to a no-op 1.0 for every
// kind (see Design Notes: the reference baseline does not vary service
// time by node kind).
func (DelayModel) ServiceTime(rng *rand.Rand, kind NodeKind) float64 {
	gamma := distuv.Gamma{Alpha: 4, Beta: 1.0 / 35.0, Src: rng}
	s := gamma.Rand() * NodeKindServiceMultiplier[kind]
	if s < ServiceTimeMin {
		s = ServiceTimeMin
	}
	if s > ServiceTimeMax {
		s = ServiceTimeMax
	}
	return s
}
