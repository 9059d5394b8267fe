// Seeded, subsystem-partitioned random sources: every run is reproducible
// end to end from a single integer seed, while independent subsystems
// (workload generation, travel/service sampling, graph construction)
// draw from streams that never perturb one another.

package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation run. Two
// simulations with the same SimulationKey and identical configuration
// must produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// --- Subsystem registry -----------------------------------------------

const (
	// SubsystemWorkload is the RNG subsystem for seed-event generation
	// (truck spawns, order creation).
	SubsystemWorkload = "workload"

	// SubsystemTravel is the RNG subsystem for travel-time sampling.
	SubsystemTravel = "travel"

	// SubsystemService is the RNG subsystem for service-time sampling.
	SubsystemService = "service"

	// SubsystemDispatch is the RNG subsystem for graph construction
	// randomness. The dispatch policies draw no random numbers.
	SubsystemDispatch = "dispatch"
)

// directSeedSubsystems lists subsystems whose stream is seeded from the
// master key directly rather than a hash-derived offset. workload is the
// only member: runs seeded before subsystem partitioning was introduced
// reproduce the same spawn/order schedule under --seed. Adding a new
// subsystem never needs a code branch, only an entry here.
var directSeedSubsystems = map[string]bool{
	SubsystemWorkload: true,
}

// seedFor computes the derived int64 seed for a subsystem name against a
// master key: direct subsystems reuse the key unmodified; every other
// name is isolated by XOR-ing the key with an FNV-1a hash of the name.
func seedFor(key SimulationKey, name string) int64 {
	seed := int64(key)
	if directSeedSubsystems[name] {
		return seed
	}
	return seed ^ fnv1a64(name)
}

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem. NOT thread-safe: must be called from a single goroutine,
// matching the engine's single-threaded execution model.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem, creating and caching it on first use. The same name always
// returns the same *rand.Rand instance. Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(seedFor(p.key, name)))
	p.subsystems[name] = rng
	return rng
}

// SubsystemFleet returns the subsystem name for a specific truck's RNG,
// used where per-truck isolation matters (currently unused by the core
// engine, which shares SubsystemTravel/SubsystemService across trucks,
// but kept as an extension point).
func SubsystemFleet(truckID string) string {
	return fmt.Sprintf("fleet_%s", truckID)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
