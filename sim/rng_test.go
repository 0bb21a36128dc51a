package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))
	name := SubsystemRun("random", 3)

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(name).Float64()
		v2 := rng2.ForSubsystem(name).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from run 0 doesn't affect run 1
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemRun("random", 0)).Float64()
	}
	aFirst := rngA.ForSubsystem(SubsystemRun("random", 1)).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	want := fresh.ForSubsystem(SubsystemRun("random", 1)).Float64()

	if aFirst != want {
		t.Errorf("run_1 first value = %v, want %v (isolation broken)", aFirst, want)
	}
}

func TestPartitionedRNG_StrategyUsesMasterSeed(t *testing.T) {
	// BDD: "strategy" subsystem uses master seed directly
	seed := int64(42)
	strategyRNG := NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemStrategy)
	directRNG := rand.New(rand.NewSource(seed))

	for i := 0; i < 10; i++ {
		if got, want := strategyRNG.Int63(), directRNG.Int63(); got != want {
			t.Errorf("Value %d: strategy RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	if rng.ForSubsystem(SubsystemStrategy) != rng.ForSubsystem(SubsystemStrategy) {
		t.Error("ForSubsystem returned different instances for same name")
	}
	if rng.Key() != SimulationKey(42) {
		t.Errorf("Key() = %v, want 42", rng.Key())
	}
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	if len(rng.subsystems) != 0 {
		t.Errorf("New PartitionedRNG has %d subsystems, want 0", len(rng.subsystems))
	}
	rng.ForSubsystem(SubsystemStrategy)
	if len(rng.subsystems) != 1 {
		t.Errorf("After one ForSubsystem call, have %d subsystems, want 1", len(rng.subsystems))
	}
}

func TestFnv1a64_Collision(t *testing.T) {
	// Different subsystem names should produce different hashes (spot check)
	names := []string{
		SubsystemStrategy,
		SubsystemRun("random", 0),
		SubsystemRun("random", 1),
		SubsystemRun("greedy", 0),
		"",
	}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

func TestSubsystemRun(t *testing.T) {
	if got := SubsystemRun("wilma", 7); got != "wilma/run_7" {
		t.Errorf("SubsystemRun = %q, want %q", got, "wilma/run_7")
	}
}
