package radint

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "radint.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "radint.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "radint.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)

	code := m.Run()
	os.Exit(code)
}

// newTestRNG returns an RNG derived from the global seed, so tests that need
// their own source are still reproducible with -radint.fuzzseed.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(globalRNG.Int63()))
}

// randDigits returns up to maxLen random digits, most-significant digit
// non-zero.
func randDigits(rng *rand.Rand, radix, maxLen int) []uint8 {
	n := rng.Intn(maxLen + 1)
	if n == 0 {
		return nil
	}
	digits := make([]uint8, n)
	for i := range digits {
		digits[i] = uint8(rng.Intn(radix))
	}
	digits[n-1] = uint8(1 + rng.Intn(radix-1))
	return digits
}

func randInt(rng *rand.Rand, radix, maxLen int) Int {
	v, err := IntFromDigits(rng.Intn(2) == 1, randDigits(rng, radix, maxLen), radix)
	if err != nil {
		panic(err)
	}
	return v
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}
