package sortedvectesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Rand *rand.Rand
}

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed value
	// so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Ints returns n values drawn uniformly from [0, limit), duplicates included.
func (c *TestContext) Ints(n, limit int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = c.Rand.Intn(limit)
	}
	return values
}

// DistinctInts returns n distinct values from [0, limit) in random order.
// limit must be at least n.
func (c *TestContext) DistinctInts(n, limit int) []int {
	if limit < n {
		c.T.Fatalf("cannot draw %d distinct values below %d", n, limit)
	}
	seen := make(map[int]struct{}, n)
	values := make([]int, 0, n)
	for len(values) < n {
		v := c.Rand.Intn(limit)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// Op is one step of a random insert/remove workload.
type Op struct {
	Insert bool
	Value  int
}

// Ops returns a random workload of n steps over values in [0, limit). Inserts
// outnumber removes roughly two to one so the set grows.
func (c *TestContext) Ops(n, limit int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{Insert: c.Rand.Intn(3) != 0, Value: c.Rand.Intn(limit)}
	}
	return ops
}
