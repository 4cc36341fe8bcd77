package segment

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/walkthedog/prefabs"
)

// Selector picks the index of the next layout out of count.
type Selector interface {
	Next(count int) int
}

// Random picks uniformly.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Next(count int) int {
	if count <= 0 {
		return 0
	}
	return r.rng.Intn(count)
}

// Sequence cycles through layouts in catalog order.
type Sequence struct {
	next int
}

func (s *Sequence) Next(count int) int {
	if count <= 0 {
		return 0
	}
	i := s.next % count
	s.next = i + 1
	return i
}

const selectDispatchScript = `
__pick := next(__count, __last)
`

// Script asks a tengo script for the next layout. The script defines
// next(count, last). When the script fails or returns an index out of range
// the fallback decides and the failure is logged.
type Script struct {
	name     string
	compiled *tengo.Compiled
	last     int
	fallback Selector
	logger   *log.Logger
}

func NewScript(name string, src []byte, fallback Selector, logger *log.Logger) (*Script, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if fallback == nil {
		fallback = &Sequence{}
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + selectDispatchScript))
	_ = script.Add("__count", 0)
	_ = script.Add("__last", -1)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("segment: compile %s: %w", name, err)
	}
	return &Script{
		name:     name,
		compiled: compiled,
		last:     -1,
		fallback: fallback,
		logger:   logger,
	}, nil
}

// LoadScript compiles a selector script from prefabs.
func LoadScript(name string, fallback Selector, logger *log.Logger) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("segment: load %s: %w", name, err)
	}
	return NewScript(name, src, fallback, logger)
}

func (s *Script) Next(count int) int {
	pick, err := s.run(count)
	if err != nil {
		s.logger.Error("segment script failed, using fallback", "script", s.name, "err", err)
		pick = s.fallback.Next(count)
	}
	s.last = pick
	return pick
}

func (s *Script) run(count int) (int, error) {
	if err := s.compiled.Set("__count", count); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("__last", s.last); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, err
	}
	v := s.compiled.Get("__pick")
	if v.ValueType() != "int" {
		return 0, fmt.Errorf("next returned %s, expected int", v.ValueType())
	}
	pick := v.Int()
	if pick < 0 || pick >= count {
		return 0, fmt.Errorf("next returned %d, expected 0..%d", pick, count-1)
	}
	return pick, nil
}

func (s *Script) Name() string {
	return s.name
}
