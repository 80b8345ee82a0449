package seeder

import (
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the deterministic random source behind every generator. The
// PCG stream is shared with the faker so numeric draws and fake text come
// from a single reproducible sequence.
type Source struct {
	seed   uint64
	stream uint64
	rand   *rand.Rand
	faker  *gofakeit.Faker
}

func NewSource(seed uint64) *Source {
	return newSource(seed, seed)
}

func newSource(seed, stream uint64) *Source {
	pcg := rand.NewPCG(seed, stream)
	return &Source{
		seed:   seed,
		stream: stream,
		rand:   rand.New(pcg),
		faker:  gofakeit.NewFaker(pcg, false),
	}
}

// Derive returns an independent source for the named stage. Its draws depend
// only on the seed and the label, never on how much the parent was used.
func (s *Source) Derive(label string) *Source {
	h := fnv.New64a()
	h.Write([]byte(label))
	return newSource(s.seed, s.stream^h.Sum64())
}

func (s *Source) Seed() uint64 {
	return s.seed
}

// IntRange returns a uniform int in [min, max].
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rand.IntN(max-min+1)
}

// Int64Range returns a uniform int64 in [min, max].
func (s *Source) Int64Range(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + s.rand.Int64N(max-min+1)
}

func (s *Source) Float64() float64 {
	return s.rand.Float64()
}

func (s *Source) Bool() bool {
	return s.rand.IntN(2) == 1
}

// Chance reports true with probability num/den.
func (s *Source) Chance(num, den int) bool {
	if den <= 0 {
		return false
	}
	return s.rand.IntN(den) < num
}

// Index returns a uniform index into a collection of length n.
func (s *Source) Index(n int) int {
	if n <= 1 {
		return 0
	}
	return s.rand.IntN(n)
}

// Weighted picks an index with probability proportional to its weight.
func (s *Source) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return s.Index(len(weights))
	}
	r := s.rand.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.Index(len(items))]
}

// TimeBetween returns a UTC instant with second resolution in [start, end].
// When end precedes start the result is start rounded up to the next second.
func (s *Source) TimeBetween(start, end time.Time) time.Time {
	lo := start.Unix()
	if time.Unix(lo, 0).Before(start) {
		lo++
	}
	hi := end.Unix()
	if hi <= lo {
		return time.Unix(lo, 0).UTC()
	}
	return time.Unix(s.Int64Range(lo, hi), 0).UTC()
}

func (s *Source) Email() string {
	return s.faker.Email()
}

func (s *Source) Phone() string {
	return s.faker.Numerify("###-###-####")
}

func (s *Source) FirstName() string {
	return s.faker.FirstName()
}

func (s *Source) LastName() string {
	return s.faker.LastName()
}

func (s *Source) Username() string {
	return s.faker.Username()
}

func (s *Source) Password(length int) string {
	return s.faker.Password(true, true, true, true, false, length)
}

func (s *Source) Street() string {
	return s.faker.Street()
}

func (s *Source) City() string {
	return s.faker.City()
}

func (s *Source) State() string {
	return s.faker.State()
}

func (s *Source) Zip() string {
	return s.faker.Zip()
}

func (s *Source) Country() string {
	return s.faker.Country()
}

func (s *Source) ProductName() string {
	return s.faker.ProductName()
}

// Text builds whole lorem sentences up to maxChars characters.
func (s *Source) Text(maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	var b strings.Builder
	for {
		sentence := s.faker.LoremIpsumSentence(s.IntRange(4, 12))
		if b.Len() > 0 && utf8.RuneCountInString(b.String())+1+utf8.RuneCountInString(sentence) > maxChars {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sentence)
		if utf8.RuneCountInString(b.String()) >= maxChars {
			break
		}
	}
	return Truncate(b.String(), maxChars)
}

// Truncate cuts s to at most max characters.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
