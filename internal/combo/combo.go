// Package combo is for counting problems: rabbit population recurrences
// and the probability of a dominant phenotype in a mating population.
package combo

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrPopulationTooSmall is returned when fewer than two organisms are
	// available to mate.
	ErrPopulationTooSmall = errors.New("population must have at least two organisms")

	// ErrNegativePopulation is returned for a negative genotype count.
	ErrNegativePopulation = errors.New("genotype counts cannot be negative")
)

// Engine solves rabbit recurrences, memoizing into its Cache.
type Engine struct {
	cache *Cache
}

// New returns an Engine that memoizes into cache. A nil cache gives the
// Engine a cache of its own.
func New(cache *Cache) *Engine {
	if cache == nil {
		cache = NewCache()
	}
	return &Engine{cache: cache}
}

// Cache returns the Engine's memo.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Fib returns the number of rabbit pairs after some generations (months)
// when each mature pair produces a litter of litter pairs every month.
// Generations below 1 have no rabbits, generations 1 and 2 have one pair:
//
//	F(n) = F(n-1) + F(n-2) * litter
func (e *Engine) Fib(generation, litter int) *big.Int {
	if generation < 1 {
		return big.NewInt(0)
	}
	if generation <= 2 {
		return big.NewInt(1)
	}
	if v, ok := e.cache.getFib(fibKey{generation, litter}); ok {
		return new(big.Int).Set(v)
	}

	l := big.NewInt(int64(litter))
	prev, cur := big.NewInt(1), big.NewInt(1)
	for g := 3; g <= generation; g++ {
		key := fibKey{g, litter}
		next, ok := e.cache.getFib(key)
		if !ok {
			next = new(big.Int).Mul(prev, l)
			next.Add(next, cur)
			e.cache.setFib(key, next)
		}
		prev, cur = cur, next
	}

	return new(big.Int).Set(cur)
}

// Fibd returns the number of rabbit pairs alive, and the number of pairs
// born, in a generation when rabbits die after months months. The edge
// generations are fixed:
//
//	generation < 0:  (0, 0)
//	generation == 0: (0, 1)
//	generation == 1: (1, 0)
//	generation == 2: (1, litter)
//
// After that, the living pairs are those born in the last months
// generations and the newborns are litter times the pairs born two or more
// generations ago that are still alive.
func (e *Engine) Fibd(generation, months, litter int) (alive, newborn *big.Int) {
	p := e.fibd(generation, months, litter)
	return new(big.Int).Set(p.alive), new(big.Int).Set(p.newborn)
}

func (e *Engine) fibd(generation, months, litter int) population {
	switch {
	case generation < 0:
		return population{big.NewInt(0), big.NewInt(0)}
	case generation == 0:
		return population{big.NewInt(0), big.NewInt(1)}
	case generation == 1:
		return population{big.NewInt(1), big.NewInt(0)}
	case generation == 2:
		return population{big.NewInt(1), big.NewInt(int64(litter))}
	}
	if p, ok := e.cache.getFibd(fibdKey{generation, months, litter}); ok {
		return p
	}

	l := big.NewInt(int64(litter))

	// newborns[g] is the number of pairs born in generation g
	newborns := make([]*big.Int, generation+1)
	for g := 0; g <= 2; g++ {
		newborns[g] = e.fibd(g, months, litter).newborn
	}
	bornAt := func(g int) *big.Int {
		if g < 0 {
			return new(big.Int)
		}
		return newborns[g]
	}

	var last population
	for g := 3; g <= generation; g++ {
		key := fibdKey{g, months, litter}
		p, ok := e.cache.getFibd(key)
		if !ok {
			alive, mated := new(big.Int), new(big.Int)
			// nothing was born before generation 0
			for i := 1; i <= min(months, g); i++ {
				alive.Add(alive, bornAt(g-i))
				if i >= 2 {
					mated.Add(mated, bornAt(g-i))
				}
			}
			p = population{alive: alive, newborn: mated.Mul(mated, l)}
			e.cache.setFibd(key, p)
		}
		newborns[g] = p.newborn
		last = p
	}

	return last
}

// DomProb returns the probability that two organisms, drawn without
// replacement from k homozygous dominant, m heterozygous and n homozygous
// recessive organisms, produce offspring with the dominant phenotype.
func DomProb(k, m, n int) (float64, error) {
	if k < 0 || m < 0 || n < 0 {
		return 0, fmt.Errorf("k=%d m=%d n=%d: %w", k, m, n, ErrNegativePopulation)
	}

	total := float64(k + m + n)
	if total <= 1 {
		return 0, fmt.Errorf("population of %d: %w", k+m+n, ErrPopulationTooSmall)
	}

	fk, fm, fn := float64(k), float64(m), float64(n)
	rest := total - 1

	return (fk +
		fm/2 +
		fm*fk/(2*rest) +
		(fm-1)*fm/(4*rest) +
		fn*fk/rest +
		fn*fm/(2*rest)) / total, nil
}
