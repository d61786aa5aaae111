package combo

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestEngine_Fib(t *testing.T) {
	type args struct {
		generation int
		litter     int
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"no generations", args{0, 3}, "0"},
		{"negative generation", args{-4, 3}, "0"},
		{"first generation", args{1, 3}, "1"},
		{"second generation", args{2, 5}, "1"},
		{"rosalind fib sample", args{5, 3}, "19"},
		{"classic fibonacci", args{10, 1}, "55"},
		{"no litters", args{20, 0}, "1"},
		{"past 64 bits", args{100, 1}, "354224848179261915075"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(nil)
			if got := e.Fib(tt.args.generation, tt.args.litter); got.String() != tt.want {
				t.Errorf("Fib() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Fib_classic(t *testing.T) {
	e := New(NewCache())
	a, b := 0, 1
	for n := 1; n <= 40; n++ {
		a, b = b, a+b
		if got := e.Fib(n, 1); got.Int64() != int64(a) {
			t.Fatalf("Fib(%d, 1) = %v, want %d", n, got, a)
		}
	}
}

func TestEngine_Fibd(t *testing.T) {
	type args struct {
		generation int
		months     int
		litter     int
	}
	tests := []struct {
		name        string
		args        args
		wantAlive   string
		wantNewborn string
	}{
		{"negative generation", args{-1, 3, 1}, "0", "0"},
		{"generation zero", args{0, 3, 1}, "0", "1"},
		{"first generation", args{1, 3, 1}, "1", "0"},
		{"second generation", args{2, 3, 4}, "1", "4"},
		{"rosalind fibd sample", args{6, 3, 1}, "4", "2"},
		{"long lived rabbits match fib", args{10, 100, 1}, "55", "34"},
		{"lifespan far past the generation", args{10, 2000000000, 1}, "55", "34"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alive, newborn := New(nil).Fibd(tt.args.generation, tt.args.months, tt.args.litter)
			if alive.String() != tt.wantAlive {
				t.Errorf("Fibd() alive = %v, want %v", alive, tt.wantAlive)
			}
			if newborn.String() != tt.wantNewborn {
				t.Errorf("Fibd() newborn = %v, want %v", newborn, tt.wantNewborn)
			}
		})
	}
}

func TestEngine_Fibd_immortal(t *testing.T) {
	e := New(nil)
	for _, g := range []int{3, 25, 90} {
		alive, _ := e.Fibd(g, math.MaxInt32, 2)
		if want := e.Fib(g, 2); alive.Cmp(want) != 0 {
			t.Errorf("Fibd(%d, MaxInt32, 2) = %v, want Fib() = %v", g, alive, want)
		}
	}
}

func TestEngine_cache(t *testing.T) {
	cache := NewCache()
	e := New(cache)

	first := e.Fib(30, 2)
	if cache.Len() == 0 {
		t.Fatal("Fib did not memoize")
	}

	// mutating a result must not leak into the cache
	first.SetInt64(-1)
	if second := e.Fib(30, 2); second.Cmp(first) == 0 {
		t.Errorf("Fib() returned the mutated value %v", second)
	}

	alive, _ := e.Fibd(40, 5, 2)
	alive.SetInt64(-1)
	if again, _ := e.Fibd(40, 5, 2); again.Sign() < 0 {
		t.Errorf("Fibd() returned the mutated value %v", again)
	}

	cache.Reset()
	if cache.Len() != 0 {
		t.Errorf("Len() after Reset = %d", cache.Len())
	}

	// a reset cache gives back the same answers
	if got := e.Fib(30, 2); got.Cmp(New(nil).Fib(30, 2)) != 0 {
		t.Errorf("Fib() after Reset = %v", got)
	}
}

func TestEngine_concurrent(t *testing.T) {
	e := New(nil)
	want := New(nil).Fib(200, 3)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if got := e.Fib(200-i%2, 3); i%2 == 0 && got.Cmp(want) != 0 {
				t.Errorf("Fib() = %v, want %v", got, want)
			}
			e.Fibd(150, 10+i, 2)
		}(i)
	}
	wg.Wait()
}

func TestDomProb(t *testing.T) {
	type args struct {
		k int
		m int
		n int
	}
	tests := []struct {
		name    string
		args    args
		want    float64
		wantErr error
	}{
		{"rosalind iprb sample", args{2, 2, 2}, 0.78333, nil},
		{"all dominant", args{5, 0, 0}, 1, nil},
		{"all recessive", args{0, 0, 5}, 0, nil},
		{"two heterozygous", args{0, 2, 0}, 0.75, nil},
		{"single organism", args{1, 0, 0}, 0, ErrPopulationTooSmall},
		{"empty population", args{0, 0, 0}, 0, ErrPopulationTooSmall},
		{"negative count", args{3, -1, 2}, 0, ErrNegativePopulation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DomProb(tt.args.k, tt.args.m, tt.args.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DomProb() error = %v, want %v", err, tt.wantErr)
			}
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("DomProb() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkEngine_Fibd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(nil).Fibd(100, 20, 1)
	}
}
