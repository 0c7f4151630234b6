package main

import (
	"math/rand"
	"testing"

	"clothsim/cloth"
)

func newCloth(t *testing.T) *cloth.Cloth {
	t.Helper()
	c, err := cloth.New(cloth.DefaultParams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Resize(cloth.ViewWidth, cloth.ViewHeight)
	return c
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	a := run(newCloth(t), 120, 8, rand.New(rand.NewSource(7)))
	b := run(newCloth(t), 120, 8, rand.New(rand.NewSource(7)))

	if a.torn != b.torn || a.active != b.active || a.maxStrain != b.maxStrain {
		t.Fatalf("runs diverged: %+v vs %+v", a, b)
	}
	if a.clicks != 8 {
		t.Fatalf("clicks = %d, want 8", a.clicks)
	}
	if a.active != a.total-a.torn {
		t.Fatalf("active = %d, want %d", a.active, a.total-a.torn)
	}
}

func TestRunWithoutTearsKeepsAllLinks(t *testing.T) {
	r := run(newCloth(t), 60, 0, rand.New(rand.NewSource(1)))
	if r.torn != 0 || r.active != r.total {
		t.Fatalf("report = %+v", r)
	}
	if r.String() == "" {
		t.Fatalf("empty report")
	}
}
