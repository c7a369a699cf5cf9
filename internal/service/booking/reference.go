package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/repository"
)

const (
	ReferenceLength   = 11
	ReferenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// ReferenceGenerator produces candidate booking references: ReferenceLength
// distinct symbols of ReferenceAlphabet taken from a random permutation.
type ReferenceGenerator struct {
	rnd *rand.Rand
}

// NewReferenceGenerator uses rnd as the randomness source, or the global
// generator when rnd is nil.
func NewReferenceGenerator(rnd *rand.Rand) *ReferenceGenerator {
	return &ReferenceGenerator{rnd: rnd}
}

func (g *ReferenceGenerator) Generate() string {
	symbols := []byte(ReferenceAlphabet)
	shuffle := rand.Shuffle
	if g != nil && g.rnd != nil {
		shuffle = g.rnd.Shuffle
	}
	shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})
	return string(symbols[:ReferenceLength])
}

// ReferenceFinder looks a booking up by reference. Absence is reported as repository.ErrNotFound.
type ReferenceFinder interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
}

// UniqueReference draws references until one has no stored match. Collisions
// are retried without bound; any lookup failure other than "not found" is returned as is.
func UniqueReference(ctx context.Context, finder ReferenceFinder, generate func() string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := generate()
		existing, err := finder.GetByReference(ctx, candidate)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return candidate, nil
		case err != nil:
			return "", fmt.Errorf("lookup booking reference: %w", err)
		case existing == nil:
			return candidate, nil
		}
	}
}
