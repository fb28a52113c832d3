package recordgen

import "math"

// insertAlphabet is the set of characters AddRandomCharacter draws from.
const insertAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// fieldCount is the number of record fields eligible for mutation.
const fieldCount = 3

// Rand is the subset of *math/rand.Rand the injector draws from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// MutationKind enumerates the single-character mutations.
type MutationKind int

const (
	MutationDelete MutationKind = iota
	MutationInsert
	MutationSwap
)

// RemoveRandomCharacter deletes one character at a random position.
// The empty string is returned unchanged.
func RemoveRandomCharacter(rng Rand, s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	i := rng.Intn(len(runes))
	return string(runes[:i]) + string(runes[i+1:])
}

// AddRandomCharacter inserts a random lowercase alphanumeric character at a
// random position in [0, len]. Inserting into the empty string yields a
// one-character string.
func AddRandomCharacter(rng Rand, s string) string {
	runes := []rune(s)
	i := rng.Intn(len(runes) + 1)
	c := rune(insertAlphabet[rng.Intn(len(insertAlphabet))])

	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:i]...)
	out = append(out, c)
	out = append(out, runes[i:]...)
	return string(out)
}

// SwapAdjacentCharacters swaps a random character with its right neighbour.
// Strings shorter than two characters are returned unchanged.
func SwapAdjacentCharacters(rng Rand, s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	i := rng.Intn(len(runes) - 1)
	runes[i], runes[i+1] = runes[i+1], runes[i]
	return string(runes)
}

// Mutate applies the given mutation kind to s.
func Mutate(rng Rand, kind MutationKind, s string) string {
	switch kind {
	case MutationInsert:
		return AddRandomCharacter(rng, s)
	case MutationSwap:
		return SwapAdjacentCharacters(rng, s)
	default:
		return RemoveRandomCharacter(rng, s)
	}
}

// ApplyErrors mutates the name, address and phone of rec in place.
//
// The integer part of errorCount is the exact number of random mutations
// (uniform field, uniform kind). The fractional part is the probability of
// one extra deletion on a uniformly chosen field. Zero, negative and NaN
// counts are no-ops and draw nothing from rng.
func ApplyErrors(rng Rand, rec *Record, errorCount float64) {
	applyErrors(rng, rec, errorCount)
}

// applyErrors is ApplyErrors returning the number of mutations performed.
func applyErrors(rng Rand, rec *Record, errorCount float64) int {
	if !(errorCount > 0) || math.IsInf(errorCount, 0) {
		return 0
	}

	whole, frac := math.Modf(errorCount)
	applied := 0

	for i := 0; i < int(whole); i++ {
		field := rec.field(rng.Intn(fieldCount))
		kind := MutationKind(rng.Intn(3))
		*field = Mutate(rng, kind, *field)
		applied++
	}

	if frac > 0 && rng.Float64() < frac {
		field := rec.field(rng.Intn(fieldCount))
		*field = RemoveRandomCharacter(rng, *field)
		applied++
	}

	return applied
}
