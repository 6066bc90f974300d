package quizgen

import (
	"math/rand/v2"
	"strconv"
)

// distractor is a wrong option candidate and the slip it imitates.
type distractor struct {
	value int
	kind  DistractorKind
}

// distractorPool builds the plausible wrong answers for base × multiplier.
// Values may be non-positive or collide with each other; the caller filters.
func distractorPool(rng *rand.Rand, base, multiplier int) []distractor {
	correct := base * multiplier
	pool := []distractor{
		{base * (multiplier + 1), KindMultiplierOffByOne},
		{base * (multiplier - 1), KindMultiplierOffByOne},
		{(base + 1) * multiplier, KindBaseOffByOne},
		{(base - 1) * multiplier, KindBaseOffByOne},
		{base + multiplier, KindAddedInstead},
		{absInt(base - multiplier), KindSubtractedInstead},
		{correct + nearOffset(rng), KindNearMiss},
		{correct + nearOffset(rng), KindNearMiss},
	}
	if r := reverseDigits(correct); r != correct {
		pool = append(pool, distractor{r, KindDigitsReversed})
	}
	return pool
}

// synthesizeOptions returns the four shuffled options for base × multiplier
// and the kinds parallel to them.
func synthesizeOptions(rng *rand.Rand, base, multiplier int) ([]int, []DistractorKind) {
	correct := base * multiplier
	options := make([]int, 0, OptionCount)
	kinds := make([]DistractorKind, 0, OptionCount)
	seen := make(map[int]bool, OptionCount)

	add := func(v int, k DistractorKind) {
		options = append(options, v)
		kinds = append(kinds, k)
		seen[v] = true
	}
	add(correct, KindCorrect)

	pool := distractorPool(rng, base, multiplier)
	for draws := 0; len(options) < OptionCount && draws < 4*len(pool); draws++ {
		d := pool[rng.IntN(len(pool))]
		if d.value <= 0 || seen[d.value] {
			continue
		}
		add(d.value, d.kind)
	}

	// Walk outward from the answer until four options exist.
	for offset := 1; len(options) < OptionCount; offset++ {
		for _, v := range [2]int{correct + offset, correct - offset} {
			if len(options) < OptionCount && v > 0 && !seen[v] {
				add(v, KindFallback)
			}
		}
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})
	return options, kinds
}

// nearOffset returns a random non-zero offset in [-3, 3].
func nearOffset(rng *rand.Rand) int {
	n := 1 + rng.IntN(3)
	if rng.IntN(2) == 0 {
		return -n
	}
	return n
}

// reverseDigits reverses the decimal digits of n, so 42 becomes 24 and
// 10 becomes 1.
func reverseDigits(n int) int {
	s := []byte(strconv.Itoa(n))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	r, _ := strconv.Atoi(string(s))
	return r
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
