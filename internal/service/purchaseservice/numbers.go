package purchaseservice

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
)

var raffleTypes = map[int]bool{2: true, 4: true, 5: true, 6: true}

// NumberSpace returns every number of a raffle of the given digit width as
// zero-padded strings, minus the excluded ones. Deterministic.
func NumberSpace(width int, exclude []string) ([]string, error) {
	if !raffleTypes[width] {
		return nil, fmt.Errorf("unsupported raffle type: %d", width)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, num := range exclude {
		excluded[num] = true
	}

	total := int(math.Pow10(width))
	numbers := make([]string, 0, total-len(excluded))
	for i := 0; i < total; i++ {
		num := pad(i, width)
		if !excluded[num] {
			numbers = append(numbers, num)
		}
	}
	return numbers, nil
}

// PickRandom selects count distinct numbers uniformly without replacement,
// clamping count to the pool size.
func PickRandom(available []string, count int) []string {
	if count > len(available) {
		count = len(available)
	}
	if count <= 0 {
		return nil
	}

	picked := make([]string, 0, count)
	for _, i := range rand.Perm(len(available))[:count] {
		picked = append(picked, available[i])
	}
	return picked
}

func pad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func isValidNumber(num string, width int) bool {
	if len(num) != width {
		return false
	}
	if _, err := strconv.ParseUint(num, 10, 64); err != nil {
		return false
	}
	return true
}
