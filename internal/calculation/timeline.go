package calculation

// StartAge is the participant's age in the first simulation year.
const StartAge = 55

// Ages returns n consecutive ages beginning at start.
func Ages(start, n int) []int {
	ages := make([]int, n)
	for i := range ages {
		ages[i] = start + i
	}
	return ages
}

// Years returns the 1-based simulation year numbers 1..n.
func Years(n int) []int {
	return Ages(1, n)
}
