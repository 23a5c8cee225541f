package naming

// Alpha returns the bijective base-26 name of n: 0 is "A", 25 is "Z", 26 is
// "AA", 27 is "AB" and so on.
func Alpha(n int) string {
	if n < 0 {
		return ""
	}

	letter := string(rune('A' + n%26))
	if n < 26 {
		return letter
	}

	return Alpha(n/26-1) + letter
}

// Next returns the first name Alpha(i) with i >= index that is not in taken,
// together with the index to pass to the following call. Indices strictly
// increase across calls, so names never repeat as long as each call receives
// the index returned by the previous one.
func Next(index int, taken map[string]struct{}) (string, int) {
	for {
		name := Alpha(index)
		index++

		if _, ok := taken[name]; !ok {
			return name, index
		}
	}
}
