// Package words enumerates the words over a symbol set up to a length bound.
package words

// Each calls fn with every word over symbols of length 0 through maxLen,
// shortest first and in symbol order within a length.
func Each(symbols string, maxLen int, fn func(string)) {
	fn("")
	if symbols == "" {
		return
	}
	buf := make([]byte, 0, max(maxLen, 0))
	// idx[p] is the position in symbols of buf[p].
	idx := make([]int, 0, max(maxLen, 0))
	for n := 1; n <= maxLen; n++ {
		buf, idx = buf[:0], idx[:0]
		for p := 0; p < n; p++ {
			buf = append(buf, symbols[0])
			idx = append(idx, 0)
		}
		for {
			fn(string(buf))
			p := n - 1
			for p >= 0 && idx[p] == len(symbols)-1 {
				idx[p] = 0
				buf[p] = symbols[0]
				p--
			}
			if p < 0 {
				break
			}
			idx[p]++
			buf[p] = symbols[idx[p]]
		}
	}
}

// All returns the words Each visits, in the same order.
func All(symbols string, maxLen int) []string {
	var out []string
	Each(symbols, maxLen, func(w string) { out = append(out, w) })
	return out
}
