package automaton

// Alphabet lists every input symbol in ASCII order.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// InAlphabet reports whether c is an input symbol.
func InAlphabet(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z')
}
