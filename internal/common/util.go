package common

// WipeByteArray zeroes the contents of b in place. Use it to scrub
// passwords read from the terminal once they have been handed off.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
