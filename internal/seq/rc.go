// internal/seq/rc.go
package seq

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// RevComp returns the reverse complement of s. Any symbol outside A/C/G/T
// becomes 'N', so the transform is lossy for such input.
func RevComp(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}
