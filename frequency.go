package huffzip

// Frequencies holds the number of occurrences of each byte value.  A count of
// zero means the byte value does not occur.
type Frequencies [256]uint64

// FreqEntry is a single present byte value together with its count.
type FreqEntry struct {
	Value byte
	Count uint64
}

// CountFrequencies tallies the occurrences of each byte value in data.
func CountFrequencies(data []byte) Frequencies {
	var freqs Frequencies
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}

// Entries returns the byte values that occur at least once, in ascending
// byte order.
func (freqs *Frequencies) Entries() []FreqEntry {
	out := make([]FreqEntry, 0, freqs.Distinct())
	for i, count := range freqs {
		if count != 0 {
			out = append(out, FreqEntry{Value: byte(i), Count: count})
		}
	}
	return out
}

// Distinct returns the number of byte values that occur at least once.
func (freqs *Frequencies) Distinct() int {
	n := 0
	for _, count := range freqs {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (freqs *Frequencies) Total() uint64 {
	var sum uint64
	for _, count := range freqs {
		sum += count
	}
	return sum
}
