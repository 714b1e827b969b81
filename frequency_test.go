package huffzip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies([]byte("abracadabra"))

	assert.Equal(t, []FreqEntry{
		{Value: 'a', Count: 5},
		{Value: 'b', Count: 2},
		{Value: 'c', Count: 1},
		{Value: 'd', Count: 1},
		{Value: 'r', Count: 2},
	}, freqs.Entries())
	assert.Equal(t, 5, freqs.Distinct())
	assert.Equal(t, uint64(11), freqs.Total())
	assert.Zero(t, freqs['z'])
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs := CountFrequencies(nil)
	assert.Empty(t, freqs.Entries())
	assert.Zero(t, freqs.Distinct())
	assert.Zero(t, freqs.Total())
}

func TestCountFrequencies_AllValues(t *testing.T) {
	data := make([]byte, 512)
	for i := range data {
		data[i] = byte(i)
	}
	freqs := CountFrequencies(data)
	assert.Equal(t, 256, freqs.Distinct())
	for _, entry := range freqs.Entries() {
		assert.Equal(t, uint64(2), entry.Count)
	}
}
