package huffzip

import (
	"bytes"
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func makeTestFrequencies() Frequencies {
	var freqs Frequencies
	for i, count := range []uint64{5, 9, 12, 13, 16, 45} {
		freqs[i] = count
	}
	return freqs
}

func makeTestEncoder() *Encoder {
	tree, err := BuildTree(makeTestFrequencies())
	if err != nil {
		panic(err)
	}
	return NewEncoder(tree)
}

func TestEncoder(t *testing.T) {
	e := makeTestEncoder()

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0x00) = \"1100\"\n",
		"\tEncode(0x01) = \"1101\"\n",
		"\tEncode(0x02) = \"100\"\n",
		"\tEncode(0x03) = \"101\"\n",
		"\tEncode(0x04) = \"111\"\n",
		"\tEncode(0x05) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}

	freqs := makeTestFrequencies()
	if n := e.EncodedBitLen(&freqs); n != 224 {
		t.Errorf("wrong encoded length: expected 224, got %d", n)
	}
}

func TestEncoder_SingleLeaf(t *testing.T) {
	tree, err := BuildTree(CountFrequencies([]byte("zzzz")))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	e := NewEncoder(tree)

	if hc := e.Encode('z'); hc != MakeCode(1, 0) {
		t.Errorf("expected code \"0\", got %s", hc)
	}
	if e.MinSize() != 1 || e.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", e.MinSize(), e.MaxSize())
	}
	if hc := e.Encode('y'); hc.Size != 0 {
		t.Errorf("expected no code for absent byte, got %s", hc)
	}
}

func TestEncoder_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		data := make([]byte, 1+rng.Intn(4096))
		alphabet := 2 + rng.Intn(255)
		for i := range data {
			// squaring skews the distribution toward low values
			x := rng.Intn(alphabet)
			data[i] = byte(x * x % alphabet)
		}

		freqs := CountFrequencies(data)
		tree, err := BuildTree(freqs)
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		e := NewEncoder(tree)

		var codes []Code
		for _, entry := range freqs.Entries() {
			hc := e.Encode(entry.Value)
			if hc.Size == 0 {
				t.Fatalf("trial %d: no code for present byte 0x%02x", trial, entry.Value)
			}
			codes = append(codes, hc)
		}
		for i, a := range codes {
			for j, b := range codes {
				if i != j && b.HasPrefix(a) {
					t.Fatalf("trial %d: %s is a prefix of %s", trial, a, b)
				}
			}
		}
	}
}

func TestEncoder_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		var freqs Frequencies
		freqs[0] = uint64(1 + rng.Intn(1000))
		freqs[255] = uint64(1 + rng.Intn(1000))
		n := rng.Intn(255)
		for i := 0; i < n; i++ {
			freqs[rng.Intn(256)] = uint64(1 + rng.Intn(1000))
		}

		tree, err := BuildTree(freqs)
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		e := NewEncoder(tree)

		expect := referenceCost(freqs)
		actual := e.EncodedBitLen(&freqs)
		if expect != actual {
			t.Errorf("trial %d: expected %d encoded bits, got %d", trial, expect, actual)
		}

		// Building again must yield the same code lengths.
		again, _ := BuildTree(freqs)
		if !bytes.Equal(e.SizeBySymbol(), NewEncoder(again).SizeBySymbol()) {
			t.Errorf("trial %d: code lengths differ between builds", trial)
		}
	}
}

// referenceCost computes the total encoded length of an optimal prefix code
// as the sum of all merged weights, without building a tree.
func referenceCost(freqs Frequencies) uint64 {
	var weights []uint64
	for _, count := range freqs {
		if count != 0 {
			weights = append(weights, count)
		}
	}
	var cost uint64
	for len(weights) > 1 {
		sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
		sum := weights[0] + weights[1]
		cost += sum
		weights = append(weights[2:], sum)
	}
	return cost
}
