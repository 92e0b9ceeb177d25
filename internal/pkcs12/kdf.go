package pkcs12

import (
	"bytes"
	"hash"
	"math/big"
)

// Diversifier IDs for the PKCS#12 KDF (RFC 7292 appendix B.3).
const (
	kdfIDKey byte = 1
	kdfIDIV  byte = 2
	kdfIDMAC byte = 3
)

// deriveKey implements the PKCS#12 key derivation function of RFC 7292
// appendix B.2. password must already be BMPString encoded with its NUL
// terminator. u and v come from the hash: u is the output size, v the block
// size.
func deriveKey(newHash func() hash.Hash, id byte, password, salt []byte, iterations, size int) []byte {
	h := newHash()
	u, v := h.Size(), h.BlockSize()

	d := bytes.Repeat([]byte{id}, v)
	s := fillWithRepeats(salt, v)
	p := fillWithRepeats(password, v)
	i := make([]byte, 0, len(s)+len(p))
	i = append(i, s...)
	i = append(i, p...)

	c := (size + u - 1) / u
	out := make([]byte, 0, c*u)
	one := big.NewInt(1)
	for n := 0; n < c; n++ {
		h.Reset()
		h.Write(d)
		h.Write(i)
		a := h.Sum(nil)
		for r := 1; r < iterations; r++ {
			h.Reset()
			h.Write(a)
			a = h.Sum(a[:0])
		}
		out = append(out, a...)

		if n == c-1 {
			break
		}

		// I_j = (I_j + B + 1) mod 2^(8v) for every v-byte block of I.
		b := new(big.Int).SetBytes(fillWithRepeats(a, v))
		b.Add(b, one)
		block := new(big.Int)
		for j := 0; j < len(i); j += v {
			block.SetBytes(i[j : j+v])
			block.Add(block, b)
			sum := block.Bytes()
			if len(sum) > v {
				sum = sum[len(sum)-v:]
			}
			clear(i[j : j+v])
			copy(i[j+v-len(sum):j+v], sum)
		}
	}
	return out[:size]
}

// fillWithRepeats concatenates copies of pattern up to the next multiple of
// v. An empty pattern yields nothing.
func fillWithRepeats(pattern []byte, v int) []byte {
	if len(pattern) == 0 {
		return nil
	}
	n := v * ((len(pattern) + v - 1) / v)
	out := make([]byte, n)
	for k := range out {
		out[k] = pattern[k%len(pattern)]
	}
	return out
}
