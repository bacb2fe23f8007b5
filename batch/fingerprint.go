// SPDX-License-Identifier: MIT

package batch

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the shape and exact bit patterns of rates.
// Equal matrices always share a fingerprint; the converse is not guaranteed.
func Fingerprint(rates [][]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(len(rates)))
	_, _ = d.Write(buf[:])
	for _, row := range rates {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(row)))
		_, _ = d.Write(buf[:])
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}

// sameRates compares two matrices bit for bit.
func sameRates(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Float64bits(a[i][j]) != math.Float64bits(b[i][j]) {
				return false
			}
		}
	}

	return true
}
