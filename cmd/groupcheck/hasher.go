package main

import (
	"fmt"
	"math/big"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/cyclic/unsigned"
)

// Hasher derives digests from vector seeds.
// Different implementations can provide different hash functions and
// domain separation schemes.
type Hasher interface {
	// Sum hashes the domain separation tag followed by data.
	Sum(tag string, data ...[]byte) []byte
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// Sum implements Hasher.Sum.
func (h *SHA256Hasher) Sum(tag string, data ...[]byte) []byte {
	hasher := sha256.New()
	hasher.Write([]byte(tag))
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// Blake2bHasher implements Hasher using Blake2b-512 with domain separation.
//
// Domain separation format: prefix + tag + input
type Blake2bHasher struct {
	// Prefix is the domain separation prefix.
	// Default: "CYCLIC-GROUPCHECK-BLAKE512-v1"
	Prefix string
}

// NewBlake2bHasher creates a Blake2bHasher with the default prefix.
func NewBlake2bHasher() *Blake2bHasher {
	return &Blake2bHasher{
		Prefix: "CYCLIC-GROUPCHECK-BLAKE512-v1",
	}
}

// Sum implements Hasher.Sum.
func (h *Blake2bHasher) Sum(tag string, data ...[]byte) []byte {
	hasher, _ := blake2b.New512(nil)
	hasher.Write([]byte(h.Prefix))
	hasher.Write([]byte(tag))
	for _, d := range data {
		hasher.Write(d)
	}
	return hasher.Sum(nil)
}

// hasherFor returns the hasher registered under name. The empty name
// selects Blake2b.
func hasherFor(name string) (Hasher, error) {
	switch name {
	case "", "blake2b":
		return NewBlake2bHasher(), nil
	case "sha256":
		return &SHA256Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown hash %q", name)
	}
}

var mask256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// deriveExponent hashes seed under tag and keeps the low 256 bits of the
// digest, interpreted as little-endian.
func deriveExponent(h Hasher, tag, seed string) unsigned.U256 {
	digest := h.Sum(tag, []byte(seed))

	// Reverse bytes for little-endian interpretation
	reversed := make([]byte, len(digest))
	for i := 0; i < len(digest); i++ {
		reversed[i] = digest[len(digest)-1-i]
	}

	k := new(big.Int).SetBytes(reversed)
	k.And(k, mask256)
	e, _ := unsigned.FromBig(k)
	return e
}
