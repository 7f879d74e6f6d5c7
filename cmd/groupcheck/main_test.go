package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectors(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("testdata", "vectors.toml"))
	require.NoError(t, err)
	require.Len(t, cfg.Vectors, 7)
	assert.Equal(t, "debug", cfg.Log.Level)

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg.Log.Level, cfg.Log.Format)
	require.NoError(t, err)

	checked, err := run(cfg, logger, false)
	require.NoError(t, err)

	want := 0
	for _, v := range cfg.Vectors {
		want += len(v.Exponents)
	}
	assert.Equal(t, want, checked)
	assert.Contains(t, buf.String(), "vector passed")
	assert.Contains(t, buf.String(), "exponents=[redacted]")
}

func TestRevealExponents(t *testing.T) {
	cfg := &Config{Vectors: []Vector{{
		Name:      "reveal",
		Group:     "zn",
		Modulus:   11,
		Base:      "2",
		Exponents: []string{"1234567"},
	}}}

	var buf bytes.Buffer
	logger, err := newLogger(&buf, "debug", "json")
	require.NoError(t, err)

	_, err = run(cfg, logger, true)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1234567")
}

func TestMismatch(t *testing.T) {
	v := Vector{
		Name:      "wrong",
		Group:     "zn",
		Modulus:   7,
		Base:      "3",
		Exponents: []string{"5", "6"},
		Expect:    []string{"5", "neutral"},
	}
	n, err := checkVector(v)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Equal(t, 1, n)
}

func TestWideExponentReduced(t *testing.T) {
	v := Vector{
		Name:      "wide",
		Group:     "zn",
		Modulus:   1<<61 - 1,
		Base:      "5",
		Exponents: []string{"0xffffffffffffffffffffffffffffffff"},
		Expect:    []string{"63"},
	}
	n, err := checkVector(v)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v.Expect = []string{"62"}
	_, err = checkVector(v)
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestInvalidVectors(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want error
	}{
		{"UnknownGroup", Vector{Name: "x", Group: "nope", Exponents: []string{"1"}}, ErrUnknownGroup},
		{"NoExponents", Vector{Name: "x", Group: "fr-add"}, nil},
		{"NoName", Vector{Group: "fr-add", Exponents: []string{"1"}}, nil},
		{"BadExponent", Vector{Name: "x", Group: "fr-add", Exponents: []string{"one"}}, nil},
		{"BadExpect", Vector{Name: "x", Group: "fr-add", Exponents: []string{"1"}, Expect: []string{"1", "2"}}, nil},
		{"BadHash", Vector{Name: "x", Group: "fr-add", Hash: "md5", Exponents: []string{"1"}}, nil},
		{"ZeroModulus", Vector{Name: "x", Group: "zn", Exponents: []string{"1"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkVector(tt.v)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[vector]]\nname = \"x\"\nexponent = [\"1\"]\n"), 0o600))

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exponent")
}

func TestDeriveExponent(t *testing.T) {
	b := NewBlake2bHasher()
	s := &SHA256Hasher{}

	assert.Equal(t, deriveExponent(b, "base", "seed"), deriveExponent(b, "base", "seed"))
	assert.NotEqual(t, deriveExponent(b, "base", "seed"), deriveExponent(b, "base", "other"))
	assert.NotEqual(t, deriveExponent(b, "base", "seed"), deriveExponent(b, "exp", "seed"))
	assert.NotEqual(t, deriveExponent(b, "base", "seed"), deriveExponent(s, "base", "seed"))

	h, err := hasherFor("")
	require.NoError(t, err)
	assert.IsType(t, &Blake2bHasher{}, h)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)

	_, err = newLogger(&bytes.Buffer{}, "warn", "xml")
	assert.Error(t, err)

	var buf bytes.Buffer
	logger, err := newLogger(&buf, "", "")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestGroupNames(t *testing.T) {
	assert.Equal(t, []string{"babyjubjub", "bn254-g1", "fr-add", "fr-mul", "secp256k1", "zn"}, groupNames())
}
