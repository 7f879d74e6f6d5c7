package group_test

import (
	"go/build"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selectedFiles returns the non-test Go files of this package that the
// given build tags select.
func selectedFiles(t *testing.T, tags ...string) []string {
	t.Helper()
	ctx := build.Default
	ctx.BuildTags = tags
	pkg, err := ctx.ImportDir(".", 0)
	require.NoError(t, err)
	return pkg.GoFiles
}

func variantFiles(files []string) []string {
	var variants []string
	for _, f := range files {
		if strings.HasPrefix(f, "operate") || f == "conflict.go" {
			variants = append(variants, f)
		}
	}
	return variants
}

func TestBuildTagVariants(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"Default", nil, "operate.go"},
		{"ConstantTime", []string{"constanttime"}, "operate_consttime.go"},
		{"WinterCompatibility", []string{"winter_compatibility"}, "operate_compat.go"},
		{"WinterMath", []string{"winter_math"}, "operate_compat.go"},
		{"MidenCore", []string{"miden_core"}, "operate_compat.go"},
		{"AllCompatibility", []string{"winter_compatibility", "winter_math", "miden_core"}, "operate_compat.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, variantFiles(selectedFiles(t, tt.tags...)))
		})
	}
}

func TestBuildTagConflict(t *testing.T) {
	for _, compat := range []string{"winter_compatibility", "winter_math", "miden_core"} {
		t.Run(compat, func(t *testing.T) {
			assert.Equal(t, []string{"conflict.go"}, variantFiles(selectedFiles(t, "constanttime", compat)))
		})
	}
}
