//go:build constanttime && (winter_compatibility || winter_math || miden_core)

package group

// The constanttime build tag cannot be combined with winter_compatibility,
// winter_math or miden_core. The declaration below does not type check.
var _ int = "build tag constanttime and the winter_compatibility, winter_math and miden_core tags are mutually exclusive"
