//go:build !amd64

package bigmath

// CPUFeatures holds detected CPU feature flags relevant to big-integer
// arithmetic throughput. On non-amd64 platforms no flags are detected.
type CPUFeatures struct {
	BMI2 bool
	ADX  bool
	AVX2 bool
}

// GetCPUFeatures returns an empty feature set on non-amd64 platforms.
func GetCPUFeatures() CPUFeatures {
	return CPUFeatures{}
}

// String returns a human-readable summary of CPU features.
func (f CPUFeatures) String() string {
	return "No SIMD features detected"
}
