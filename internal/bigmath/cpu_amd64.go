//go:build amd64

package bigmath

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// CPU feature flags detected at init time
var (
	// hasBMI2 indicates BMI2 support (MULX, SHRX, etc.)
	hasBMI2 bool

	// hasADX indicates ADX support (ADCX, ADOX for extended precision)
	hasADX bool

	// hasAVX2 indicates AVX2 support (256-bit SIMD)
	hasAVX2 bool

	// cpuDetectionOnce ensures CPU detection runs exactly once
	cpuDetectionOnce sync.Once
)

func init() {
	detectCPUFeatures()
}

func detectCPUFeatures() {
	cpuDetectionOnce.Do(func() {
		// BMI2 gives MULX, the main win for wide multiplication chains.
		hasBMI2 = cpu.X86.HasBMI2

		// ADX gives ADCX/ADOX (parallel carry chains).
		hasADX = cpu.X86.HasADX

		hasAVX2 = cpu.X86.HasAVX2
	})
}

// CPUFeatures holds detected CPU feature flags relevant to big-integer
// arithmetic throughput.
type CPUFeatures struct {
	BMI2 bool
	ADX  bool
	AVX2 bool
}

// GetCPUFeatures returns a summary of detected CPU features.
func GetCPUFeatures() CPUFeatures {
	return CPUFeatures{BMI2: hasBMI2, ADX: hasADX, AVX2: hasAVX2}
}

// String returns a human-readable summary of CPU features.
func (f CPUFeatures) String() string {
	features := []string{}
	if f.AVX2 {
		features = append(features, "AVX2")
	}
	if f.BMI2 {
		features = append(features, "BMI2")
	}
	if f.ADX {
		features = append(features, "ADX")
	}
	if len(features) == 0 {
		return "No SIMD features detected"
	}
	result := "CPU Features: "
	for i, name := range features {
		if i > 0 {
			result += ", "
		}
		result += name
	}
	return result
}
