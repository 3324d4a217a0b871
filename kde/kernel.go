package kde

import (
	"math"
	"strings"

	"github.com/arloliu/chartstats/stats"
)

// Kernel identifies a smoothing kernel.
type Kernel int

const (
	// Gaussian is the standard normal density.
	Gaussian Kernel = iota
	// Epanechnikov is 0.75*(1-u²) on [-1, 1].
	Epanechnikov
	// Uniform is 0.5 on [-1, 1].
	Uniform
	// Triangular is 1-|u| on [-1, 1].
	Triangular
)

// KernelFunc evaluates a kernel at the scaled distance u = (x - xi) / h.
type KernelFunc func(u float64) float64

var kernelNames = map[Kernel]string{
	Gaussian:     "gaussian",
	Epanechnikov: "epanechnikov",
	Uniform:      "uniform",
	Triangular:   "triangular",
}

var kernelFromString = map[string]Kernel{
	"gaussian":     Gaussian,
	"epanechnikov": Epanechnikov,
	"uniform":      Uniform,
	"triangular":   Triangular,
}

var kernelFuncs = map[Kernel]KernelFunc{
	Gaussian: stats.NormalPDF,
	Epanechnikov: func(u float64) float64 {
		if math.Abs(u) > 1 {
			return 0
		}
		return 0.75 * (1 - u*u)
	},
	Uniform: func(u float64) float64 {
		if math.Abs(u) > 1 {
			return 0
		}
		return 0.5
	},
	Triangular: func(u float64) float64 {
		a := math.Abs(u)
		if a > 1 {
			return 0
		}
		return 1 - a
	},
}

// String returns the literal name of the kernel.
func (k Kernel) String() string {
	if name, ok := kernelNames[k]; ok {
		return name
	}

	return "unknown"
}

// Func returns the kernel function. Unknown kernels use Gaussian.
func (k Kernel) Func() KernelFunc {
	if fn, ok := kernelFuncs[k]; ok {
		return fn
	}

	return kernelFuncs[Gaussian]
}

// KernelFromString maps a literal name to a Kernel. Unknown names fall back to Gaussian.
func KernelFromString(name string) Kernel {
	if k, ok := kernelFromString[strings.ToLower(name)]; ok {
		return k
	}

	return Gaussian
}
