// Package kde computes kernel density estimates and violin outlines.
//
// Compute evaluates
//
//	density(x) = 1/(n*h) * Σ K((x - xi) / h)
//
// on Resolution+1 evenly spaced points spanning three bandwidths beyond the data on
// each side. The bandwidth comes from Silverman's rule, Scott's rule or a literal
// value (see Bandwidth), and the kernel is one of Gaussian, Epanechnikov, Uniform or
// Triangular.
//
// CreateViolinPath turns a density curve into SVG path data for a violin plot:
//
//	points := kde.Compute(values, kde.DefaultSettings())
//	path := kde.CreateViolinPath(points, kde.ViolinSettings{
//	    CenterX:  120,
//	    MaxWidth: 60,
//	    YScale:   func(v float64) float64 { return 400 - v*10 },
//	})
//	// path.Combined is a closed outline ready for <path d="...">
package kde
