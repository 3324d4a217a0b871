package kde

import (
	"strconv"
	"strings"
)

// ViolinSettings places a violin outline in screen coordinates.
type ViolinSettings struct {
	// CenterX is the horizontal center of the violin.
	CenterX float64
	// MaxWidth is the full width at the density peak.
	MaxWidth float64
	// YScale maps a sample value to a vertical coordinate. Nil means identity.
	YScale func(float64) float64
}

// ViolinPath holds SVG path data for a violin shape.
type ViolinPath struct {
	// Right is the outline of the right half, from the first grid point to the last.
	Right string `json:"right"`
	// Left is the outline of the left half, from the first grid point to the last.
	Left string `json:"left"`
	// Combined is the closed outline: right half forward, left half reversed.
	Combined string `json:"combined"`
}

// CreateViolinPath converts a density curve into violin outlines.
//
// Densities are normalized to [0, 1] and each grid point is offset by
// ±density*MaxWidth/2 around CenterX. Grid points whose scaled y is not finite are
// skipped. Coordinates are written with two decimals. Empty input yields empty strings.
func CreateViolinPath(points []Point, settings ViolinSettings) ViolinPath {
	if len(points) == 0 {
		return ViolinPath{}
	}
	yScale := settings.YScale
	if yScale == nil {
		yScale = func(v float64) float64 { return v }
	}

	norm := Normalize(points)
	half := settings.MaxWidth / 2

	type vertex struct{ x, y float64 }
	right := make([]vertex, 0, len(norm))
	left := make([]vertex, 0, len(norm))
	for _, p := range norm {
		y := yScale(p.X)
		if !isFinite(y) {
			continue
		}
		offset := p.Density * half
		right = append(right, vertex{settings.CenterX + offset, y})
		left = append(left, vertex{settings.CenterX - offset, y})
	}
	if len(right) == 0 {
		return ViolinPath{}
	}

	var rb, lb, cb strings.Builder
	for i, v := range right {
		writeVertex(&rb, i == 0, v.x, v.y)
		writeVertex(&cb, i == 0, v.x, v.y)
	}
	for i, v := range left {
		writeVertex(&lb, i == 0, v.x, v.y)
	}
	for i := len(left) - 1; i >= 0; i-- {
		writeVertex(&cb, false, left[i].x, left[i].y)
	}
	cb.WriteString("Z")

	return ViolinPath{Right: rb.String(), Left: lb.String(), Combined: cb.String()}
}

func writeVertex(b *strings.Builder, first bool, x, y float64) {
	if first {
		b.WriteByte('M')
	} else {
		b.WriteByte('L')
	}
	b.WriteString(strconv.FormatFloat(x, 'f', 2, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(y, 'f', 2, 64))
}
