package export

import (
	"fmt"
	"strings"
)

// ProfileSVG draws one height profile as an SVG path over positions.
func ProfileSVG(row, positions []float64, width, height int, strokeColor string) string {
	if len(row) < 2 || len(row) != len(positions) {
		return ""
	}

	minX, maxX := positions[0], positions[len(positions)-1]
	minY, maxY := row[0], row[0]
	for _, v := range row {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range row {
		x := (positions[i] - minX) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
