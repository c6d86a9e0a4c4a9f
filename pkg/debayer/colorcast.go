package debayer

import "math"

const (
	zoneEdgeFraction = 0.25
	// Below this size a zone holds too few complete Bayer tiles to compare.
	minZoneExtent = 4
)

var zoneLabels = map[ZonePosition]string{
	ZoneTopLeft:     "TL",
	ZoneTop:         "T",
	ZoneTopRight:    "TR",
	ZoneLeft:        "L",
	ZoneCenter:      "Center",
	ZoneRight:       "R",
	ZoneBottomLeft:  "BL",
	ZoneBottom:      "B",
	ZoneBottomRight: "BR",
}

var zoneGrid = [3][3]ZonePosition{
	{ZoneTopLeft, ZoneTop, ZoneTopRight},
	{ZoneLeft, ZoneCenter, ZoneRight},
	{ZoneBottomLeft, ZoneBottom, ZoneBottomRight},
}

// AnalyzeColorCast divides a RAW8 Bayer frame into a 3x3 grid and computes
// per-zone channel means and R/G, B/G ratios. CastPct is the largest
// deviation of any zone ratio from the frame-wide ratio, so a uniform cast
// (fixable by white balance) scores 0 while vignetting tint does not.
func AnalyzeColorCast(raw []byte, width, height int) (*ColorCastAnalysis, error) {
	gains, err := GrayWorldGains(raw, width, height)
	if err != nil {
		return nil, err
	}

	xBounds, yBounds := zoneBounds(width, height)

	type acc struct{ sum, count [3]uint64 }
	var accs [3][3]acc
	for y := 0; y < height; y++ {
		row := classifyBand(y, yBounds)
		for x, v := range raw[y*width : (y+1)*width] {
			col := classifyBand(x, xBounds)
			ch := channelOf(RoleAt(x, y))
			accs[row][col].sum[ch] += uint64(v)
			accs[row][col].count[ch]++
		}
	}

	result := &ColorCastAnalysis{
		Zones: make(map[ZonePosition]ZoneData),
		Gains: gains,
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			a := accs[row][col]
			pos := zoneGrid[row][col]
			z := ZoneData{
				Label: zoneLabels[pos],
				MeanR: mean(a.sum[0], a.count[0]),
				MeanG: mean(a.sum[1], a.count[1]),
				MeanB: mean(a.sum[2], a.count[2]),
			}
			if z.MeanG > 0 {
				z.RatioRG = z.MeanR / z.MeanG
				z.RatioBG = z.MeanB / z.MeanG
			}
			result.Zones[pos] = z
		}
	}

	var total acc
	for row := range accs {
		for col := range accs[row] {
			for ch := 0; ch < 3; ch++ {
				total.sum[ch] += accs[row][col].sum[ch]
				total.count[ch] += accs[row][col].count[ch]
			}
		}
	}
	frameG := mean(total.sum[1], total.count[1])
	if frameG == 0 {
		return result, nil
	}
	frameRG := mean(total.sum[0], total.count[0]) / frameG
	frameBG := mean(total.sum[2], total.count[2]) / frameG

	worst := ZoneCenter
	worstDev := -1.0
	for pos, z := range result.Zones {
		if z.MeanG == 0 {
			continue
		}
		dev := math.Max(relativeDeviation(z.RatioRG, frameRG), relativeDeviation(z.RatioBG, frameBG))
		if dev > worstDev || (dev == worstDev && pos < worst) {
			worstDev = dev
			worst = pos
		}
	}
	if worstDev >= 0 {
		result.CastPct = worstDev * 100
		result.WorstZone = zoneLabels[worst]
	}

	result.Reliable = worstDev >= 0 &&
		xBounds[0] >= minZoneExtent && xBounds[1]-xBounds[0] >= minZoneExtent && width-xBounds[1] >= minZoneExtent &&
		yBounds[0] >= minZoneExtent && yBounds[1]-yBounds[0] >= minZoneExtent && height-yBounds[1] >= minZoneExtent

	return result, nil
}

// zoneBounds returns the lower and upper split coordinates of each axis.
func zoneBounds(width, height int) ([2]int, [2]int) {
	return [2]int{int(float64(width) * zoneEdgeFraction), int(float64(width) * (1 - zoneEdgeFraction))},
		[2]int{int(float64(height) * zoneEdgeFraction), int(float64(height) * (1 - zoneEdgeFraction))}
}

func classifyBand(v int, bounds [2]int) int {
	switch {
	case v < bounds[0]:
		return 0
	case v < bounds[1]:
		return 1
	default:
		return 2
	}
}

func relativeDeviation(v, ref float64) float64 {
	if ref == 0 {
		return math.Abs(v)
	}
	return math.Abs(v-ref) / ref
}
