package debayer

// CalculateChannelStatistics builds a 256-bucket histogram per channel of a
// RAW8 Bayer frame and derives count, mean, median and saturated samples.
// Both green roles are merged into G.
func CalculateChannelStatistics(raw []byte, width, height int) (FrameStatistics, error) {
	if err := checkFrame(len(raw), width, height); err != nil {
		return FrameStatistics{}, err
	}

	var hist [3][256]uint32
	for y := 0; y < height; y++ {
		for x, v := range raw[y*width : (y+1)*width] {
			hist[channelOf(RoleAt(x, y))][v]++
		}
	}

	return FrameStatistics{
		R: histogramStatistics(&hist[0]),
		G: histogramStatistics(&hist[1]),
		B: histogramStatistics(&hist[2]),
	}, nil
}

func channelOf(r Role) int {
	switch r {
	case RoleRed:
		return 0
	case RoleBlue:
		return 2
	default:
		return 1
	}
}

func histogramStatistics(h *[256]uint32) ChannelStatistics {
	var s ChannelStatistics
	var total uint64
	for v, n := range h {
		s.Count += int(n)
		total += uint64(v) * uint64(n)
	}
	if s.Count == 0 {
		return s
	}
	s.Mean = float64(total) / float64(s.Count)
	s.Saturated = int(h[255])

	// lower and upper middle samples; equal for odd counts
	lo, hi := (s.Count-1)/2, s.Count/2
	loVal, hiVal := -1, -1
	seen := 0
	for v, n := range h {
		seen += int(n)
		if loVal < 0 && seen > lo {
			loVal = v
		}
		if seen > hi {
			hiVal = v
			break
		}
	}
	s.Median = float64(loVal+hiVal) / 2
	return s
}
