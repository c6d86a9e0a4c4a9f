package debayer

// ColorCorrect applies gray-world white balance to a RAW8 Bayer frame in
// place. Red and blue are scaled so their means match the green mean.
// See E. Y. Lam, "Combining gray world and retinex theory for automatic
// white balance in digital photography", ISCE 2005.
func ColorCorrect(raw []byte, width, height int) error {
	gains, err := GrayWorldGains(raw, width, height)
	if err != nil {
		return err
	}
	return ApplyGains(raw, width, height, gains)
}

// GrayWorldGains estimates the white balance gains of a frame. Channels with
// a zero mean keep a gain of 1, and a frame without green signal yields
// IdentityGains.
func GrayWorldGains(raw []byte, width, height int) (Gains, error) {
	if err := checkFrame(len(raw), width, height); err != nil {
		return IdentityGains, err
	}

	var sums, counts [4]uint64
	for y := 0; y < height; y++ {
		row := raw[y*width : (y+1)*width]
		for x, v := range row {
			role := RoleAt(x, y)
			sums[role] += uint64(v)
			counts[role]++
		}
	}

	meanR := mean(sums[RoleRed], counts[RoleRed])
	meanG := mean(sums[RoleGreenRed]+sums[RoleGreenBlue], counts[RoleGreenRed]+counts[RoleGreenBlue])
	meanB := mean(sums[RoleBlue], counts[RoleBlue])

	if meanG == 0 {
		return IdentityGains, nil
	}
	gains := IdentityGains
	if meanR > 0 {
		gains.R = meanG / meanR
	}
	if meanB > 0 {
		gains.B = meanG / meanB
	}
	return gains, nil
}

// ApplyGains scales every sample by the gain of its role, saturating at 255.
func ApplyGains(raw []byte, width, height int, gains Gains) error {
	if err := checkFrame(len(raw), width, height); err != nil {
		return err
	}
	if gains == IdentityGains {
		return nil
	}
	for y := 0; y < height; y++ {
		row := raw[y*width : (y+1)*width]
		for x, v := range row {
			row[x] = ClampFloatU8(float64(v) * gains.ForRole(RoleAt(x, y)))
		}
	}
	return nil
}

func mean(sum, count uint64) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
