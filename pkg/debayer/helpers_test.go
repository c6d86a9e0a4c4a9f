package debayer

import "math/rand"

// mosaic builds a width x height RGGB frame with one value per channel.
func mosaic(width, height int, r, g, b byte) []byte {
	raw := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch RoleAt(x, y) {
			case RoleRed:
				raw[y*width+x] = r
			case RoleBlue:
				raw[y*width+x] = b
			default:
				raw[y*width+x] = g
			}
		}
	}
	return raw
}

func uniform(width, height int, v byte) []byte {
	raw := make([]byte, width*height)
	for i := range raw {
		raw[i] = v
	}
	return raw
}

func noise(width, height int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	raw := make([]byte, width*height)
	rng.Read(raw)
	return raw
}
