package debayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassthroughKeepsMosaic(t *testing.T) {
	const w, h = 4, 4
	raw := mosaic(w, h, 200, 0, 0)
	dst := make([]uint16, w*h)
	require.NoError(t, Passthrough(raw, w, h, dst))

	red := RGBToRGB565(200, 0, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if RoleAt(x, y) == RoleRed {
				assert.Equal(t, red, dst[y*w+x], "(%d,%d)", x, y)
			} else {
				assert.Zero(t, dst[y*w+x], "(%d,%d)", x, y)
			}
		}
	}
}

func TestPassthroughChannels(t *testing.T) {
	raw := mosaic(2, 2, 40, 80, 160)
	dst := make([]uint16, 4)
	require.NoError(t, Passthrough(raw, 2, 2, dst))
	assert.Equal(t, []uint16{
		RGBToRGB565(40, 0, 0), RGBToRGB565(0, 80, 0),
		RGBToRGB565(0, 80, 0), RGBToRGB565(0, 0, 160),
	}, dst)
}

func TestBilinearUniformFrame(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 2}, {3, 5}, {6, 4}, {17, 9}} {
		w, h := size[0], size[1]
		dst := make([]uint16, w*h)
		require.NoError(t, BilinearDemosaic(uniform(w, h, 123), w, h, dst))
		want := RGBToRGB565(123, 123, 123)
		for i, p := range dst {
			assert.Equal(t, want, p, "%dx%d pixel %d", w, h, i)
		}
	}
}

func TestBilinearFlatColorInterior(t *testing.T) {
	const w, h = 8, 6
	dst := make([]uint16, w*h)
	require.NoError(t, BilinearDemosaic(mosaic(w, h, 200, 100, 50), w, h, dst))

	want := RGBToRGB565(200, 100, 50)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			assert.Equal(t, want, dst[y*w+x], "(%d,%d)", x, y)
		}
	}
}

func TestBilinearEdgeReplicatesSamples(t *testing.T) {
	// At (0,0) the left and top neighbors clamp onto the red sample itself,
	// so G = (100+200+200+100)/4. The diagonals clamp to (0,0), (1,0), (0,1)
	// and (1,1), so B = (200+100+100+50)/4 = 112.
	dst := make([]uint16, 16)
	require.NoError(t, BilinearDemosaic(mosaic(4, 4, 200, 100, 50), 4, 4, dst))
	assert.Equal(t, RGBToRGB565(200, 150, 112), dst[0])
}

func TestBilinearNeighborAverages(t *testing.T) {
	// 3x3 interior blue site at (1,1); corners are red, edges green.
	raw := []byte{
		10, 20, 30,
		40, 50, 60,
		70, 80, 90,
	}
	dst := make([]uint16, 9)
	require.NoError(t, BilinearDemosaic(raw, 3, 3, dst))
	// R = (10+30+70+90)/4, G = (20+40+60+80)/4, B = 50
	assert.Equal(t, RGBToRGB565(50, 50, 50), dst[4])
	// Gr at (1,0): the upper neighbor clamps onto the site itself, so
	// B = (20+50)/2 truncated.
	assert.Equal(t, RGBToRGB565(20, 20, 35), dst[1])
}

func TestCropMatchesFullFrame(t *testing.T) {
	const w, h = 16, 12
	raw := noise(w, h, 1)
	full := make([]uint16, w*h)
	require.NoError(t, BilinearDemosaic(raw, w, h, full))

	windows := []Window{
		{X: 4, Y: 3, Width: 8, Height: 6},
		{X: 1, Y: 1, Width: 5, Height: 7},
		{X: 3, Y: 2, Width: 1, Height: 1},
		{X: 0, Y: 0, Width: w, Height: h},
		{X: 10, Y: 8, Width: 6, Height: 4},
	}
	for _, win := range windows {
		t.Run(win.String(), func(t *testing.T) {
			dst := make([]uint16, win.Width*win.Height)
			require.NoError(t, BilinearDemosaicCrop(raw, w, h, win.X, win.Y, dst, win.Width, win.Height))
			for y := 0; y < win.Height; y++ {
				for x := 0; x < win.Width; x++ {
					require.Equal(t, full[(y+win.Y)*w+x+win.X], dst[y*win.Width+x], "(%d,%d)", x, y)
				}
			}
		})
	}
}

func TestCropRejectsBadWindows(t *testing.T) {
	raw := noise(8, 6, 2)
	tests := map[string]struct {
		x, y, w, h int
		dstLen     int
		want       error
	}{
		"too wide":        {4, 0, 5, 2, 10, ErrCropOutOfBounds},
		"too tall":        {0, 3, 2, 4, 8, ErrCropOutOfBounds},
		"negative offset": {-1, 0, 2, 2, 4, ErrInvalidGeometry},
		"empty window":    {0, 0, 0, 2, 4, ErrInvalidGeometry},
		"short dst":       {0, 0, 4, 4, 15, ErrBufferTooSmall},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dst := make([]uint16, tc.dstLen)
			for i := range dst {
				dst[i] = 0xABCD
			}
			err := BilinearDemosaicCrop(raw, 8, 6, tc.x, tc.y, dst, tc.w, tc.h)
			assert.ErrorIs(t, err, tc.want)
			for _, p := range dst {
				require.Equal(t, uint16(0xABCD), p, "output written before error")
			}
		})
	}
}

func TestDemosaicPreconditions(t *testing.T) {
	dst := make([]uint16, 16)
	assert.ErrorIs(t, BilinearDemosaic(make([]byte, 15), 4, 4, dst), ErrBufferTooSmall)
	assert.ErrorIs(t, BilinearDemosaic(make([]byte, 16), 4, 4, dst[:15]), ErrBufferTooSmall)
	assert.ErrorIs(t, Passthrough(make([]byte, 16), 4, 4, dst[:3]), ErrBufferTooSmall)
	assert.ErrorIs(t, Passthrough(nil, 0, 0, nil), ErrInvalidGeometry)
	assert.ErrorIs(t, BilinearDemosaicCrop(make([]byte, 4), 4, 4, 0, 0, dst, 2, 2), ErrBufferTooSmall)
}

func TestDemosaicDoesNotModifySource(t *testing.T) {
	raw := noise(10, 10, 3)
	want := append([]byte(nil), raw...)
	dst := make([]uint16, 100)
	require.NoError(t, BilinearDemosaic(raw, 10, 10, dst))
	require.NoError(t, Passthrough(raw, 10, 10, dst))
	require.NoError(t, BilinearDemosaicCrop(raw, 10, 10, 2, 2, dst, 5, 5))
	assert.Equal(t, want, raw)
}
