package debayer

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidGeometry is returned for non-positive extents or negative offsets.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrBufferTooSmall is returned when a raw or destination buffer is shorter
	// than its geometry requires.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrCropOutOfBounds is returned when a crop window does not fit inside the
	// source frame.
	ErrCropOutOfBounds = errors.New("crop window exceeds source extents")
)

// Role is the color a Bayer site samples.
//
// RGGB layout (row-major, 0-indexed):
//
//	(even row, even col) = R
//	(even row, odd  col) = G  (Gr)
//	(odd  row, even col) = G  (Gb)
//	(odd  row, odd  col) = B
type Role int

const (
	RoleRed Role = iota
	RoleGreenRed
	RoleGreenBlue
	RoleBlue
)

// RoleAt returns the Bayer role of the site at (x, y).
func RoleAt(x, y int) Role {
	return Role((y&1)<<1 | x&1)
}

func (r Role) String() string {
	switch r {
	case RoleRed:
		return "R"
	case RoleGreenRed:
		return "Gr"
	case RoleGreenBlue:
		return "Gb"
	case RoleBlue:
		return "B"
	default:
		return "Unknown"
	}
}

// IsGreen reports whether the role samples green.
func (r Role) IsGreen() bool { return r == RoleGreenRed || r == RoleGreenBlue }

// Mode selects how a frame is converted.
type Mode string

const (
	ModeBilinear    Mode = "bilinear"
	ModePassthrough Mode = "passthrough"
)

// Window is a crop rectangle in source pixel coordinates.
type Window struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// IsZero reports whether no crop was requested.
func (w Window) IsZero() bool { return w == Window{} }

// within reports whether the window lies inside a width x height frame. The
// window must already have non-negative offsets and positive extents.
func (w Window) within(width, height int) bool {
	return w.Width <= width-w.X && w.Height <= height-w.Y
}

// Rect returns the window as an image.Rectangle.
func (w Window) Rect() image.Rectangle {
	return image.Rect(w.X, w.Y, w.X+w.Width, w.Y+w.Height)
}

func (w Window) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", w.Width, w.Height, w.X, w.Y)
}

// Gains holds the per-channel multipliers of a white balance pass.
type Gains struct {
	R float64
	G float64
	B float64
}

// IdentityGains leaves every sample unchanged.
var IdentityGains = Gains{R: 1, G: 1, B: 1}

// ForRole returns the gain applied to a site with the given role.
func (g Gains) ForRole(r Role) float64 {
	switch r {
	case RoleRed:
		return g.R
	case RoleBlue:
		return g.B
	default:
		return g.G
	}
}

func (g Gains) String() string {
	return fmt.Sprintf("{R=%f, G=%f, B=%f}", g.R, g.G, g.B)
}

// ConvertParams contains all parameters for a frame conversion.
type ConvertParams struct {
	Mode         Mode   `yaml:"mode"`
	WhiteBalance bool   `yaml:"white_balance"`
	InPlace      bool   `yaml:"in_place"`
	Crop         Window `yaml:"crop"`
}

// NewConvertParams creates a ConvertParams with default values.
func NewConvertParams() *ConvertParams {
	return &ConvertParams{
		Mode:         ModeBilinear,
		WhiteBalance: true,
		InPlace:      false,
	}
}

// Validate checks the parameters independently of any frame.
func (p *ConvertParams) Validate() error {
	switch p.Mode {
	case ModeBilinear:
	case ModePassthrough:
		if !p.Crop.IsZero() {
			return fmt.Errorf("crop is only supported in %s mode", ModeBilinear)
		}
	default:
		return fmt.Errorf("unknown mode %q", p.Mode)
	}
	if !p.Crop.IsZero() {
		if p.Crop.Width <= 0 || p.Crop.Height <= 0 || p.Crop.X < 0 || p.Crop.Y < 0 {
			return fmt.Errorf("crop %v: %w", p.Crop, ErrInvalidGeometry)
		}
	}
	return nil
}

// ChannelStatistics holds per-channel statistics of a raw frame.
type ChannelStatistics struct {
	Count     int
	Mean      float64
	Median    float64
	Saturated int
}

func (s ChannelStatistics) String() string {
	return fmt.Sprintf("{Count=%d, Mean=%f, Median=%f, Saturated=%d}", s.Count, s.Mean, s.Median, s.Saturated)
}

// FrameStatistics holds per-channel statistics; both green roles are merged.
type FrameStatistics struct {
	R ChannelStatistics
	G ChannelStatistics
	B ChannelStatistics
}

// ZonePosition identifies a zone in the 3x3 frame grid.
type ZonePosition int

const (
	ZoneTopLeft ZonePosition = iota
	ZoneTop
	ZoneTopRight
	ZoneLeft
	ZoneCenter
	ZoneRight
	ZoneBottomLeft
	ZoneBottom
	ZoneBottomRight
)

// ZoneData holds per-zone channel means.
type ZoneData struct {
	Label string
	MeanR float64
	MeanG float64
	MeanB float64
	// RatioRG and RatioBG are R/G and B/G; 0 when the zone has no green signal.
	RatioRG float64
	RatioBG float64
}

// ColorCastAnalysis holds the result of the 3x3 color cast analysis.
type ColorCastAnalysis struct {
	Zones     map[ZonePosition]ZoneData
	Gains     Gains
	CastPct   float64
	WorstZone string
	Reliable  bool
}
