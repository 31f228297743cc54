package render3d

// Color is an RGBA color with channels in [0,1]
type Color struct {
	R, G, B, A float32
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// Gray returns a flat gray of intensity v.
func Gray(v, alpha float32) Color { return Color{v, v, v, alpha} }

// channelByte truncates a [0,1] channel to a byte, saturating outside the range.
func channelByte(c float32) byte {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return byte(c * 255)
}
