package core

// Pixel is the wire payload delivered by the path tracer driver: an
// image-space position and its quantized color.
type Pixel struct {
	Position [2]uint32
	Color    [4]byte
}
