package gamma

// Lookup tables for the 8-bit hot path. Per-pixel framebuffer stores and
// blend reads cannot afford math32.Pow, so both directions are
// precomputed: 256 entries for decoding bytes, and a 12-bit table plus a
// threshold correction for encoding.

// decodeLUT maps an sRGB byte to linear float32.
var decodeLUT [256]float32

// encodeLUT maps a linear value quantized to 12 bits to a candidate
// sRGB byte. The quantization can shift the result by one step in the
// dark segment, where the curve's slope (12.92) makes a 1/4095 change
// in linear space worth almost half a byte step in sRGB space.
var encodeLUT [4096]uint8

// encodeMin[v] is the smallest linear value whose encoded sRGB form
// rounds to the byte v. EncodeByte settles the LUT candidate against
// these thresholds, so its result matches rounding the exact curve.
var encodeMin [256]float32

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = Decode(float32(i) / 255.0)
	}
	for i := range encodeLUT {
		s := Encode(float32(i) / 4095.0)
		v := int(s*255.0 + 0.5)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		encodeLUT[i] = uint8(v)
	}
	for v := 1; v < 256; v++ {
		encodeMin[v] = Decode((float32(v) - 0.5) / 255.0)
	}
}

// DecodeByte converts an sRGB byte to linear float32 via table lookup.
func DecodeByte(s uint8) float32 {
	return decodeLUT[s]
}

// EncodeByte converts a linear float32 to an sRGB byte. The input is
// clamped to [0,1]. The result equals encoding l exactly and rounding
// to 8 bits, so both framebuffer formats store the same byte for the
// same color.
func EncodeByte(l float32) uint8 {
	if l <= 0 {
		return 0
	}
	if l >= 1 {
		return 255
	}
	v := encodeLUT[int(l*4095.0+0.5)]
	if v < 255 && l >= encodeMin[v+1] {
		v++
	}
	if v > 0 && l < encodeMin[v] {
		v--
	}
	return v
}
