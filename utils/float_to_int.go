// SPDX-License-Identifier: EPL-2.0

// Package utils holds sample conversions shared by the encoders.
package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 inside int16
	return int16(x * 32767.0)
}

// ToPCM16 converts src into dst as 16-bit values held in ints, the layout
// go-audio buffers use. It returns the count converted, min(len(dst), len(src)).
func ToPCM16(dst []int, src []float32) int {
	n := min(len(dst), len(src))
	for i, v := range src[:n] {
		dst[i] = int(Float32ToInt16(v))
	}
	return n
}
