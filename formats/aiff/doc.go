// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF decks with github.com/go-audio/aiff.
//
//	file, _ := os.Open("deck_b.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//
// 16, 24 and 32-bit PCM is read at any rate and channel count and comes out
// as float32 in [-1.0, 1.0). AIFF is big endian and stores its rate as an
// 80-bit float; the go-audio decoder handles both.
//
// Errors:
//   - ErrNotAiffFile: no FORM/AIFF header
//   - ErrUnsupportedBitDepth: 8-bit or odd depths
//   - ErrUnsupportedAiffLayout: no usable COMM chunk
package aiff
