// SPDX-License-Identifier: EPL-2.0

// Package wav decodes integer PCM WAV decks and encodes the busmix output.
// Both sides are built on github.com/go-audio/wav.
//
// # Decoding
//
//	file, _ := os.Open("deck_a.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
// 16, 24 and 32-bit integer PCM are read, at any rate and channel count.
// Samples come out as float32 in [-1.0, 1.0). A reader that cannot seek
// is buffered in memory first, since the WAV chunks are located by seeking.
//
// # Encoding
//
//	out, _ := os.Create("mix.wav")
//	frames, err := wav.Encode(out, mix, 2048)
//
// Encode writes 16-bit PCM and clamps samples outside [-1, 1].
//
// # Errors
//
//   - ErrNotWavFile: no RIFF/WAVE header
//   - ErrOnlyPCMSupported: float or compressed data
//   - ErrUnsupportedBitDepth: 8-bit or odd depths
//   - ErrUnsupportedWavLayout: no usable fmt chunk
package wav
