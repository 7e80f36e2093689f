// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis decks with github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("deck_b.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// The decoder yields float32 natively, so samples pass through without
// conversion at the rate and channel count of the stream.
package vorbis
