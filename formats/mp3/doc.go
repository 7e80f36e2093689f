// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 decks with github.com/hajimehoshi/go-mp3.
//
//	file, _ := os.Open("deck_a.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//
// go-mp3 always produces stereo, so every source reports two channels; a
// mono file arrives with both sides equal. Samples are float32 in
// [-1.0, 1.0).
package mp3
