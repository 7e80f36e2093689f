// SPDX-License-Identifier: EPL-2.0

// Package busmix mixes two stereo buses, A and B, into one stereo output.
//
// The mixing itself lives in the mixer subpackage: a realtime safe Engine
// fed by a bounded command bridge. Control surfaces hold a Sender and move
// the faders; the audio side drains the Receiver at the top of every
// buffer:
//
//	left  = a_left*gain(a_left)  + b_left*gain(b_left)
//	right = a_right*gain(a_right) + b_right*gain(b_right)
//
// Backends drive the engine:
//   - live: a PortAudio duplex stream with four input ports
//   - render: two decoded files, pulled block by block
//
// This package ties the file backend together. NewMix adapts two decoded
// decks to stereo and wraps them in a render.MixSource; MixToWAV drains
// that mix into a 16-bit WAV file.
//
//	tx, rx := mixer.NewBridge(mixer.DefaultCapacity)
//	engine := mixer.NewEngine(rx)
//	_ = tx.TrySend(mixer.Volume(mixer.BLeft, 0.5))
//
//	out, _ := os.Create("mix.wav")
//	frames, err := busmix.MixToWAV(out, deckA, deckB, engine, 1024)
//
// Supported input formats are WAV, AIFF, MP3 and Ogg Vorbis, see the
// formats subpackages.
package busmix
