// SPDX-License-Identifier: EPL-2.0

// Package render drives a mixer.Engine from two decoded decks instead of a
// sound card. MixSource pulls both decks one block at a time, hands the
// block to the engine as planar buffers and yields the stereo result as an
// audio.Source, ready for wav.Encode or a Player.
//
// Deck A feeds bus A and deck B feeds bus B. When one deck ends first it
// is padded with silence until the other one ends too.
package render
