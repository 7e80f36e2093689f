// SPDX-License-Identifier: EPL-2.0

// Package audio holds the file side primitives of busmix: the Source
// interface every decoder returns, the decoder Registry and the Stereo
// adapter that the offline renderer reads decks through.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1.0, 1.0]. ReadSamples returns the
// number of float32 values written, and io.EOF once the stream is over. A
// final read may return both data and io.EOF, so always consume n first.
//
// # Stereo
//
// The mixer works on L/R pairs. NewStereo copies a mono deck to both sides
// and passes a stereo deck through; anything wider is rejected with
// ErrUnsupportedChannels.
//
//	deck, err := audio.NewStereo(src)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("deck_a.wav")
//
// Format keys are case insensitive.
package audio
