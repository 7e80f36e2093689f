// SPDX-License-Identifier: EPL-2.0

// Package mixer is the realtime core of busmix: a two-bus stereo mixer.
//
// It has three parts:
//   - Sender / Receiver: a bounded, multi-producer single-consumer bridge
//     carrying Commands from control surfaces to the audio engine
//   - State: the four input gains plus the crossfade position
//   - Engine: the per-buffer callback that drains the bridge, updates State
//     and mixes one buffer
//
// # Bridge
//
// A bridge is created once and split into its two ends:
//
//	tx, rx := mixer.NewBridge(mixer.DefaultCapacity)
//	engine := mixer.NewEngine(rx)
//
// Sender is a plain value. Every control owns its own copy:
//
//	go func(tx mixer.Sender) {
//	    if err := tx.TrySend(mixer.Volume(mixer.BLeft, 0.0)); err != nil {
//	        // mixer.ErrFull: drop the update, the fader still shows it
//	        // mixer.ErrDisconnected: the engine is gone
//	    }
//	}(tx)
//
// # Mixing
//
// The backend calls Engine.Process once per buffer with the four input
// planes and the two output planes:
//
//	out_left[i]  = a_left[i]*gain_a_left   + b_left[i]*gain_b_left
//	out_right[i] = a_right[i]*gain_a_right + b_right[i]*gain_b_right
//
// Gains are sampled once per buffer, after the pending commands were applied,
// so a change takes effect on the next buffer boundary.
//
// # Realtime Safety
//
// Process never blocks, locks or allocates. State is owned by the goroutine
// or thread calling Process and is never shared with producers; the bridge is
// the only synchronized resource.
//
// A panic inside Process is fatal to the audio stream of that session. The
// backends in this module do not recover or retry it.
//
// # Crossfade
//
// Crossfade commands are accepted and stored in State.Crossfade, but the
// mixing formula does not read it. This matches the behaviour of the mixer
// this package models; applying it would change the output of every existing
// configuration.
package mixer
