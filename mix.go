// SPDX-License-Identifier: EPL-2.0

package busmix

import (
	"fmt"
	"io"

	"github.com/ik5/busmix/audio"
	"github.com/ik5/busmix/formats/wav"
	"github.com/ik5/busmix/mixer"
	"github.com/ik5/busmix/render"
)

// NewMix presents a and b as stereo and mixes them through engine, frames
// at a time. Closing the mix closes both decks.
func NewMix(a, b audio.Source, engine *mixer.Engine, frames int) (*render.MixSource, error) {
	if frames <= 0 {
		return nil, audio.ErrInvalidBufferSize
	}

	sa, err := audio.NewStereo(a)
	if err != nil {
		return nil, fmt.Errorf("deck a: %w", err)
	}
	sb, err := audio.NewStereo(b)
	if err != nil {
		return nil, fmt.Errorf("deck b: %w", err)
	}

	return render.NewMixSource(sa, sb, engine, frames)
}

// MixToWAV renders a and b through engine into w as 16-bit stereo PCM and
// returns the number of frames written. The decks are left open.
func MixToWAV(w io.WriteSeeker, a, b audio.Source, engine *mixer.Engine, frames int) (int, error) {
	mix, err := NewMix(a, b, engine, frames)
	if err != nil {
		return 0, err
	}
	return wav.Encode(w, mix, mix.BufSize())
}
