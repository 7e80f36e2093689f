// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Stereo presents a mono or stereo Source as two interleaved channels.
// Mono frames are copied to both sides; stereo passes through untouched.
type Stereo struct {
	src Source
	tmp []float32
}

func NewStereo(src Source) (*Stereo, error) {
	switch src.Channels() {
	case 1, 2:
	default:
		return nil, fmt.Errorf("%w: got %d channels", ErrUnsupportedChannels, src.Channels())
	}

	return &Stereo{src: src}, nil
}

func (s *Stereo) SampleRate() int { return s.src.SampleRate() }
func (s *Stereo) Channels() int   { return 2 }
func (s *Stereo) BufSize() int    { return s.src.BufSize() }

func (s *Stereo) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("stereo: %w", err)
	}
	return nil
}

// ReadSamples fills dst with L/R pairs. len(dst) must be even.
func (s *Stereo) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.src.Channels() == 2 {
		return s.src.ReadSamples(dst)
	}

	frames := len(dst) / 2
	if cap(s.tmp) < frames {
		s.tmp = make([]float32, frames)
	}
	s.tmp = s.tmp[:frames]

	n, err := s.src.ReadSamples(s.tmp)
	if n == 0 {
		return 0, err
	}

	for f, v := range s.tmp[:n] {
		dst[f<<1] = v
		dst[f<<1+1] = v
	}

	return n * 2, err
}
