// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrUnsupportedChannels = errors.New("only mono and stereo sources are supported")
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrInvalidBufferSize   = errors.New("buffer size must be positive")
)
