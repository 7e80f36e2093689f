// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrNotStereo          = errors.New("render input is not stereo")
	ErrSampleRateMismatch = errors.New("render inputs differ in sample rate")
)
