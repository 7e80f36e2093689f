// SPDX-License-Identifier: EPL-2.0

package live

import "errors"

var (
	ErrUnknownLatency = errors.New("latency must be low or high")
	ErrNoDevice       = errors.New("no default audio device")
)
