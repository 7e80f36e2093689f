// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrFull           = errors.New("command channel is full")
	ErrDisconnected   = errors.New("command channel is disconnected")
	ErrBufferMismatch = errors.New("buffers must all have the same length")
	ErrUnknownChannel = errors.New("unknown channel")
)
