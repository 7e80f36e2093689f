// SPDX-License-Identifier: EPL-2.0

package control

import "errors"

var (
	ErrUnknownControl = errors.New("unknown control")
	ErrInvalidValue   = errors.New("invalid control value")
)
