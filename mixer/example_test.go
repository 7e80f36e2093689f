// SPDX-License-Identifier: EPL-2.0

package mixer_test

import (
	"errors"
	"fmt"

	"github.com/ik5/busmix/mixer"
)

// Example shows one control change travelling from a producer to the
// engine and the effect on the next buffer.
func Example() {
	tx, rx := mixer.NewBridge(mixer.DefaultCapacity)
	engine := mixer.NewEngine(rx)

	buf := mixer.Buffers{
		ALeft:  []float32{0.5},
		ARight: []float32{0.5},
		BLeft:  []float32{0.25},
		BRight: []float32{0.25},
		Left:   make([]float32, 1),
		Right:  make([]float32, 1),
	}

	engine.Process(buf)
	fmt.Printf("default: L=%.2f R=%.2f\n", buf.Left[0], buf.Right[0])

	if err := tx.Volume(mixer.BLeft, 0); err != nil {
		fmt.Println("send:", err)
	}

	engine.Process(buf)
	fmt.Printf("b_left muted: L=%.2f R=%.2f\n", buf.Left[0], buf.Right[0])
	// Output:
	// default: L=0.75 R=0.75
	// b_left muted: L=0.50 R=0.75
}

// Example_overflow demonstrates the drop policy of a full bridge.
func Example_overflow() {
	tx, rx := mixer.NewBridge(2)

	for i := range 3 {
		err := tx.Crossfade(float32(i))
		if errors.Is(err, mixer.ErrFull) {
			fmt.Printf("update %d dropped\n", i)
		}
	}

	for cmd := range rx.Drain() {
		fmt.Println(cmd)
	}
	// Output:
	// update 2 dropped
	// crossfade(0.00)
	// crossfade(1.00)
}
