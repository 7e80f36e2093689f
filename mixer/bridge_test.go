// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(rx *Receiver) []Command {
	return slices.Collect(rx.Drain())
}

func TestNewBridge_DefaultCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -3} {
		_, rx := NewBridge(capacity)
		assert.Equal(t, DefaultCapacity, rx.Cap())
	}

	_, rx := NewBridge(3)
	assert.Equal(t, 3, rx.Cap())
}

func TestBridge_DrainEmpty(t *testing.T) {
	t.Parallel()

	_, rx := NewBridge(DefaultCapacity)

	done := make(chan []Command)
	go func() { done <- collect(rx) }()

	select {
	case got := <-done:
		assert.Empty(t, got)
	case <-time.After(time.Second):
		t.Fatal("Drain() blocked on an empty channel")
	}
}

func TestBridge_CapacityAndFIFO(t *testing.T) {
	t.Parallel()

	tx, rx := NewBridge(DefaultCapacity)

	for i := range DefaultCapacity {
		require.NoError(t, tx.TrySend(Volume(ALeft, float32(i))))
	}
	require.ErrorIs(t, tx.TrySend(Volume(ALeft, 99)), ErrFull)

	got := collect(rx)
	require.Len(t, got, DefaultCapacity)
	for i, cmd := range got {
		assert.Equal(t, float32(i), cmd.Value(), "command %d out of order", i)
	}

	assert.Zero(t, rx.Len())
	assert.NoError(t, tx.TrySend(Crossfade(0.5)), "space must be available after drain")
}

func TestBridge_DrainIsBounded(t *testing.T) {
	t.Parallel()

	tx, rx := NewBridge(4)
	for range 2 {
		require.NoError(t, tx.TrySend(Crossfade(0)))
	}

	n := 0
	for range rx.Drain() {
		// Enqueue more while the sequence runs; those belong to the next drain.
		_ = tx.TrySend(Crossfade(1))
		n++
	}
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, rx.Len())
}

func TestBridge_DrainEarlyStop(t *testing.T) {
	t.Parallel()

	tx, rx := NewBridge(4)
	for i := range 3 {
		require.NoError(t, tx.TrySend(Crossfade(float32(i))))
	}

	for cmd := range rx.Drain() {
		assert.Equal(t, float32(0), cmd.Value())
		break
	}

	got := collect(rx)
	require.Len(t, got, 2)
	assert.Equal(t, float32(1), got[0].Value())
}

func TestBridge_Disconnected(t *testing.T) {
	t.Parallel()

	tx, rx := NewBridge(2)
	require.NoError(t, tx.TrySend(Crossfade(0.25)))

	rx.Close()
	rx.Close() // idempotent
	assert.True(t, rx.Closed())

	assert.ErrorIs(t, tx.TrySend(Crossfade(0)), ErrDisconnected)
	assert.ErrorIs(t, tx.Send(context.Background(), Crossfade(0)), ErrDisconnected)

	// Already queued commands survive the close.
	got := collect(rx)
	require.Len(t, got, 1)
	assert.Equal(t, float32(0.25), got[0].Value())
}

func TestSender_Zero(t *testing.T) {
	t.Parallel()

	var tx Sender
	assert.ErrorIs(t, tx.TrySend(Crossfade(0)), ErrDisconnected)
	assert.ErrorIs(t, tx.Send(context.Background(), Crossfade(0)), ErrDisconnected)
}

func TestSender_SendBlocksUntilDrained(t *testing.T) {
	t.Parallel()

	tx, rx := NewBridge(1)
	require.NoError(t, tx.TrySend(Volume(BLeft, 0.1)))

	sent := make(chan error, 1)
	go func() { sent <- tx.Send(context.Background(), Volume(BLeft, 0.2)) }()

	select {
	case err := <-sent:
		t.Fatalf("Send() returned %v on a full channel", err)
	case <-time.After(20 * time.Millisecond):
	}

	first := collect(rx)
	require.Len(t, first, 1)
	require.NoError(t, <-sent)

	second := collect(rx)
	require.Len(t, second, 1)
	assert.Equal(t, float32(0.2), second[0].Value())
}

func TestSender_SendContextCancel(t *testing.T) {
	t.Parallel()

	tx, _ := NewBridge(1)
	require.NoError(t, tx.TrySend(Crossfade(0)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, tx.Send(ctx, Crossfade(1)), context.DeadlineExceeded)
}

func TestSender_SendUnblocksOnClose(t *testing.T) {
	t.Parallel()

	tx, rx := NewBridge(1)
	require.NoError(t, tx.TrySend(Crossfade(0)))

	sent := make(chan error, 1)
	go func() { sent <- tx.Send(context.Background(), Crossfade(1)) }()

	time.Sleep(10 * time.Millisecond)
	rx.Close()

	select {
	case err := <-sent:
		assert.ErrorIs(t, err, ErrDisconnected)
	case <-time.After(time.Second):
		t.Fatal("Send() did not return after Close()")
	}
}

func TestBridge_ConcurrentProducers(t *testing.T) {
	t.Parallel()

	const (
		producers = 5
		perSender = 200
	)

	tx, rx := NewBridge(DefaultCapacity)

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(tx Sender, p int) {
			defer wg.Done()
			for i := range perSender {
				// Blocking send: no overflow loss, all must arrive.
				err := tx.Send(context.Background(), Volume(Channel(p%4), float32(p*perSender+i)))
				if err != nil {
					t.Errorf("Send() error = %v", err)
					return
				}
			}
		}(tx, p)
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	seen := make(map[float32]int)
	last := make(map[int]float32)
	consume := func() {
		for cmd := range rx.Drain() {
			v := cmd.Value()
			seen[v]++
			p := int(v) / perSender
			if prev, ok := last[p]; ok && v <= prev {
				t.Errorf("producer %d: %v delivered after %v", p, v, prev)
			}
			last[p] = v
		}
	}

loop:
	for {
		select {
		case <-finished:
			break loop
		default:
			consume()
		}
	}
	consume()

	assert.Len(t, seen, producers*perSender)
	for v, n := range seen {
		if n != 1 {
			t.Errorf("command %v delivered %d times", v, n)
		}
	}
}

func BenchmarkSender_TrySend(b *testing.B) {
	tx, rx := NewBridge(DefaultCapacity)
	cmd := Volume(ALeft, 0.5)

	b.ReportAllocs()

	for b.Loop() {
		if tx.TrySend(cmd) == ErrFull {
			for range rx.Drain() {
			}
		}
	}
}
