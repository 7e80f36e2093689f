// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math/bits"
	"testing"
)

// extended encodes an integer rate as an IEEE 754 80-bit float.
func extended(rate int) [10]byte {
	var b [10]byte
	p := bits.Len(uint(rate)) - 1
	binary.BigEndian.PutUint16(b[0:2], uint16(16383+p))
	binary.BigEndian.PutUint64(b[2:10], uint64(rate)<<(63-p))
	return b
}

// createAIFFFile builds a FORM/AIFF file with COMM and SSND chunks.
func createAIFFFile(sampleRate, channels, bitsPerSample int, samples []int32) []byte {
	width := bitsPerSample / 8
	frames := len(samples) / channels

	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, int16(channels))
	binary.Write(comm, binary.BigEndian, uint32(frames))
	binary.Write(comm, binary.BigEndian, int16(bitsPerSample))
	rate := extended(sampleRate)
	comm.Write(rate[:])

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(s)<<(32-bitsPerSample))
		ssnd.Write(b[:width])
	}

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestDecoder_PCM16Stereo(t *testing.T) {
	t.Parallel()

	data := createAIFFFile(44100, 2, 16, []int32{16384, -16384, 0, 32767})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	buf := make([]float32, 16)
	n, err := src.ReadSamples(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	if buf[0] != 0.5 || buf[1] != -0.5 || buf[2] != 0 {
		t.Errorf("samples = %v, want [0.5 -0.5 0 ~1]", buf[:n])
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"riff", []byte("RIFF\x24\x00\x00\x00WAVEfmt ")},
		{"text", []byte("this is plain text and not a FORM chunk")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestDecoder_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	data := createAIFFFile(8000, 1, 8, []int32{1, 2, 3, 4})

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestExtended(t *testing.T) {
	t.Parallel()

	// 44100 Hz is 400E AC44 0000 0000 0000 in every AIFF file.
	want := [10]byte{0x40, 0x0E, 0xAC, 0x44}
	if got := extended(44100); got != want {
		t.Errorf("extended(44100) = % x, want % x", got, want)
	}
}
