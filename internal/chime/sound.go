package chime

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/wav"
)

const (
	clickDuration = 0.025
	clickFreq     = 2200.0
)

// synthClick returns a short decaying sine burst as 16-bit stereo PCM.
func synthClick() []byte {
	frames := int(math.Floor(clickDuration * sampleRate))
	out := make([]byte, frames*channelCount*bitDepth)
	for i := range frames {
		t := float64(i) / sampleRate
		env := math.Exp(-t * 220)
		v := int16(math.Sin(2*math.Pi*clickFreq*t) * env * 0.8 * math.MaxInt16)
		for ch := range channelCount {
			off := (i*channelCount + ch) * bitDepth
			binary.LittleEndian.PutUint16(out[off:], uint16(v))
		}
	}
	return out
}

// decodeWAV reads a PCM WAV file and converts it to 16-bit stereo at the
// output sample rate.
func decodeWAV(r io.ReadSeeker) ([]byte, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("invalid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	depth := int(dec.BitDepth)
	rate := int(dec.SampleRate)
	if channels < 1 || rate < 1 {
		return nil, errors.New("WAV file has no audio")
	}
	if depth != 8 && depth != 16 && depth != 24 && depth != 32 {
		return nil, fmt.Errorf("unsupported bit depth %d", depth)
	}

	srcFrames := len(buf.Data) / channels
	if srcFrames == 0 {
		return nil, errors.New("WAV file has no audio")
	}
	frames := int(int64(srcFrames) * sampleRate / int64(rate))
	out := make([]byte, frames*channelCount*bitDepth)
	for i := range frames {
		src := int(int64(i) * int64(rate) / sampleRate)
		for ch := range channelCount {
			sc := ch
			if sc >= channels {
				sc = channels - 1
			}
			v := to16(buf.Data[src*channels+sc], depth)
			off := (i*channelCount + ch) * bitDepth
			binary.LittleEndian.PutUint16(out[off:], uint16(v))
		}
	}
	return out, nil
}

func to16(v, depth int) int16 {
	switch depth {
	case 8:
		return int16((v - 128) << 8)
	case 24:
		return int16(v >> 8)
	case 32:
		return int16(v >> 16)
	default:
		return int16(v)
	}
}
