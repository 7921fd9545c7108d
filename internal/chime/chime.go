// Package chime plays a short tick each time the second hand steps.
package chime

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
)

// Ticker emits an audible tick.
type Ticker interface {
	Tick()
	Close() error
}

// Nop is a silent Ticker.
type Nop struct{}

func (Nop) Tick()        {}
func (Nop) Close() error { return nil }

// Options configures a Player.
type Options struct {
	// Sample is an optional WAV file; the built-in click is used when empty.
	Sample string
	Volume float64
}

// Player plays the tick sound through the default audio device.
type Player struct {
	ctx    *oto.Context
	pcm    []byte
	volume float64

	mu      sync.Mutex
	playing []*oto.Player
	closed  bool
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// New opens the audio device and prepares the tick sound.
func New(opts Options) (*Player, error) {
	pcm := synthClick()
	if opts.Sample != "" {
		f, err := os.Open(opts.Sample)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if pcm, err = decodeWAV(f); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.Sample, err)
		}
	}

	ctx, err := initOto()
	if err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	return &Player{ctx: ctx, pcm: pcm, volume: opts.Volume}, nil
}

// Tick starts playing the tick sound. Overlapping ticks mix.
func (p *Player) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	active := p.playing[:0]
	for _, op := range p.playing {
		if op.IsPlaying() {
			active = append(active, op)
		}
	}
	p.playing = active

	op := p.ctx.NewPlayer(bytes.NewReader(p.pcm))
	op.SetVolume(p.volume)
	op.Play()
	p.playing = append(p.playing, op)
}

// Close stops any tick in progress.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	var firstErr error
	for _, op := range p.playing {
		if err := op.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.playing = nil
	return firstErr
}
