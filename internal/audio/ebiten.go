package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/assets"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ebiten allows exactly one audio context per process.
var (
	contextOnce   sync.Once
	sharedContext *audio.Context
)

func audioContext() *audio.Context {
	contextOnce.Do(func() {
		sharedContext = audio.NewContext(assets.SampleRate)
	})
	return sharedContext
}

// Ebiten plays sounds through the ebiten audio engine.
type Ebiten struct {
	file string // optional WAV/MP3 replacing the chime
}

type ebitenHandle struct {
	id     assets.ID
	mu     sync.Mutex
	player *audio.Player
}

func (h *ebitenHandle) Asset() assets.ID { return h.id }

// NewEbiten creates the provider. When file is set it replaces the
// synthesized chime.
func NewEbiten(file string) *Ebiten {
	return &Ebiten{file: file}
}

func (e *Ebiten) Name() string { return "chime" }

func (e *Ebiten) Load(ctx context.Context, id assets.ID) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ac := audioContext()

	if id == assets.Chime && e.file != "" {
		stream, err := decodeFile(e.file, ac.SampleRate())
		if err != nil {
			return nil, err
		}
		p, err := ac.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("create player for %s: %w", e.file, err)
		}
		return &ebitenHandle{id: id, player: p}, nil
	}

	pcm, err := assets.Bytes(id)
	if err != nil {
		return nil, err
	}
	return &ebitenHandle{id: id, player: ac.NewPlayerFromBytes(pcm)}, nil
}

func decodeFile(path string, sampleRate int) (io.ReadSeeker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", path, err)
	}
	src := bytes.NewReader(data)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, fmt.Errorf("decode wav %s: %w", path, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %s: %w", path, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
}

func (e *Ebiten) handle(h Handle) (*ebitenHandle, error) {
	eh, ok := h.(*ebitenHandle)
	if !ok || eh == nil {
		return nil, ErrForeignHandle
	}
	return eh, nil
}

func (e *Ebiten) Play(h Handle) error {
	eh, err := e.handle(h)
	if err != nil {
		return err
	}
	eh.mu.Lock()
	defer eh.mu.Unlock()
	if eh.player == nil {
		return ErrReleased
	}
	eh.player.Play()
	return nil
}

func (e *Ebiten) Replay(h Handle) error {
	eh, err := e.handle(h)
	if err != nil {
		return err
	}
	eh.mu.Lock()
	defer eh.mu.Unlock()
	if eh.player == nil {
		return ErrReleased
	}
	if err := eh.player.Rewind(); err != nil {
		return fmt.Errorf("rewind %s: %w", eh.id, err)
	}
	eh.player.Play()
	return nil
}

func (e *Ebiten) Unload(h Handle) error {
	eh, ok := h.(*ebitenHandle)
	if !ok || eh == nil {
		return nil
	}
	eh.mu.Lock()
	defer eh.mu.Unlock()
	if eh.player == nil {
		return nil
	}
	err := eh.player.Close()
	eh.player = nil
	return err
}
