package audio

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/assets"
)

// Bell rings the terminal bell instead of playing audio.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

type bellHandle struct {
	id       assets.ID
	released bool
}

func (h *bellHandle) Asset() assets.ID { return h.id }

// NewBell writes BEL to out, or to stderr when out is nil.
func NewBell(out io.Writer) *Bell {
	if out == nil {
		out = os.Stderr
	}
	return &Bell{out: out}
}

func (b *Bell) Name() string { return "bell" }

func (b *Bell) Load(ctx context.Context, id assets.ID) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &bellHandle{id: id}, nil
}

func (b *Bell) Play(h Handle) error {
	bh, ok := h.(*bellHandle)
	if !ok {
		return ErrForeignHandle
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if bh.released {
		return ErrReleased
	}
	_, err := io.WriteString(b.out, "\a")
	return err
}

func (b *Bell) Replay(h Handle) error {
	return b.Play(h)
}

func (b *Bell) Unload(h Handle) error {
	bh, ok := h.(*bellHandle)
	if !ok || bh == nil {
		return nil
	}
	b.mu.Lock()
	bh.released = true
	b.mu.Unlock()
	return nil
}
