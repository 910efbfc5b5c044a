package location

import "github.com/JacquysBarbosadaSilva/Trezor-app/internal/geo"

// Filter drops fixes that come too soon or moved too little since the
// last one it let through.
type Filter struct {
	opts WatchOptions
	last Fix
	has  bool
}

// NewFilter creates a filter for opts.
func NewFilter(opts WatchOptions) *Filter {
	return &Filter{opts: opts}
}

// Accept reports whether f should be delivered, and records it if so.
func (f *Filter) Accept(fix Fix) bool {
	if f.has {
		if fix.At.Sub(f.last.At) < f.opts.MinInterval {
			return false
		}
		if geo.DistanceMeters(f.last.Coordinate, fix.Coordinate) < f.opts.MinDistance {
			return false
		}
	}
	f.last = fix
	f.has = true
	return true
}
