package slug

import (
	"context"
	"strings"
	"sync"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/slug/tidy"
)

// Case selects the direction of a case fold.
type Case int8

// Case folding directions.
const (
	Lower Case = iota
	Upper
)

// Backend bundles the Unicode primitives the slug pipeline delegates to:
// byte-encoding repair, canonical composition and case folding. Selecting a
// backend does not change the documented contract of any Slug operation,
// only its implementation strategy and platform dependencies.
//
// Implementations must be safe for concurrent use; a single backend instance
// is shared by every Slug constructed with it.
type Backend interface {
	Tidy(b []byte) string         // repair to well-formed UTF-8, must not fail
	Compose(s string) string      // Unicode canonical composition (NFC)
	Fold(s string, c Case) string // Unicode-aware case conversion
}

var backendMutex sync.RWMutex
var defaultBackend Backend = newTextBackend()

// UseBackend installs b as the process-wide default backend used by
// FromString and FromBytes. Intended to be called once at startup; a nil
// backend is ignored. Slugs constructed earlier keep their backend.
func UseBackend(b Backend) {
	if b == nil {
		return
	}
	backendMutex.Lock()
	defaultBackend = b
	backendMutex.Unlock()
}

// CurrentBackend returns the process-wide default backend.
func CurrentBackend() Backend {
	backendMutex.RLock()
	defer backendMutex.RUnlock()
	return defaultBackend
}

// --- Default backend -------------------------------------------------------

// textBackend is the default Backend, built on golang.org/x/text.
//
// Casers from x/text/cases carry internal state and may not be shared
// between goroutines. Folding is a hot path and casers are short-lived,
// so we pool them instead of allocating one per call.
type textBackend struct {
	lower *pool.ObjectPool
	upper *pool.ObjectPool
	ctx   context.Context
}

// NewTextBackend returns a backend built on golang.org/x/text: tidying via
// the CP1252/Latin-1 tables of x/text/encoding/charmap, composition via
// x/text/unicode/norm and case folding via x/text/cases. This is the
// backend installed at process start.
func NewTextBackend() Backend {
	return newTextBackend()
}

func newTextBackend() *textBackend {
	b := &textBackend{ctx: context.Background()}
	b.lower = newCaserPool(b.ctx, func() cases.Caser {
		return cases.Lower(language.Und)
	})
	b.upper = newCaserPool(b.ctx, func() cases.Caser {
		return cases.Upper(language.Und)
	})
	return b
}

func newCaserPool(ctx context.Context, mk func() cases.Caser) *pool.ObjectPool {
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			c := mk()
			return &c, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	return pool.NewObjectPool(ctx, factory, config)
}

func (b *textBackend) Tidy(bytes []byte) string {
	return tidy.Bytes(bytes)
}

func (b *textBackend) Compose(s string) string {
	return norm.NFC.String(s)
}

func (b *textBackend) Fold(s string, c Case) string {
	p := b.lower
	if c == Upper {
		p = b.upper
	}
	o, err := p.BorrowObject(b.ctx)
	if err != nil {
		// The pool is unbounded and non-blocking, so this should not happen.
		T().Errorf("caser pool exhausted: %v", err)
		if c == Upper {
			return strings.ToUpper(s)
		}
		return strings.ToLower(s)
	}
	caser := o.(*cases.Caser)
	out := caser.String(s)
	_ = p.ReturnObject(b.ctx, caser)
	return out
}
