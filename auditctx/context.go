package auditctx

import (
	"context"
	"sync"

	"github.com/unkn0wn-root/textwire"
)

// Context is the per-operation layer of the audit context. Its entries
// shadow the global table on read. Safe for concurrent use.
type Context struct {
	mu sync.Mutex
	m  map[string]Entry
}

func New() *Context {
	return &Context{m: make(map[string]Entry, 4)}
}

// Put stores a literal value.
func (c *Context) Put(key, value string) { c.PutEntry(key, Literal(value)) }

// PutLazy stores a supplier evaluated on every read.
func (c *Context) PutLazy(key string, fn func() string) { c.PutEntry(key, Lazy(fn)) }

func (c *Context) PutEntry(key string, e Entry) {
	c.mu.Lock()
	c.m[key] = e
	c.mu.Unlock()
}

// Get evaluates the entry for key, falling back to the global table when
// the context has none. Missing everywhere => "".
func (c *Context) Get(key string) string {
	c.mu.Lock()
	e, ok := c.m[key]
	c.mu.Unlock()
	if ok {
		return e.Value()
	}
	if v, ok := GetGlobal(key); ok {
		return v
	}
	return ""
}

// Has reports whether the context itself holds key, ignoring the global
// table.
func (c *Context) Has(key string) bool {
	c.mu.Lock()
	_, ok := c.m[key]
	c.mu.Unlock()
	return ok
}

func (c *Context) Remove(key string) {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
}

// Reset drops every context entry. Global entries are untouched.
func (c *Context) Reset() {
	c.mu.Lock()
	c.m = make(map[string]Entry, 4)
	c.mu.Unlock()
}

// Entries returns the merged, evaluated view: global entries overlaid by
// context entries. Suppliers run outside the locks.
func (c *Context) Entries() map[string]string {
	out := GlobalEntries()

	c.mu.Lock()
	local := make(map[string]Entry, len(c.m))
	for k, e := range c.m {
		local[k] = e
	}
	c.mu.Unlock()

	for k, e := range local {
		out[k] = e.Value()
	}
	return out
}

// Fields adapts the merged view for a textwire.Logger.
func (c *Context) Fields() textwire.Fields {
	m := c.Entries()
	f := make(textwire.Fields, len(m))
	for k, v := range m {
		f[k] = v
	}
	return f
}

type ctxKey struct{}

// Into returns a derived context.Context carrying c.
func Into(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// From returns the audit Context carried by ctx, or a fresh one when ctx
// carries none.
func From(ctx context.Context) *Context {
	if c, ok := ctx.Value(ctxKey{}).(*Context); ok {
		return c
	}
	return New()
}
