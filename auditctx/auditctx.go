// Package auditctx carries diagnostic key/value context for audit logging.
//
// Two layers: a process-global table populated at startup and mutable for
// the life of the process, and per-operation Context values whose entries
// shadow the global ones on read. Entries are either literal strings or
// zero-argument suppliers evaluated on every read, so callers can register
// values that track moving state without re-putting them.
package auditctx

import (
	"sync"

	"github.com/segmentio/ksuid"
)

// Well-known entry keys. The short forms match the legacy audit record
// headers these logs are joined against.
const (
	ParamCommand = "cm"
	ParamProcess = "ps"
	ParamOp      = "op"
	ParamPath    = "p1"
)

// ProcessID identifies this process in audit logs. Stored in the global
// table under ParamProcess at init.
var ProcessID = ksuid.New().String()

// Entry is one context value: literal text, or a supplier evaluated at read
// time.
type Entry struct {
	text string
	eval func() string
}

func Literal(s string) Entry      { return Entry{text: s} }
func Lazy(fn func() string) Entry { return Entry{eval: fn} }

// Value evaluates the entry.
func (e Entry) Value() string {
	if e.eval != nil {
		return e.eval()
	}
	return e.text
}

var (
	globalMu sync.RWMutex
	global   = make(map[string]Entry)
)

func init() {
	SetGlobal(ParamProcess, ProcessID)
}

// SetGlobal stores a literal value in the process-global table.
func SetGlobal(key, value string) { SetGlobalEntry(key, Literal(value)) }

// SetGlobalLazy stores a supplier in the process-global table.
func SetGlobalLazy(key string, fn func() string) { SetGlobalEntry(key, Lazy(fn)) }

func SetGlobalEntry(key string, e Entry) {
	globalMu.Lock()
	global[key] = e
	globalMu.Unlock()
}

// GetGlobal evaluates and returns the global entry for key.
func GetGlobal(key string) (string, bool) {
	globalMu.RLock()
	e, ok := global[key]
	globalMu.RUnlock()
	if !ok {
		return "", false
	}
	return e.Value(), true
}

func RemoveGlobal(key string) {
	globalMu.Lock()
	delete(global, key)
	globalMu.Unlock()
}

// GlobalEntries returns an evaluated snapshot of the global table.
// Suppliers run outside the lock.
func GlobalEntries() map[string]string {
	globalMu.RLock()
	entries := make(map[string]Entry, len(global))
	for k, e := range global {
		entries[k] = e
	}
	globalMu.RUnlock()

	out := make(map[string]string, len(entries))
	for k, e := range entries {
		out[k] = e.Value()
	}
	return out
}
