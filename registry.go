package ferrite

import (
	"sort"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// Registry is the process-wide name->[Variable] map. It is populated
// exclusively by the host's init entry point (via [Registry.Add]) and
// handed to user code, by transfer, once at application start (via
// [Registry.Take]).
type Registry struct {
	mu      sync.Mutex
	vars    map[string]*Variable
	strict  atomic.Bool
	logger  Logger
	metrics *Metrics
}

// NewRegistry returns an empty registry. Production code receives the
// process-wide instance, built by [Main], through the [Context] passed to
// the registered application function rather than constructing one
// directly; tests construct their own.
func NewRegistry() *Registry {
	return &Registry{vars: make(map[string]*Variable)}
}

// SetStrict enables or disables assert-on-illegal-transition checking for
// every variable created through [Registry.InitVariable], including ones
// created before the call: they all share the registry's flag. Variables
// built elsewhere and inserted with [Registry.Add] keep their own flag. See
// [WithStrictProtocol].
func (r *Registry) SetStrict(strict bool) {
	r.strict.Store(strict)
}

// strictFlag exposes the registry's strict flag for variables created
// through it.
func (r *Registry) strictFlag() *atomic.Bool { return &r.strict }

// InitVariable is the host's var-init entry point: it allocates host's
// [SharedState], wraps it in a [Variable], registers the variable with r,
// and returns it. It panics with a duplicate-name error if host's name is
// already registered.
func (r *Registry) InitVariable(host Host) *Variable {
	v := InitVariable(host, r.strictFlag())
	r.Add(v)
	return v
}

// Add inserts v, keyed by its name. It panics with a duplicate-name error
// if the name is already present: duplicate insertion is a fatal program
// error, never a recoverable one.
func (r *Registry) Add(v *Variable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := string(v.Name())
	if _, exists := r.vars[name]; exists {
		panic(duplicateName{Name: name})
	}
	r.vars[name] = v
	if r.metrics != nil {
		r.metrics.registrations.Add(1)
	}
	r.log(LevelDebug, "registry", name, "variable registered")
}

// log emits a diagnostic entry through the registry's own logger if
// [WithLogger] configured one, falling back to the package-wide logger
// otherwise.
func (r *Registry) log(level LogLevel, category, varName, message string) {
	if r.logger != nil {
		if r.logger.IsEnabled(level) {
			r.logger.Log(LogEntry{Level: level, Category: category, VarName: varName, Message: message})
		}
		return
	}
	logGlobal(LogEntry{Level: level, Category: category, VarName: varName, Message: message})
}

// Take atomically swaps the registry's contents out and returns them as a
// plain map, leaving the registry empty. This is the one-time ownership
// transfer from the host's init phase to user code at application start.
func (r *Registry) Take() map[string]*Variable {
	r.mu.Lock()
	defer r.mu.Unlock()
	taken := r.vars
	r.vars = make(map[string]*Variable)
	return taken
}

// remove looks up and deletes name, reporting [NotFound] if absent.
func (r *Registry) remove(name string) (*Variable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vars[name]
	if !ok {
		return nil, &NotFound{Name: name}
	}
	delete(r.vars, name)
	return v, nil
}

// removeBySuffix looks up the (lexicographically first, for determinism)
// key matching suffix under [isSuffixBoundary] and deletes it, reporting
// [NotFound] if none match.
func (r *Registry) removeBySuffix(suffix string) (*Variable, error) {
	r.mu.Lock()
	var candidates []string
	for name := range r.vars {
		if isSuffixBoundary(name, suffix) {
			candidates = append(candidates, name)
		}
	}
	r.mu.Unlock()
	if len(candidates) == 0 {
		return nil, &NotFound{Name: "*" + suffix}
	}
	sort.Strings(candidates)
	return r.remove(candidates[0])
}

// CheckEmpty reports [UnusedPVs] naming every PV the host declared that
// user code never claimed.
func (r *Registry) CheckEmpty() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.metrics != nil {
		r.metrics.unusedAtCheck.Store(int64(len(r.vars)))
	}
	if len(r.vars) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.vars))
	for name := range r.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return &UnusedPVs{Names: names}
}

func (r *Registry) recordClaim() {
	if r.metrics != nil {
		r.metrics.claims.Add(1)
	}
}

func (r *Registry) recordClaimFailure() {
	if r.metrics != nil {
		r.metrics.claimFailures.Add(1)
	}
}

// isSuffixBoundary reports whether suffix is a suffix of text and the rune
// immediately preceding it (if any) is ASCII punctuation other than
// underscore: "field" matches "record:field" and "record.field" but not
// "somefield" or "sub_field".
func isSuffixBoundary(text, suffix string) bool {
	if len(text) < len(suffix) || text[len(text)-len(suffix):] != suffix {
		return false
	}
	if len(text) == len(suffix) {
		return true
	}
	prefix := text[:len(text)-len(suffix)]
	r, _ := utf8.DecodeLastRuneInString(prefix)
	return isASCIIPunctuation(r) && r != '_'
}

// isASCIIPunctuation mirrors Rust's char::is_ascii_punctuation exactly: the
// four ASCII ranges 0x21-0x2F, 0x3A-0x40, 0x5B-0x60, 0x7B-0x7E, underscore
// included. This differs from Unicode's general "Punctuation" category: it
// also counts ASCII symbols like '+', '<', '~' (which that category
// excludes) and, being ASCII-only, never matches a multi-byte rune.
func isASCIIPunctuation(r rune) bool {
	switch {
	case r >= 0x21 && r <= 0x2F:
		return true
	case r >= 0x3A && r <= 0x40:
		return true
	case r >= 0x5B && r <= 0x60:
		return true
	case r >= 0x7B && r <= 0x7E:
		return true
	default:
		return false
	}
}
