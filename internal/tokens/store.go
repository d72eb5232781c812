package tokens

import (
	"github.com/rs/zerolog"
)

// StyleTarget receives live custom-property writes. The production target is
// the lipgloss style set; tests use MapTarget.
type StyleTarget interface {
	SetProperty(name, value string)
	RemoveProperty(name string)
}

// MapTarget is an in-memory StyleTarget.
type MapTarget struct {
	Props map[string]string
}

func NewMapTarget() *MapTarget {
	return &MapTarget{Props: make(map[string]string)}
}

func (m *MapTarget) SetProperty(name, value string) {
	m.Props[name] = value
}

func (m *MapTarget) RemoveProperty(name string) {
	delete(m.Props, name)
}

// ChangeEvent describes one applied token mutation, single or batched.
type ChangeEvent struct {
	// Values maps token path to the value that was applied.
	Values map[string]string
	// Batched reports whether the change came from a flushed batch.
	Batched bool
}

// Store is the live token store: the base tree plus runtime overrides,
// mirrored onto a StyleTarget.
type Store struct {
	base      *Tree
	live      *Tree
	target    StyleTarget
	prefix    string
	pending   map[string]string
	pendOrder []string
	subs      []storeSub
	nextSub   int
	log       zerolog.Logger
}

type storeSub struct {
	id int
	fn func(ChangeEvent)
}

// StoreOptions configures a Store. Zero values fall back to DefaultTree, a
// MapTarget and a nop logger.
type StoreOptions struct {
	Tree   *Tree
	Target StyleTarget
	Prefix string
	Logger zerolog.Logger
}

func NewStore(opts StoreOptions) *Store {
	tree := opts.Tree
	if tree == nil {
		tree = DefaultTree()
	}
	target := opts.Target
	if target == nil {
		target = NewMapTarget()
	}
	s := &Store{
		base:    tree,
		live:    tree.Clone(),
		target:  target,
		prefix:  opts.Prefix,
		pending: make(map[string]string),
		log:     opts.Logger,
	}
	s.seed()
	return s
}

// writes every base property to the target once at startup
func (s *Store) seed() {
	for _, p := range s.live.CustomProperties(s.prefix) {
		s.target.SetProperty(p.Name, p.Value)
	}
}

// Tree returns the live tree.
func (s *Store) Tree() *Tree {
	return s.live
}

// Base returns the immutable base tree the store was seeded from.
func (s *Store) Base() *Tree {
	return s.base
}

// Lookup returns the live token at path.
func (s *Store) Lookup(path string) (Token, bool) {
	return s.live.Lookup(path)
}

// Value resolves a token value with fallback semantics. A missing path is
// logged and degrades to the fallback; it never errors.
func (s *Store) Value(path, fallback string) string {
	if _, ok := s.live.Lookup(path); !ok {
		s.log.Warn().Str("path", path).Msg("token not found, using fallback")
	}
	return s.live.Value(path, fallback)
}

// Set applies a single token update immediately and fires one change event.
// Unlike SetBatch it does not wait for Flush; single writes are cheap enough
// to apply inline.
func (s *Store) Set(path, value string) {
	s.apply(path, value)
	s.notify(ChangeEvent{Values: map[string]string{path: value}})
}

// SetBatch queues token updates. Nothing is applied until Flush, so a batch
// is observed all-or-nothing.
func (s *Store) SetBatch(updates map[string]string) {
	for path, value := range updates {
		if _, queued := s.pending[path]; !queued {
			s.pendOrder = append(s.pendOrder, path)
		}
		s.pending[path] = value
	}
}

// Flush applies all queued updates and fires one aggregate change event.
// Flushing with nothing pending is a no-op.
func (s *Store) Flush() {
	if len(s.pendOrder) == 0 {
		return
	}
	applied := make(map[string]string, len(s.pendOrder))
	for _, path := range s.pendOrder {
		value := s.pending[path]
		s.apply(path, value)
		applied[path] = value
	}
	s.pending = make(map[string]string)
	s.pendOrder = nil
	s.notify(ChangeEvent{Values: applied, Batched: true})
}

// Reset restores every live token to its base value.
func (s *Store) Reset() {
	s.live = s.base.Clone()
	s.seed()
}

// Subscribe registers a change listener and returns an unsubscribe func.
func (s *Store) Subscribe(fn func(ChangeEvent)) func() {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, storeSub{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) apply(path, value string) {
	tok, ok := s.live.Lookup(path)
	if !ok {
		s.log.Debug().Str("path", path).Msg("token path not in base tree, creating property")
		tok = Token{Type: TypeColor}
	}
	tok.Value = value
	s.live.Put(path, tok)
	s.target.SetProperty(PropertyName(s.prefix, path), value)
}

func (s *Store) notify(ev ChangeEvent) {
	for _, sub := range s.subs {
		sub.fn(ev)
	}
}
