// Package notebook owns the in-memory note collection and mirrors it into
// the persistence port with a trailing-edge debounce.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"tableflip.dev/quill/pkg/note"
	"tableflip.dev/quill/pkg/store"
	"tableflip.dev/quill/pkg/timeutil"
)

// Patch carries the fields a save commits back to a note. Title, Content and
// Tags are replaced wholesale; UpdatedAt stamps the commit.
type Patch struct {
	Title     string
	Content   string
	Tags      []string
	UpdatedAt int64
}

// Notebook is the note store. All mutations schedule a debounced flush of
// the whole sequence to the KV port; the theme preference is written
// immediately and independently.
type Notebook struct {
	mu    sync.Mutex
	kv    store.KV
	notes []note.Note
	dirty bool
	seq   uint64 // bumped per mutation; guards dirty against racing flushes
	deb   *debouncer
}

// Option customises New.
type Option func(*options)

type options struct {
	debounce time.Duration
	after    timerFunc
}

// WithDebounce overrides the quiet period before a flush.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithTimer substitutes the timer implementation, letting tests fire the
// debounce by hand.
func WithTimer(after timerFunc) Option {
	return func(o *options) { o.after = after }
}

// New loads the persisted sequence best-effort: a missing key or malformed
// payload yields an empty notebook, never an error.
func New(kv store.KV, opts ...Option) *Notebook {
	o := &options{debounce: store.DefaultDebounce}
	for _, opt := range opts {
		opt(o)
	}

	nb := &Notebook{kv: kv, notes: []note.Note{}}
	nb.deb = newDebouncer(o.debounce, o.after, func() {
		if err := nb.writeNow(); err != nil {
			fmt.Fprintf(os.Stderr, "notebook: flush: %v\n", err)
		}
	})

	if raw, ok := kv.Load(store.NotesKey); ok {
		var loaded []note.Note
		if err := json.Unmarshal([]byte(raw), &loaded); err == nil && loaded != nil {
			nb.notes = loaded
		}
	}
	return nb
}

// Create inserts a fresh untitled note at the front and returns a copy.
func (nb *Notebook) Create() note.Note {
	nb.mu.Lock()
	n := note.New()
	nb.notes = append([]note.Note{*n}, nb.notes...)
	nb.mu.Unlock()
	nb.changed()
	return *n
}

// Get returns a copy of the note with the given id.
func (nb *Notebook) Get(id string) (note.Note, bool) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	for i := range nb.notes {
		if nb.notes[i].ID == id {
			return clone(nb.notes[i]), true
		}
	}
	return note.Note{}, false
}

// Update commits a patch to the matching note. A missing id is a silent
// no-op; the bool lets callers report it if they care.
func (nb *Notebook) Update(id string, p Patch) bool {
	nb.mu.Lock()
	for i := range nb.notes {
		if nb.notes[i].ID == id {
			nb.notes[i].Title = p.Title
			nb.notes[i].Content = p.Content
			nb.notes[i].Tags = append([]string(nil), p.Tags...)
			nb.notes[i].UpdatedAt = p.UpdatedAt
			nb.mu.Unlock()
			nb.changed()
			return true
		}
	}
	nb.mu.Unlock()
	return false
}

// Delete removes the note with the given id. Confirmation is the caller's
// responsibility.
func (nb *Notebook) Delete(id string) bool {
	nb.mu.Lock()
	for i := range nb.notes {
		if nb.notes[i].ID == id {
			nb.notes = append(nb.notes[:i], nb.notes[i+1:]...)
			nb.mu.Unlock()
			nb.changed()
			return true
		}
	}
	nb.mu.Unlock()
	return false
}

// TogglePin flips the pin flag on the matching note.
func (nb *Notebook) TogglePin(id string) bool {
	nb.mu.Lock()
	for i := range nb.notes {
		if nb.notes[i].ID == id {
			nb.notes[i].Pinned = !nb.notes[i].Pinned
			nb.mu.Unlock()
			nb.changed()
			return true
		}
	}
	nb.mu.Unlock()
	return false
}

// Duplicate copies the source note under a new id at the front of the
// sequence. Returns false when the source is missing.
func (nb *Notebook) Duplicate(id string) (note.Note, bool) {
	nb.mu.Lock()
	for i := range nb.notes {
		if nb.notes[i].ID == id {
			cp := note.Duplicate(nb.notes[i])
			nb.notes = append([]note.Note{*cp}, nb.notes...)
			nb.mu.Unlock()
			nb.changed()
			return *cp, true
		}
	}
	nb.mu.Unlock()
	return note.Note{}, false
}

// Replace swaps the whole sequence, as import does. The incoming notes are
// trusted verbatim.
func (nb *Notebook) Replace(notes []note.Note) {
	cp := make([]note.Note, len(notes))
	for i, n := range notes {
		cp[i] = clone(n)
	}
	nb.mu.Lock()
	nb.notes = cp
	nb.mu.Unlock()
	nb.changed()
}

// Notes returns a snapshot copy of the sequence in insertion order.
func (nb *Notebook) Notes() []note.Note {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	out := make([]note.Note, len(nb.notes))
	for i, n := range nb.notes {
		out[i] = clone(n)
	}
	return out
}

// Len reports how many notes are held.
func (nb *Notebook) Len() int {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	return len(nb.notes)
}

// Dirty reports whether a flush is still pending, for "save pending" UI
// feedback.
func (nb *Notebook) Dirty() bool {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	return nb.dirty
}

// Flush writes the current sequence now, cancelling any pending timer.
func (nb *Notebook) Flush() error {
	nb.deb.Stop()
	return nb.writeNow()
}

// Close cancels a pending flush without writing, the teardown behavior: the
// debounce guarantees eventual persistence only while the store is alive.
func (nb *Notebook) Close() {
	nb.deb.Stop()
}

// Reload rereads the persisted sequence, discarding in-memory state. Used
// when the watch layer reports an external write.
func (nb *Notebook) Reload() {
	raw, ok := nb.kv.Load(store.NotesKey)
	if !ok {
		return
	}
	var loaded []note.Note
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil || loaded == nil {
		return
	}
	nb.mu.Lock()
	nb.notes = loaded
	nb.dirty = false
	nb.mu.Unlock()
}

// Theme reads the persisted dark-theme preference, defaulting to false.
func (nb *Notebook) Theme() bool {
	raw, ok := nb.kv.Load(store.ThemeKey)
	if !ok {
		return false
	}
	dark, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return dark
}

// SetTheme persists the preference immediately; it does not ride the note
// debounce.
func (nb *Notebook) SetTheme(dark bool) error {
	return nb.kv.Save(store.ThemeKey, strconv.FormatBool(dark))
}

// Now stamps commits; exposed so callers building a Patch share the store's
// clock resolution.
func (nb *Notebook) Now() int64 {
	return timeutil.NowMillis()
}

func (nb *Notebook) changed() {
	nb.mu.Lock()
	nb.dirty = true
	nb.seq++
	nb.mu.Unlock()
	nb.deb.Schedule()
}

func (nb *Notebook) writeNow() error {
	nb.mu.Lock()
	seq := nb.seq
	data, err := json.Marshal(nb.notes)
	if err != nil {
		nb.mu.Unlock()
		return err
	}
	nb.mu.Unlock()

	if err := nb.kv.Save(store.NotesKey, string(data)); err != nil {
		return err
	}

	// A mutation that landed while the save was in flight keeps its
	// pending flag; this write did not capture it.
	nb.mu.Lock()
	if nb.seq == seq {
		nb.dirty = false
	}
	nb.mu.Unlock()
	return nil
}

func clone(n note.Note) note.Note {
	n.Tags = append([]string(nil), n.Tags...)
	return n
}
