package notebook

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/quill/pkg/note"
	"tableflip.dev/quill/pkg/store"
)

// manualTimer stands in for time.AfterFunc so tests fire the debounce by
// hand instead of sleeping.
type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type manualClock struct {
	timers []*manualTimer
}

func (c *manualClock) after(_ time.Duration, fn func()) timer {
	t := &manualTimer{fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// fire runs the most recently armed timer if it is still live.
func (c *manualClock) fire() {
	if len(c.timers) == 0 {
		return
	}
	t := c.timers[len(c.timers)-1]
	if !t.stopped {
		t.stopped = true
		t.fn()
	}
}

func newTestNotebook(t *testing.T) (*Notebook, *store.Memory, *manualClock) {
	t.Helper()
	kv := store.NewMemory()
	clock := &manualClock{}
	return New(kv, WithTimer(clock.after)), kv, clock
}

func TestCreateInsertsFront(t *testing.T) {
	nb, _, _ := newTestNotebook(t)
	first := nb.Create()
	second := nb.Create()

	notes := nb.Notes()
	if len(notes) != 2 {
		t.Fatalf("len = %d", len(notes))
	}
	if notes[0].ID != second.ID || notes[1].ID != first.ID {
		t.Fatalf("expected newest-first order")
	}
}

func TestReplayEquivalence(t *testing.T) {
	nb, _, _ := newTestNotebook(t)

	a := nb.Create()
	b := nb.Create()
	nb.Update(a.ID, Patch{Title: "A", Tags: []string{"x"}, UpdatedAt: nb.Now()})
	dup, ok := nb.Duplicate(a.ID)
	if !ok {
		t.Fatalf("duplicate failed")
	}
	nb.TogglePin(b.ID)
	nb.Delete(b.ID)

	ids := make(map[string]bool)
	for _, n := range nb.Notes() {
		ids[n.ID] = true
	}
	want := map[string]bool{a.ID: true, dup.ID: true}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("id set = %v, want %v", ids, want)
	}
	if nb.Len() != 2 {
		t.Fatalf("len = %d", nb.Len())
	}
}

func TestUpdateMissingIsNoOp(t *testing.T) {
	nb, _, clock := newTestNotebook(t)
	nb.Create()
	clock.fire()
	before := len(clock.timers)

	if nb.Update("nope", Patch{Title: "x"}) {
		t.Fatalf("expected false for missing id")
	}
	if len(clock.timers) != before {
		t.Fatalf("missing-id update must not schedule a flush")
	}
	if nb.TogglePin("nope") {
		t.Fatalf("expected pin no-op")
	}
	if _, ok := nb.Duplicate("nope"); ok {
		t.Fatalf("expected duplicate no-op")
	}
	if nb.Delete("nope") {
		t.Fatalf("expected delete no-op")
	}
}

func TestDebounceCoalescesWrites(t *testing.T) {
	nb, kv, clock := newTestNotebook(t)

	n := nb.Create()
	nb.Update(n.ID, Patch{Title: "one", UpdatedAt: 1})
	nb.Update(n.ID, Patch{Title: "two", UpdatedAt: 2})
	nb.Update(n.ID, Patch{Title: "three", UpdatedAt: 3})

	if kv.Writes() != 0 {
		t.Fatalf("no write may happen inside the quiet window, got %d", kv.Writes())
	}
	if !nb.Dirty() {
		t.Fatalf("expected save-pending flag")
	}

	clock.fire()

	if kv.Writes() != 1 {
		t.Fatalf("writes = %d, want 1", kv.Writes())
	}
	if nb.Dirty() {
		t.Fatalf("dirty must clear after flush")
	}

	raw, _ := kv.Load(store.NotesKey)
	var persisted []note.Note
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("unmarshal persisted: %v", err)
	}
	if len(persisted) != 1 || persisted[0].Title != "three" {
		t.Fatalf("persisted = %+v, want the final state", persisted)
	}
}

func TestEachMutationRearmsTimer(t *testing.T) {
	nb, _, clock := newTestNotebook(t)
	nb.Create()
	nb.Create()
	nb.Create()

	// Each mutation stops the previous timer and arms a new one.
	if len(clock.timers) != 3 {
		t.Fatalf("timers = %d, want 3", len(clock.timers))
	}
	for _, tm := range clock.timers[:2] {
		if !tm.stopped {
			t.Fatalf("earlier timers must be cancelled")
		}
	}
	if clock.timers[2].stopped {
		t.Fatalf("latest timer must stay armed")
	}
}

func TestLateCallbackDoesNotClobberRearmedTimer(t *testing.T) {
	nb, kv, clock := newTestNotebook(t)

	nb.Create() // arms the first timer
	nb.Create() // re-arms; the first timer is stopped

	// time.AfterFunc semantics: Stop can return false with the callback
	// already in flight. The late callback must neither write nor disarm
	// the timer that replaced it.
	clock.timers[0].fn()
	if kv.Writes() != 0 {
		t.Fatalf("stale callback wrote, writes = %d", kv.Writes())
	}

	nb.Close()

	// Were the live handle clobbered, Close would have cancelled nothing
	// and this fire would write after teardown.
	clock.timers[1].fn()
	if kv.Writes() != 0 {
		t.Fatalf("write landed after Close, writes = %d", kv.Writes())
	}
}

func TestLateCallbackThenSingleWrite(t *testing.T) {
	nb, kv, clock := newTestNotebook(t)

	n := nb.Create()
	nb.Update(n.ID, Patch{Title: "final", UpdatedAt: 1})

	clock.timers[0].fn() // stale
	clock.fire()         // live

	if kv.Writes() != 1 {
		t.Fatalf("writes = %d, want exactly 1 for the burst", kv.Writes())
	}
	raw, _ := kv.Load(store.NotesKey)
	var persisted []note.Note
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("unmarshal persisted: %v", err)
	}
	if len(persisted) != 1 || persisted[0].Title != "final" {
		t.Fatalf("persisted = %+v", persisted)
	}
}

// saveHookKV runs a callback once, in the middle of a Save, to emulate a
// mutation racing a flush.
type saveHookKV struct {
	*store.Memory
	onSave func()
}

func (m *saveHookKV) Save(key, value string) error {
	err := m.Memory.Save(key, value)
	if m.onSave != nil {
		fn := m.onSave
		m.onSave = nil
		fn()
	}
	return err
}

func TestDirtySurvivesMutationDuringFlush(t *testing.T) {
	kv := &saveHookKV{Memory: store.NewMemory()}
	clock := &manualClock{}
	nb := New(kv, WithTimer(clock.after))

	n := nb.Create()
	kv.onSave = func() {
		nb.Update(n.ID, Patch{Title: "raced in", UpdatedAt: 2})
	}

	if err := nb.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if !nb.Dirty() {
		t.Fatalf("mutation during the flush must keep the pending flag set")
	}

	clock.fire()
	if nb.Dirty() {
		t.Fatalf("dirty must clear once the raced mutation is written")
	}
	raw, _ := kv.Load(store.NotesKey)
	var persisted []note.Note
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("unmarshal persisted: %v", err)
	}
	if len(persisted) != 1 || persisted[0].Title != "raced in" {
		t.Fatalf("persisted = %+v", persisted)
	}
}

func TestCloseCancelsWithoutFlushing(t *testing.T) {
	nb, kv, clock := newTestNotebook(t)
	nb.Create()
	nb.Close()

	clock.fire() // stopped timer must not run
	if kv.Writes() != 0 {
		t.Fatalf("teardown must not write, got %d writes", kv.Writes())
	}
}

func TestFlushWritesImmediately(t *testing.T) {
	nb, kv, _ := newTestNotebook(t)
	nb.Create()
	if err := nb.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if kv.Writes() != 1 {
		t.Fatalf("writes = %d", kv.Writes())
	}
}

func TestLoadMalformedDefaultsEmpty(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Save(store.NotesKey, "{not json")
	nb := New(kv, WithTimer((&manualClock{}).after))
	if nb.Len() != 0 {
		t.Fatalf("malformed persisted state must load as empty")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	kv := store.NewMemory()
	clock := &manualClock{}
	nb := New(kv, WithTimer(clock.after))
	n := nb.Create()
	nb.Update(n.ID, Patch{Title: "kept", Content: "<p>x</p>", Tags: []string{"t"}, UpdatedAt: nb.Now()})
	if err := nb.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	again := New(kv, WithTimer(clock.after))
	notes := again.Notes()
	if len(notes) != 1 || notes[0].Title != "kept" || notes[0].Content != "<p>x</p>" {
		t.Fatalf("reloaded = %+v", notes)
	}
}

func TestThemeImmediatePersistence(t *testing.T) {
	nb, kv, _ := newTestNotebook(t)
	if nb.Theme() {
		t.Fatalf("default theme must be light")
	}
	if err := nb.SetTheme(true); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if kv.Writes() != 1 {
		t.Fatalf("theme writes are immediate, got %d", kv.Writes())
	}
	if !nb.Theme() {
		t.Fatalf("expected dark theme")
	}

	_ = kv.Save(store.ThemeKey, "garbage")
	if nb.Theme() {
		t.Fatalf("unparseable preference defaults to light")
	}
}

func TestReplaceWholesale(t *testing.T) {
	nb, kv, clock := newTestNotebook(t)
	nb.Create()

	imported := []note.Note{
		{ID: "i1", Title: "one"},
		{ID: "i2", Title: "two"},
	}
	nb.Replace(imported)

	notes := nb.Notes()
	if len(notes) != 2 || notes[0].ID != "i1" || notes[1].ID != "i2" {
		t.Fatalf("replace = %+v", notes)
	}

	clock.fire()
	if kv.Writes() != 1 {
		t.Fatalf("replace must schedule persistence, writes = %d", kv.Writes())
	}
}

func TestNotesSnapshotIsolated(t *testing.T) {
	nb, _, _ := newTestNotebook(t)
	n := nb.Create()
	nb.Update(n.ID, Patch{Title: "t", Tags: []string{"a"}, UpdatedAt: 1})

	snap := nb.Notes()
	snap[0].Tags[0] = "mutated"
	snap[0].Title = "mutated"

	got, _ := nb.Get(n.ID)
	if got.Title != "t" || got.Tags[0] != "a" {
		t.Fatalf("snapshot mutation leaked into the store: %+v", got)
	}
}
