package history

import (
	"context"
	"sync"
)

// DefaultMaxStackSize bounds the undo stack when no explicit size is
// configured.
const DefaultMaxStackSize = 20

// History is the undo/redo engine. The undo stack holds executed commands
// most-recent-last; the redo stack holds undone commands most-recent-last.
// Executing a new command always empties the redo stack, so the timeline
// stays linear.
//
// Stack bookkeeping happens under the mutex. Command effects run with the
// mutex released; the executing flag, not the mutex, is what keeps at most
// one effect in flight across that suspension.
type History struct {
	mu sync.Mutex

	undoStack []*Command
	redoStack []*Command

	maxStackSize int
	executing    bool

	onStackChange func()
}

// Option configures a History at construction time.
type Option func(*History)

// WithMaxStackSize bounds the undo stack. Non-positive values fall back to
// DefaultMaxStackSize.
func WithMaxStackSize(size int) Option {
	return func(h *History) {
		if size > 0 {
			h.maxStackSize = size
		}
	}
}

// WithOnStackChange registers an observer fired synchronously after every
// mutating operation. It runs after the exclusion flag has been cleared,
// so it may legally call back into the engine; it carries no payload and
// should re-read derived state (CanUndo, CanRedo, descriptions).
func WithOnStackChange(fn func()) Option {
	return func(h *History) {
		h.onStackChange = fn
	}
}

// New creates an undo/redo engine. There is no package-level instance;
// each owner constructs and passes its own.
func New(opts ...Option) *History {
	h := &History{
		maxStackSize: DefaultMaxStackSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute runs a command and records it for undo.
//
// When another operation is already in flight the command is rejected, not
// queued: Execute returns (false, nil) without invoking the effect or
// touching either stack. On effect failure the error is returned as-is and
// nothing reaches the stacks. On success the redo stack is cleared (each
// dropped entry's cleanup runs), the command is pushed, and the oldest
// entry is evicted if the stack exceeds its bound.
func (h *History) Execute(ctx context.Context, cmd *Command) (bool, error) {
	h.mu.Lock()
	if h.executing {
		h.mu.Unlock()
		return false, nil
	}
	h.executing = true
	h.mu.Unlock()

	if err := cmd.execute(ctx); err != nil {
		h.mu.Lock()
		h.executing = false
		h.mu.Unlock()
		return false, err
	}

	h.mu.Lock()
	for _, dropped := range h.redoStack {
		dropped.discard()
	}
	h.redoStack = nil

	h.undoStack = append(h.undoStack, cmd)
	if len(h.undoStack) > h.maxStackSize {
		evicted := h.undoStack[0]
		h.undoStack = h.undoStack[1:]
		evicted.discard()
	}
	h.executing = false
	h.mu.Unlock()

	h.notify()
	return true, nil
}

// Undo reverses the most recently executed command and moves it to the
// redo stack, returning its description. It returns ("", false, nil) when
// the undo stack is empty or another operation is in flight; neither case
// fires the observer. A failing undo effect leaves the command on the
// undo stack and returns the error.
func (h *History) Undo(ctx context.Context) (string, bool, error) {
	h.mu.Lock()
	if h.executing || len(h.undoStack) == 0 {
		h.mu.Unlock()
		return "", false, nil
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.executing = true
	h.mu.Unlock()

	if err := cmd.undo(ctx); err != nil {
		h.mu.Lock()
		h.undoStack = append(h.undoStack, cmd)
		h.executing = false
		h.mu.Unlock()
		return "", false, err
	}

	h.mu.Lock()
	h.redoStack = append(h.redoStack, cmd)
	h.executing = false
	h.mu.Unlock()

	h.notify()
	return cmd.description, true, nil
}

// Redo re-applies the most recently undone command and moves it back to
// the undo stack, returning its description. Same contract as Undo: a
// busy engine or empty redo stack yields ("", false, nil), and a failing
// effect leaves the command on the redo stack.
func (h *History) Redo(ctx context.Context) (string, bool, error) {
	h.mu.Lock()
	if h.executing || len(h.redoStack) == 0 {
		h.mu.Unlock()
		return "", false, nil
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.executing = true
	h.mu.Unlock()

	if err := cmd.execute(ctx); err != nil {
		h.mu.Lock()
		h.redoStack = append(h.redoStack, cmd)
		h.executing = false
		h.mu.Unlock()
		return "", false, err
	}

	h.mu.Lock()
	h.undoStack = append(h.undoStack, cmd)
	h.executing = false
	h.mu.Unlock()

	h.notify()
	return cmd.description, true, nil
}

// Clear discards every command on both stacks, running each cleanup
// exactly once, and fires the observer. It does not touch the exclusion
// flag: an in-flight effect finishes normally and is recorded afterwards.
func (h *History) Clear() {
	h.mu.Lock()
	for _, cmd := range h.undoStack {
		cmd.discard()
	}
	for _, cmd := range h.redoStack {
		cmd.discard()
	}
	h.undoStack = nil
	h.redoStack = nil
	h.mu.Unlock()

	h.notify()
}

// UndoDescription peeks at the next command Undo would reverse.
func (h *History) UndoDescription() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undoStack) == 0 {
		return "", false
	}
	return h.undoStack[len(h.undoStack)-1].description, true
}

// RedoDescription peeks at the next command Redo would re-apply.
func (h *History) RedoDescription() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redoStack) == 0 {
		return "", false
	}
	return h.redoStack[len(h.redoStack)-1].description, true
}

// CanUndo returns true if the undo stack is non-empty.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if the redo stack is non-empty.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// Size returns the number of commands available to undo.
func (h *History) Size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// MaxStackSize returns the configured undo stack bound.
func (h *History) MaxStackSize() int {
	return h.maxStackSize
}

func (h *History) notify() {
	if h.onStackChange != nil {
		h.onStackChange()
	}
}
