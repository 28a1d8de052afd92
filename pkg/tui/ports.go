package tui

import (
	"sync"

	"github.com/forecourt/forecourt-cli/pkg/settings"
)

// statusNotifier implements settings.NotificationPort by buffering
// messages until the model drains them into status bar commands. Gate
// commits run as background commands, so the buffer is locked.
type statusNotifier struct {
	mu      sync.Mutex
	pending []statusEntry
}

type statusEntry struct {
	text    string
	isError bool
}

func (n *statusNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, statusEntry{text: msg})
}

func (n *statusNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, statusEntry{text: msg, isError: true})
}

// Drain returns and clears the buffered notifications.
func (n *statusNotifier) Drain() []statusEntry {
	n.mu.Lock()
	defer n.mu.Unlock()
	entries := n.pending
	n.pending = nil
	return entries
}

// confirmationRelay implements settings.ConfirmationPort. The gate
// calls it synchronously during RequestSave; the model picks the
// request up immediately afterwards and opens the dialog.
type confirmationRelay struct {
	pending *confirmationRequest
}

type confirmationRequest struct {
	section settings.Section
	changes []string
}

func (r *confirmationRelay) RequestConfirmation(section settings.Section, changes []string) {
	r.pending = &confirmationRequest{section: section, changes: changes}
}

// Take returns the pending request, if any, and clears it.
func (r *confirmationRelay) Take() *confirmationRequest {
	req := r.pending
	r.pending = nil
	return req
}
