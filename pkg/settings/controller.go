package settings

import (
	"github.com/rs/zerolog/log"

	"github.com/forecourt/forecourt-cli/pkg/models"
)

// EditSession is the transient state of one section being edited: which
// section, and a deep snapshot of the document taken when edit mode was
// entered. The live document is mutated in place while editing, so the
// snapshot must share nothing with it.
type EditSession struct {
	Section  SectionID
	snapshot *models.SettingsDocument
}

// Snapshot returns the pre-edit snapshot.
func (s *EditSession) Snapshot() *models.SettingsDocument {
	return s.snapshot
}

// Controller owns the live settings document and enforces the editing
// contract: at most one section in edit mode at any time, snapshot on
// entry, restore on cancel.
type Controller struct {
	doc     *models.SettingsDocument
	session *EditSession
}

// NewController wraps a document. A nil document is replaced with the
// empty default so the UI stays usable when the initial fetch failed.
func NewController(doc *models.SettingsDocument) *Controller {
	if doc == nil {
		doc = models.DefaultDocument()
	}
	return &Controller{doc: doc}
}

// Document returns the live document. Callers mutate it in place while
// a section is in edit mode.
func (c *Controller) Document() *models.SettingsDocument {
	return c.doc
}

// ReplaceDocument swaps in a new canonical document, e.g. the server
// response after a commit or a refetch.
func (c *Controller) ReplaceDocument(doc *models.SettingsDocument) {
	if doc == nil {
		doc = models.DefaultDocument()
	}
	c.doc = doc
}

// Editing reports which section is in edit mode, if any.
func (c *Controller) Editing() (SectionID, bool) {
	if c.session == nil {
		return "", false
	}
	return c.session.Section, true
}

// BeginEdit enters edit mode for a section, snapshotting the current
// document. Returns a ConflictError if another section is already being
// edited, and ErrUnknownSection for ids outside the closed set.
func (c *Controller) BeginEdit(id SectionID) error {
	if _, ok := ForID(id); !ok {
		return ErrUnknownSection
	}
	if c.session != nil {
		if c.session.Section == id {
			return nil
		}
		err := &ConflictError{Active: c.session.Section, Requested: id}
		log.Error().Str("active", string(c.session.Section)).Str("requested", string(id)).
			Msg("edit conflict: section already active")
		return err
	}
	c.session = &EditSession{Section: id, snapshot: c.doc.Clone()}
	return nil
}

// CancelEdit restores the section from its snapshot and discards the
// session. A no-op when no session is active or the id does not match
// the active session.
func (c *Controller) CancelEdit(id SectionID) {
	if c.session == nil || c.session.Section != id {
		return
	}
	section, _ := ForID(id)
	section.Restore(c.doc, c.session.snapshot)
	c.session = nil
}

// RequestSave computes the pending changes for the active section. An
// empty result means current == snapshot: the session is discarded and
// edit mode exits silently with no persistence call. A non-empty result
// leaves the session active; the confirm gate decides what happens
// next.
func (c *Controller) RequestSave(id SectionID) ([]string, error) {
	if c.session == nil || c.session.Section != id {
		return nil, ErrNoSession
	}
	section, ok := ForID(id)
	if !ok {
		return nil, ErrUnknownSection
	}
	changes := section.Diff(c.session.snapshot, c.doc)
	if len(changes) == 0 {
		c.session = nil
		return nil, nil
	}
	return changes, nil
}

// FinishEdit discards the session without restoring, used after a
// successful commit when the live document already holds the canonical
// state.
func (c *Controller) FinishEdit(id SectionID) {
	if c.session == nil || c.session.Section != id {
		return
	}
	c.session = nil
}
