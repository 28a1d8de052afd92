package settings

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/forecourt/forecourt-cli/pkg/models"
)

// GateState tracks where the confirm-and-commit machine is.
type GateState int

const (
	GateIdle GateState = iota
	GateAwaitingConfirmation
	GateCommitting
)

// Saver persists one section of the document and returns the canonical
// state. Implemented by api.Client.
type Saver interface {
	SaveSettingsSection(ctx context.Context, doc *models.SettingsDocument, section SectionID) (*models.SettingsDocument, error)
}

// NotificationPort surfaces outcome messages to whatever presentation
// surface hosts the workflow.
type NotificationPort interface {
	Success(msg string)
	Error(msg string)
}

// ConfirmationPort displays a pending change list and later resolves it
// by calling Confirm or Cancel on the gate.
type ConfirmationPort interface {
	RequestConfirmation(section Section, changes []string)
}

// QuickChange is the abbreviated single-item variant of the workflow:
// one change, confirmed immediately, applied to local state without a
// snapshot. Persist, when set, is a best-effort backend call made
// before the local apply; callers that tolerate duplicates filter that
// error out themselves.
type QuickChange struct {
	Section     Section
	Description string
	// Success overrides the notification shown after the change lands;
	// the description is reused when empty.
	Success string
	Apply   func(doc *models.SettingsDocument) error
	Persist func(ctx context.Context) error
}

// Gate drives the Idle -> AwaitingConfirmation -> Committing -> Idle
// cycle for section saves, and the abbreviated cycle for quick changes.
type Gate struct {
	state      GateState
	controller *Controller
	saver      Saver
	notify     NotificationPort
	confirm    ConfirmationPort

	pendingSection Section
	pendingChanges []string
	pendingQuick   *QuickChange
}

func NewGate(controller *Controller, saver Saver, notify NotificationPort, confirm ConfirmationPort) *Gate {
	return &Gate{
		controller: controller,
		saver:      saver,
		notify:     notify,
		confirm:    confirm,
	}
}

// State returns the current gate state. The UI disables the save action
// while the gate is committing.
func (g *Gate) State() GateState { return g.state }

// PendingChanges returns the change list awaiting confirmation.
func (g *Gate) PendingChanges() []string { return g.pendingChanges }

// RequestSave runs the diff for the active edit session. On an empty
// diff the session ends silently. On a non-empty diff the gate moves to
// AwaitingConfirmation and hands the change list to the confirmation
// port; edit mode stays on until the gate resolves.
//
// After a failed commit the gate is still AwaitingConfirmation for the
// same section; requesting the save again re-runs the diff so the
// change list always describes the document about to be persisted.
func (g *Gate) RequestSave(id SectionID) error {
	switch g.state {
	case GateIdle:
	case GateAwaitingConfirmation:
		if g.pendingQuick != nil || g.pendingSection == nil || g.pendingSection.ID() != id {
			return fmt.Errorf("save already in progress for %q", g.pendingSectionID())
		}
	default:
		return fmt.Errorf("save already in progress for %q", g.pendingSectionID())
	}
	changes, err := g.controller.RequestSave(id)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		// Edits since the last attempt cancelled each other out.
		g.reset()
		return nil
	}
	section, _ := ForID(id)
	g.state = GateAwaitingConfirmation
	g.pendingSection = section
	g.pendingChanges = changes
	g.confirm.RequestConfirmation(section, changes)
	return nil
}

// Confirm commits the pending save or quick change. For a section save
// it persists the full current document tagged with the section; on
// success the canonical response replaces the local document, the edit
// session ends, and a success notification is emitted. On failure the
// document and session are left untouched, the error is surfaced, and
// the gate returns to AwaitingConfirmation so the user can retry or
// cancel.
func (g *Gate) Confirm(ctx context.Context) error {
	if g.pendingQuick != nil {
		return g.confirmQuick(ctx)
	}
	section := g.pendingSection
	if g.state != GateAwaitingConfirmation || section == nil {
		return ErrNoSession
	}

	g.state = GateCommitting
	canonical, err := g.saver.SaveSettingsSection(ctx, g.controller.Document(), section.ID())
	if err != nil {
		// Unsaved changes stay intact; the user remains in edit mode.
		g.state = GateAwaitingConfirmation
		log.Error().Err(err).Str("section", string(section.ID())).Msg("commit failed")
		g.notify.Error(fmt.Sprintf("Could not save %s: %v", lowerTitle(section), err))
		return err
	}

	g.controller.ReplaceDocument(canonical)
	g.controller.FinishEdit(section.ID())
	g.notify.Success(fmt.Sprintf("%s saved.", section.Title()))
	g.reset()
	return nil
}

// Cancel rejects the pending change set: no network call, section
// restored to its pre-edit snapshot, gate back to Idle. While a commit
// is in flight it is a no-op: the commit owns the session and its
// resolution decides what happens next.
func (g *Gate) Cancel() {
	if g.state == GateCommitting {
		return
	}
	if g.pendingQuick != nil {
		g.pendingQuick = nil
		g.state = GateIdle
		return
	}
	if g.pendingSection != nil {
		g.controller.CancelEdit(g.pendingSection.ID())
	}
	g.reset()
}

// RequestQuickChange starts the abbreviated single-change flow: the
// confirmation port shows the one description immediately, no snapshot
// is taken.
func (g *Gate) RequestQuickChange(qc QuickChange) error {
	if g.state != GateIdle {
		return fmt.Errorf("save already in progress for %q", g.pendingSectionID())
	}
	g.state = GateAwaitingConfirmation
	g.pendingQuick = &qc
	g.pendingChanges = []string{qc.Description}
	g.confirm.RequestConfirmation(qc.Section, g.pendingChanges)
	return nil
}

func (g *Gate) confirmQuick(ctx context.Context) error {
	qc := g.pendingQuick
	if g.state != GateAwaitingConfirmation || qc == nil {
		return ErrNoSession
	}

	g.state = GateCommitting
	if qc.Persist != nil {
		if err := qc.Persist(ctx); err != nil {
			g.state = GateIdle
			g.pendingQuick = nil
			g.pendingChanges = nil
			log.Error().Err(err).Msg("quick change persist failed")
			g.notify.Error(fmt.Sprintf("Could not apply change: %v", err))
			return err
		}
	}
	if err := qc.Apply(g.controller.Document()); err != nil {
		g.state = GateIdle
		g.pendingQuick = nil
		g.pendingChanges = nil
		g.notify.Error(fmt.Sprintf("Could not apply change: %v", err))
		return err
	}
	msg := qc.Success
	if msg == "" {
		msg = qc.Description
	}
	g.notify.Success(msg)
	g.pendingQuick = nil
	g.pendingChanges = nil
	g.state = GateIdle
	return nil
}

func (g *Gate) reset() {
	g.state = GateIdle
	g.pendingSection = nil
	g.pendingChanges = nil
	g.pendingQuick = nil
}

func (g *Gate) pendingSectionID() SectionID {
	if g.pendingSection != nil {
		return g.pendingSection.ID()
	}
	return ""
}

func lowerTitle(s Section) string {
	t := s.Title()
	if t == "" {
		return t
	}
	// Titles are ASCII-led ("General information"); fold just the first
	// letter for mid-sentence use.
	return string(t[0]|0x20) + t[1:]
}
