// Package app wires the document, history manager and configuration into
// an editing session, the surface the UI shell and the scripting layer
// drive.
package app

import (
	"errors"
	"log/slog"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/engine/command"
	"github.com/dshills/inkwell/internal/engine/document"
	"github.com/dshills/inkwell/internal/engine/history"
)

// Session owns one document and its undo/redo history.
// All mutation goes through Execute so every edit is reversible.
// A session is single-threaded; it is owned by the caller's event loop.
type Session struct {
	doc  *document.Document
	hist *history.History[*document.Document]
	cfg  config.Config
	log  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithDocument seeds the session with an existing document.
func WithDocument(doc *document.Document) Option {
	return func(s *Session) {
		s.doc = doc
	}
}

// WithLogger sets the session's logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// New creates a session with an empty document.
func New(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		doc:  document.New(),
		hist: history.New[*document.Document](cfg.History.MaxEntries),
		cfg:  cfg,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document returns the session's document.
func (s *Session) Document() *document.Document {
	return s.doc
}

// Config returns the session's configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Execute applies a command and records its effect in history.
// Returns whether the document changed.
func (s *Session) Execute(cmd command.Command) (bool, error) {
	changed, err := s.hist.Execute(s.doc, cmd)
	if err != nil {
		s.log.Debug("command failed", "command", cmd.Description(), "error", err)
		return false, err
	}
	s.log.Debug("command executed", "command", cmd.Description(), "changed", changed)
	return changed, nil
}

// Undo reverses the most recent edit. Returns whether an edit was undone.
func (s *Session) Undo() bool {
	err := s.hist.Undo(s.doc)
	if err != nil {
		if !errors.Is(err, history.ErrNothingToUndo) {
			s.log.Error("undo failed", "error", err)
		}
		return false
	}
	return true
}

// Redo reapplies the most recently undone edit. Returns whether an edit
// was redone.
func (s *Session) Redo() bool {
	err := s.hist.Redo(s.doc)
	if err != nil {
		if !errors.Is(err, history.ErrNothingToRedo) {
			s.log.Error("redo failed", "error", err)
		}
		return false
	}
	return true
}

// CanUndo returns true if undo is available.
func (s *Session) CanUndo() bool {
	return s.hist.CanUndo()
}

// CanRedo returns true if redo is available.
func (s *Session) CanRedo() bool {
	return s.hist.CanRedo()
}

// UndoCount returns the number of undoable edits.
func (s *Session) UndoCount() int {
	return s.hist.UndoCount()
}

// RedoCount returns the number of redoable edits.
func (s *Session) RedoCount() int {
	return s.hist.RedoCount()
}

// UndoInfo describes the undoable edits, oldest first.
func (s *Session) UndoInfo() []history.OperationInfo {
	return s.hist.UndoInfo()
}

// RedoInfo describes the redoable edits, oldest first.
func (s *Session) RedoInfo() []history.OperationInfo {
	return s.hist.RedoInfo()
}

// ClearHistory drops all undo/redo state, e.g. after loading a document.
func (s *Session) ClearHistory() {
	s.hist.Clear()
}

// ReplaceDocument swaps in a new document and clears history.
func (s *Session) ReplaceDocument(doc *document.Document) {
	s.doc = doc
	s.hist.Clear()
}
