package lsp

import (
	"errors"
	"fmt"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/razorlex/pkg/segment"
)

// ErrUnknownDocument is returned for a change to a document that is not open.
var ErrUnknownDocument = errors.New("document is not open")

// Update describes the state of a document after it was opened or changed.
type Update struct {
	URI         protocol.DocumentUri
	Version     protocol.Integer
	Language    string
	Diagnostics []protocol.Diagnostic
	// Results holds one entry per ranged change, in order.
	Results []segment.ReparseResult
	// Replaced counts full-text changes.
	Replaced int
}

type openDocument struct {
	engine  segment.Engine
	doc     *segment.Document
	version protocol.Integer
}

// Store holds the open documents. It is safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	docs map[protocol.DocumentUri]*openDocument
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[protocol.DocumentUri]*openDocument)}
}

// Open parses content with engine and tracks it under uri, replacing any
// document already open there.
func (s *Store) Open(uri protocol.DocumentUri, engine segment.Engine, version protocol.Integer, content string) Update {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &openDocument{
		engine:  engine,
		doc:     segment.Parse(engine, content),
		version: version,
	}
	s.docs[uri] = entry
	return entry.update(uri)
}

// Apply applies content changes in order. Ranged changes are reparsed
// incrementally; a change without a range replaces the whole text.
func (s *Store) Apply(uri protocol.DocumentUri, version protocol.Integer, changes []any) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.docs[uri]
	if !ok {
		return Update{}, fmt.Errorf("%w: %s", ErrUnknownDocument, uri)
	}

	var results []segment.ReparseResult
	replaced := 0
	for _, change := range changes {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				entry.doc = segment.Parse(entry.engine, change.Text)
				replaced++
				continue
			}
			results = append(results, entry.applyRange(*change.Range, change.Text))
		case protocol.TextDocumentContentChangeEventWhole:
			entry.doc = segment.Parse(entry.engine, change.Text)
			replaced++
		default:
			return Update{}, fmt.Errorf("unsupported content change %T", change)
		}
	}

	entry.version = version
	update := entry.update(uri)
	update.Results = results
	update.Replaced = replaced
	return update, nil
}

// Close stops tracking uri and reports whether it was open.
func (s *Store) Close(uri protocol.DocumentUri) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.docs[uri]
	delete(s.docs, uri)
	return ok
}

// Content returns the current text of uri.
func (s *Store) Content(uri protocol.DocumentUri) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return entry.doc.Content, true
}

// Len returns the number of open documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (d *openDocument) applyRange(rng protocol.Range, newText string) segment.ReparseResult {
	start := Offset(d.doc.Content, rng.Start)
	end := max(Offset(d.doc.Content, rng.End), start)
	return segment.Reparse(d.doc, d.doc.Edit(start, end-start, newText))
}

func (d *openDocument) update(uri protocol.DocumentUri) Update {
	return Update{
		URI:         uri,
		Version:     d.version,
		Language:    d.doc.Language(),
		Diagnostics: Diagnostics(d.doc),
	}
}
