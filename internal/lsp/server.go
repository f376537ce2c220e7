// Package lsp implements a stdio language server that keeps open documents
// segmented and publishes their lexical errors as diagnostics. Edits are
// applied incrementally through segment.Reparse.
package lsp

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	// Registers the commonlog backend used by glsp.
	_ "github.com/tliron/commonlog/simple"

	"github.com/yaklabco/razorlex/pkg/config"
	"github.com/yaklabco/razorlex/pkg/runner"
	"github.com/yaklabco/razorlex/pkg/segment"
)

const serverName = "razorlex"

// ErrUnsupportedDocument is returned when no engine applies to a document.
var ErrUnsupportedDocument = errors.New("no tokenizer for document")

// languageIDs maps editor language identifiers onto engine languages.
//
//nolint:gochecknoglobals // Read-only lookup table.
var languageIDs = map[string]string{
	"html":            segment.LanguageHTML,
	"razor":           segment.LanguageHTML,
	"aspnetcorerazor": segment.LanguageHTML,
	"javascript":      segment.LanguageJavaScript,
}

// Server is the language server.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	store   *Store
	cfg     *config.Config
	version string
	log     commonlog.Logger
}

// New creates a server. A nil cfg uses the defaults.
func New(cfg *config.Config, version string) *Server {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	s := &Server{
		store:   NewStore(),
		cfg:     cfg,
		version: version,
		log:     commonlog.GetLogger(serverName + ".lsp"),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidClose:  s.didClose,
	}
	s.server = server.NewServer(&s.handler, serverName, false)

	return s
}

// RunStdio serves the protocol on stdin and stdout until the client exits.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

// Store returns the open documents.
func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) initialize(_ *glsp.Context, _ *protocol.InitializeParams) (any, error) {
	if trace := s.cfg.LSP.Trace; trace != "" {
		protocol.SetTraceValue(protocol.TraceValue(trace))
	}

	capabilities := s.handler.CreateServerCapabilities()

	openClose := true
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	s.log.Infof("client initialized")
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument

	engine, err := s.engineFor(item.URI, item.LanguageID, item.Text)
	if err != nil {
		s.log.Debugf("not tracking %s: %s", item.URI, err)
		return nil
	}

	update := s.store.Open(item.URI, engine, item.Version, item.Text)
	s.log.Debugf("opened %s as %s with %d errors", item.URI, update.Language, len(update.Diagnostics))
	s.publish(ctx, update)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	update, err := s.store.Apply(uri, params.TextDocument.Version, params.ContentChanges)
	if errors.Is(err, ErrUnknownDocument) {
		return nil
	}
	if err != nil {
		s.log.Errorf("apply changes to %s: %s", uri, err)
		return err
	}

	for _, result := range update.Results {
		owner := "none"
		if result.Owner != nil {
			owner = result.Owner.String()
		}
		s.log.Debugf("change in %s owned by %s; reparsed %t", uri, owner, result.Reparsed)
	}

	s.publish(ctx, update)
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	if s.store.Close(uri) {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}

func (s *Server) publish(ctx *glsp.Context, update Update) {
	params := protocol.PublishDiagnosticsParams{
		URI:         update.URI,
		Diagnostics: update.Diagnostics,
	}
	if update.Version >= 0 {
		version := protocol.UInteger(update.Version)
		params.Version = &version
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, params)
}

// engineFor picks the engine from a forced configuration language, then the
// editor language identifier, then the file name and content.
func (s *Server) engineFor(uri protocol.DocumentUri, languageID, content string) (segment.Engine, error) {
	validate := s.cfg.ShouldValidateRegex()

	if s.cfg.Language == "" || s.cfg.Language == config.LanguageAuto {
		if lang, ok := languageIDs[strings.ToLower(languageID)]; ok {
			return segment.ForLanguage(lang, validate)
		}
	}

	lang := runner.ResolveLanguage(s.cfg, uriPath(uri), []byte(content))
	if lang == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocument, uri)
	}
	return segment.ForLanguage(lang, validate)
}

// uriPath returns the file path of a file URI, or the URI itself.
func uriPath(uri protocol.DocumentUri) string {
	raw := string(uri)
	if !strings.HasPrefix(raw, "file://") {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return filepath.Clean(parsed.Path)
}
