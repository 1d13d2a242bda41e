package lsp

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/signadot/syntree/debug"
	"github.com/signadot/syntree/token"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const Name = "syn-lsp"

var Version = "0.0.1"

type Server struct {
	conn   jsonrpc2.Conn
	client protocol.Client
	docs   *documentStore
}

func NewServer() *Server {
	return &Server{docs: newDocumentStore()}
}

// Serve runs s on rwc until the connection is closed or ctx is done.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	logger := zap.NewNop()
	stream := jsonrpc2.NewStream(rwc)
	if debug.LSP() {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		defer logger.Sync()
		stream = protocol.LoggingStream(stream, os.Stderr)
	}
	ctx = protocol.WithLogger(ctx, logger)
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn
	s.client = protocol.ClientDispatcher(conn, logger)
	conn.Go(ctx, protocol.ServerHandler(s, nil))
	select {
	case <-conn.Done():
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
	}
	err := conn.Err()
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Stdio adapts standard input and output to an io.ReadWriteCloser.
func Stdio() io.ReadWriteCloser {
	return &stdioReadWriteCloser{read: os.Stdin, write: os.Stdout}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindFull,
			OpenClose: true,
		},
		HoverProvider:          true,
		DocumentSymbolProvider: true,
		FoldingRangeProvider:   true,
		SemanticTokensProvider: map[string]interface{}{
			"full":   true,
			"range":  true,
			"legend": semanticLegend,
		},
	}
	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    Name,
			Version: Version,
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := &params.TextDocument
	return s.update(ctx, newDocument(td.URI, td.Version, td.Text))
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	n := len(params.ContentChanges)
	if n == 0 {
		return nil
	}
	td := &params.TextDocument
	return s.update(ctx, newDocument(td.URI, td.Version, params.ContentChanges[n-1].Text))
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(params.TextDocument.URI)
	return nil
}

func (s *Server) update(ctx context.Context, d *document) error {
	s.docs.set(d)
	if debug.LSP() {
		debug.Logf("lsp: %s version %d, %d bytes, err=%v\n", d.uri, d.version, d.index.Len(), d.err)
	}
	if s.client == nil {
		return nil
	}
	return s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         d.uri,
		Version:     uint32(d.version),
		Diagnostics: diagnostics(d),
	})
}

func diagnostics(d *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if d.err == nil {
		return res
	}
	off := d.index.Len()
	var te *token.Error
	if errors.As(d.err, &te) {
		off = te.Offset
	}
	pos := d.index.Position(off)
	return append(res, protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: protocol.DiagnosticSeverityError,
		Source:   Name,
		Message:  d.err.Error(),
	})
}
