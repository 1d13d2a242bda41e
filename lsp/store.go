package lsp

import (
	"sync"

	"github.com/signadot/syntree"
	"github.com/signadot/syntree/textpos"

	"go.lsp.dev/protocol"
)

type document struct {
	uri     protocol.DocumentURI
	version int32
	index   *textpos.Index
	doc     *syntree.Document
	err     error
}

func newDocument(uri protocol.DocumentURI, version int32, text string) *document {
	d := []byte(text)
	res := &document{uri: uri, version: version, index: textpos.NewIndex(d)}
	res.doc, res.err = syntree.Parse(d)
	return res
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[protocol.DocumentURI]*document)}
}

func (s *documentStore) get(uri protocol.DocumentURI) *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *documentStore) set(d *document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[d.uri] = d
}

func (s *documentStore) remove(uri protocol.DocumentURI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}
