package lsp

import (
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// SpecHandler implements the LSP handlers for model-spec documents.
// Documents are kept in memory from the client's own notifications;
// the server never reads the files from disk.
type SpecHandler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
}

// NewSpecHandler creates and returns a new SpecHandler instance.
func NewSpecHandler() *SpecHandler {
	return &SpecHandler{
		content: make(map[protocol.DocumentUri]string),
	}
}

// Initialize advertises the server's capabilities: full-document
// sync and keyword completion.
func (h *SpecHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
		},
	}, nil
}

func (h *SpecHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("modelspec LSP initialized")
	return nil
}

func (h *SpecHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("modelspec LSP shutdown")
	return nil
}

func (h *SpecHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen stores the opened document and publishes
// diagnostics for it.
func (h *SpecHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened document: %s\n", params.TextDocument.URI)

	h.setContent(params.TextDocument.URI, params.TextDocument.Text)
	publishDiagnostics(ctx, params.TextDocument.URI, CheckDocument(params.TextDocument.Text))
	return nil
}

// TextDocumentDidChange applies full-document changes and republishes
// diagnostics.
func (h *SpecHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed document: %s\n", params.TextDocument.URI)

	text, ok := h.getContent(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text, ok = c.Text, true
			}
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		}
	}
	if !ok {
		return nil
	}

	h.setContent(params.TextDocument.URI, text)
	publishDiagnostics(ctx, params.TextDocument.URI, CheckDocument(text))
	return nil
}

func (h *SpecHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed document: %s\n", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	return nil
}

// TextDocumentCompletion offers the grammar's fixed vocabulary:
// the GWAS placeholder, the term functions, and the alias keyword.
func (h *SpecHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(),
	}, nil
}

func completionItems() []protocol.CompletionItem {
	keyword := protocol.CompletionItemKindKeyword
	function := protocol.CompletionItemKindFunction

	items := []struct {
		label  string
		kind   *protocol.CompletionItemKind
		detail string
	}{
		{"SNPs", &keyword, "GWAS placeholder: fit the model once per available variant"},
		{"as", &keyword, "alias the preceding term: factor(x) as grp"},
		{"g()", &function, "genotype reference: g(variant)"},
		{"factor()", &function, "categorical encoding: factor(phenotype)"},
		{"ln()", &function, "natural log transform: ln(phenotype)"},
		{"log10()", &function, "base-10 log transform: log10(phenotype)"},
		{"pow()", &function, "power transform: pow(phenotype, n)"},
	}

	completions := make([]protocol.CompletionItem, len(items))
	for i, item := range items {
		label, detail := item.label, item.detail
		completions[i] = protocol.CompletionItem{
			Label:  label,
			Kind:   item.kind,
			Detail: &detail,
		}
	}
	return completions
}

func (h *SpecHandler) setContent(uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[uri] = text
}

func (h *SpecHandler) getContent(uri protocol.DocumentUri) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	text, ok := h.content[uri]
	return text, ok
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		// An empty (non-nil) list clears stale diagnostics on the client.
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
