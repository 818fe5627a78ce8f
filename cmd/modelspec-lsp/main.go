// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"modelspec/internal/lsp"
)

const lsName = "modelspec"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	// 1 = debug level, nil = default backend
	commonlog.Configure(1, nil)

	specHandler := lsp.NewSpecHandler()

	handler = protocol.Handler{
		Initialize:             specHandler.Initialize,
		Initialized:            specHandler.Initialized,
		Shutdown:               specHandler.Shutdown,
		SetTrace:               specHandler.SetTrace,
		TextDocumentDidOpen:    specHandler.TextDocumentDidOpen,
		TextDocumentDidClose:   specHandler.TextDocumentDidClose,
		TextDocumentDidChange:  specHandler.TextDocumentDidChange,
		TextDocumentCompletion: specHandler.TextDocumentCompletion,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting modelspec LSP server %s...", version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting modelspec LSP server:", err)
		os.Exit(1)
	}
}
