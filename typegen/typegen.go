// Package typegen renders a merged setting collection into output documents.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. A language-agnostic Document carries the Xcode version and the sorted settings
//  2. Format-specific emitters (jsondoc/, swift/) turn a Document into bytes
//
// Every target is rendered in memory before anything is written, and each
// file is replaced atomically, so a failed run never leaves partial output.
//
// # Implementing a New Emitter
//
//  1. Create package: typegen/<format>/emitter.go
//  2. Implement the Emitter interface (see below)
//  3. Add the target to buildTargets() in cmd/xcsettings/commands/pipeline.go
//  4. Add tests next to the emitter
package typegen

import (
	"github.com/teranos/xcsettings/setting"
)

// Emitter turns a Document into the bytes of one output file.
type Emitter interface {
	// Name returns the emitter name used in logs (e.g., "json", "swift")
	Name() string

	// FileExtension returns the extension of the produced file without the dot
	FileExtension() string

	// Emit renders the whole document. Output must be byte-stable for equal input.
	Emit(doc *Document) ([]byte, error)
}

// Document is the input shared by every emitter.
type Document struct {
	// XcodeVersion is the version string read from the installation's manifest
	XcodeVersion string

	// Settings are unique by key and sorted ascending by key
	Settings []*setting.Setting
}

// NewDocument builds a document from a merged collection.
func NewDocument(version string, c *setting.Collection) *Document {
	return &Document{XcodeVersion: version, Settings: c.Sorted()}
}

// Target pairs an emitter with the path it writes to.
type Target struct {
	Path    string
	Emitter Emitter
}

// Output is a rendered target waiting to be written.
type Output struct {
	Target
	Data []byte
}
