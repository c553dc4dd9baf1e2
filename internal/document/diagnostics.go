package document

import "fmt"

// Diagnostic severity levels.
const (
	LevelWarning = "warning"
	LevelError   = "error"
)

// Diagnostic codes shared by migration, rendering and serialization.
const (
	CodeParseFailure  = "parse-failure"
	CodeUnknownFormat = "unknown-format"
	CodeDanglingRef   = "dangling-reference"
	CodeCycle         = "cyclic-reference"
	CodeUnknownType   = "unknown-type"
	CodeUnmappedType  = "unmapped-type"
	CodeModuleTimeout = "module-timeout"
	CodeModuleFailure = "module-failure"
	CodeInvalidColor  = "invalid-color"
)

// Diag is one recoverable issue found while processing a document.
type Diag struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	NodeID  string `json:"nodeId,omitempty"`
	Message string `json:"message"`
}

// Diagnostics accumulates recoverable issues. The engine never fails a whole
// pass over data-quality problems; it records them here instead.
type Diagnostics struct {
	entries []Diag
}

// Warnf records a warning-level diagnostic.
func (d *Diagnostics) Warnf(code, nodeID, format string, args ...any) {
	d.entries = append(d.entries, Diag{
		Level:   LevelWarning,
		Code:    code,
		NodeID:  nodeID,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errorf records an error-level diagnostic. Errors here are still recovered
// locally; they only signal a more serious data problem than a warning.
func (d *Diagnostics) Errorf(code, nodeID, format string, args ...any) {
	d.entries = append(d.entries, Diag{
		Level:   LevelError,
		Code:    code,
		NodeID:  nodeID,
		Message: fmt.Sprintf(format, args...),
	})
}

// All returns the recorded diagnostics in order.
func (d *Diagnostics) All() []Diag {
	return d.entries
}

// Has reports whether any diagnostic with the given code was recorded.
func (d *Diagnostics) Has(code string) bool {
	for _, e := range d.entries {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Merge appends all diagnostics from other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}
	d.entries = append(d.entries, other.entries...)
}
