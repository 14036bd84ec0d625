// In file: internal/tools/args.go
package tools

import (
	"errors"
	"fmt"
)

// ErrUnknownTool reports a dispatch request for a tool name that is not in
// the catalog. It is a distinct kind from the YNAB client's uniform gateway
// error: an unknown tool never reaches the network layer.
var ErrUnknownTool = errors.New("unknown tool")

// MissingArgumentError reports a tool call whose argument mapping lacks one
// of the tool's required parameters. It is raised by validation at the
// dispatch boundary, before the YNAB client is even acquired.
type MissingArgumentError struct {
	Tool string
	Key  string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("tool %q requires argument %q", e.Tool, e.Key)
}

// Arguments is the untyped string mapping supplied by the caller for one tool
// invocation, tagged with the tool name so validation failures identify the
// call they belong to.
type Arguments struct {
	tool   string
	values map[string]string
}

// Require returns the value for a required parameter, or a
// *MissingArgumentError if it is absent or empty.
func (a Arguments) Require(key string) (string, error) {
	value, ok := a.values[key]
	if !ok || value == "" {
		return "", &MissingArgumentError{Tool: a.tool, Key: key}
	}
	return value, nil
}

// Optional returns the value for an optional parameter, or the empty string
// when the caller did not supply it. The empty string is the "absent" marker
// throughout this module: downstream, an empty filter never appears in the
// outgoing request.
func (a Arguments) Optional(key string) string {
	return a.values[key]
}
