package yes

import (
	"fmt"
	"strings"

	"github.com/TheMaverickProgrammer/go-yes-parser/yesparser"
)

// ParseErrors bundles a document's line errors into one error value for
// callers that want a single failure out of a parse run.
type ParseErrors struct {
	File   string
	Errors []yesparser.LineError
}

func (e ParseErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("yes syntax error:\n\n")
	for _, le := range e.Errors {
		if e.File != "" {
			msg.WriteString(fmt.Sprintf("%s:%d: %s\n", e.File, le.Line, le.Message))
		} else {
			msg.WriteString(fmt.Sprintf("line %d: %s\n", le.Line, le.Message))
		}
	}
	return msg.String()
}
