package ghissue

import (
	"fmt"
	"strings"
)

// IssueCreationError reports a failed issue-creation call.
type IssueCreationError struct {
	Message string
	// StatusCode is the HTTP status of the response, or zero when no
	// response was received (DNS failure, connection refused, timeout).
	StatusCode int
	// ResponseText is the raw response body, when one was received.
	ResponseText string
}

func (e *IssueCreationError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, " | status code: %d", e.StatusCode)
	}
	if e.ResponseText != "" {
		fmt.Fprintf(&sb, " | response: %s", e.ResponseText)
	}
	return sb.String()
}
