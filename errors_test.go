package ghissue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueCreationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  IssueCreationError
		want string
	}{
		{
			name: "message only",
			err:  IssueCreationError{Message: "request failed: connection refused"},
			want: "request failed: connection refused",
		},
		{
			name: "message and status code",
			err:  IssueCreationError{Message: "failed to create issue", StatusCode: 500},
			want: "failed to create issue | status code: 500",
		},
		{
			name: "message, status code and response text",
			err: IssueCreationError{
				Message:      "failed to create issue",
				StatusCode:   422,
				ResponseText: `{"message":"Validation Failed"}`,
			},
			want: `failed to create issue | status code: 422 | response: {"message":"Validation Failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
