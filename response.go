package ghissue

import (
	"encoding/json"
	"fmt"
)

// IssueResponse holds the details of a successfully created issue.
type IssueResponse struct {
	// RepositoryURL is the browser URL of the repository the issue was
	// created in, derived from the creator's owner and name.
	RepositoryURL string
	// IssueURL is the browser URL of the created issue.
	IssueURL string
	// IssueID is GitHub's global identifier for the issue.
	IssueID int64
	// IssueNumber is the issue's sequence number within the repository.
	IssueNumber int
	IssueTitle  string
	// IssueState is "open" or "closed"; always "open" at creation time.
	IssueState string
	// CreatedAt is the creation timestamp as returned by GitHub, in
	// ISO-8601 form.
	CreatedAt string
	// Author is the login of the user the access token belongs to.
	Author string
}

// createdIssue mirrors the fields of GitHub's issue-creation response body
// that the library exposes.
type createdIssue struct {
	ID        int64  `json:"id"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
	HTMLURL   string `json:"html_url"`
	User      struct {
		Login string `json:"login"`
	} `json:"user"`
}

func decodeIssueResponse(body []byte, repoOwner, repoName string) (*IssueResponse, error) {
	var created createdIssue
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal issue: %w", err)
	}

	return &IssueResponse{
		RepositoryURL: fmt.Sprintf("https://github.com/%s/%s", repoOwner, repoName),
		IssueURL:      created.HTMLURL,
		IssueID:       created.ID,
		IssueNumber:   created.Number,
		IssueTitle:    created.Title,
		IssueState:    created.State,
		CreatedAt:     created.CreatedAt,
		Author:        created.User.Login,
	}, nil
}
