package ghissue

// Issue describes a GitHub issue to be created. Title is required; the
// remaining fields are optional and are omitted from the request payload
// when left empty.
type Issue struct {
	Title     string
	Body      string
	Assignees []string
	Labels    []string
}

// issuePayload is the wire shape GitHub expects for issue creation.
type issuePayload struct {
	Title     string   `json:"title"`
	Body      string   `json:"body,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Labels    []string `json:"labels,omitempty"`
}

func (i Issue) payload() issuePayload {
	return issuePayload{
		Title:     i.Title,
		Body:      i.Body,
		Assignees: i.Assignees,
		Labels:    i.Labels,
	}
}
