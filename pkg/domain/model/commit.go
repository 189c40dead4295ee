package model

// Commit is a single commit carried by the triggering push event
type Commit struct {
	Message string
	Body    string
}

// Text returns message and body joined the way the classifier reads them
func (c Commit) Text() string {
	return c.Message + "\n" + c.Body
}

// PushEvent holds the parts of a push event that drive a version bump
type PushEvent struct {
	Ref        string   // Git ref that was pushed (e.g. refs/heads/main)
	Repository string   // owner/name
	Commits    []Commit // Commits in push order
}

// Messages returns the text of every commit in the event
func (e *PushEvent) Messages() []string {
	if e == nil {
		return nil
	}

	messages := make([]string, 0, len(e.Commits))
	for _, c := range e.Commits {
		messages = append(messages, c.Text())
	}
	return messages
}
