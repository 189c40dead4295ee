package github

import (
	"encoding/json"
	"os"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/autobump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// legacyCommit covers payloads that carry the commit body separately from the message
type legacyCommit struct {
	Body string `json:"body"`
}

type legacyPayload struct {
	Commits []legacyCommit `json:"commits"`
}

// LoadPushEvent reads a push event payload from the file GitHub Actions provides
func LoadPushEvent(path string) (*model.PushEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event payload", goerr.V("path", path))
	}

	event, err := ParsePushEvent(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse event payload", goerr.V("path", path))
	}
	return event, nil
}

// ParsePushEvent converts a push event payload into a model.PushEvent
func ParsePushEvent(data []byte) (*model.PushEvent, error) {
	payload, err := github.ParseWebHook("push", data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid push event JSON")
	}

	pushEvent, ok := payload.(*github.PushEvent)
	if !ok {
		return nil, goerr.New("payload is not a push event")
	}

	var legacy legacyPayload
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, goerr.Wrap(err, "invalid push event JSON")
	}

	event := &model.PushEvent{
		Ref:        pushEvent.GetRef(),
		Repository: pushEvent.GetRepo().GetFullName(),
		Commits:    make([]model.Commit, 0, len(pushEvent.Commits)),
	}

	for i, c := range pushEvent.Commits {
		commit := model.Commit{Message: c.GetMessage()}
		if i < len(legacy.Commits) {
			commit.Body = legacy.Commits[i].Body
		}
		event.Commits = append(event.Commits, commit)
	}

	return event, nil
}
