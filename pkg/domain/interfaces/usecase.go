package interfaces

import (
	"context"

	"github.com/m-mizutani/autobump/pkg/domain/model"
)

// BumpUseCase runs the version bump pipeline for a push event
type BumpUseCase interface {
	// Run classifies the event, updates manifests, commits and publishes a tag
	Run(ctx context.Context, event *model.PushEvent) (*model.BumpResult, error)
}
