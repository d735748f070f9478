package mock

import (
	"context"

	"github.com/fwojciec/siteindex"
)

var _ siteindex.IndexBuilder = (*IndexBuilder)(nil)

// IndexBuilder is a mock implementation of siteindex.IndexBuilder.
type IndexBuilder struct {
	BuildFn func(ctx context.Context, root string) (*siteindex.RunSummary, error)
}

func (b *IndexBuilder) Build(ctx context.Context, root string) (*siteindex.RunSummary, error) {
	return b.BuildFn(ctx, root)
}
