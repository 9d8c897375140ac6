package repo

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

// operation tags for recorded measures
const (
	opAdd   = "add"
	opGet   = "get"
	opPut   = "put"
	opStats = "stats"
)

var (
	measureOps = stats.Int64("docdepot/repo/operations",
		"number of repository operations", stats.UnitDimensionless)
	measureBytes = stats.Int64("docdepot/repo/bytes",
		"bytes copied in and out of revision directories", stats.UnitBytes)

	keyOperation = tag.MustNewKey("operation")
)

// Views returns the metric views of the repo package, for registration by
// the hosting process together with its exporter of choice.
func Views() []*view.View {
	return []*view.View{
		{
			Name:        "docdepot/repo/operations",
			Description: "number of repository operations",
			Measure:     measureOps,
			TagKeys:     []tag.Key{keyOperation},
			Aggregation: view.Count(),
		},
		{
			Name:        "docdepot/repo/bytes",
			Description: "bytes copied in and out of revision directories",
			Measure:     measureBytes,
			TagKeys:     []tag.Key{keyOperation},
			Aggregation: view.Sum(),
		},
	}
}

// RegisterViews registers the repo package views with the opencensus default
// registry
func RegisterViews() error {
	return view.Register(Views()...)
}

func record(ctx context.Context, operation string, byteCount int64) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(keyOperation, operation)},
		measureOps.M(1), measureBytes.M(byteCount),
	)
}
