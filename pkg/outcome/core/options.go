package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	TrackOptionKey   OptionKey = "track_options"
)

type MaxLimitOption struct {
	Value int
}
type TrackOptions struct {
	MaxCount MaxLimitOption
}

type ProcessOptions struct {
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithTrackOptions(ctx context.Context, maxTracks int) context.Context {
	return context.WithValue(ctx, TrackOptionKey, TrackOptions{MaxLimitOption{Value: maxTracks}})
}

func GetTrackMaxCount(ctx context.Context, defaultMaxTracks int) int {
	options, ok := ctx.Value(TrackOptionKey).(TrackOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxTracks
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
