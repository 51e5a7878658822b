package recorder

import "LuxorLab/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ RunMeta, _ *model.Result) (int64, error) { return 0, nil }
func (n *NoopRecorder) Close() error                                        { return nil }
