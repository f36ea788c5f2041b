package pipeline

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/types"
)

// stageResult pairs a stage's value with how it finished.
type stageResult[T any] struct {
	value   T
	status  types.StageStatus
	warning string
}

// runDegradable executes a stage that must not abort the run. On error it
// substitutes the documented fallback value, records a warning, and tags
// the stage degraded.
func runDegradable[T any](name string, fallback func() T, fn func() (T, error)) stageResult[T] {
	value, err := fn()
	if err != nil {
		return stageResult[T]{
			value:   fallback(),
			status:  types.StageDegraded,
			warning: fmt.Sprintf("%s unavailable, using defaults: %v", name, err),
		}
	}
	return stageResult[T]{value: value, status: types.StageSuccess}
}

// apply copies a degradable stage's outcome into the aggregate result.
func apply[T any](result *types.AnalysisResult, name string, sr stageResult[T], set func(T)) {
	set(sr.value)
	result.ComponentStatus[name] = sr.status
	if sr.warning != "" {
		result.Warnings = append(result.Warnings, sr.warning)
	}
}
