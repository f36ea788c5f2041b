package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressTracker_EnterEmitsStageStart(t *testing.T) {
	var events []ProgressEvent
	tracker := newProgressTracker(func(e ProgressEvent) { events = append(events, e) })

	tracker.enter(stageFileValidation, "validating")
	tracker.enter(stageNLPProcessing, "annotating")

	require.Len(t, events, 2)
	assert.Equal(t, 0.0, events[0].Percent)
	assert.Equal(t, "File Validation", events[0].Stage)
	assert.Equal(t, 25.0, events[1].Percent)
	assert.Equal(t, stageNLPProcessing, events[1].StageIndex)
}

func TestProgressTracker_EarlierStageIgnored(t *testing.T) {
	var events []ProgressEvent
	tracker := newProgressTracker(func(e ProgressEvent) { events = append(events, e) })

	tracker.enter(stageNLPProcessing, "annotating")
	tracker.enter(stageTextExtraction, "late arrival")

	assert.Len(t, events, 1)
}

func TestProgressTracker_UpdateClampsToStageRange(t *testing.T) {
	var events []ProgressEvent
	tracker := newProgressTracker(func(e ProgressEvent) { events = append(events, e) })

	tracker.enter(stageNLPProcessing, "annotating") // range 25-45
	tracker.update(30, "inside range")
	tracker.update(90, "above range")

	require.Len(t, events, 3)
	assert.Equal(t, 30.0, events[1].Percent)
	assert.Equal(t, 45.0, events[2].Percent)
}

func TestProgressTracker_PercentNeverDecreases(t *testing.T) {
	var events []ProgressEvent
	tracker := newProgressTracker(func(e ProgressEvent) { events = append(events, e) })

	tracker.enter(stageNLPProcessing, "annotating")
	tracker.update(44, "almost done")
	tracker.update(26, "stale update")

	last := events[len(events)-1]
	assert.Equal(t, 44.0, last.Percent)

	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i].Percent, events[i-1].Percent)
	}
}

func TestProgressTracker_CompleteJumpsTo100(t *testing.T) {
	var events []ProgressEvent
	tracker := newProgressTracker(func(e ProgressEvent) { events = append(events, e) })

	tracker.enter(stageFileValidation, "validating")
	tracker.complete("done")

	last := events[len(events)-1]
	assert.Equal(t, 100.0, last.Percent)
	assert.Equal(t, "Generating Results", last.Stage)
}

func TestProgressTracker_NilCallback(t *testing.T) {
	tracker := newProgressTracker(nil)

	tracker.enter(stageFileValidation, "validating")
	tracker.update(5, "working")
	tracker.complete("done")

	assert.Equal(t, 100.0, tracker.percent)
}

func TestProgressTracker_UpdateBeforeEnterIgnored(t *testing.T) {
	var events []ProgressEvent
	tracker := newProgressTracker(func(e ProgressEvent) { events = append(events, e) })

	tracker.update(50, "no stage yet")

	assert.Empty(t, events)
}
