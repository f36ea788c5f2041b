package pipeline

import "sync"

// ProgressEvent reports pipeline progress to the caller.
type ProgressEvent struct {
	Stage      string
	StageIndex int
	Percent    float64
	Message    string
}

// ProgressCallback receives progress events during a run.
type ProgressCallback func(ProgressEvent)

// progressStage assigns each pipeline stage its slice of the 0-100 range.
type progressStage struct {
	name  string
	start float64
	end   float64
}

var progressStages = []progressStage{
	{"File Validation", 0, 10},
	{"Text Extraction", 10, 25},
	{"NLP Processing", 25, 45},
	{"Skill Validation", 45, 60},
	{"Experience Analysis", 60, 75},
	{"Location Detection", 75, 85},
	{"Score Calculation", 85, 95},
	{"Generating Results", 95, 100},
}

// Stage indexes into progressStages.
const (
	stageFileValidation = iota
	stageTextExtraction
	stageNLPProcessing
	stageSkillValidation
	stageExperienceAnalysis
	stageLocationDetection
	stageScoreCalculation
	stageGeneratingResults
)

// progressTracker emits monotone progress events. Percent never
// decreases: entering a stage clamps to at least the current value, and
// updates clamp into the active stage's range.
type progressTracker struct {
	mu       sync.Mutex
	callback ProgressCallback
	stage    int
	percent  float64
}

func newProgressTracker(callback ProgressCallback) *progressTracker {
	return &progressTracker{callback: callback, stage: -1}
}

// enter moves to a stage and emits its starting percent.
func (t *progressTracker) enter(stage int, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if stage <= t.stage {
		return
	}
	t.stage = stage
	t.emit(progressStages[stage].start, message)
}

// update reports progress within the current stage.
func (t *progressTracker) update(percent float64, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stage < 0 {
		return
	}
	s := progressStages[t.stage]
	if percent < s.start {
		percent = s.start
	}
	if percent > s.end {
		percent = s.end
	}
	t.emit(percent, message)
}

// complete jumps to 100.
func (t *progressTracker) complete(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stage = len(progressStages) - 1
	t.emit(100, message)
}

// emit assumes the lock is held.
func (t *progressTracker) emit(percent float64, message string) {
	if percent < t.percent {
		percent = t.percent
	}
	t.percent = percent

	if t.callback == nil {
		return
	}
	t.callback(ProgressEvent{
		Stage:      progressStages[t.stage].name,
		StageIndex: t.stage,
		Percent:    percent,
		Message:    message,
	})
}
