// Package pipeline orchestrates the resume analysis stages: extraction,
// the independent validators, and scoring. Extraction and scoring are
// fatal; skill validation, experience analysis, location detection, and
// JD comparison degrade to documented defaults instead of aborting.
package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/cache"
	"github.com/jonathan/ats-scorer/internal/experience"
	"github.com/jonathan/ats-scorer/internal/extraction"
	"github.com/jonathan/ats-scorer/internal/grammar"
	"github.com/jonathan/ats-scorer/internal/jdmatch"
	"github.com/jonathan/ats-scorer/internal/privacy"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/skillcheck"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Deps holds the orchestrator's collaborators. Cache and Progress are
// optional; Grammar defaults to the neutral checker.
type Deps struct {
	Extractor  *extraction.Extractor
	Validator  *skillcheck.Validator
	Detector   *privacy.Detector
	Comparator *jdmatch.Comparator
	Grammar    grammar.Checker
	Cache      *cache.ResultCache
	Progress   ProgressCallback
}

// Orchestrator runs the full analysis pipeline.
type Orchestrator struct {
	deps Deps
}

// New creates an orchestrator.
func New(deps Deps) *Orchestrator {
	if deps.Grammar == nil {
		deps.Grammar = grammar.NeutralChecker{}
	}
	return &Orchestrator{deps: deps}
}

// Analyze runs every stage over the resume text and optional job
// description. On fatal errors it returns a result carrying the error
// category and suggestions alongside a non-nil error; degraded stages
// only add warnings. Scoring is pure, so identical inputs produce
// identical results and cached results are returned as-is.
func (o *Orchestrator) Analyze(ctx context.Context, resumeText, jdText string) (*types.AnalysisResult, error) {
	progress := newProgressTracker(o.deps.Progress)
	result := &types.AnalysisResult{
		ID:              uuid.New(),
		Warnings:        []string{},
		ComponentStatus: map[string]types.StageStatus{},
	}

	progress.enter(stageFileValidation, "Validating input")
	if strings.TrimSpace(resumeText) == "" {
		return o.fatal(result, newError(CategoryInputValidation, "resume text is empty", nil))
	}

	cacheKey := cache.KeyFor(resumeText, jdText)
	if o.deps.Cache != nil {
		if cached, ok := o.deps.Cache.Get(cacheKey); ok {
			progress.complete("Loaded cached analysis")
			return cached, nil
		}
	}

	progress.enter(stageTextExtraction, "Extracting resume sections")
	progress.enter(stageNLPProcessing, "Annotating resume text")
	profile, err := o.deps.Extractor.Extract(ctx, resumeText)
	if err != nil {
		return o.fatal(result, newError(CategoryNLPProcessing, "failed to process resume text", err))
	}
	result.Profile = profile
	result.ComponentStatus[types.StageExtraction] = types.StageSuccess

	experienceText := profile.Sections[types.SectionExperience]
	hasJD := strings.TrimSpace(jdText) != ""

	// The validators are independent of each other; run them together.
	var (
		skillRes   stageResult[*types.SkillValidation]
		privacyRes stageResult[*types.PrivacyReport]
		jdRes      stageResult[*types.JDComparison]
	)
	progress.enter(stageSkillValidation, "Validating skills against evidence")
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		skillRes = runDegradable(types.StageSkillValidation, types.EmptySkillValidation,
			func() (*types.SkillValidation, error) {
				return o.deps.Validator.Validate(groupCtx, profile.Skills, profile.Projects, experienceText)
			})
		return nil
	})
	group.Go(func() error {
		privacyRes = runDegradable(types.StagePrivacy, types.EmptyPrivacyReport,
			func() (*types.PrivacyReport, error) {
				return o.deps.Detector.Detect(groupCtx, resumeText)
			})
		return nil
	})
	if hasJD {
		group.Go(func() error {
			jdRes = runDegradable(types.StageJDComparison, types.EmptyJDComparison,
				func() (*types.JDComparison, error) {
					return o.deps.Comparator.Compare(groupCtx, resumeText, jdText, profile.Keywords, profile.Skills)
				})
			return nil
		})
	}
	_ = group.Wait() // degradable stages never return errors

	apply(result, types.StageSkillValidation, skillRes, func(v *types.SkillValidation) { result.SkillValidation = v })

	progress.enter(stageExperienceAnalysis, "Analyzing experience section")
	expRes := runDegradable(types.StageExperience, types.DefaultExperienceAnalysis,
		func() (*types.ExperienceAnalysis, error) {
			return experience.Analyze(experienceText, profile.ActionVerbs), nil
		})
	apply(result, types.StageExperience, expRes, func(v *types.ExperienceAnalysis) { result.Experience = v })

	progress.enter(stageLocationDetection, "Checking location privacy")
	apply(result, types.StagePrivacy, privacyRes, func(v *types.PrivacyReport) { result.Privacy = v })
	if hasJD {
		apply(result, types.StageJDComparison, jdRes, func(v *types.JDComparison) { result.JDComparison = v })
	}

	grammarRes := runDegradable("grammar_check",
		func() *types.GrammarResult { return types.NeutralGrammarResult() },
		func() (*types.GrammarResult, error) {
			return o.deps.Grammar.Check(ctx, resumeText)
		})
	result.Grammar = grammarRes.value
	if grammarRes.warning != "" {
		result.Warnings = append(result.Warnings, grammarRes.warning)
	}

	progress.enter(stageScoreCalculation, "Calculating scores")
	result.Score = scoring.Score(scoring.Inputs{
		Profile:         profile,
		SkillValidation: result.SkillValidation,
		Privacy:         result.Privacy,
		JD:              result.JDComparison,
		Grammar:         result.Grammar,
	})
	result.ComponentStatus[types.StageScoring] = types.StageSuccess

	progress.enter(stageGeneratingResults, "Generating feedback")
	result.SkillFeedback = skillcheck.GenerateFeedback(result.SkillValidation)
	result.Success = true

	if o.deps.Cache != nil {
		o.deps.Cache.Put(cacheKey, result)
	}
	progress.complete("Analysis complete")
	return result, nil
}

// fatal finalizes a result for a fatal error and returns both.
func (o *Orchestrator) fatal(result *types.AnalysisResult, perr *Error) (*types.AnalysisResult, error) {
	result.Success = false
	result.Error = perr.UserMessage
	result.ErrorCategory = string(perr.Category)
	result.ErrorSuggestions = perr.Suggestions
	return result, perr
}
