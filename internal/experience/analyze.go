// Package experience analyzes the quality of the experience section:
// job entries, dates, bullets, and quantified achievements. The score is
// informational and reported alongside the main components.
package experience

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// minSectionLength is the minimum experience text length worth analyzing.
const minSectionLength = 50

var (
	dateRe = regexp.MustCompile(`(?i)(20\d{2}|19\d{2}|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|Present|Current)`)
	yearRe = regexp.MustCompile(`20\d{2}|19\d{2}`)

	titleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(engineer|developer|manager|analyst|designer|consultant|intern|lead|director|specialist)`),
		regexp.MustCompile(`(?i)(senior|junior|associate|principal|staff|head)`),
	}

	bulletRe     = regexp.MustCompile(`^\s*(?:[•\-*◦]|\d+\.)`)
	lineMetricRe = regexp.MustCompile(`\d+%|\$\d+|\d+[kKmMbB]`)

	achievementRes = []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\$[\d,]+`),
		regexp.MustCompile(`\d+[kKmMbB]\b`),
		regexp.MustCompile(`(?i)\d+\s*(?:users|customers|clients|projects|teams|members)`),
		regexp.MustCompile(`(?i)(?:increased|decreased|improved|reduced|grew|saved|generated|managed|led)\s+(?:by\s+)?\d+`),
		regexp.MustCompile(`(?i)\d+x\s+(?:faster|better|improvement)`),
	}
)

type jobEntry struct {
	hasDates    bool
	hasMetrics  bool
	bulletCount int
}

// Analyze scores the experience section out of 20 and reports strengths
// and improvements. actionVerbs is the verb set extracted from the resume.
func Analyze(experienceText string, actionVerbs []string) *types.ExperienceAnalysis {
	result := &types.ExperienceAnalysis{
		MaxScore:     types.MaxExperienceScore,
		Feedback:     []string{},
		Strengths:    []string{},
		Improvements: []string{},
	}

	if len(strings.TrimSpace(experienceText)) < minSectionLength {
		result.Feedback = append(result.Feedback, "Experience section is missing or too short")
		result.Improvements = append(result.Improvements, "Add detailed work experience with job titles, companies, and dates")
		return result
	}

	jobs := parseJobEntries(experienceText)
	result.Metrics.TotalJobs = len(jobs)
	for _, job := range jobs {
		if job.hasDates {
			result.Metrics.JobsWithDates++
		}
		if job.bulletCount > 0 {
			result.Metrics.JobsWithBullets++
		}
		if job.hasMetrics {
			result.Metrics.JobsWithMetrics++
		}
	}

	expLower := strings.ToLower(experienceText)
	for _, verb := range actionVerbs {
		if strings.Contains(expLower, strings.ToLower(verb)) {
			result.Metrics.ActionVerbsUsed++
		}
	}

	result.Metrics.QuantifiedAchievements = countQuantified(experienceText)
	result.Score = scoreMetrics(result.Metrics)
	addFeedback(result)
	return result
}

// parseJobEntries walks lines, opening a new entry on non-bullet lines
// that carry a date or a title, and counting bullets under the current one.
func parseJobEntries(text string) []jobEntry {
	var jobs []jobEntry
	var current *jobEntry

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		hasDate := dateRe.MatchString(line)
		hasTitle := false
		for _, re := range titleRes {
			if re.MatchString(line) {
				hasTitle = true
				break
			}
		}
		isBullet := bulletRe.MatchString(line)

		switch {
		case (hasDate || hasTitle) && !isBullet:
			if current != nil {
				jobs = append(jobs, *current)
			}
			current = &jobEntry{
				hasDates:   hasDate,
				hasMetrics: lineMetricRe.MatchString(line),
			}
		case isBullet && current != nil:
			current.bulletCount++
			if lineMetricRe.MatchString(line) || achievementRes[3].MatchString(line) {
				current.hasMetrics = true
			}
		}
	}
	if current != nil {
		jobs = append(jobs, *current)
	}

	// Dense unstructured sections still describe at least one position.
	if len(jobs) == 0 && len(text) > 100 {
		jobs = append(jobs, jobEntry{
			hasDates:    yearRe.MatchString(text),
			hasMetrics:  lineMetricRe.MatchString(text),
			bulletCount: strings.Count(text, "•") + strings.Count(text, "-"),
		})
	}

	return jobs
}

func countQuantified(text string) int {
	count := 0
	for _, re := range achievementRes {
		count += len(re.FindAllString(text, -1))
	}
	return count
}

// scoreMetrics applies the banded scoring: jobs 0-5, dates 0-3,
// bullets 0-4, quantified achievements 0-5, action verbs 0-3.
func scoreMetrics(m types.ExperienceMetrics) float64 {
	score := 0.0

	switch {
	case m.TotalJobs >= 3:
		score += 5
	case m.TotalJobs >= 2:
		score += 4
	case m.TotalJobs >= 1:
		score += 3
	}

	if m.TotalJobs > 0 {
		dateRatio := float64(m.JobsWithDates) / float64(m.TotalJobs)
		switch {
		case dateRatio >= 0.9:
			score += 3
		case dateRatio >= 0.7:
			score += 2
		case dateRatio >= 0.5:
			score += 1
		}

		bulletRatio := float64(m.JobsWithBullets) / float64(m.TotalJobs)
		switch {
		case bulletRatio >= 0.9:
			score += 4
		case bulletRatio >= 0.7:
			score += 3
		case bulletRatio >= 0.5:
			score += 2
		case bulletRatio > 0:
			score += 1
		}
	}

	switch {
	case m.QuantifiedAchievements >= 8:
		score += 5
	case m.QuantifiedAchievements >= 6:
		score += 4
	case m.QuantifiedAchievements >= 4:
		score += 3
	case m.QuantifiedAchievements >= 2:
		score += 2
	case m.QuantifiedAchievements >= 1:
		score += 1
	}

	switch {
	case m.ActionVerbsUsed >= 10:
		score += 3
	case m.ActionVerbsUsed >= 7:
		score += 2
	case m.ActionVerbsUsed >= 4:
		score += 1
	}

	if score > types.MaxExperienceScore {
		score = types.MaxExperienceScore
	}
	return score
}

func addFeedback(r *types.ExperienceAnalysis) {
	m := r.Metrics

	if m.TotalJobs >= 2 {
		r.Strengths = append(r.Strengths, fmt.Sprintf("%d job entries documented", m.TotalJobs))
	}
	if m.TotalJobs > 0 && m.JobsWithDates == m.TotalJobs {
		r.Strengths = append(r.Strengths, "All positions include dates")
	}
	if m.QuantifiedAchievements >= 5 {
		r.Strengths = append(r.Strengths, fmt.Sprintf("%d quantified achievements", m.QuantifiedAchievements))
	}
	if m.ActionVerbsUsed >= 8 {
		r.Strengths = append(r.Strengths, fmt.Sprintf("Strong use of action verbs (%d found)", m.ActionVerbsUsed))
	}

	if m.TotalJobs < 2 {
		r.Improvements = append(r.Improvements, "Add more work experience entries if available")
	}
	if m.JobsWithDates < m.TotalJobs {
		r.Improvements = append(r.Improvements, fmt.Sprintf("Add dates to %d job(s) missing date information", m.TotalJobs-m.JobsWithDates))
	}
	if m.QuantifiedAchievements < 3 {
		r.Improvements = append(r.Improvements, "Add more quantified achievements (numbers, percentages, metrics)")
	}
	if m.ActionVerbsUsed < 5 {
		r.Improvements = append(r.Improvements, "Use more action verbs to describe accomplishments")
	}
	if m.TotalJobs > 0 && m.JobsWithBullets < m.TotalJobs {
		r.Improvements = append(r.Improvements, "Use bullet points to list responsibilities and achievements")
	}

	switch {
	case r.Score >= 16:
		r.Feedback = append(r.Feedback, "Excellent experience section with strong details")
	case r.Score >= 12:
		r.Feedback = append(r.Feedback, "Good experience section with room for improvement")
	case r.Score >= 8:
		r.Feedback = append(r.Feedback, "Experience section needs more detail and quantification")
	default:
		r.Feedback = append(r.Feedback, "Experience section requires significant improvement")
	}
}
