package parser

import (
	"fmt"
	"sort"

	"github.com/long2333z/ai-time-menagement/internal/models"
)

// Suggestions даёт короткие советы по списку задач: пересечения по времени,
// перегрузка высоким приоритетом, задачи без расписания, баланс работы и отдыха
func (p *Parser) Suggestions(tasks []models.Task, locale Locale) []string {
	r := p.localeRules(locale)
	texts := r.suggestions
	suggestions := make([]string, 0)

	scheduled := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Scheduled() {
			scheduled = append(scheduled, t)
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].StartTime.Before(*scheduled[j].StartTime)
	})

	for i := 0; i+1 < len(scheduled); i++ {
		current, next := scheduled[i], scheduled[i+1]
		if current.EndTime.After(*next.StartTime) {
			suggestions = append(suggestions, fmt.Sprintf(texts.conflict, current.Title, next.Title))
		}
	}

	highCount := 0
	for _, t := range tasks {
		if t.Priority == models.PriorityHigh {
			highCount++
		}
	}
	if highCount > 3 {
		suggestions = append(suggestions, fmt.Sprintf(texts.tooManyHigh, highCount))
	}

	noTimeCount := 0
	for _, t := range tasks {
		if t.StartTime == nil {
			noTimeCount++
		}
	}
	if noTimeCount > 0 {
		suggestions = append(suggestions, fmt.Sprintf(texts.noTime, noTimeCount))
	}

	workCount := countByCategory(tasks, texts.workCategories)
	personalCount := countByCategory(tasks, texts.personalCategories)
	if workCount > texts.workThreshold && personalCount == 0 {
		suggestions = append(suggestions, texts.noPersonal)
	}

	if r.extraChecks {
		hasExercise := false
		for _, t := range tasks {
			if containsAny(t.SearchText(), texts.exerciseWords) {
				hasExercise = true
				break
			}
		}
		if !hasExercise && len(tasks) > 3 {
			suggestions = append(suggestions, texts.noExercise)
		}

		hasDeepWork := false
		for _, t := range tasks {
			if t.Duration >= 90 && contains(texts.deepWorkCategories, t.Category) {
				hasDeepWork = true
				break
			}
		}
		if !hasDeepWork && workCount > 0 {
			suggestions = append(suggestions, texts.noDeepWork)
		}
	}

	return suggestions
}

func countByCategory(tasks []models.Task, categories []string) int {
	count := 0
	for _, t := range tasks {
		if contains(categories, t.Category) {
			count++
		}
	}
	return count
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
