package parser

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/long2333z/ai-time-menagement/internal/models"
)

// parsedTask — атрибуты задачи, извлечённые из одной фразы
type parsedTask struct {
	title     string
	startTime *time.Time
	duration  int
	priority  models.Priority
	category  string
	tags      []string
}

// extractClause разбирает одну фразу. Возвращает nil, если фраза
// не похожа на задачу: лучше пропустить задачу, чем создать мусор
// из констатации факта или настроения.
func extractClause(r *Rules, clause string, now time.Time) *parsedTask {
	matchText := clause
	if r.foldCase {
		matchText = strings.ToLower(clause)
	}

	if !containsAny(matchText, r.actionVerbs) && !containsAny(matchText, r.taskIndicators) {
		return nil
	}

	return &parsedTask{
		title:     cleanTitle(r, clause),
		startTime: extractStartTime(r, matchText, now),
		duration:  extractDuration(r, matchText),
		priority:  determinePriority(r, matchText),
		category:  determineCategory(r, matchText),
		tags:      extractTags(r, matchText),
	}
}

// cleanTitle убирает вводные обороты и ссылки на время,
// первый символ переводится в верхний регистр.
// Если после чистки ничего не осталось — возвращается исходная фраза,
// название задачи не может быть пустым.
func cleanTitle(r *Rules, clause string) string {
	title := r.intentPrefixRe.ReplaceAllString(clause, "")
	title = r.stripTimeRe.ReplaceAllString(title, "")
	title = r.stripDayRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	if title == "" {
		return clause
	}

	runes := []rune(title)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// extractStartTime пробует правила по порядку: явное время по часам,
// затем период дня. Если время не названо в тексте — оно не угадывается,
// задача остаётся без startTime.
func extractStartTime(r *Rules, s string, now time.Time) *time.Time {
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, off := range r.dayOffsets {
		if strings.Contains(s, off.keyword) {
			base = base.AddDate(0, 0, off.days)
			break
		}
	}

	for _, re := range r.clockRes {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}

		hours, _ := strconv.Atoi(m[1])
		if hours > 23 {
			continue
		}

		minutes := 0
		if len(m) > 2 && m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}

		var pm, am bool
		if len(m) > 3 && m[3] != "" {
			pm = m[3] == "pm"
			am = m[3] == "am"
		} else {
			pm = containsAny(s, r.pmWords)
			am = containsAny(s, r.amWords)
		}
		if pm && hours < 12 {
			hours += 12
		}
		if am && hours == 12 {
			hours = 0
		}

		t := base.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
		return &t
	}

	for _, p := range r.periods {
		if strings.Contains(s, p.keyword) {
			t := base.Add(time.Duration(p.hour) * time.Hour)
			return &t
		}
	}

	return nil
}

// extractDuration: явное числовое выражение, потом словарь
// ключевых слов, потом длительность по типу задачи, иначе час.
func extractDuration(r *Rules, s string) int {
	bestIdx, bestMinutes := -1, 0
	if loc := r.minuteRe.FindStringSubmatchIndex(s); loc != nil {
		v, _ := strconv.Atoi(s[loc[2]:loc[3]])
		bestIdx, bestMinutes = loc[0], v
	}
	if loc := r.hourRe.FindStringSubmatchIndex(s); loc != nil {
		if bestIdx == -1 || loc[0] < bestIdx {
			v, _ := strconv.Atoi(s[loc[2]:loc[3]])
			bestIdx, bestMinutes = loc[0], v*60
		}
	}
	if bestIdx >= 0 {
		return bestMinutes
	}

	for _, kw := range r.durationKeywords {
		if strings.Contains(s, kw.keyword) {
			return kw.minutes
		}
	}

	for _, cd := range r.categoryDefaults {
		if containsAny(s, cd.keywords) {
			return cd.minutes
		}
	}

	return r.defaultDuration
}

// determinePriority: сначала список высокого приоритета, затем низкого.
// Фраза с противоречивыми маркерами получает high.
func determinePriority(r *Rules, s string) models.Priority {
	if containsAny(s, r.highPriority) {
		return models.PriorityHigh
	}
	if containsAny(s, r.lowPriority) {
		return models.PriorityLow
	}
	return models.PriorityMedium
}

// determineCategory возвращает первую категорию с совпадением,
// ранжирования по количеству совпадений нет
func determineCategory(r *Rules, s string) string {
	for _, cat := range r.categories {
		if containsAny(s, cat.keywords) {
			return cat.name
		}
	}
	return ""
}

// extractTags собирает #теги в порядке появления, дубликаты сохраняются
func extractTags(r *Rules, s string) []string {
	matches := r.tagRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
