package insights

import (
	"sort"
	"time"

	"github.com/long2333z/ai-time-menagement/internal/models"
)

// Окно анализа — рабочий день с 06:00 до 23:00.
const windowStartHour = 6
const windowEndHour = 23

// Зазоры короче 15 минут — шум, финальный вечерний блок — от 30 минут.
const minGapMinutes = 15
const minEveningMinutes = 30

// AnalyzeSchedule находит «тёмное время» — незанятые интервалы между
// задачами. Задачи без обеих временных границ игнорируются: они не могут
// ограничить зазор. Без валидных задач возвращается пустой список.
func AnalyzeSchedule(tasks []models.Task) []models.TimeBlock {
	scheduled := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Scheduled() {
			scheduled = append(scheduled, t)
		}
	}

	blocks := make([]models.TimeBlock, 0)
	if len(scheduled) == 0 {
		return blocks
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].StartTime.Before(*scheduled[j].StartTime)
	})

	first := *scheduled[0].StartTime
	dayStart := time.Date(first.Year(), first.Month(), first.Day(), windowStartHour, 0, 0, 0, first.Location())
	dayEnd := time.Date(first.Year(), first.Month(), first.Day(), windowEndHour, 0, 0, 0, first.Location())

	current := dayStart
	for _, t := range scheduled {
		if current.Before(*t.StartTime) {
			gap := int(t.StartTime.Sub(current).Minutes())
			if gap >= minGapMinutes {
				if block := classifyBlock(current, *t.StartTime); block != nil {
					blocks = append(blocks, *block)
				}
			}
		}
		if t.EndTime.After(current) {
			current = *t.EndTime
		}
	}

	if current.Before(dayEnd) {
		gap := int(dayEnd.Sub(current).Minutes())
		if gap >= minEveningMinutes {
			blocks = append(blocks, models.TimeBlock{
				Start:       current,
				End:         dayEnd,
				Duration:    gap,
				Type:        models.BlockFree,
				Description: "晚间自由时间",
			})
		}
	}

	return blocks
}

// classifyBlock определяет тип зазора. Правила проверяются в фиксированном
// порядке, побеждает первое совпадение. Правила не покрывают все случаи:
// зазор, не подошедший ни под одно, отбрасывается.
func classifyBlock(start, end time.Time) *models.TimeBlock {
	duration := int(end.Sub(start).Minutes())
	hour := start.Hour()

	block := models.TimeBlock{Start: start, End: end, Duration: duration}

	if (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19) {
		if duration >= 20 && duration <= 120 {
			block.Type = models.BlockCommute
			if hour < 12 {
				block.Description = "早晨通勤时间"
			} else {
				block.Description = "晚间通勤时间"
			}
			return &block
		}
	}

	if hour >= 12 && hour <= 14 && duration >= 30 {
		block.Type = models.BlockBreak
		block.Description = "午休时间"
		return &block
	}

	if duration >= 90 && ((hour >= 9 && hour <= 11) || (hour >= 14 && hour <= 16)) {
		block.Type = models.BlockDeepWork
		block.Description = "深度工作黄金时段"
		return &block
	}

	if duration >= 15 && duration < 45 {
		block.Type = models.BlockShallowWork
		block.Description = "碎片时间"
		return &block
	}

	if duration >= 45 {
		block.Type = models.BlockFree
		block.Description = "自由时间块"
		return &block
	}

	return nil
}
