package insights_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/long2333z/ai-time-menagement/internal/insights"
	"github.com/long2333z/ai-time-menagement/internal/models"
)

var engineNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestEngine() *insights.Engine {
	return insights.NewEngine(insights.WithNow(func() time.Time { return engineNow }))
}

func timeBlock(t models.BlockType, desc string, start time.Time, duration int) models.TimeBlock {
	return models.TimeBlock{
		Start:       start,
		End:         start.Add(time.Duration(duration) * time.Minute),
		Duration:    duration,
		Type:        t,
		Description: desc,
	}
}

var learnerProfile = models.ProfileSignal{
	Identity:   "自我提升学习者",
	Goals:      []string{"系统化学习"},
	Challenges: []string{"学习时间碎片化"},
	WorkStyle:  "成长型",
}

var defaultProfile = models.ProfileSignal{
	Identity:  insights.DefaultIdentity,
	WorkStyle: "平衡型",
}

// TestGenerate_CommuteForLearner — совет по блоку в дороге для учащегося
func TestGenerate_CommuteForLearner(t *testing.T) {
	e := newTestEngine()

	blocks := []models.TimeBlock{
		timeBlock(models.BlockCommute, "早晨通勤时间", at(8, 0), 40),
	}

	result := e.Generate(nil, blocks, learnerProfile)
	require.NotEmpty(t, result)

	// профильная рекомендация идёт первой, за ней — тёмное время
	assert.Equal(t, models.InsightGeneral, result[0].Type)
	assert.Contains(t, result[0].Title, "自我提升学习者")
	assert.Equal(t, models.PriorityHigh, result[0].Priority)

	dark := result[1]
	assert.Equal(t, models.InsightTimeManagement, dark.Type)
	assert.Equal(t, "暗时间挖掘：早晨通勤时间", dark.Title)
	assert.Contains(t, dark.Description, "40分钟")
	assert.Contains(t, dark.Description, "骨传导耳机")
	assert.Equal(t, models.PriorityMedium, dark.Priority) // 40 минут < 60
	assert.True(t, dark.Actionable)
}

// TestGenerate_ShortCommuteSkipped — дорога короче 30 минут совета не даёт
func TestGenerate_ShortCommuteSkipped(t *testing.T) {
	e := newTestEngine()

	blocks := []models.TimeBlock{
		timeBlock(models.BlockCommute, "早晨通勤时间", at(8, 0), 25),
	}

	result := e.Generate(nil, blocks, defaultProfile)
	assert.Empty(t, result)
}

// TestGenerate_DeepWorkPriority — блок от часа даёт высокий приоритет
func TestGenerate_DeepWorkPriority(t *testing.T) {
	e := newTestEngine()

	blocks := []models.TimeBlock{
		timeBlock(models.BlockDeepWork, "深度工作黄金时段", at(9, 0), 90),
	}

	deepProfile := models.ProfileSignal{Identity: insights.DefaultIdentity, WorkStyle: "深度工作型"}
	result := e.Generate(nil, blocks, deepProfile)
	require.Len(t, result, 1)

	assert.Equal(t, models.PriorityHigh, result[0].Priority)
	assert.Contains(t, result[0].Description, "番茄钟")
}

// TestGenerate_Parallelization — пассивная и активная задачи объединяются
func TestGenerate_Parallelization(t *testing.T) {
	e := newTestEngine()

	tasks := []models.Task{
		{Title: "通勤去公司", Duration: 40},
		{Title: "阅读行业报告", Duration: 45},
	}

	result := e.Generate(tasks, nil, defaultProfile)
	require.Len(t, result, 1)

	insight := result[0]
	assert.Equal(t, models.InsightProductivity, insight.Type)
	assert.Contains(t, insight.Title, "通勤去公司")
	assert.Contains(t, insight.Title, "阅读行业报告")
	assert.Contains(t, insight.Description, "45分钟")
	assert.Equal(t, models.PriorityHigh, insight.Priority)
}

// TestGenerate_ParallelizationZeroDuration — у активной задачи без
// длительности экономия оценивается в 30 минут
func TestGenerate_ParallelizationZeroDuration(t *testing.T) {
	e := newTestEngine()

	tasks := []models.Task{
		{Title: "排队办证"},
		{Title: "思考季度规划"},
	}

	result := e.Generate(tasks, nil, defaultProfile)
	require.Len(t, result, 1)
	assert.Contains(t, result[0].Description, "30分钟")
}

// TestGenerate_WorkLifeImbalance — переработка без личного времени
func TestGenerate_WorkLifeImbalance(t *testing.T) {
	e := newTestEngine()

	tasks := []models.Task{
		{Title: "早会", Category: "工作", Duration: 240},
		{Title: "晚会", Category: "工作", Duration: 300},
		{Title: "散步", Category: "个人", Duration: 30},
	}

	result := e.Generate(tasks, nil, defaultProfile)

	var titles []string
	for _, i := range result {
		titles = append(titles, i.Title)
	}
	assert.Contains(t, titles, "⚠️ 工作生活失衡预警")
	assert.Contains(t, titles, "🏃 建议增加运动时间")
}

// TestGenerate_OnlyExerciseInsight — умеренная нагрузка без спорта
// даёт единственный совет о спорте
func TestGenerate_OnlyExerciseInsight(t *testing.T) {
	e := newTestEngine()

	tasks := []models.Task{
		{Title: "写方案", Category: "工作", Duration: 300},
		{Title: "看电影", Category: "个人", Duration: 120},
	}

	result := e.Generate(tasks, nil, defaultProfile)
	require.Len(t, result, 1)
	assert.Equal(t, "🏃 建议增加运动时间", result[0].Title)
	assert.Equal(t, models.PriorityMedium, result[0].Priority)
	assert.Equal(t, models.InsightHealth, result[0].Type)
}

// TestGenerate_ExerciseTaskSuppresses — наличие спорта снимает совет
func TestGenerate_ExerciseTaskSuppresses(t *testing.T) {
	e := newTestEngine()

	tasks := []models.Task{
		{Title: "写方案", Category: "工作", Duration: 300},
		{Title: "跑步", Category: "健康", Duration: 30},
	}

	result := e.Generate(tasks, nil, defaultProfile)
	for _, i := range result {
		assert.NotEqual(t, "🏃 建议增加运动时间", i.Title)
	}
}

// TestGenerate_Deterministic — при фиксированных часах результат воспроизводим
func TestGenerate_Deterministic(t *testing.T) {
	e := newTestEngine()

	tasks := []models.Task{
		{Title: "通勤", Duration: 30},
		{Title: "阅读", Duration: 60},
	}
	blocks := []models.TimeBlock{
		timeBlock(models.BlockShallowWork, "碎片时间", at(10, 0), 20),
	}

	first := e.Generate(tasks, blocks, learnerProfile)
	second := e.Generate(tasks, blocks, learnerProfile)
	assert.Equal(t, first, second)

	for _, i := range first {
		assert.Contains(t, i.ID, fmt.Sprintf("%d", engineNow.UnixMilli()))
	}
}
