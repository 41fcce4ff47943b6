package parser_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/long2333z/ai-time-menagement/internal/models"
	"github.com/long2333z/ai-time-menagement/internal/parser"
)

// фиксированный понедельник, 08:00 локального времени
var testNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestParser() *parser.Parser {
	return parser.New(parser.WithNow(func() time.Time { return testNow }))
}

func day(dayOffset, hour, minute int) time.Time {
	return time.Date(2025, 3, 10+dayOffset, hour, minute, 0, 0, time.UTC)
}

// TestExtract_English тестирует разбор английского транскрипта
func TestExtract_English(t *testing.T) {
	p := newTestParser()

	transcript := "I need to call the client tomorrow morning and maybe review the report sometime. ok"
	tasks := p.Extract(transcript, parser.LocaleEN)

	require.Len(t, tasks, 2)

	first := tasks[0]
	assert.Equal(t, "Call the client", first.Title)
	require.NotNil(t, first.StartTime)
	assert.Equal(t, day(1, 9, 0), *first.StartTime) // завтра, утро = 09:00
	assert.Equal(t, 30, first.Duration)             // call — звонок, 30 минут
	assert.Equal(t, models.PriorityHigh, first.Priority)
	assert.Equal(t, "Work", first.Category)
	assert.Equal(t, models.StatusPending, first.Status)

	second := tasks[1]
	assert.Equal(t, models.PriorityLow, second.Priority) // maybe
	assert.Equal(t, "Work", second.Category)             // report
	assert.Equal(t, 60, second.Duration)                 // длительность по умолчанию
	assert.Nil(t, second.StartTime)
	assert.Nil(t, second.EndTime)
}

// TestExtract_EnglishClock тестирует явное время с am/pm
func TestExtract_EnglishClock(t *testing.T) {
	p := newTestParser()

	tasks := p.Extract("Schedule a meeting at 3pm for 45 minutes #standup", parser.LocaleEN)
	require.Len(t, tasks, 1)

	task := tasks[0]
	require.NotNil(t, task.StartTime)
	assert.Equal(t, day(0, 15, 0), *task.StartTime)
	assert.Equal(t, 45, task.Duration)
	assert.Equal(t, "Work", task.Category)
	assert.Equal(t, []string{"standup"}, task.Tags)
}

// TestExtract_Chinese тестирует разбор китайского транскрипта
func TestExtract_Chinese(t *testing.T) {
	p := newTestParser()

	transcript := "明天上午9点开会讨论项目方案，大概一个小时，然后下午3点去健身房锻炼1小时"
	tasks := p.Extract(transcript, parser.LocaleZH)

	require.Len(t, tasks, 2)

	meeting := tasks[0]
	assert.Equal(t, "9点开会讨论项目方案", meeting.Title)
	require.NotNil(t, meeting.StartTime)
	assert.Equal(t, day(1, 9, 0), *meeting.StartTime)
	assert.Equal(t, 60, meeting.Duration) // встреча — 60 минут по умолчанию
	assert.Equal(t, "工作", meeting.Category)

	workout := tasks[1]
	require.NotNil(t, workout.StartTime)
	assert.Equal(t, day(0, 15, 0), *workout.StartTime) // 下午3点 = 15:00
	assert.Equal(t, 60, workout.Duration)              // 1小时
	assert.Equal(t, "健康", workout.Category)
}

// TestExtract_ChineseClockMinutes тестирует формат 9点30分
func TestExtract_ChineseClockMinutes(t *testing.T) {
	p := newTestParser()

	tasks := p.Extract("上午9点30分开会", parser.LocaleZH)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].StartTime)
	assert.Equal(t, day(0, 9, 30), *tasks[0].StartTime)
}

// TestExtract_ChineseDurationNotClock — «2小时» это длительность, не время
func TestExtract_ChineseDurationNotClock(t *testing.T) {
	p := newTestParser()

	tasks := p.Extract("需要学习2小时", parser.LocaleZH)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, "学习2小时", task.Title)
	assert.Nil(t, task.StartTime)
	assert.Equal(t, 120, task.Duration)
	assert.Equal(t, "学习", task.Category)
}

// TestExtract_DropsNonTasks — констатации и короткие фрагменты не становятся задачами
func TestExtract_DropsNonTasks(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name       string
		transcript string
		locale     parser.Locale
	}{
		{"пустая строка", "", parser.LocaleEN},
		{"только пунктуация", "... !!!", parser.LocaleEN},
		{"без глаголов действия", "the weather is nice today somehow", parser.LocaleEN},
		{"короткие фрагменты", "很紧急，好的", parser.LocaleZH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := p.Extract(tt.transcript, tt.locale)
			assert.Empty(t, tasks)
		})
	}
}

// TestExtract_EndTimeInvariant — endTime всегда равен startTime + duration
func TestExtract_EndTimeInvariant(t *testing.T) {
	p := newTestParser()

	tasks := p.Extract("明天上午9点开会，需要学习2小时", parser.LocaleZH)
	require.NotEmpty(t, tasks)

	for _, task := range tasks {
		if task.StartTime == nil {
			assert.Nil(t, task.EndTime)
			continue
		}
		require.NotNil(t, task.EndTime)
		expected := task.StartTime.Add(time.Duration(task.Duration) * time.Minute)
		assert.Equal(t, expected, *task.EndTime)
	}
}

// TestExtract_IDs — идентификаторы детерминированы при фиксированных часах
func TestExtract_IDs(t *testing.T) {
	p := newTestParser()

	tasks := p.Extract("Schedule a meeting. Review the report", parser.LocaleEN)
	require.Len(t, tasks, 2)

	assert.Equal(t, fmt.Sprintf("task-%d-0", testNow.UnixMilli()), tasks[0].ID)
	assert.Equal(t, fmt.Sprintf("task-%d-1", testNow.UnixMilli()), tasks[1].ID)
}

// TestExtract_UnknownLocale — неизвестная локаль разбирается английскими правилами
func TestExtract_UnknownLocale(t *testing.T) {
	p := newTestParser()

	tasks := p.Extract("Schedule a meeting with the client", parser.Locale("de"))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Work", tasks[0].Category)
}
