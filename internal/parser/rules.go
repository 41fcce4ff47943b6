package parser

import "regexp"

type Locale string

const LocaleEN Locale = "en"
const LocaleZH Locale = "zh"

// periodRule — ключевое слово периода дня и час его начала
type periodRule struct {
	keyword string
	hour    int
}

// durationKeyword — ключевое слово длительности и его значение в минутах
type durationKeyword struct {
	keyword string
	minutes int
}

// categoryDefault — длительность по умолчанию для типа задачи
type categoryDefault struct {
	keywords []string
	minutes  int
}

// categoryRule — категория и её ключевые слова, порядок проверки фиксирован
type categoryRule struct {
	name     string
	keywords []string
}

// dayOffset — слово-ссылка на день и сдвиг в днях от сегодня
type dayOffset struct {
	keyword string
	days    int
}

// suggestionTexts — шаблоны советов по оптимизации списка задач
type suggestionTexts struct {
	conflict      string // два %s — названия задач
	tooManyHigh   string // %d — количество
	noTime        string // %d — количество
	noPersonal    string
	noExercise    string
	noDeepWork    string
	workThreshold int // порог количества рабочих задач для noPersonal

	workCategories     []string
	personalCategories []string
	exerciseWords      []string
	deepWorkCategories []string
}

// Rules — полная таблица правил разбора для одного языка.
// Все списки упорядочены: побеждает первое совпадение,
// семантика не должна зависеть от порядка обхода map.
type Rules struct {
	splitRe      *regexp.Regexp
	minClauseLen int  // фрагменты короче отбрасываются (в рунах)
	foldCase     bool // приводить ли текст к нижнему регистру перед разбором

	actionVerbs    []string
	taskIndicators []string

	intentPrefixRe *regexp.Regexp
	stripTimeRe    *regexp.Regexp
	stripDayRe     *regexp.Regexp

	clockRes   []*regexp.Regexp // группа 1 — час, группа 2 — минуты (опц.), группа 3 — am/pm (опц.)
	pmWords    []string
	amWords    []string
	periods    []periodRule
	dayOffsets []dayOffset

	minuteRe         *regexp.Regexp
	hourRe           *regexp.Regexp
	durationKeywords []durationKeyword
	categoryDefaults []categoryDefault
	defaultDuration  int

	highPriority []string
	lowPriority  []string

	categories []categoryRule

	tagRe *regexp.Regexp

	suggestions suggestionTexts
	extraChecks bool // проверки на спорт и глубокую работу (китайская версия)
}

// EnglishRules — таблица правил для английского языка
func EnglishRules() *Rules {
	return &Rules{
		splitRe:      regexp.MustCompile(`(?i)[.!?;]|\band\b|\bthen\b`),
		minClauseLen: 5,
		foldCase:     true,

		actionVerbs: []string{
			"do", "make", "write", "call", "email", "meet", "review", "finish",
			"complete", "prepare", "send", "schedule", "plan", "work on",
			"attend", "join",
		},
		taskIndicators: []string{"need", "have to"},

		intentPrefixRe: regexp.MustCompile(`(?i)^(i need to|i have to|i want to|i should|i will|i'll|let's|we should|we need to)\s+`),
		stripTimeRe:    regexp.MustCompile(`(?i)\s+(at|by|before|after|around|in the|during)\s+\d+`),
		stripDayRe:     regexp.MustCompile(`(?i)\s+(morning|afternoon|evening|night|today|tomorrow)`),

		clockRes: []*regexp.Regexp{
			regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`),
		},
		periods: []periodRule{
			{"morning", 9},
			{"afternoon", 13},
			{"evening", 18},
			{"night", 21},
		},
		dayOffsets: []dayOffset{
			{"tomorrow", 1},
			{"next week", 7},
		},

		minuteRe: regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?)\b`),
		hourRe:   regexp.MustCompile(`(\d+)\s*(?:hours?|hrs?)\b`),
		durationKeywords: []durationKeyword{
			{"quick", 15},
			{"short", 30},
			{"brief", 30},
			{"hours", 60},
			{"hour", 60},
			{"long", 120},
			{"half day", 240},
			{"full day", 480},
		},
		categoryDefaults: []categoryDefault{
			{[]string{"meeting", "call"}, 30},
		},
		defaultDuration: 60,

		highPriority: []string{
			"urgent", "asap", "critical", "important", "priority", "deadline",
			"must", "need to", "have to", "crucial", "vital", "emergency",
		},
		lowPriority: []string{
			"maybe", "if possible", "when free", "sometime", "eventually",
			"nice to have", "optional", "consider", "think about",
		},

		categories: []categoryRule{
			{"Work", []string{"meeting", "call", "email", "report", "presentation", "project", "deadline", "client"}},
			{"Personal", []string{"gym", "exercise", "workout", "doctor", "appointment", "shopping", "errands"}},
			{"Learning", []string{"read", "study", "course", "learn", "practice", "tutorial", "research"}},
			{"Social", []string{"lunch", "dinner", "coffee", "catch up", "hangout", "party", "event"}},
			{"Health", []string{"meditation", "yoga", "sleep", "rest", "break", "walk", "run"}},
		},

		tagRe: regexp.MustCompile(`#(\w+)`),

		suggestions: suggestionTexts{
			conflict:      `Time conflict detected between "%s" and "%s"`,
			tooManyHigh:   "You have %d high-priority tasks. Consider focusing on the top 3 most critical ones.",
			noTime:        "%d task(s) don't have a scheduled time. Consider adding time blocks for better planning.",
			noPersonal:    "Don't forget to schedule some personal time or breaks for better work-life balance.",
			workThreshold: 0,

			workCategories:     []string{"Work"},
			personalCategories: []string{"Personal", "Health"},
		},
		extraChecks: false,
	}
}

// ChineseRules — таблица правил для китайского языка.
// Таблица периодов включает и английские слова: в транскриптах
// китайская и английская лексика часто перемешаны.
func ChineseRules() *Rules {
	return &Rules{
		splitRe:      regexp.MustCompile(`[。！？；，]|然后|接着|之后|再|还要|另外|以及`),
		minClauseLen: 3,
		foldCase:     false,

		actionVerbs: []string{
			"做", "完成", "处理", "开", "参加", "进行", "准备", "写", "看", "读",
			"学", "练", "复习", "整理", "安排", "计划", "讨论", "沟通", "联系",
			"发送", "提交", "审核", "检查", "测试", "修改", "更新", "优化",
		},
		taskIndicators: []string{"要", "需要", "得", "应该"},

		intentPrefixRe: regexp.MustCompile(`^(我要|我需要|我得|我应该|需要|要|得|应该)\s*`),
		stripTimeRe:    regexp.MustCompile(`\s*(在|于|到)\s*\d+`),
		stripDayRe:     regexp.MustCompile(`\s*(早上|上午|中午|下午|晚上|明天|后天)`),

		clockRes: []*regexp.Regexp{
			regexp.MustCompile(`(\d{1,2})[点时](?:(\d{1,2})分?)?`),
			regexp.MustCompile(`(\d{1,2}):(\d{2})`),
		},
		pmWords: []string{"下午", "晚上"},
		amWords: []string{"早上", "上午"},
		periods: []periodRule{
			{"早上", 6},
			{"上午", 9},
			{"中午", 12},
			{"下午", 13},
			{"傍晚", 18},
			{"晚上", 19},
			{"深夜", 22},
			{"morning", 9},
			{"afternoon", 13},
			{"evening", 18},
			{"night", 21},
		},
		dayOffsets: []dayOffset{
			{"明天", 1},
			{"后天", 2},
			{"下周", 7},
		},

		minuteRe: regexp.MustCompile(`(\d+)\s*分钟`),
		hourRe:   regexp.MustCompile(`(\d+)\s*个?小时`),
		durationKeywords: []durationKeyword{
			{"快速", 15},
			{"简短", 20},
			{"短暂", 30},
			{"半小时", 30},
			{"一小时", 60},
			{"1小时", 60},
			{"两小时", 120},
			{"2小时", 120},
			{"半天", 240},
			{"一天", 480},
			{"全天", 480},
		},
		categoryDefaults: []categoryDefault{
			{[]string{"会议", "开会"}, 60},
			{[]string{"电话", "沟通"}, 30},
		},
		defaultDuration: 60,

		highPriority: []string{
			"紧急", "重要", "优先", "必须", "务必", "赶紧", "马上", "立即", "尽快",
			"截止", "deadline", "关键", "核心", "急", "asap",
		},
		lowPriority: []string{
			"可选", "有空", "闲时", "随便", "看情况", "不急", "慢慢", "有时间",
			"考虑", "想想", "或许", "可能",
		},

		categories: []categoryRule{
			{"工作", []string{"会议", "开会", "汇报", "项目", "任务", "邮件", "电话", "客户", "方案", "文档", "报告"}},
			{"学习", []string{"学习", "阅读", "看书", "课程", "培训", "研究", "练习", "复习", "预习", "作业"}},
			{"个人", []string{"购物", "理发", "洗衣", "打扫", "整理", "收拾", "家务", "办事", "缴费"}},
			{"健康", []string{"运动", "健身", "跑步", "瑜伽", "游泳", "锻炼", "体检", "看病", "医院", "休息", "睡觉"}},
			{"社交", []string{"聚餐", "约会", "见面", "聊天", "聚会", "活动", "朋友", "家人", "吃饭", "喝茶", "咖啡"}},
			{"娱乐", []string{"电影", "游戏", "音乐", "旅游", "逛街", "散步", "放松", "娱乐"}},
		},

		tagRe: regexp.MustCompile(`#([\p{Han}\w]+)`),

		suggestions: suggestionTexts{
			conflict:      "时间冲突：「%s」与「%s」时间重叠",
			tooManyHigh:   "你有%d个高优先级任务，建议聚焦最重要的3个，避免精力分散",
			noTime:        "有%d个任务未安排具体时间，建议为它们分配时间块以提高执行率",
			noPersonal:    "今日工作任务较多，别忘了安排一些个人时间或休息，保持工作生活平衡",
			noExercise:    "建议安排20-30分钟运动时间，适度运动能提升工作效率和专注力",
			noDeepWork:    "建议安排至少一个90分钟的深度工作时段，用于处理复杂任务或创造性工作",
			workThreshold: 5,

			workCategories:     []string{"工作"},
			personalCategories: []string{"个人", "健康", "娱乐"},
			exerciseWords:      []string{"运动", "健身", "锻炼"},
			deepWorkCategories: []string{"工作", "学习"},
		},
		extraChecks: true,
	}
}
