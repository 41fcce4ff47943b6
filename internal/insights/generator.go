package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/long2333z/ai-time-menagement/internal/models"
)

// Ключевые слова для анализа параллелизации и баланса.
// Наборы двуязычные: текст задач бывает смешанным.
var passiveWords = []string{"通勤", "等待", "排队", "乘车", "飞机", "高铁", "commute", "wait", "queue", "flight", "train"}
var activeWords = []string{"学习", "阅读", "思考", "规划", "整理", "learn", "read", "think", "plan", "organize"}
var exerciseWords = []string{"运动", "健身", "跑步", "瑜伽", "锻炼", "exercise", "gym", "workout", "yoga"}

var workCategories = []string{"Work", "工作"}
var personalCategories = []string{"Personal", "个人", "Health", "健康"}

// Пороги баланса работы и жизни, в минутах
const overworkMinutes = 480
const minPersonalMinutes = 60
const exerciseWorkMinutes = 240

// Engine генерирует рекомендации. Вычисление детерминировано
// при фиксированном источнике времени.
type Engine struct {
	now func() time.Time
}

type EngineOption func(*Engine)

// WithNow подменяет источник времени, нужно в тестах
func WithNow(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate собирает рекомендации из всех генераторов.
// Порядок: тёмное время, параллелизация, баланс; рекомендация
// о распознанном архетипе добавляется в начало списка.
func (e *Engine) Generate(tasks []models.Task, blocks []models.TimeBlock, profile models.ProfileSignal) []models.Insight {
	now := e.now()

	all := make([]models.Insight, 0)
	all = append(all, e.darkTimeInsights(blocks, profile, now)...)
	all = append(all, e.parallelizationInsights(tasks, now)...)
	all = append(all, e.balanceInsights(tasks, now)...)

	if profile.Identity != DefaultIdentity {
		profileInsight := models.Insight{
			ID:          fmt.Sprintf("profile-%d", now.UnixMilli()),
			Type:        models.InsightGeneral,
			Title:       fmt.Sprintf("🎯 AI识别：你是%s", profile.Identity),
			Description: fmt.Sprintf("基于你的任务分析，你的核心目标是：%s。主要挑战：%s。我将为你提供针对性的时间管理建议。", strings.Join(profile.Goals, "、"), strings.Join(profile.Challenges, "、")),
			Priority:    models.PriorityHigh,
			Actionable:  false,
			CreatedAt:   now,
		}
		all = append([]models.Insight{profileInsight}, all...)
	}

	return all
}

// darkTimeInsights подбирает совет по паре (тип блока, архетип).
// Блок без подходящего шаблона рекомендации не даёт.
func (e *Engine) darkTimeInsights(blocks []models.TimeBlock, profile models.ProfileSignal, now time.Time) []models.Insight {
	insights := make([]models.Insight, 0, len(blocks))

	for i, block := range blocks {
		suggestion, actionText := darkTimeTemplate(block, profile)
		if suggestion == "" {
			continue
		}

		priority := models.PriorityMedium
		if block.Duration >= 60 {
			priority = models.PriorityHigh
		}

		insights = append(insights, models.Insight{
			ID:          fmt.Sprintf("dark-time-%d-%d", i, now.UnixMilli()),
			Type:        models.InsightTimeManagement,
			Title:       "暗时间挖掘：" + block.Description,
			Description: suggestion,
			Priority:    priority,
			Actionable:  true,
			ActionText:  actionText,
			CreatedAt:   now,
		})
	}

	return insights
}

func darkTimeTemplate(block models.TimeBlock, profile models.ProfileSignal) (string, string) {
	d := block.Duration

	switch block.Type {
	case models.BlockCommute:
		if d < 30 {
			return "", ""
		}
		if strings.Contains(profile.Identity, "学习者") {
			return fmt.Sprintf("💡 发现%d分钟通勤时间！建议使用骨传导耳机收听专业课程或有声书，既保证安全又能高效学习。推荐工具：Aftershokz骨传导耳机 + 得到/喜马拉雅APP", d),
				"设置通勤学习计划"
		}
		if strings.Contains(profile.Identity, "创作者") {
			return fmt.Sprintf("✨ %d分钟通勤是灵感捕捉的黄金时段！建议使用语音备忘录随时记录创意闪现，或用思维导图APP整理创作思路。推荐工具：讯飞语记 + XMind", d),
				"启用灵感捕捉系统"
		}
		return fmt.Sprintf("🎧 %d分钟通勤时间可以用来：1) 听播客学习行业知识 2) 复盘昨日工作 3) 规划今日重点。推荐：小宇宙APP + Notion快速记录", d),
			"优化通勤时间利用"

	case models.BlockBreak:
		if d >= 20 && d <= 30 {
			return fmt.Sprintf("😴 %d分钟午休时间建议使用NSDR（非睡眠深度休息）方法：通过引导式冥想快速恢复精力，效果媲美1小时睡眠！推荐：Huberman Lab的NSDR音频 + 安静环境", d),
				"尝试NSDR休息法"
		}
		if d > 30 {
			return fmt.Sprintf("🧘 %d分钟休息时间充足！建议：前20分钟NSDR恢复精力，后续时间散步或轻度运动，激活下午的工作状态。", d),
				"制定午休恢复计划"
		}
		return "", ""

	case models.BlockDeepWork:
		if profile.WorkStyle == "深度工作型" {
			return fmt.Sprintf("🎯 发现%d分钟深度工作黄金时段！这是你的认知巅峰期，建议：1) 关闭所有通知 2) 使用番茄钟法（25分钟专注+5分钟休息）3) 处理最重要的创造性任务。推荐工具：Forest专注APP + 降噪耳机", d),
				"锁定深度工作时段"
		}
		return fmt.Sprintf("⚡ %d分钟完整时间块！建议安排需要深度思考的任务，如战略规划、复杂问题解决、学习新技能等。采用双峰工作法，将高认知任务集中在此时段。", d),
			"安排高价值任务"

	case models.BlockShallowWork:
		return fmt.Sprintf("📋 %d分钟碎片时间适合处理：1) 回复邮件/消息 2) 整理文档 3) 快速沟通 4) 日程规划。避免在此时段开始需要深度专注的任务。", d),
			"规划碎片任务清单"

	case models.BlockFree:
		if d < 120 {
			return "", ""
		}
		if strings.Contains(profile.Identity, "创作者") {
			return fmt.Sprintf("🖥️ %d分钟大块自由时间！强烈建议为创作配置双屏或超宽屏显示器，一屏用于写作，一屏用于资料参考和灵感收集，效率可提升40%%以上！", d),
				"优化创作环境"
		}
		if strings.Contains(profile.Identity, "开发") {
			return fmt.Sprintf("💻 %d分钟连续时间！这是攻克技术难题的最佳时机。建议：1) 准备好开发环境 2) 关闭干扰源 3) 使用Pomodoro Technique保持专注节奏", d),
				"安排技术攻坚任务"
		}
		return fmt.Sprintf("🌟 %d分钟完整时间块！建议用于：1) 战略思考和规划 2) 学习新技能 3) 个人项目推进。这是实现自我提升的黄金时段！", d),
			"规划个人成长任务"
	}

	return "", ""
}

// parallelizationInsights ищет пары «пассивная + активная» задача.
// Перебор квадратичный, на дневном списке задач это дёшево.
func (e *Engine) parallelizationInsights(tasks []models.Task, now time.Time) []models.Insight {
	insights := make([]models.Insight, 0)

	index := 0
	for i, passive := range tasks {
		passiveText := strings.ToLower(passive.SearchText())
		if !containsAny(passiveText, passiveWords) {
			continue
		}
		for _, active := range tasks[i+1:] {
			activeText := strings.ToLower(active.SearchText())
			if !containsAny(activeText, activeWords) {
				continue
			}

			saved := active.Duration
			if saved == 0 {
				saved = 30
			}

			insights = append(insights, models.Insight{
				ID:          fmt.Sprintf("parallel-%d-%d", index, now.UnixMilli()),
				Type:        models.InsightProductivity,
				Title:       fmt.Sprintf("任务并行机会：%s + %s", passive.Title, active.Title),
				Description: fmt.Sprintf("💡 被动等待时间可以并行主动学习任务。具体方法：使用移动设备或语音工具在等待时完成学习任务。这样可以节省至少%d分钟的时间！", saved),
				Priority:    models.PriorityHigh,
				Actionable:  true,
				ActionText:  "设置并行任务",
				CreatedAt:   now,
			})
			index++
		}
	}

	return insights
}

// balanceInsights — две независимые проверки: переработка без личного
// времени и отсутствие спорта при заметной рабочей нагрузке
func (e *Engine) balanceInsights(tasks []models.Task, now time.Time) []models.Insight {
	insights := make([]models.Insight, 0, 2)

	workMinutes, personalMinutes := 0, 0
	for _, t := range tasks {
		if contains(workCategories, t.Category) {
			workMinutes += t.Duration
		}
		if contains(personalCategories, t.Category) {
			personalMinutes += t.Duration
		}
	}

	if workMinutes > overworkMinutes && personalMinutes < minPersonalMinutes {
		insights = append(insights, models.Insight{
			ID:          fmt.Sprintf("balance-work-%d", now.UnixMilli()),
			Type:        models.InsightGeneral,
			Title:       "⚠️ 工作生活失衡预警",
			Description: fmt.Sprintf("今日工作时间%.1f小时，个人时间仅%d分钟。长期高强度工作会导致效率下降和倦怠。建议：1) 每工作90分钟休息10分钟 2) 安排至少30分钟运动或放松 3) 设置工作结束时间边界", float64(workMinutes)/60, personalMinutes),
			Priority:    models.PriorityHigh,
			Actionable:  true,
			ActionText:  "添加休息和个人时间",
			CreatedAt:   now,
		})
	}

	hasExercise := false
	for _, t := range tasks {
		if containsAny(strings.ToLower(t.SearchText()), exerciseWords) {
			hasExercise = true
			break
		}
	}
	if !hasExercise && workMinutes > exerciseWorkMinutes {
		insights = append(insights, models.Insight{
			ID:          fmt.Sprintf("balance-exercise-%d", now.UnixMilli()),
			Type:        models.InsightHealth,
			Title:       "🏃 建议增加运动时间",
			Description: "今日缺少运动安排。研究表明，适度运动可提升认知能力和工作效率20-30%。建议：1) 午休后散步15分钟 2) 工作间隙做办公室拉伸 3) 晚间安排30分钟有氧运动。推荐APP：Keep、Nike Training Club",
			Priority:    models.PriorityMedium,
			Actionable:  true,
			ActionText:  "添加运动计划",
			CreatedAt:   now,
		})
	}

	return insights
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
