package insights

import (
	"strings"

	"github.com/long2333z/ai-time-menagement/internal/models"
)

// DefaultIdentity — архетип по умолчанию, когда по задачам ничего не видно
const DefaultIdentity = "知识工作者"

// archetype — профиль пользователя, выводимый по ключевым словам.
// Порядок проверки фиксирован: текст, подходящий и под творчество,
// и под встречи, даст творческий архетип, он проверяется первым.
type archetype struct {
	keywords   []string
	identity   string
	goals      []string
	challenges []string
	workStyle  string
}

var archetypes = []archetype{
	{
		keywords:   []string{"写作", "创作", "文章", "内容", "设计"},
		identity:   "深度内容创作者",
		goals:      []string{"保持创作灵感", "提升内容质量", "高效完成创作任务"},
		challenges: []string{"灵感捕捉困难", "长时间专注写作", "创意枯竭"},
		workStyle:  "深度工作型",
	},
	{
		keywords:   []string{"学习", "课程", "阅读", "研究", "练习"},
		identity:   "自我提升学习者",
		goals:      []string{"系统化学习", "知识内化", "技能提升"},
		challenges: []string{"学习时间碎片化", "知识吸收效率低", "缺乏持续动力"},
		workStyle:  "成长型",
	},
	{
		keywords:   []string{"会议", "协调", "管理", "汇报", "评审"},
		identity:   "项目协调管理者",
		goals:      []string{"高效协调团队", "推进项目进度", "平衡多任务"},
		challenges: []string{"会议过多", "深度工作时间不足", "精力分散"},
		workStyle:  "协调型",
	},
	{
		keywords:   []string{"开发", "编码", "调试", "代码", "技术"},
		identity:   "技术开发工程师",
		goals:      []string{"深度专注编码", "解决技术难题", "提升代码质量"},
		challenges: []string{"频繁被打断", "需要长时间专注", "技术攻坚压力"},
		workStyle:  "深度工作型",
	},
}

// InferProfile выводит портрет пользователя по тексту его задач.
// Архетип нужен только для подбора формулировок рекомендаций,
// поэтому грубая эвристика по частоте слов здесь достаточна.
func InferProfile(tasks []models.Task, occupation string) models.ProfileSignal {
	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(t.SearchText())
		sb.WriteString(" ")
	}
	allText := strings.ToLower(sb.String())

	for _, a := range archetypes {
		for _, kw := range a.keywords {
			if strings.Contains(allText, kw) {
				return models.ProfileSignal{
					Identity:   a.identity,
					Goals:      a.goals,
					Challenges: a.challenges,
					WorkStyle:  a.workStyle,
				}
			}
		}
	}

	identity := occupation
	if identity == "" {
		identity = DefaultIdentity
	}
	return models.ProfileSignal{
		Identity:   identity,
		Goals:      []string{},
		Challenges: []string{},
		WorkStyle:  "平衡型",
	}
}
