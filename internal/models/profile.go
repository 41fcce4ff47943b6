package models

// ProfileSignal — выведенный из текста задач портрет пользователя.
// Используется только для персонализации текста рекомендаций.
type ProfileSignal struct {
	Identity   string   `json:"identity"`
	Goals      []string `json:"goals"`
	Challenges []string `json:"challenges"`
	WorkStyle  string   `json:"work_style"`
}
