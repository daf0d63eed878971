package analytics

import (
	"fmt"
	"strings"

	"github.com/avetrov/contentpulse/internal/model"
)

// SystemPrompt frames the answering service as a content analyst.
const SystemPrompt = "Ты аналитик контента в крупной компании. " +
	"У тебя есть список видео с просмотрами, лайками, комментариями и метрикой вовлечённости " +
	"(engagement_rate = (likes + comments) / views). " +
	"Отвечай структурировано, коротко, на русском, без воды."

// BuildUserPrompt assembles the answering-service prompt: one context line
// per item, the structured analysis hint derived from the classified
// intent, and the user's question. Seeding the prompt with the
// deterministic analysis keeps the service's free-form prose consistent
// with the local fallback answer.
func BuildUserPrompt(question string, intent QuestionIntent, items []model.NormalizedItem) string {
	var b strings.Builder

	b.WriteString("Вот данные о материалах (по одному на строку):\n")
	for i, it := range items {
		fmt.Fprintf(&b, "%d. [%s] %s | views=%d, likes=%d, comments=%d, engagement_rate=%.3f, url=%s\n",
			i+1, it.Platform, it.Title, it.Views, it.Likes, it.CommentsCount, it.EngagementRate, it.URL)
	}

	b.WriteString("\nСтруктурированный разбор вопроса:\n")
	b.WriteString(analysisHint(intent, items))

	fmt.Fprintf(&b, "\nВопрос пользователя: %s\n\n", question)
	b.WriteString("Как отвечать:\n")
	fmt.Fprintf(&b, "1) Выведи список из %d видео по указанному критерию с views, likes, engagement_rate и коротким комментарием.\n", intent.Count)
	b.WriteString("2) Если вопрос общий — сам выбери разумный критерий (views + engagement_rate) и объясни выбор.\n")
	b.WriteString("3) В конце добавь короткий вывод (1–2 предложения), что можно улучшить в контенте.\n")
	b.WriteString("Отвечай в виде короткого текста с маркированным списком.")

	return b.String()
}

func analysisHint(intent QuestionIntent, items []model.NormalizedItem) string {
	metricName := "просмотры (views)"
	if intent.Metric == MetricEngagement {
		metricName = "вовлечённость (engagement_rate)"
	}
	directionName := "лучшие"
	if intent.Direction == DirectionWorst {
		directionName = "худшие"
	}
	advice := "нет"
	if intent.WantsRecommendations {
		advice = "да"
	}

	avgViews, avgEngagement := SampleMeans(items)

	var b strings.Builder
	fmt.Fprintf(&b, "- критерий: %s\n", metricName)
	fmt.Fprintf(&b, "- направление: %s\n", directionName)
	fmt.Fprintf(&b, "- сколько показать: %d\n", intent.Count)
	fmt.Fprintf(&b, "- нужны рекомендации: %s\n", advice)
	fmt.Fprintf(&b, "- средние по выборке: просмотры %d, вовлечённость %.3f\n", avgViews, avgEngagement)
	return b.String()
}
