package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avetrov/contentpulse/internal/model"
)

// NoDataMessage is returned when there is nothing to analyze.
const NoDataMessage = "Нет данных о контенте, чтобы ответить на вопрос."

// Report builds a deterministic, human-readable analytics answer for the
// classified intent. It serves both as the final fallback answer and as the
// pre-digested analysis the answering-service prompt is seeded with.
func Report(intent QuestionIntent, items []model.NormalizedItem) string {
	if len(items) == 0 {
		return NoDataMessage
	}

	ranked := Rank(intent, items)
	top := ranked
	if len(top) > intent.Count {
		top = top[:intent.Count]
	}

	var b strings.Builder
	b.WriteString(headerLine(intent, len(top), len(items)))
	b.WriteString("\n")

	for i, it := range top {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, it.Title)
		fmt.Fprintf(&b, "   Просмотры: %d, лайки: %d, комментарии: %d, вовлечённость: %.3f\n",
			it.Views, it.Likes, it.CommentsCount, it.EngagementRate)
		fmt.Fprintf(&b, "   Ссылка: %s\n", it.URL)
	}

	avgViews, avgEngagement := SampleMeans(items)
	fmt.Fprintf(&b, "\nСредние значения по выборке — просмотры: %d, вовлечённость: %.3f.\n", avgViews, avgEngagement)

	// Recommendation block. The advice flag is surfaced in the intent for
	// prompt construction, but the report always closes with the block:
	// the summary is useless without a takeaway.
	topEngagement := maxBy(items, func(it model.NormalizedItem) float64 { return it.EngagementRate })
	topViews := maxBy(items, func(it model.NormalizedItem) float64 { return float64(it.Views) })

	b.WriteString("\nРекомендации:\n")
	fmt.Fprintf(&b, "- Самая высокая вовлечённость у «%s» — стоит повторить его формат и тему.\n", topEngagement.Title)
	fmt.Fprintf(&b, "- Больше всего просмотров набрало «%s» — похожие заголовки работают.\n", topViews.Title)
	b.WriteString("- Имеет смысл делать больше похожего контента: форматы, темы и длина видео.")

	return b.String()
}

// Rank returns a copy of items sorted by the intent's metric and direction.
// The sort is stable: ties keep their input order.
func Rank(intent QuestionIntent, items []model.NormalizedItem) []model.NormalizedItem {
	ranked := make([]model.NormalizedItem, len(items))
	copy(ranked, items)

	metric := func(it model.NormalizedItem) float64 {
		if intent.Metric == MetricEngagement {
			return it.EngagementRate
		}
		return float64(it.Views)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if intent.Direction == DirectionWorst {
			return metric(ranked[i]) < metric(ranked[j])
		}
		return metric(ranked[i]) > metric(ranked[j])
	})
	return ranked
}

// SampleMeans returns the mean view count (integer-truncated) and mean
// engagement rate over the whole sample.
func SampleMeans(items []model.NormalizedItem) (int, float64) {
	if len(items) == 0 {
		return 0, 0
	}
	var views int
	var engagement float64
	for _, it := range items {
		views += it.Views
		engagement += it.EngagementRate
	}
	return views / len(items), engagement / float64(len(items))
}

func headerLine(intent QuestionIntent, shown, total int) string {
	metricName := "просмотрам"
	if intent.Metric == MetricEngagement {
		metricName = "вовлечённости"
	}
	if intent.Direction == DirectionWorst {
		return fmt.Sprintf("Худшие %d материалов по %s (из последних %d видео):", shown, metricName, total)
	}
	return fmt.Sprintf("Топ-%d материалов по %s (из последних %d видео):", shown, metricName, total)
}

func maxBy(items []model.NormalizedItem, key func(model.NormalizedItem) float64) model.NormalizedItem {
	best := items[0]
	for _, it := range items[1:] {
		if key(it) > key(best) {
			best = it
		}
	}
	return best
}
