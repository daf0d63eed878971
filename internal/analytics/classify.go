package analytics

import (
	"regexp"
	"strconv"
	"strings"
)

// Metric is the ranking criterion extracted from a question.
type Metric string

const (
	MetricViews      Metric = "views"
	MetricEngagement Metric = "engagement"
)

// Direction is the ranking direction extracted from a question.
type Direction string

const (
	DirectionBest  Direction = "best"
	DirectionWorst Direction = "worst"
)

// QuestionIntent is the structured interpretation of a free-text question.
// Ephemeral: recomputed per question, never stored.
type QuestionIntent struct {
	Metric               Metric
	Direction            Direction
	Count                int
	WantsRecommendations bool
}

// Display-count bounds for Classify. RecencyCount uses its own, wider
// bounds: "how many to show" and "how many recent items to consider" are
// different questions and stay separately configurable.
const (
	minDisplayCount     = 1
	maxDisplayCount     = 10
	defaultDisplayCount = 3

	minRecencyCount     = 3
	maxRecencyCount     = 20
	defaultRecencyCount = 5
)

var (
	engagementKeywords = []string{"вовлеч", "лайк", "коммент", "engagement", "likes", "comment"}
	popularityKeywords = []string{"просмотр", "популяр", "view", "popular"}
	worstKeywords      = []string{"худш", "плох", "слаб", "worst", "bad", "lowest"}
	adviceKeywords     = []string{"что делать", "как улучшить", "совет", "рекоменд", "recommend", "advice", "improve", "what to do"}
)

// numberWords maps spelled-out counts to integers, checked when the
// question carries no digit literal. Order matters: first match wins.
var numberWords = []struct {
	word string
	n    int
}{
	{"двадцать", 20}, {"twenty", 20},
	{"пятнадцать", 15}, {"fifteen", 15},
	{"двенадцать", 12}, {"twelve", 12},
	{"десять", 10}, {"десяти", 10}, {"ten", 10},
	{"девять", 9}, {"nine", 9},
	{"восемь", 8}, {"eight", 8},
	{"семь", 7}, {"seven", 7},
	{"шесть", 6}, {"six", 6},
	{"пять", 5}, {"пяти", 5}, {"five", 5},
	{"четыре", 4}, {"four", 4},
	{"три", 3}, {"трёх", 3}, {"трех", 3}, {"three", 3},
	{"два", 2}, {"две", 2}, {"двух", 2}, {"two", 2},
	{"один", 1}, {"одно", 1}, {"one", 1},
}

var digitsRe = regexp.MustCompile(`\d+`)

// Classify maps a free-text question to a structured intent using
// case-insensitive substring matching. Deliberately a bag-of-keywords
// classifier, not a model: fast, deterministic and explainable, since the
// result is also embedded verbatim into the answering-service prompt.
func Classify(question string) QuestionIntent {
	q := strings.ToLower(question)

	metric := MetricViews
	if containsAny(q, engagementKeywords) {
		metric = MetricEngagement
	} else if containsAny(q, popularityKeywords) {
		metric = MetricViews
	}

	direction := DirectionBest
	if containsAny(q, worstKeywords) {
		direction = DirectionWorst
	}

	return QuestionIntent{
		Metric:               metric,
		Direction:            direction,
		Count:                extractCount(q, defaultDisplayCount, minDisplayCount, maxDisplayCount),
		WantsRecommendations: containsAny(q, adviceKeywords),
	}
}

// RecencyCount parses how many recent items the question wants considered.
// Distinct from the display count in Classify, with its own range.
func RecencyCount(question string) int {
	return extractCount(strings.ToLower(question), defaultRecencyCount, minRecencyCount, maxRecencyCount)
}

// extractCount takes the last integer literal in the text, falling back to
// the spelled-out number table, then to the default. Always clamped.
func extractCount(q string, def, min, max int) int {
	if matches := digitsRe.FindAllString(q, -1); len(matches) > 0 {
		if n, err := strconv.Atoi(matches[len(matches)-1]); err == nil {
			return clamp(n, min, max)
		}
	}
	for _, nw := range numberWords {
		if strings.Contains(q, nw.word) {
			return clamp(nw.n, min, max)
		}
	}
	return def
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
