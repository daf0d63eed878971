package analytics

import (
	"strings"
	"testing"

	"github.com/avetrov/contentpulse/internal/model"
)

func sampleNormalized() []model.NormalizedItem {
	raw := []model.ContentItem{
		{Platform: "YouTube", ExternalID: "a", Title: "A", URL: "https://y/a", Views: 100, Likes: 10, CommentsCount: 0},
		{Platform: "YouTube", ExternalID: "b", Title: "B", URL: "https://y/b", Views: 50, Likes: 25, CommentsCount: 0},
		{Platform: "YouTube", ExternalID: "c", Title: "C", URL: "https://y/c", Views: 200, Likes: 4, CommentsCount: 0},
		{Platform: "YouTube", ExternalID: "d", Title: "D", URL: "https://y/d", Views: 10, Likes: 1, CommentsCount: 0},
		{Platform: "YouTube", ExternalID: "e", Title: "E", URL: "https://y/e", Views: 5, Likes: 0, CommentsCount: 1},
	}
	return model.NormalizeAll(raw)
}

func TestRank_TopByViewsDescending(t *testing.T) {
	intent := QuestionIntent{Metric: MetricViews, Direction: DirectionBest, Count: 3}
	ranked := Rank(intent, sampleNormalized())

	wantViews := []int{200, 100, 50, 10, 5}
	for i, want := range wantViews {
		if ranked[i].Views != want {
			t.Errorf("ranked[%d].Views = %d, want %d", i, ranked[i].Views, want)
		}
	}
}

func TestRank_WorstIsAscending(t *testing.T) {
	intent := QuestionIntent{Metric: MetricViews, Direction: DirectionWorst, Count: 3}
	ranked := Rank(intent, sampleNormalized())

	if ranked[0].Views != 5 || ranked[1].Views != 10 {
		t.Errorf("worst ranking starts with views %d, %d; want 5, 10", ranked[0].Views, ranked[1].Views)
	}
}

func TestRank_ByEngagement(t *testing.T) {
	intent := QuestionIntent{Metric: MetricEngagement, Direction: DirectionBest, Count: 3}
	ranked := Rank(intent, sampleNormalized())

	// B: 25/50 = 0.5 is the clear leader; E: 1/5 = 0.2 second.
	if ranked[0].ExternalID != "b" {
		t.Errorf("top by engagement = %s, want b", ranked[0].ExternalID)
	}
	if ranked[1].ExternalID != "e" {
		t.Errorf("second by engagement = %s, want e", ranked[1].ExternalID)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	raw := []model.ContentItem{
		{ExternalID: "first", Views: 100},
		{ExternalID: "second", Views: 100},
		{ExternalID: "third", Views: 100},
	}
	intent := QuestionIntent{Metric: MetricViews, Direction: DirectionBest, Count: 3}
	ranked := Rank(intent, model.NormalizeAll(raw))

	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].ExternalID != want {
			t.Errorf("ranked[%d] = %s, want %s (stable order)", i, ranked[i].ExternalID, want)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	items := sampleNormalized()
	intent := QuestionIntent{Metric: MetricViews, Direction: DirectionBest, Count: 3}
	Rank(intent, items)

	if items[0].ExternalID != "a" {
		t.Error("Rank mutated its input slice")
	}
}

func TestSampleMeans(t *testing.T) {
	avgViews, avgEngagement := SampleMeans(sampleNormalized())
	if avgViews != 73 {
		t.Errorf("mean views = %d, want 73 (integer truncation)", avgViews)
	}
	if avgEngagement <= 0 {
		t.Errorf("mean engagement = %f, want > 0", avgEngagement)
	}
}

func TestReport_NoData(t *testing.T) {
	intent := QuestionIntent{Metric: MetricViews, Direction: DirectionBest, Count: 3}
	if got := Report(intent, nil); got != NoDataMessage {
		t.Errorf("Report on empty input = %q, want no-data message", got)
	}
}

func TestReport_TopThreeByViews(t *testing.T) {
	intent := QuestionIntent{Metric: MetricViews, Direction: DirectionBest, Count: 3}
	report := Report(intent, sampleNormalized())

	// Top-3 entries present in order C (200), A (100), B (50)
	posC := strings.Index(report, "1. C")
	posA := strings.Index(report, "2. A")
	posB := strings.Index(report, "3. B")
	if posC < 0 || posA < 0 || posB < 0 || !(posC < posA && posA < posB) {
		t.Fatalf("report does not list C, A, B in order:\n%s", report)
	}
	// The rest of the sample is not listed
	if strings.Contains(report, "4.") {
		t.Errorf("report lists more than requested count:\n%s", report)
	}
	// Sample mean over the full set
	if !strings.Contains(report, "просмотры: 73") {
		t.Errorf("report is missing mean views 73:\n%s", report)
	}
}

func TestReport_RecommendationsReferenceGlobalLeaders(t *testing.T) {
	// Request top-1 by views; recommendations must still reference the
	// highest-engagement item across the whole set (B), not just the top-N.
	intent := QuestionIntent{Metric: MetricViews, Direction: DirectionBest, Count: 1}
	report := Report(intent, sampleNormalized())

	if !strings.Contains(report, "«B»") {
		t.Errorf("recommendations do not reference top-engagement item B:\n%s", report)
	}
	if !strings.Contains(report, "«C»") {
		t.Errorf("recommendations do not reference top-views item C:\n%s", report)
	}
}

func TestReport_EngagementFormatting(t *testing.T) {
	intent := QuestionIntent{Metric: MetricEngagement, Direction: DirectionBest, Count: 3}
	report := Report(intent, sampleNormalized())

	// B's engagement rate 0.5 rendered to three decimals
	if !strings.Contains(report, "0.500") {
		t.Errorf("report does not render engagement to 3 decimals:\n%s", report)
	}
	if !strings.Contains(report, "вовлечённости") {
		t.Errorf("header does not name the engagement metric:\n%s", report)
	}
}

func TestReport_Pure(t *testing.T) {
	intent := QuestionIntent{Metric: MetricViews, Direction: DirectionBest, Count: 3}
	items := sampleNormalized()
	if Report(intent, items) != Report(intent, items) {
		t.Error("Report is not pure")
	}
}

func TestBuildUserPrompt_ContainsContextAndHint(t *testing.T) {
	intent := QuestionIntent{Metric: MetricEngagement, Direction: DirectionBest, Count: 3, WantsRecommendations: true}
	prompt := BuildUserPrompt("вопрос про вовлечённость", intent, sampleNormalized())

	for _, want := range []string{
		"engagement_rate=0.500", // context line for B
		"вовлечённость (engagement_rate)",
		"сколько показать: 3",
		"нужны рекомендации: да",
		"Вопрос пользователя: вопрос про вовлечённость",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt is missing %q:\n%s", want, prompt)
		}
	}
}
