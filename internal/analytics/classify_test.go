package analytics

import "testing"

func TestClassify_EngagementKeyword(t *testing.T) {
	for _, q := range []string{
		"у каких видео самая высокая вовлечённость?",
		"какая вовлеченность у последних роликов",
		"which videos have the best engagement rate",
	} {
		if got := Classify(q).Metric; got != MetricEngagement {
			t.Errorf("Classify(%q).Metric = %q, want engagement", q, got)
		}
	}
}

func TestClassify_ViewsDefault(t *testing.T) {
	for _, q := range []string{
		"какое самое популярное видео?",
		"сколько просмотров у топа",
		"расскажи про контент",
	} {
		if got := Classify(q).Metric; got != MetricViews {
			t.Errorf("Classify(%q).Metric = %q, want views", q, got)
		}
	}
}

func TestClassify_Direction(t *testing.T) {
	if got := Classify("какие видео худшие по просмотрам").Direction; got != DirectionWorst {
		t.Errorf("Direction = %q, want worst", got)
	}
	if got := Classify("топ видео по просмотрам").Direction; got != DirectionBest {
		t.Errorf("Direction = %q, want best", got)
	}
}

func TestClassify_CountFromDigits(t *testing.T) {
	if got := Classify("покажи 10 видео").Count; got != 10 {
		t.Errorf("Count = %d, want 10", got)
	}
	// Last literal wins
	if got := Classify("из последних 5 покажи 2").Count; got != 2 {
		t.Errorf("Count = %d, want 2 (last literal)", got)
	}
}

func TestClassify_CountClamped(t *testing.T) {
	if got := Classify("топ 50 видео").Count; got != 10 {
		t.Errorf("Count = %d, want clamp to 10", got)
	}
	if got := Classify("топ 0 видео").Count; got != 1 {
		t.Errorf("Count = %d, want clamp to 1", got)
	}
}

func TestClassify_CountFromWords(t *testing.T) {
	if got := Classify("покажи три лучших видео").Count; got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
	if got := Classify("show me five videos").Count; got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}

func TestClassify_CountDefault(t *testing.T) {
	if got := Classify("какое видео лучшее?").Count; got != 3 {
		t.Errorf("Count = %d, want default 3", got)
	}
}

func TestClassify_Recommendations(t *testing.T) {
	for _, q := range []string{
		"что делать чтобы росли просмотры",
		"как улучшить контент",
		"дай совет по видео",
		"any advice on my videos",
	} {
		if !Classify(q).WantsRecommendations {
			t.Errorf("Classify(%q).WantsRecommendations = false, want true", q)
		}
	}
	if Classify("топ видео по просмотрам").WantsRecommendations {
		t.Error("plain ranking question should not want recommendations")
	}
}

func TestClassify_Pure(t *testing.T) {
	q := "топ-3 видео по вовлечённости из последних 7"
	a, b := Classify(q), Classify(q)
	if a != b {
		t.Errorf("Classify is not pure: %+v != %+v", a, b)
	}
}

func TestRecencyCount(t *testing.T) {
	tests := []struct {
		question string
		want     int
	}{
		{"вопрос без чисел", 5},         // default
		{"из последних 12 видео", 12},   // literal
		{"из последних 2 видео", 3},     // clamp low
		{"из последних 100 видео", 20},  // clamp high
		{"из последних десяти видео", 10}, // word table
	}
	for _, tt := range tests {
		if got := RecencyCount(tt.question); got != tt.want {
			t.Errorf("RecencyCount(%q) = %d, want %d", tt.question, got, tt.want)
		}
	}
}

func TestRecencyAndDisplayCountsDiffer(t *testing.T) {
	// The same question yields different counts from the two extractors:
	// display clamps to 1..10, recency to 3..20.
	q := "покажи 15 видео"
	if got := Classify(q).Count; got != 10 {
		t.Errorf("display count = %d, want 10", got)
	}
	if got := RecencyCount(q); got != 15 {
		t.Errorf("recency count = %d, want 15", got)
	}
}
