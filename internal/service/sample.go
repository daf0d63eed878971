package service

import "github.com/avetrov/contentpulse/internal/model"

// SampleItems returns the fixed illustrative dataset used when neither the
// platform nor the table store can provide items. Keeps the chat usable in
// demos and local development without credentials.
func SampleItems() []model.ContentItem {
	return []model.ContentItem{
		{
			Platform:      "YouTube",
			ExternalID:    "video_1",
			URL:           "https://youtube.com/watch?v=video_1",
			Title:         "Тестовое видео №1",
			Views:         1234,
			Likes:         150,
			CommentsCount: 12,
		},
		{
			Platform:      "YouTube",
			ExternalID:    "video_2",
			URL:           "https://youtube.com/watch?v=video_2",
			Title:         "Тестовое видео №2",
			Views:         5678,
			Likes:         430,
			CommentsCount: 45,
		},
	}
}
