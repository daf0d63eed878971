package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/avetrov/contentpulse/internal/analytics"
	"github.com/avetrov/contentpulse/internal/metrics"
	"github.com/avetrov/contentpulse/internal/model"
	"github.com/avetrov/contentpulse/internal/resolver"
)

// Answerer is the external answering service.
type Answerer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ChatService answers analytics questions over the collected items:
// classify the question, gather a sample, then either ask the answering
// service (seeded with the deterministic analysis) or build the
// deterministic report directly.
type ChatService struct {
	content  *ContentService
	store    TableStore // nil when not configured
	resolver *resolver.Resolver
	llm      Answerer // nil when no answering service is configured
}

func NewChatService(content *ContentService, store TableStore, res *resolver.Resolver, llm Answerer) *ChatService {
	return &ChatService{content: content, store: store, resolver: res, llm: llm}
}

// Answer handles one question. channelRef optionally scopes the question to
// a specific channel; resolution failures for an explicit reference are
// surfaced to the caller, everything else degrades tier by tier.
func (s *ChatService) Answer(ctx context.Context, question, channelRef string) (string, error) {
	recency := analytics.RecencyCount(question)

	items, err := s.collect(ctx, channelRef, recency)
	if err != nil {
		return "", err
	}

	intent := analytics.Classify(question)
	normalized := model.NormalizeAll(items)

	if s.llm == nil {
		return analytics.Report(intent, normalized), nil
	}
	if len(normalized) == 0 {
		return analytics.NoDataMessage, nil
	}

	start := time.Now()
	answer, llmErr := s.llm.Complete(ctx, analytics.SystemPrompt,
		analytics.BuildUserPrompt(question, intent, normalized))
	metrics.ObserveUpstream("llm", time.Since(start).Seconds())

	if llmErr != nil || strings.TrimSpace(answer) == "" {
		if llmErr != nil {
			log.Printf("chat: answering service failed, using local report: %v", llmErr)
		}
		metrics.IncAnswerFallback()
		return analytics.Report(intent, normalized), nil
	}
	return answer, nil
}

// collect gathers the question's data sample. Tiers: explicitly referenced
// channel, then the table store, then the default channel, then the fixed
// sample dataset.
func (s *ChatService) collect(ctx context.Context, channelRef string, recency int) ([]model.ContentItem, error) {
	if strings.TrimSpace(channelRef) != "" {
		channelID, err := s.resolver.Resolve(ctx, channelRef)
		if err != nil {
			return nil, err
		}
		items, err := s.content.FetchRecent(ctx, channelID, recency)
		if err == nil && len(items) > 0 {
			return items, nil
		}
		if err != nil {
			log.Printf("chat: fetch for %s failed, falling back to stored items: %v", channelID, err)
		}
	}

	if s.store != nil {
		start := time.Now()
		items, err := s.store.ListRecent(ctx, recency)
		metrics.ObserveUpstream("tablestore", time.Since(start).Seconds())
		if err != nil {
			log.Printf("chat: table store read failed: %v", err)
		} else if len(items) > 0 {
			return items, nil
		}
	}

	if channelID, err := s.resolver.Resolve(ctx, ""); err == nil {
		items, err := s.content.FetchRecent(ctx, channelID, recency)
		if err == nil && len(items) > 0 {
			return items, nil
		}
		if err != nil {
			log.Printf("chat: default channel fetch failed, using sample data: %v", err)
		}
	}

	return SampleItems(), nil
}
