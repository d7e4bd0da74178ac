package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/shipos/shipos-api/internal/domain/repository"
	"google.golang.org/api/option"
)

// BriefingService generates the morning briefing: a short natural-language
// summary of yesterday's counter activity and what needs attention today,
// written by Gemini from the store's own numbers.
type BriefingService struct {
	analyticsRepo repository.AnalyticsRepository
	apiKey        string
	model         string
}

// NewBriefingService creates a new briefing service. An empty API key puts
// the service in demo mode: briefings are composed from a fixed template
// instead of calling Gemini.
func NewBriefingService(analyticsRepo repository.AnalyticsRepository, apiKey, model string) *BriefingService {
	if model == "" {
		model = "gemini-2.0-flash-001"
	}
	return &BriefingService{
		analyticsRepo: analyticsRepo,
		apiKey:        apiKey,
		model:         model,
	}
}

// Briefing is the generated summary plus the raw numbers it was written from
type Briefing struct {
	Text        string        `json:"text"`
	GeneratedAt time.Time     `json:"generated_at"`
	Demo        bool          `json:"demo"`
	Stats       briefingStats `json:"stats"`
}

type briefingStats struct {
	PackagesYesterday int64  `json:"packages_yesterday"`
	PendingPackages   int64  `json:"pending_packages"`
	FeesYesterday     string `json:"fees_yesterday"`
	FeesMonth         string `json:"fees_month"`
}

// GenerateBriefing gathers yesterday's store numbers and asks the model for
// a short briefing a clerk can read before opening.
func (s *BriefingService) GenerateBriefing(ctx context.Context) (*Briefing, error) {
	stats, err := s.collectStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.apiKey == "" {
		return &Briefing{
			Text:        s.demoBriefing(stats),
			GeneratedAt: time.Now(),
			Demo:        true,
			Stats:       stats,
		}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	model := client.GenerativeModel(s.model)

	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("Monday, January 2")
	prompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the opening briefing assistant for a mailbox and package store.

RULES:
1. Write 3-4 sentences, plain text, no markdown.
2. Lead with yesterday's package and fee numbers.
3. If pending packages are piling up, say so and suggest contacting customers.
4. Do not invent numbers; use only the data below.

DATA: %s`, today, string(statsJSON))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		// Gemini being down should not break the morning routine
		return &Briefing{
			Text:        s.demoBriefing(stats),
			GeneratedAt: time.Now(),
			Demo:        true,
			Stats:       stats,
		}, nil
	}

	var text string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text += string(t)
			}
		}
	}
	if text == "" {
		text = s.demoBriefing(stats)
	}

	return &Briefing{
		Text:        text,
		GeneratedAt: time.Now(),
		Stats:       stats,
	}, nil
}

func (s *BriefingService) collectStats(ctx context.Context) (briefingStats, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfToday.AddDate(0, 0, -1)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats briefingStats

	packagesYesterday, err := s.analyticsRepo.GetPackagesReceived(ctx, startOfYesterday, startOfToday)
	if err != nil {
		return stats, err
	}
	stats.PackagesYesterday = packagesYesterday

	pending, err := s.analyticsRepo.GetPendingPackageCount(ctx)
	if err != nil {
		return stats, err
	}
	stats.PendingPackages = pending

	feesYesterday, err := s.analyticsRepo.GetFeesCollected(ctx, startOfYesterday, startOfToday)
	if err != nil {
		return stats, err
	}
	stats.FeesYesterday = feesYesterday.Format()

	feesMonth, err := s.analyticsRepo.GetFeesCollected(ctx, startOfMonth, now)
	if err != nil {
		return stats, err
	}
	stats.FeesMonth = feesMonth.Format()

	return stats, nil
}

// demoBriefing is the fixed-template fallback used without an API key or
// when Gemini is unreachable.
func (s *BriefingService) demoBriefing(stats briefingStats) string {
	return fmt.Sprintf(
		"Good morning. Yesterday the store received %d package(s) and collected %s in fees. "+
			"There are currently %d package(s) waiting on the shelf. "+
			"Month-to-date fee revenue stands at %s.",
		stats.PackagesYesterday, stats.FeesYesterday, stats.PendingPackages, stats.FeesMonth,
	)
}
