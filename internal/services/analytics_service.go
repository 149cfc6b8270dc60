package services

import (
	"sort"
	"time"

	"mindtrackerd/internal/models"
)

const weekWindow = 7 * 24 * time.Hour

// NoDominantMood is returned when there is nothing to tally.
const NoDominantMood = "N/A"

// Streak counts consecutive calendar days with an entry, walking backward
// from today. No entry for today itself means the streak is 0; future-dated
// entries never match a past offset and so never contribute.
func Streak(entries map[string]*models.JournalEntry, today time.Time) int {
	streak := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		if _, ok := entries[day.Format(models.DateLayout)]; !ok {
			break
		}
		streak++
	}
	return streak
}

func TotalEntries(entries map[string]*models.JournalEntry) int {
	return len(entries)
}

// MoodDistribution tallies entries by mood. Moods with zero occurrences are
// absent from the result.
func MoodDistribution(entries map[string]*models.JournalEntry) map[string]int {
	dist := make(map[string]int)
	for _, e := range entries {
		dist[e.Mood]++
	}
	return dist
}

// DistributionPercent returns count/total*100 for every enumerated mood,
// including zeros. An empty journal yields 0% across the board.
func DistributionPercent(entries map[string]*models.JournalEntry) map[string]float64 {
	dist := MoodDistribution(entries)
	total := TotalEntries(entries)

	pct := make(map[string]float64, len(models.Moods))
	for _, m := range models.Moods {
		if total == 0 {
			pct[m.Name] = 0
			continue
		}
		pct[m.Name] = float64(dist[m.Name]) / float64(total) * 100
	}
	return pct
}

// WeeklyCount counts entries created within the trailing 7*24h window. The
// creation timestamp is used, not the calendar-date key, and entries created
// after now are excluded.
func WeeklyCount(entries map[string]*models.JournalEntry, now time.Time) int {
	cutoff := now.Add(-weekWindow)
	count := 0
	for _, e := range entries {
		if e.CreatedAt.After(cutoff) && !e.CreatedAt.After(now) {
			count++
		}
	}
	return count
}

// WeeklyMoodCounts tallies moods over the same trailing window.
func WeeklyMoodCounts(entries map[string]*models.JournalEntry, now time.Time) map[string]int {
	cutoff := now.Add(-weekWindow)
	counts := make(map[string]int)
	for _, e := range entries {
		if e.CreatedAt.After(cutoff) && !e.CreatedAt.After(now) {
			counts[e.Mood]++
		}
	}
	return counts
}

// DominantMood returns the most frequent mood. Ties break toward the mood
// recorded first (the earliest date key is a total order, one entry per day).
func DominantMood(entries map[string]*models.JournalEntry) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]string)
	for date, e := range entries {
		counts[e.Mood]++
		if first, ok := firstSeen[e.Mood]; !ok || date < first {
			firstSeen[e.Mood] = date
		}
	}
	if len(counts) == 0 {
		return NoDominantMood
	}

	best := ""
	for mood, count := range counts {
		if best == "" || count > counts[best] ||
			(count == counts[best] && firstSeen[mood] < firstSeen[best]) {
			best = mood
		}
	}
	return best
}

// DatedEntry pairs an entry with its calendar-day key for ordered listings.
type DatedEntry struct {
	Date  string               `json:"date"`
	Entry *models.JournalEntry `json:"entry"`
}

// RecentEntries returns up to limit entries, newest date first.
func RecentEntries(entries map[string]*models.JournalEntry, limit int) []DatedEntry {
	dated := make([]DatedEntry, 0, len(entries))
	for date, e := range entries {
		dated = append(dated, DatedEntry{Date: date, Entry: e})
	}
	sort.Slice(dated, func(i, j int) bool {
		return dated[i].Date > dated[j].Date
	})
	if limit > 0 && len(dated) > limit {
		dated = dated[:limit]
	}
	return dated
}

type Summary struct {
	Streak       int                `json:"streak"`
	TotalEntries int                `json:"total_entries"`
	Distribution map[string]int     `json:"distribution"`
	Percentages  map[string]float64 `json:"percentages"`
	WeeklyCount  int                `json:"weekly_count"`
	DominantMood string             `json:"dominant_mood"`
}

type AnalyticsServiceInterface interface {
	Summary(now time.Time) *Summary
	Weekly(now time.Time) map[string]int
	Recent(limit int) []DatedEntry
}

// AnalyticsService derives views from a journal snapshot on demand. It holds
// no state of its own; recomputation is O(n) over a small map.
type AnalyticsService struct {
	journal JournalServiceInterface
}

func NewAnalyticsService(journal JournalServiceInterface) AnalyticsServiceInterface {
	return &AnalyticsService{journal: journal}
}

func (s *AnalyticsService) Summary(now time.Time) *Summary {
	entries := s.journal.Entries()
	return &Summary{
		Streak:       Streak(entries, now),
		TotalEntries: TotalEntries(entries),
		Distribution: MoodDistribution(entries),
		Percentages:  DistributionPercent(entries),
		WeeklyCount:  WeeklyCount(entries, now),
		DominantMood: DominantMood(entries),
	}
}

func (s *AnalyticsService) Weekly(now time.Time) map[string]int {
	return WeeklyMoodCounts(s.journal.Entries(), now)
}

func (s *AnalyticsService) Recent(limit int) []DatedEntry {
	return RecentEntries(s.journal.Entries(), limit)
}
