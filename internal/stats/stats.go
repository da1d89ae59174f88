// Package stats aggregates learning progress: totals, due counts, a
// consecutive-day streak, and a per-day activity series. It computes
// numbers only; presentation belongs to the caller.
package stats

import (
	"sort"
	"time"

	"github.com/cardq/cardq/internal/domain"
)

const dayFormat = "2006-01-02"

// MasteredThreshold is the mastery level at which a card counts as
// learned in summaries.
const MasteredThreshold = 4

// Tracker accumulates study activity across sessions. The caller
// persists and restores it.
type Tracker struct {
	Streak        int            `json:"streak"`
	LastStudyDate string         `json:"lastStudyDate,omitempty"`
	Log           map[string]int `json:"log,omitempty"`
}

// CheckStreak zeroes the streak when more than one day has passed
// since the last study day. Call it once at load time.
func (t *Tracker) CheckStreak(now time.Time) {
	if t.LastStudyDate == "" {
		t.Streak = 0
		return
	}
	last, err := time.Parse(dayFormat, t.LastStudyDate)
	if err != nil {
		t.Streak = 0
		t.LastStudyDate = ""
		return
	}
	today, _ := time.Parse(dayFormat, now.Format(dayFormat))
	if today.Sub(last) > 24*time.Hour {
		t.Streak = 0
	}
}

// MarkStudied records one review: it bumps today's activity count and
// extends the streak on the first review of a new day. Studying after a
// gap restarts the streak at one.
func (t *Tracker) MarkStudied(now time.Time) {
	today := now.Format(dayFormat)
	if t.LastStudyDate != today {
		if last, err := time.Parse(dayFormat, t.LastStudyDate); t.LastStudyDate != "" && err == nil {
			day, _ := time.Parse(dayFormat, today)
			if day.Sub(last) == 24*time.Hour {
				t.Streak++
			} else {
				t.Streak = 1
			}
		} else {
			t.Streak = 1
		}
		t.LastStudyDate = today
	}
	if t.Log == nil {
		t.Log = make(map[string]int)
	}
	t.Log[today]++
}

// DayCount is one day of the activity series.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Activity returns the last n days of study counts, oldest first, with
// zero-filled gaps. Suitable for rendering as an activity heatmap.
func (t *Tracker) Activity(now time.Time, days int) []DayCount {
	series := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := now.AddDate(0, 0, -i).Format(dayFormat)
		series = append(series, DayCount{Date: key, Count: t.Log[key]})
	}
	return series
}

// FolderCount is the number of cards in one folder.
type FolderCount struct {
	Folder string `json:"folder"`
	Count  int    `json:"count"`
}

// Summary is a point-in-time progress snapshot.
type Summary struct {
	Total       int           `json:"total"`
	Mastered    int           `json:"mastered"`
	MasteredPct int           `json:"masteredPct"`
	Due         int           `json:"due"`
	Streak      int           `json:"streak"`
	Folders     []FolderCount `json:"folders"`
}

// Summarize computes the progress snapshot for a corpus. Folder counts
// come back largest first, ties broken by name.
func Summarize(cards []*domain.Card, t *Tracker, now time.Time) Summary {
	s := Summary{Total: len(cards), Streak: t.Streak}
	folders := map[string]int{}
	for _, c := range cards {
		if c.Mastery >= MasteredThreshold {
			s.Mastered++
		}
		if c.Due(now) {
			s.Due++
		}
		folders[c.Folder]++
	}
	if s.Total > 0 {
		s.MasteredPct = int(float64(s.Mastered)/float64(s.Total)*100 + 0.5)
	}
	for f, n := range folders {
		s.Folders = append(s.Folders, FolderCount{Folder: f, Count: n})
	}
	sort.Slice(s.Folders, func(i, j int) bool {
		if s.Folders[i].Count != s.Folders[j].Count {
			return s.Folders[i].Count > s.Folders[j].Count
		}
		return s.Folders[i].Folder < s.Folders[j].Folder
	})
	return s
}
