// Package progression computes which day a member is on, what is locked,
// and how far along they are. Everything here is a pure function over the
// ordered day list and the set of completed task ids; nothing touches storage.
package progression

import (
	"math"

	"github.com/desafiofire/api/models"
)

// CompletedSet is the set of task ids a user has finished.
type CompletedSet map[uint]struct{}

// NewCompletedSet builds a CompletedSet from a slice of task ids.
func NewCompletedSet(taskIDs []uint) CompletedSet {
	set := make(CompletedSet, len(taskIDs))
	for _, id := range taskIDs {
		set[id] = struct{}{}
	}
	return set
}

// DayState is the computed progression state for one day.
type DayState struct {
	DayID     uint `json:"day_id"`
	DayNumber int  `json:"day_number"`
	Unlocked  bool `json:"unlocked"`
	Complete  bool `json:"complete"`
	Percent   int  `json:"percent"`
	Active    bool `json:"active"`
}

// View aggregates everything the dashboard needs for one member.
type View struct {
	Days            []DayState `json:"days"`
	ActiveDayNumber int        `json:"active_day_number"`
	HasActiveDay    bool       `json:"has_active_day"`
	CompletedDays   int        `json:"completed_days"`
	CompletedTasks  int        `json:"completed_tasks"`
	OverallPercent  int        `json:"overall_percent"`
}

// IsDayComplete reports whether every task of the day is in the completed set.
// A day with zero tasks is complete by definition so it never blocks progression.
func IsDayComplete(day models.ChallengeDay, done CompletedSet) bool {
	for _, task := range day.Tasks {
		if _, ok := done[task.ID]; !ok {
			return false
		}
	}
	return true
}

// DayPercent is the share of the day's tasks already completed, rounded to
// the nearest integer. A day without tasks reads as 100.
func DayPercent(day models.ChallengeDay, done CompletedSet) int {
	if len(day.Tasks) == 0 {
		return 100
	}
	completed := 0
	for _, task := range day.Tasks {
		if _, ok := done[task.ID]; ok {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(day.Tasks)) * 100))
}

// TargetDayNumber resolves the day the member should land on: the walk stops
// at the first incomplete day, and the target is one past the last completed
// day. When that number does not exist in the list (everything done, or a gap
// in numbering) it clamps to the last completed day, or to the last day in the
// list as the final fallback. ok is false only for an empty day list.
//
// days must be sorted ascending by DayNumber; the result never depends on the
// iteration order of the completed set.
func TargetDayNumber(days []models.ChallengeDay, done CompletedSet) (dayNumber int, ok bool) {
	if len(days) == 0 {
		return 0, false
	}

	lastCompleted := 0
	for _, day := range days {
		if !IsDayComplete(day, done) {
			break
		}
		lastCompleted = day.DayNumber
	}

	target := lastCompleted + 1
	if hasDayNumber(days, target) {
		return target, true
	}

	fallback := lastCompleted
	if fallback < 1 {
		fallback = 1
	}
	if hasDayNumber(days, fallback) {
		return fallback, true
	}
	return days[len(days)-1].DayNumber, true
}

// Unlocked reports per-day lock state by list position: index 0 is always
// unlocked, and any later day is unlocked iff its predecessor in the list is
// complete. Positional on purpose: a gap in day numbers must not lock
// everything after it.
func Unlocked(days []models.ChallengeDay, done CompletedSet) []bool {
	unlocked := make([]bool, len(days))
	for i := range days {
		if i == 0 {
			unlocked[i] = true
			continue
		}
		unlocked[i] = IsDayComplete(days[i-1], done)
	}
	return unlocked
}

// OverallPercent is completed days over total days, each day weighted equally
// regardless of task count, rounded to the nearest integer.
func OverallPercent(days []models.ChallengeDay, done CompletedSet) int {
	if len(days) == 0 {
		return 0
	}
	return int(math.Round(float64(countCompletedDays(days, done)) / float64(len(days)) * 100))
}

// BuildView computes the full progression view in one pass over the day list.
func BuildView(days []models.ChallengeDay, done CompletedSet) View {
	view := View{
		Days:           make([]DayState, len(days)),
		CompletedTasks: len(done),
	}
	if len(days) == 0 {
		return view
	}

	unlocked := Unlocked(days, done)
	for i, day := range days {
		complete := IsDayComplete(day, done)
		if complete {
			view.CompletedDays++
		}
		view.Days[i] = DayState{
			DayID:     day.ID,
			DayNumber: day.DayNumber,
			Unlocked:  unlocked[i],
			Complete:  complete,
			Percent:   DayPercent(day, done),
		}
	}

	view.OverallPercent = int(math.Round(float64(view.CompletedDays) / float64(len(days)) * 100))
	view.ActiveDayNumber, view.HasActiveDay = TargetDayNumber(days, done)
	if view.HasActiveDay {
		for i := range view.Days {
			if view.Days[i].DayNumber == view.ActiveDayNumber {
				view.Days[i].Active = true
				break
			}
		}
	}
	return view
}

func hasDayNumber(days []models.ChallengeDay, number int) bool {
	for _, day := range days {
		if day.DayNumber == number {
			return true
		}
	}
	return false
}

func countCompletedDays(days []models.ChallengeDay, done CompletedSet) int {
	count := 0
	for _, day := range days {
		if IsDayComplete(day, done) {
			count++
		}
	}
	return count
}
