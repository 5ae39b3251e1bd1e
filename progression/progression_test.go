package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desafiofire/api/models"
)

// buildDays creates a day list where day N carries taskCounts[N-1] tasks.
// Task ids are sequential starting at 1 so tests can reference them directly.
func buildDays(taskCounts ...int) []models.ChallengeDay {
	days := make([]models.ChallengeDay, len(taskCounts))
	nextTaskID := uint(1)
	for i, count := range taskCounts {
		day := models.ChallengeDay{ID: uint(i + 1), DayNumber: i + 1}
		for j := 0; j < count; j++ {
			day.Tasks = append(day.Tasks, models.ChallengeTask{ID: nextTaskID, DayID: day.ID, OrderIndex: j})
			nextTaskID++
		}
		days[i] = day
	}
	return days
}

func doneTasks(ids ...uint) CompletedSet {
	return NewCompletedSet(ids)
}

func TestIsDayComplete(t *testing.T) {
	days := buildDays(2, 0)

	assert.False(t, IsDayComplete(days[0], doneTasks()))
	assert.False(t, IsDayComplete(days[0], doneTasks(1)))
	assert.True(t, IsDayComplete(days[0], doneTasks(1, 2)))

	// zero tasks: complete with nothing done
	assert.True(t, IsDayComplete(days[1], doneTasks()))
}

func TestDayPercentRounding(t *testing.T) {
	days := buildDays(3)

	assert.Equal(t, 0, DayPercent(days[0], doneTasks()))
	// 1/3 = 33.33 -> 33, not truncated differently
	assert.Equal(t, 33, DayPercent(days[0], doneTasks(1)))
	// 2/3 = 66.67 -> 67, rounding not truncation
	assert.Equal(t, 67, DayPercent(days[0], doneTasks(1, 2)))
	assert.Equal(t, 100, DayPercent(days[0], doneTasks(1, 2, 3)))
}

func TestDayPercentZeroTasks(t *testing.T) {
	days := buildDays(0)
	assert.Equal(t, 100, DayPercent(days[0], doneTasks()))
}

func TestTargetDayNumber(t *testing.T) {
	tests := []struct {
		name       string
		taskCounts []int
		done       CompletedSet
		want       int
		wantOK     bool
	}{
		{
			name:       "fresh member lands on day 1",
			taskCounts: []int{2, 2, 2},
			done:       doneTasks(),
			want:       1,
			wantOK:     true,
		},
		{
			name:       "one day done moves to day 2",
			taskCounts: []int{2, 2, 2},
			done:       doneTasks(1, 2),
			want:       2,
			wantOK:     true,
		},
		{
			name:       "partial day stays current",
			taskCounts: []int{2, 2, 2},
			done:       doneTasks(1),
			want:       1,
			wantOK:     true,
		},
		{
			name:       "all done clamps to last day",
			taskCounts: []int{2, 2},
			done:       doneTasks(1, 2, 3, 4),
			want:       2,
			wantOK:     true,
		},
		{
			name:       "zero-task first day skips ahead",
			taskCounts: []int{0, 2},
			done:       doneTasks(),
			want:       2,
			wantOK:     true,
		},
		{
			name:       "empty day list has no active day",
			taskCounts: nil,
			done:       doneTasks(),
			want:       0,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TargetDayNumber(buildDays(tt.taskCounts...), tt.done)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetDayNumberWithGap(t *testing.T) {
	// Day numbers 1 and 3: completing day 1 targets nonexistent day 2, so the
	// walk clamps back to day 1 rather than failing.
	days := []models.ChallengeDay{
		{ID: 1, DayNumber: 1, Tasks: []models.ChallengeTask{{ID: 1, DayID: 1}}},
		{ID: 2, DayNumber: 3, Tasks: []models.ChallengeTask{{ID: 2, DayID: 2}}},
	}

	got, ok := TargetDayNumber(days, doneTasks(1))
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestUnlockedIsPositional(t *testing.T) {
	days := buildDays(1, 1, 1)

	unlocked := Unlocked(days, doneTasks())
	assert.Equal(t, []bool{true, false, false}, unlocked)

	unlocked = Unlocked(days, doneTasks(1))
	assert.Equal(t, []bool{true, true, false}, unlocked)

	// completing day 2 without day 1 unlocks day 3 anyway; locks look only at
	// the immediate predecessor
	unlocked = Unlocked(days, doneTasks(2))
	assert.Equal(t, []bool{true, false, true}, unlocked)
}

func TestUnlockedZeroTaskDayNeverBlocks(t *testing.T) {
	days := buildDays(0, 1)
	unlocked := Unlocked(days, doneTasks())
	assert.Equal(t, []bool{true, true}, unlocked)
}

func TestOverallPercent(t *testing.T) {
	days := buildDays(1, 1, 1)

	assert.Equal(t, 0, OverallPercent(days, doneTasks()))
	// 1/3 of days -> 33
	assert.Equal(t, 33, OverallPercent(days, doneTasks(1)))
	// 2/3 of days -> 67 (nearest, not truncated 66)
	assert.Equal(t, 67, OverallPercent(days, doneTasks(1, 2)))
	assert.Equal(t, 100, OverallPercent(days, doneTasks(1, 2, 3)))

	assert.Equal(t, 0, OverallPercent(nil, doneTasks()))
}

func TestBuildView(t *testing.T) {
	days := buildDays(2, 1, 1)
	view := BuildView(days, doneTasks(1, 2))

	require.Len(t, view.Days, 3)
	assert.Equal(t, 1, view.CompletedDays)
	assert.Equal(t, 2, view.CompletedTasks)
	assert.Equal(t, 33, view.OverallPercent)

	assert.True(t, view.HasActiveDay)
	assert.Equal(t, 2, view.ActiveDayNumber)

	assert.True(t, view.Days[0].Complete)
	assert.True(t, view.Days[0].Unlocked)
	assert.False(t, view.Days[0].Active)

	assert.False(t, view.Days[1].Complete)
	assert.True(t, view.Days[1].Unlocked)
	assert.True(t, view.Days[1].Active)

	assert.False(t, view.Days[2].Unlocked)
}

func TestBuildViewEmpty(t *testing.T) {
	view := BuildView(nil, doneTasks())

	assert.Empty(t, view.Days)
	assert.False(t, view.HasActiveDay)
	assert.Equal(t, 0, view.OverallPercent)
}
