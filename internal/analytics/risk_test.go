package analytics

import (
	"fmt"
	"testing"

	"jokipro/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRisk(t *testing.T) {
	cases := []struct {
		weight, days int
		score        int
		level        RiskLevel
	}{
		{3, 0, 100, RiskHigh},
		{3, 2, 100, RiskHigh},
		{3, 3, 75, RiskHigh},
		{3, 4, 50, RiskMedium},
		{2, 2, 50, RiskMedium},
		{2, 3, 25, RiskLow},
		{1, 0, 50, RiskMedium},
		{1, 2, 0, RiskLow},
		{1, 14, 0, RiskLow},
	}
	for _, c := range cases {
		score, level := ScoreRisk(c.weight, c.days)
		assert.Equal(t, c.score, score, "weight=%d days=%d", c.weight, c.days)
		assert.Equal(t, c.level, level, "weight=%d days=%d", c.weight, c.days)
	}
}

func TestDeadlineRiskHighToday(t *testing.T) {
	e := newEngine()
	got := e.DeadlineRisk([]model.Task{task("exam", model.StatusToDo, model.PriorityHigh, withDate(0))})

	require.Len(t, got.RiskyTasks, 1)
	assert.Equal(t, TaskRisk{Name: "exam", DaysLeft: 0, RiskLevel: RiskHigh, RiskScore: 100}, got.RiskyTasks[0])
	assert.Equal(t, 3, got.WorkloadScore)
}

func TestDeadlineRiskLowAtWindowEdgeStillCounts(t *testing.T) {
	e := newEngine()
	got := e.DeadlineRisk([]model.Task{task("slide deck", model.StatusInProgress, model.PriorityLow, withDate(14))})

	require.Len(t, got.RiskyTasks, 1)
	assert.Equal(t, 0, got.RiskyTasks[0].RiskScore)
	assert.Equal(t, RiskLow, got.RiskyTasks[0].RiskLevel)
	assert.Equal(t, 1, got.WorkloadScore)
	assert.Equal(t, WorkloadLight, got.OverallWorkload)
}

func TestDeadlineRiskFilters(t *testing.T) {
	e := newEngine()
	tasks := []model.Task{
		task("overdue", model.StatusToDo, model.PriorityHigh, withDate(-1)),
		task("far", model.StatusToDo, model.PriorityHigh, withDate(15)),
		task("review", model.StatusReview, model.PriorityHigh, withDate(1)),
		task("done", model.StatusDone, model.PriorityHigh, withDate(1)),
		task("undated", model.StatusToDo, model.PriorityHigh),
		task("garbled", model.StatusToDo, model.PriorityHigh, withRawDate("next friday")),
		task("kept", model.StatusToDo, model.Priority("Urgent"), withDate(1)),
	}

	got := e.DeadlineRisk(tasks)
	require.Len(t, got.RiskyTasks, 1)
	assert.Equal(t, "kept", got.RiskyTasks[0].Name)
	// unknown priority weighs like Low
	assert.Equal(t, 1, got.WorkloadScore)
	assert.Equal(t, 25, got.RiskyTasks[0].RiskScore)
}

func TestDeadlineRiskTopFiveStable(t *testing.T) {
	e := newEngine()
	var tasks []model.Task
	for i := 0; i < 4; i++ {
		tasks = append(tasks, task(fmt.Sprintf("med-%d", i), model.StatusToDo, model.PriorityMedium, withDate(2)))
	}
	tasks = append(tasks,
		task("high-late", model.StatusInProgress, model.PriorityHigh, withDate(4)),
		task("high-now", model.StatusInProgress, model.PriorityHigh, withDate(1)),
	)

	got := e.DeadlineRisk(tasks)
	require.Len(t, got.RiskyTasks, 5)
	var names []string
	for _, r := range got.RiskyTasks {
		names = append(names, r.Name)
	}
	// 100 first, then the 50s in input order; high-late ties but comes last and is cut
	assert.Equal(t, []string{"high-now", "med-0", "med-1", "med-2", "med-3"}, names)
	assert.Equal(t, 4*2+3+3, got.WorkloadScore)
	assert.Equal(t, WorkloadHeavy, got.OverallWorkload)
}

func TestWorkloadClassification(t *testing.T) {
	assert.Equal(t, WorkloadLight, classifyWorkload(0))
	assert.Equal(t, WorkloadLight, classifyWorkload(4))
	assert.Equal(t, WorkloadModerate, classifyWorkload(5))
	assert.Equal(t, WorkloadModerate, classifyWorkload(9))
	assert.Equal(t, WorkloadHeavy, classifyWorkload(10))
}

func TestUpcomingHighPriority(t *testing.T) {
	e := newEngine()
	tasks := []model.Task{
		task("today", model.StatusToDo, model.PriorityHigh, withDate(0)),
		task("week", model.StatusInProgress, model.PriorityHigh, withDate(7)),
		task("eight", model.StatusInProgress, model.PriorityHigh, withDate(8)),
		task("yesterday", model.StatusToDo, model.PriorityHigh, withDate(-1)),
		task("medium", model.StatusToDo, model.PriorityMedium, withDate(2)),
		task("review", model.StatusReview, model.PriorityHigh, withDate(2)),
		task("garbled", model.StatusToDo, model.PriorityHigh, withRawDate("tbd")),
	}

	got := e.UpcomingHighPriority(tasks, 7)
	require.Len(t, got, 2)
	assert.Equal(t, "today", got[0].Name)
	assert.Equal(t, "week", got[1].Name)
}
