package analytics

import (
	"testing"

	"jokipro/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgingScenario45Days(t *testing.T) {
	e := newEngine()
	tasks := []model.Task{
		task("thesis", model.StatusDone, model.PriorityHigh, withDate(-45), withMoney("1000", "400")),
	}

	got := e.Aging(tasks)
	assertDec(t, "600", got.Summary.Aging31To60)
	assertDec(t, "600", got.Summary.TotalOverdue)
	assertDec(t, "0", got.Summary.Aging1To30)
	assertDec(t, "0", got.Summary.Aging60Plus)
	require.Len(t, got.RiskyTasks, 1)
	assert.Equal(t, "thesis", got.RiskyTasks[0].Name)
	assert.Equal(t, 45, got.RiskyTasks[0].Days)
	assertDec(t, "600", got.RiskyTasks[0].Amount)
	assertDec(t, "40", got.CollectionRatio)
}

func TestAgingBucketBoundaries(t *testing.T) {
	e := newEngine()
	tasks := []model.Task{
		task("today", model.StatusDone, model.PriorityLow, withDate(0), withMoney("7", "0")),
		task("future", model.StatusDone, model.PriorityLow, withDate(5), withMoney("7", "0")),
		task("d1", model.StatusDone, model.PriorityLow, withDate(-1), withMoney("1", "0")),
		task("d30", model.StatusDone, model.PriorityLow, withDate(-30), withMoney("2", "0")),
		task("d31", model.StatusDone, model.PriorityLow, withDate(-31), withMoney("4", "0")),
		task("d60", model.StatusDone, model.PriorityLow, withDate(-60), withMoney("8", "0")),
		task("d61", model.StatusDone, model.PriorityLow, withDate(-61), withMoney("16", "0")),
		task("d200", model.StatusDone, model.PriorityLow, withDate(-200), withMoney("32", "0")),
	}

	got := e.Aging(tasks)
	assertDec(t, "3", got.Summary.Aging1To30)
	assertDec(t, "12", got.Summary.Aging31To60)
	assertDec(t, "48", got.Summary.Aging60Plus)
	assertDec(t, "63", got.Summary.TotalOverdue)

	var days []int
	for _, r := range got.RiskyTasks {
		days = append(days, r.Days)
	}
	assert.Equal(t, []int{200, 61, 60, 31}, days)
	assert.Equal(t, got.RiskyTasks, got.Summary.RiskyTasks)
}

func TestAgingSkipsIneligible(t *testing.T) {
	e := newEngine()
	tasks := []model.Task{
		task("not done", model.StatusReview, model.PriorityLow, withDate(-40), withMoney("100", "0")),
		task("paid off", model.StatusDone, model.PriorityLow, withDate(-40), withMoney("100", "100")),
		task("overpaid", model.StatusDone, model.PriorityLow, withDate(-40), withMoney("100", "120")),
		task("no date", model.StatusDone, model.PriorityLow, withMoney("100", "0")),
		task("bad date", model.StatusDone, model.PriorityLow, withRawDate("soon"), withMoney("100", "0")),
	}

	got := e.Aging(tasks)
	assertDec(t, "0", got.Summary.TotalOverdue)
	assert.Empty(t, got.RiskyTasks)
}

func TestBucketsSumToTotal(t *testing.T) {
	e := newEngine()
	var tasks []model.Task
	for i := 1; i <= 120; i += 7 {
		tasks = append(tasks, task("t", model.StatusDone, model.PriorityMedium, withDate(-i), withMoney("99.99", "12.34")))
	}

	s := e.Aging(tasks).Summary
	assert.True(t, s.Aging1To30.Add(s.Aging31To60).Add(s.Aging60Plus).Equal(s.TotalOverdue))
}

func TestCollectionRatio(t *testing.T) {
	assertDec(t, "0", CollectionRatio(nil))
	assertDec(t, "0", CollectionRatio([]model.Task{task("free", model.StatusDone, model.PriorityLow, withMoney("0", "0"))}))

	tasks := []model.Task{
		task("a", model.StatusDone, model.PriorityLow, withMoney("300", "100")),
		task("b", model.StatusToDo, model.PriorityLow, withMoney("0", "0")),
	}
	assertDec(t, "33.33", CollectionRatio(tasks))

	full := []model.Task{task("a", model.StatusDone, model.PriorityLow, withMoney("80", "80"))}
	assertDec(t, "100", CollectionRatio(full))
}
