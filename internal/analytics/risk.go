package analytics

import (
	"sort"

	"jokipro/internal/clock"
	"jokipro/internal/model"
)

const (
	riskWindowDays = 14
	topRiskTasks   = 5
)

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

type Workload string

const (
	WorkloadHeavy    Workload = "Heavy"
	WorkloadModerate Workload = "Moderate"
	WorkloadLight    Workload = "Light"
)

var priorityWeight = map[model.Priority]int{
	model.PriorityHigh:   3,
	model.PriorityMedium: 2,
	model.PriorityLow:    1,
}

type TaskRisk struct {
	Name      string    `json:"name"`
	DaysLeft  int       `json:"days_left"`
	RiskLevel RiskLevel `json:"risk_level"`
	RiskScore int       `json:"risk_score"`
}

type DeadlineRisk struct {
	OverallWorkload Workload   `json:"overall_workload"`
	RiskyTasks      []TaskRisk `json:"risky_tasks"`
	WorkloadScore   int        `json:"workload_score"`
}

func weightOf(p model.Priority) int {
	if w, ok := priorityWeight[p]; ok {
		return w
	}
	return 1
}

// ScoreRisk maps a priority weight and days to deadline onto a 0-100
// score and its level.
func ScoreRisk(weight, daysLeft int) (int, RiskLevel) {
	raw := max(0, weight*10-daysLeft*5)
	score := min(100, raw*5)
	switch {
	case score >= 70:
		return score, RiskHigh
	case score >= 30:
		return score, RiskMedium
	default:
		return score, RiskLow
	}
}

func classifyWorkload(score int) Workload {
	switch {
	case score >= 10:
		return WorkloadHeavy
	case score >= 5:
		return WorkloadModerate
	default:
		return WorkloadLight
	}
}

// DeadlineRisk scores open tasks due within the next two weeks and
// returns the five riskiest. Every in-window task adds its priority
// weight to the workload score, whatever its risk level.
func (e *Engine) DeadlineRisk(tasks []model.Task) DeadlineRisk {
	today := e.today()
	var (
		scored   []TaskRisk
		workload int
	)
	for _, t := range tasks {
		if !isOpen(t.Status) {
			continue
		}
		d, ok := dueDate(t)
		if !ok {
			continue
		}
		left := clock.DaysBetween(today, d)
		if left < 0 || left > riskWindowDays {
			continue
		}

		w := weightOf(t.Priority)
		workload += w
		score, level := ScoreRisk(w, left)
		scored = append(scored, TaskRisk{Name: t.Name, DaysLeft: left, RiskLevel: level, RiskScore: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].RiskScore > scored[j].RiskScore })
	if len(scored) > topRiskTasks {
		scored = scored[:topRiskTasks]
	}
	if scored == nil {
		scored = []TaskRisk{}
	}
	return DeadlineRisk{OverallWorkload: classifyWorkload(workload), RiskyTasks: scored, WorkloadScore: workload}
}

// UpcomingHighPriority returns open High-priority tasks due between today
// and today+windowDays, both ends inclusive.
func (e *Engine) UpcomingHighPriority(tasks []model.Task, windowDays int) []model.Task {
	today := e.today()
	var out []model.Task
	for _, t := range tasks {
		if !isOpen(t.Status) || t.Priority != model.PriorityHigh {
			continue
		}
		d, ok := dueDate(t)
		if !ok {
			continue
		}
		if left := clock.DaysBetween(today, d); left >= 0 && left <= windowDays {
			out = append(out, t)
		}
	}
	return out
}
