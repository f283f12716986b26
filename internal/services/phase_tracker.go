package services

import (
	"errors"
	"math"
	"strings"

	"github.com/osscccar/webdash-admin/internal/models"
)

var (
	ErrPhaseIndex  = errors.New("phase index out of range")
	ErrTaskIndex   = errors.New("task index out of range")
	ErrPhaseStatus = errors.New("invalid phase status")
)

// SetPhaseStatus sets phases[phaseIndex] to the requested status and applies
// the cascade rules: completing a phase completes all of its tasks, and
// activating a phase forces the immediately preceding phase (and its tasks)
// to completed. The cascade reaches exactly one phase back; phases are
// expected to advance in order.
func SetPhaseStatus(phases []models.Phase, phaseIndex int, status string) error {
	if phaseIndex < 0 || phaseIndex >= len(phases) {
		return ErrPhaseIndex
	}
	if !models.ValidPhaseStatus(status) {
		return ErrPhaseStatus
	}

	phases[phaseIndex].Status = status

	switch status {
	case models.PhaseStatusCompleted:
		completeAllTasks(&phases[phaseIndex])
	case models.PhaseStatusActive:
		if phaseIndex > 0 {
			phases[phaseIndex-1].Status = models.PhaseStatusCompleted
			completeAllTasks(&phases[phaseIndex-1])
		}
	}

	return nil
}

// ToggleTask flips one task and re-derives the owning phase's status from its
// tasks: all complete promotes the phase to completed, a regression on a
// completed phase demotes it to active, anything else leaves the status
// alone.
func ToggleTask(phases []models.Phase, phaseIndex int, taskIndex int) error {
	if phaseIndex < 0 || phaseIndex >= len(phases) {
		return ErrPhaseIndex
	}
	phase := &phases[phaseIndex]
	if taskIndex < 0 || taskIndex >= len(phase.Tasks) {
		return ErrTaskIndex
	}

	phase.Tasks[taskIndex].Completed = !phase.Tasks[taskIndex].Completed

	switch {
	case allTasksCompleted(*phase):
		phase.Status = models.PhaseStatusCompleted
	case phase.Status == models.PhaseStatusCompleted:
		phase.Status = models.PhaseStatusActive
	}

	return nil
}

// AddTask appends an incomplete task. A name that trims to empty is a silent
// no-op. The phase status is not recomputed: a completed phase keeps its
// status until the next toggle.
func AddTask(phases []models.Phase, phaseIndex int, taskName string) error {
	if phaseIndex < 0 || phaseIndex >= len(phases) {
		return ErrPhaseIndex
	}

	trimmed := strings.TrimSpace(taskName)
	if trimmed == "" {
		return nil
	}

	phases[phaseIndex].Tasks = append(phases[phaseIndex].Tasks, models.Task{Name: trimmed})
	return nil
}

// RemoveTask deletes one task. Like AddTask it leaves the phase status
// untouched.
func RemoveTask(phases []models.Phase, phaseIndex int, taskIndex int) error {
	if phaseIndex < 0 || phaseIndex >= len(phases) {
		return ErrPhaseIndex
	}
	phase := &phases[phaseIndex]
	if taskIndex < 0 || taskIndex >= len(phase.Tasks) {
		return ErrTaskIndex
	}

	phase.Tasks = append(phase.Tasks[:taskIndex], phase.Tasks[taskIndex+1:]...)
	return nil
}

// CompletionPercentage is the share of completed phases (not tasks), rounded
// to the nearest integer. An empty list reports 0.
func CompletionPercentage(phases []models.Phase) int {
	if len(phases) == 0 {
		return 0
	}

	completed := 0
	for _, phase := range phases {
		if phase.Status == models.PhaseStatusCompleted {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(len(phases))))
}

func allTasksCompleted(phase models.Phase) bool {
	if len(phase.Tasks) == 0 {
		return false
	}
	for _, task := range phase.Tasks {
		if !task.Completed {
			return false
		}
	}
	return true
}

func completeAllTasks(phase *models.Phase) {
	for index := range phase.Tasks {
		phase.Tasks[index].Completed = true
	}
}
