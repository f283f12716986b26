package models

const (
	PhaseStatusPending   = "pending"
	PhaseStatusActive    = "active"
	PhaseStatusCompleted = "completed"
)

// Phase is one stage of a client's project. Array order within a client's
// phase list is the pipeline order.
type Phase struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Tasks  []Task `json:"tasks"`
}

type Task struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

func ValidPhaseStatus(status string) bool {
	switch status {
	case PhaseStatusPending, PhaseStatusActive, PhaseStatusCompleted:
		return true
	default:
		return false
	}
}

// DefaultPhases returns the template seeded for clients that have no phase
// list yet. The first phase starts active, the rest pending.
func DefaultPhases() []Phase {
	return []Phase{
		{
			Name:   "Planning",
			Status: PhaseStatusActive,
			Tasks: []Task{
				{Name: "Kickoff call"},
				{Name: "Collect brand assets"},
				{Name: "Approve sitemap"},
			},
		},
		{
			Name:   "Design",
			Status: PhaseStatusPending,
			Tasks: []Task{
				{Name: "Homepage draft"},
				{Name: "Inner page drafts"},
				{Name: "Client design review"},
			},
		},
		{
			Name:   "Revisions",
			Status: PhaseStatusPending,
			Tasks: []Task{
				{Name: "Collect revision requests"},
				{Name: "Apply revisions"},
			},
		},
		{
			Name:   "Launch",
			Status: PhaseStatusPending,
			Tasks: []Task{
				{Name: "Connect domain"},
				{Name: "Final QA pass"},
				{Name: "Go live"},
			},
		},
	}
}
