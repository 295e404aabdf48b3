package tracker

// Overall is the checklist-wide completion summary.
type Overall struct {
	TotalTasks int `json:"total_tasks" yaml:"total_tasks"`
	DoneTasks  int `json:"done_tasks" yaml:"done_tasks"`
	Percent    int `json:"percent" yaml:"percent"`
}

// Percent returns round(100 * done / total), rounding half up.
// A non-positive total yields 0.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*done + total) / (2 * total)
}

// DoneCount returns the number of completed tasks in the step.
func (st Step) DoneCount() int {
	n := 0
	for _, t := range st.Tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// OverallProgress sums task counts across all steps. It reads the raw Done
// flags and never the cached step progress.
func OverallProgress(s State) Overall {
	var o Overall
	for _, step := range s {
		o.TotalTasks += len(step.Tasks)
		o.DoneTasks += step.DoneCount()
	}
	o.Percent = Percent(o.DoneTasks, max(1, o.TotalTasks))
	return o
}

// Recompute rewrites every step's progress from its tasks in place.
func Recompute(s State) {
	for i := range s {
		s[i].Progress = Percent(s[i].DoneCount(), len(s[i].Tasks))
	}
}
