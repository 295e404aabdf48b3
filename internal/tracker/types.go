// Package tracker models checklist steps, tasks and their progress.
package tracker

// Task is a single checkbox item belonging to exactly one step.
type Task struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Done  bool   `json:"done" yaml:"done"`
}

// Step is a checklist section representing one project milestone.
type Step struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Deadline string `json:"deadline" yaml:"deadline"`
	// Progress is derived from Tasks. Only ToggleTask and Recompute write it.
	Progress int    `json:"progress" yaml:"progress"`
	Tasks    []Task `json:"tasks" yaml:"tasks"`
}

// State is the ordered list of steps.
type State []Step

// DefaultSteps returns a fresh copy of the built-in step list.
func DefaultSteps() State {
	return Clone(defaultSteps)
}

// Clone returns a deep copy of s.
func Clone(s State) State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	for i, step := range s {
		out[i] = step
		if step.Tasks != nil {
			out[i].Tasks = make([]Task, len(step.Tasks))
			copy(out[i].Tasks, step.Tasks)
		}
	}
	return out
}

// Step returns the step with the given ID.
func (s State) Step(id string) (Step, bool) {
	if i := s.stepIndex(id); i >= 0 {
		return s[i], true
	}
	return Step{}, false
}

// FindTask returns the task identified by (stepID, taskID).
func FindTask(s State, stepID, taskID string) (Task, bool) {
	step, ok := s.Step(stepID)
	if !ok {
		return Task{}, false
	}
	if i := step.taskIndex(taskID); i >= 0 {
		return step.Tasks[i], true
	}
	return Task{}, false
}

// ToggleTask returns a state in which the task identified by (stepID,
// taskID) has Done set to done and its step's progress recomputed.
//
// Unknown step or task IDs leave the state untouched and s itself is
// returned. Steps other than the matched one are shared with s.
func ToggleTask(s State, stepID, taskID string, done bool) State {
	si := s.stepIndex(stepID)
	if si < 0 {
		return s
	}
	ti := s[si].taskIndex(taskID)
	if ti < 0 {
		return s
	}

	step := s[si]
	tasks := make([]Task, len(step.Tasks))
	copy(tasks, step.Tasks)
	tasks[ti].Done = done
	step.Tasks = tasks
	step.Progress = Percent(step.DoneCount(), len(tasks))

	next := make(State, len(s))
	copy(next, s)
	next[si] = step
	return next
}

func (s State) stepIndex(id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func (st Step) taskIndex(id string) int {
	for i := range st.Tasks {
		if st.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
