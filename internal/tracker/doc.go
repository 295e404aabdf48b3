// Package tracker models the hen house checklist: steps, their tasks, and the
// progress derived from task completion.
//
// The persisted form is a JSON array of steps:
//
//	[
//	  {
//	    "id": "s1",
//	    "title": "Step 1 – Develop Recipes",
//	    "deadline": "Oct 2025",
//	    "progress": 17,
//	    "tasks": [
//	      {"id": "s1t1", "label": "Research flavor trends & competitors", "done": true},
//	      {"id": "s1t2", "label": "Source WI/Midwest ingredients", "done": false}
//	    ]
//	  }
//	]
//
// # Progress
//
// A step's progress is a cached percentage that always equals
// round(100 * done / len(tasks)). It is only ever written by ToggleTask and
// Recompute, never set directly. Overall progress is never cached; see
// OverallProgress.
//
// Percentages round half up using integer arithmetic, so 1 of 8 tasks is 13%
// and an empty task list is 0%.
//
// # Decoding
//
// Decode accepts any JSON document that matches the state schema (an array
// of steps with id, title and tasks, each task with id, label and done).
// Unknown fields are ignored. Decoded states have their progress recomputed.
package tracker
