// Package planner produces validated execution plans from natural
// language requests, via the LLM gateway with a deterministic
// pattern-matched fallback, plus the re-plan path used after critical
// failures.
package planner

import (
	"errors"
	"fmt"
)

// ToolFinishTask is the terminal tool every valid plan must reach.
const ToolFinishTask = "finish_task"

// ErrPlanInvalid is returned when a produced plan fails validation.
var ErrPlanInvalid = errors.New("planner: invalid plan")

// Subtask is one node of a plan's dependency graph.
type Subtask struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Tool        string         `json:"tool"`
	Input       map[string]any `json:"input,omitempty"`
	DependsOn   []string       `json:"dependsOn,omitempty"`
}

// Plan is a dependency-ordered set of subtasks ending in finish_task.
type Plan struct {
	Goal     string    `json:"goal,omitempty"`
	Subtasks []Subtask `json:"subtasks"`
}

// Validate checks the structural invariants: non-empty, unique ids,
// dependencies reference existing ids, the graph is acyclic, and at least
// one finish_task sits at the frontier (nothing depends on it).
func (p *Plan) Validate() error {
	if len(p.Subtasks) == 0 {
		return fmt.Errorf("%w: no subtasks", ErrPlanInvalid)
	}

	ids := make(map[string]int, len(p.Subtasks))
	for i, st := range p.Subtasks {
		if st.ID == "" {
			return fmt.Errorf("%w: subtask %d has no id", ErrPlanInvalid, i)
		}
		if st.Tool == "" {
			return fmt.Errorf("%w: subtask %q has no tool", ErrPlanInvalid, st.ID)
		}
		if _, dup := ids[st.ID]; dup {
			return fmt.Errorf("%w: duplicate subtask id %q", ErrPlanInvalid, st.ID)
		}
		ids[st.ID] = i
	}

	dependedOn := make(map[string]bool)
	for _, st := range p.Subtasks {
		for _, dep := range st.DependsOn {
			if _, ok := ids[dep]; !ok {
				return fmt.Errorf("%w: subtask %q depends on unknown id %q", ErrPlanInvalid, st.ID, dep)
			}
			if dep == st.ID {
				return fmt.Errorf("%w: subtask %q depends on itself", ErrPlanInvalid, st.ID)
			}
			dependedOn[dep] = true
		}
	}

	if err := p.checkAcyclic(ids); err != nil {
		return err
	}

	for _, st := range p.Subtasks {
		if st.Tool == ToolFinishTask && !dependedOn[st.ID] {
			return nil
		}
	}
	return fmt.Errorf("%w: no terminal %s subtask", ErrPlanInvalid, ToolFinishTask)
}

func (p *Plan) checkAcyclic(ids map[string]int) error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make([]int, len(p.Subtasks))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case visiting:
			return fmt.Errorf("%w: dependency cycle through %q", ErrPlanInvalid, p.Subtasks[i].ID)
		case done:
			return nil
		}
		state[i] = visiting
		for _, dep := range p.Subtasks[i].DependsOn {
			if err := visit(ids[dep]); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}

	for i := range p.Subtasks {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}
