package planner

import "github.com/hungtvu113/WebsiteTimE-sub000/internal/core/domain"

// ResolveTaskRef looks up the block's task among tasks. A missing task is a
// valid outcome, reported with Found=false.
func ResolveTaskRef(block domain.TimeBlock, tasks []domain.Task) domain.TaskRef {
	ref := domain.TaskRef{TaskID: block.TaskID}
	if block.TaskID == nil || *block.TaskID == "" {
		return ref
	}
	for i := range tasks {
		if tasks[i].ID == *block.TaskID {
			task := tasks[i]
			ref.Task = &task
			ref.Found = true
			return ref
		}
	}
	return ref
}

// DanglingRefs lists blocks that reference a task id absent from tasks.
func DanglingRefs(blocks []domain.TimeBlock, tasks []domain.Task) []domain.DanglingRef {
	known := make(map[string]struct{}, len(tasks))
	for _, task := range tasks {
		known[task.ID] = struct{}{}
	}

	var out []domain.DanglingRef
	for _, block := range blocks {
		if block.TaskID == nil || *block.TaskID == "" {
			continue
		}
		if _, ok := known[*block.TaskID]; ok {
			continue
		}
		out = append(out, domain.DanglingRef{TimeBlockID: block.ID, TaskID: *block.TaskID})
	}
	return out
}
