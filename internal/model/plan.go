package model

// PlanFile lists the edits to apply, in order, to one source file.
type PlanFile struct {
	Path  Path
	Edits []Edit
}

// Plan is a batch of per-file edit lists.
type Plan struct {
	Files []PlanFile
}

// EditCount returns the total number of edits in the plan.
func (p Plan) EditCount() int {
	total := 0
	for _, f := range p.Files {
		total += len(f.Edits)
	}

	return total
}
