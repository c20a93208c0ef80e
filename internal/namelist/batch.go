package namelist

import (
	"context"
	"fmt"
)

// ProcessAll runs jobs in order and stops at the first failure. The results
// of the jobs that completed are returned alongside the error.
func (p *Processor) ProcessAll(ctx context.Context, jobs []Job) ([]*Result, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	results := make([]*Result, 0, len(jobs))
	for i, job := range jobs {
		result, err := p.Process(ctx, job.Input, job.Output)
		if err != nil {
			return results, fmt.Errorf("name list %d of %d: %w", i+1, len(jobs), err)
		}
		results = append(results, result)
	}
	return results, nil
}
