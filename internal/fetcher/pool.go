package fetcher

import (
	"context"
	"sort"
	"sync"
)

// AgentResult is the outcome of one fetch under one user-agent identity.
// Exactly one of Doc or Err is set.
type AgentResult struct {
	Agent string
	Doc   *Document
	Err   error
}

// FetchAllAgents fetches rawURL once per entry in UserAgents through a
// bounded worker pool. Per-agent failures are recorded in the result and
// never abort the remaining fetches.
func (f *Fetcher) FetchAllAgents(ctx context.Context, rawURL string, workers int) []AgentResult {
	if workers <= 0 {
		workers = 4
	}

	agents := make([]string, 0, len(UserAgents))
	for name := range UserAgents {
		agents = append(agents, name)
	}
	sort.Strings(agents)

	tasks := make(chan string, len(agents))
	for _, a := range agents {
		tasks <- a
	}
	close(tasks)

	var (
		mu      sync.Mutex
		results = make(map[string]AgentResult, len(agents))
		wg      sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for agent := range tasks {
				select {
				case <-ctx.Done():
					mu.Lock()
					results[agent] = AgentResult{Agent: agent, Err: ctx.Err()}
					mu.Unlock()
					continue
				default:
				}
				doc, err := f.FetchAs(ctx, rawURL, agent)
				mu.Lock()
				results[agent] = AgentResult{Agent: agent, Doc: doc, Err: err}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	out := make([]AgentResult, 0, len(agents))
	for _, a := range agents {
		out = append(out, results[a])
	}
	return out
}
