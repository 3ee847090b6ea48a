package sync

import (
	"context"
	"fmt"
	gosync "sync"

	"trackctl/internal/api"
)

// Fetcher issues the concurrent reads behind a refresh. Every listed
// resource is fetched in its own goroutine; the group joins on all of them
// and fails as a whole if any one fails, so results are never partially
// applied.
type Fetcher struct {
	client *api.Client
}

// NewFetcher creates a Fetcher over the given transport client.
func NewFetcher(client *api.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch retrieves the listed resources concurrently and returns a Snapshot
// when every one of them succeeded, or the first error otherwise.
func (f *Fetcher) Fetch(ctx context.Context, resources []Resource, view View) (*Snapshot, error) {
	snap := &Snapshot{Resources: resources}

	var (
		wg       gosync.WaitGroup
		mu       gosync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, r := range resources {
		wg.Add(1)
		go func(r Resource) {
			defer wg.Done()
			if err := f.fetchOne(ctx, r, view, snap, &mu); err != nil {
				fail(err)
			}
		}(r)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return snap, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, r Resource, view View, snap *Snapshot, mu *gosync.Mutex) error {
	switch r {
	case ResourceSummary:
		v, err := f.client.Summary(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.Summary = v
		mu.Unlock()
	case ResourceReview:
		v, err := f.client.WeeklyReview(ctx, view.Today)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.Review = v
		mu.Unlock()
	case ResourceCheckIns:
		v, err := f.client.CheckIns(ctx, view.CheckInStart, view.CheckInEnd)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.CheckIns = v
		mu.Unlock()
	case ResourceFitness:
		v, err := f.client.FitnessMetrics(ctx, view.FitnessStart, view.FitnessEnd)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.Fitness = v
		mu.Unlock()
	case ResourceMortgageSummary:
		v, err := f.client.MortgageSummary(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.MortgageSummary = v
		mu.Unlock()
	case ResourceMortgageEvents:
		v, err := f.client.MortgageEvents(ctx, view.MortgageStart, view.MortgageEnd)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.MortgageEvents = v
		mu.Unlock()
	case ResourceTrip:
		v, err := f.client.Trip(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.Trip = v
		mu.Unlock()
	case ResourceTripHistory:
		v, err := f.client.TripHistory(ctx, view.HistoryLimit)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.TripHistory = v
		mu.Unlock()
	case ResourceGifts:
		v, err := f.client.Gifts(ctx, view.GiftYear, view.GiftMonth)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.Gifts = v
		mu.Unlock()
	case ResourceSettings:
		v, err := f.client.Settings(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		snap.Settings = v
		mu.Unlock()
	default:
		return fmt.Errorf("unknown resource %q", r)
	}
	return nil
}
