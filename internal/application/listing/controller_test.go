package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// pageFetch serves deterministic items of the form "p<page>-i<n>" so a test
// can tell exactly which fetch produced the visible items.
func pageFetch(total int) FetchFunc[string] {
	return func(_ context.Context, page, pageSize int, _ Filters) (Result[string], error) {
		start := page * pageSize
		var items []string
		for i := start; i < total && i < start+pageSize; i++ {
			items = append(items, fmt.Sprintf("p%d-i%d", page, i))
		}
		return Result[string]{Items: items, TotalCount: total}, nil
	}
}

func TestFetchAndPageMath(t *testing.T) {
	c := New(pageFetch(57), 20)

	if err := c.Refetch(context.Background()); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	snap := c.Snapshot()
	if len(snap.Items) != 20 || snap.TotalCount != 57 {
		t.Fatalf("page 0: %d items, total %d", len(snap.Items), snap.TotalCount)
	}
	if got := snap.TotalPages(); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}

	if err := c.SetPage(context.Background(), 2); err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	snap = c.Snapshot()
	if len(snap.Items) != 17 {
		t.Fatalf("last page has %d items, want 17", len(snap.Items))
	}
	if snap.Items[0] != "p2-i40" {
		t.Fatalf("last page starts at %q", snap.Items[0])
	}
}

func TestEmptyResultIsSuccess(t *testing.T) {
	c := New(pageFetch(0), 20)

	if err := c.Refetch(context.Background()); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	snap := c.Snapshot()
	if snap.Err != nil {
		t.Fatalf("empty page reported error: %v", snap.Err)
	}
	if len(snap.Items) != 0 || snap.TotalCount != 0 || snap.TotalPages() != 0 {
		t.Fatalf("unexpected empty-state snapshot: %+v", snap)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	var seen []Filters
	var mu sync.Mutex
	fetch := func(ctx context.Context, page, pageSize int, filters Filters) (Result[string], error) {
		mu.Lock()
		seen = append(seen, filters)
		mu.Unlock()
		return pageFetch(57)(ctx, page, pageSize, filters)
	}

	c := New(fetch, 20)
	if err := c.SetPage(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	if err := c.SetFilter(context.Background(), "status", "pending"); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if snap.Page != 0 {
		t.Fatalf("filter change left page at %d, want 0", snap.Page)
	}
	if snap.Filters["status"] != "pending" {
		t.Fatalf("filters = %v", snap.Filters)
	}

	// Clearing the filter removes the key rather than sending an empty value.
	if err := c.SetFilter(context.Background(), "status", ""); err != nil {
		t.Fatal(err)
	}
	mu.Lock()
	last := seen[len(seen)-1]
	mu.Unlock()
	if _, ok := last["status"]; ok {
		t.Fatalf("cleared filter still sent to fetch: %v", last)
	}
}

func TestFetchErrorRetainsPriorItems(t *testing.T) {
	fail := false
	boom := errors.New("backend unavailable")
	fetch := func(ctx context.Context, page, pageSize int, filters Filters) (Result[string], error) {
		if fail {
			return Result[string]{}, boom
		}
		return pageFetch(5)(ctx, page, pageSize, filters)
	}

	c := New(fetch, 20)
	if err := c.Refetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	fail = true
	if err := c.Refetch(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}

	snap := c.Snapshot()
	if len(snap.Items) != 5 {
		t.Fatalf("error wiped the prior items, %d left", len(snap.Items))
	}
	if !errors.Is(snap.Err, boom) {
		t.Fatalf("snapshot error = %v", snap.Err)
	}

	// A later success clears the error again.
	fail = false
	if err := c.Refetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	if snap := c.Snapshot(); snap.Err != nil {
		t.Fatalf("error survived a successful refetch: %v", snap.Err)
	}
}

// TestSlowFetchCannotOverwriteNewer pins the generation guard: a fetch for
// page 0 that settles after a fetch for page 1 was issued is discarded.
func TestSlowFetchCannotOverwriteNewer(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, page, pageSize int, filters Filters) (Result[string], error) {
		if page == 0 {
			close(started)
			<-release
		}
		return Result[string]{
			Items:      []string{fmt.Sprintf("page-%d", page)},
			TotalCount: 40,
		}, nil
	}

	c := New(fetch, 20)

	errs := make(chan error, 1)
	go func() {
		errs <- c.Refetch(context.Background())
	}()
	<-started

	// The newer operation completes while the page-0 fetch is blocked.
	if err := c.SetPage(context.Background(), 1); err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	close(release)

	if err := <-errs; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("stale fetch returned %v, want ErrSuperseded", err)
	}

	snap := c.Snapshot()
	if snap.Page != 1 || len(snap.Items) != 1 || snap.Items[0] != "page-1" {
		t.Fatalf("stale result leaked into snapshot: %+v", snap)
	}
}

func TestCloseDiscardsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(context.Context, int, int, Filters) (Result[string], error) {
		close(started)
		<-release
		return Result[string]{Items: []string{"late"}, TotalCount: 1}, nil
	}

	c := New(fetch, 20)

	errs := make(chan error, 1)
	go func() {
		errs <- c.Refetch(context.Background())
	}()
	<-started

	c.Close()
	close(release)

	if err := <-errs; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("post-close fetch returned %v, want ErrSuperseded", err)
	}
	if snap := c.Snapshot(); len(snap.Items) != 0 {
		t.Fatalf("items applied after Close: %v", snap.Items)
	}

	if err := c.Refetch(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("operation on closed controller returned %v", err)
	}
}

func TestPageSizeChangeResetsPage(t *testing.T) {
	c := New(pageFetch(57), 20, WithPage[string](2))

	if err := c.SetPageSize(context.Background(), 10); err != nil {
		t.Fatal(err)
	}

	snap := c.Snapshot()
	if snap.Page != 0 || snap.PageSize != 10 {
		t.Fatalf("page=%d size=%d after resize, want 0/10", snap.Page, snap.PageSize)
	}
	if got := snap.TotalPages(); got != 6 {
		t.Fatalf("TotalPages = %d, want 6", got)
	}
}
