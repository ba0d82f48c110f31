package pipe

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/flow"
)

func TestRun_ValidateStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	empty := errors.New("empty")

	out := core.FromChanMany(ctx,
		Finally(ctx,
			Run(ctx,
				core.ToChanManyOutcomes[string, error](ctx, []string{"a", "", "b"}),
				Validate(func(_ context.Context, s string) (bool, error) {
					return s != "", empty
				}),
				2),
			FinallyHandlers[string, string, error]{
				OnOk:  func(_ context.Context, s string) string { return s },
				OnErr: func(_ context.Context, e error) string { return "invalid" },
			},
		),
	)

	if len(out) != 3 {
		t.Fatalf("expected 3 results, got: %d", len(out))
	}

	invalid := 0
	for _, v := range out {
		if v == "invalid" {
			invalid++
		}
	}
	if invalid != 1 {
		t.Fatalf("expected 1 invalid result, got: %d", invalid)
	}
}

func TestJunction_ThenAndMapStages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	negative := errors.New("negative")

	out := core.FromChanMany(ctx,
		Finally(ctx,
			Junction(ctx,
				Junction(ctx,
					core.ToChanManyOutcomes[int, error](ctx, []int{1, -2, 3}),
					Then(func(_ context.Context, v int) outcome.Outcome[int, error] {
						if v < 0 {
							return outcome.Err[int](negative)
						}
						return outcome.Ok[error](v * 10)
					}),
					2),
				Map[int, string, error](func(_ context.Context, v int) string {
					return strconv.Itoa(v)
				}),
				2),
			FinallyHandlers[string, string, error]{
				OnOk:  func(_ context.Context, s string) string { return s },
				OnErr: func(_ context.Context, e error) string { return "err" },
			},
		),
	)

	sort.Strings(out)
	want := []string{"10", "30", "err"}
	if len(out) != len(want) {
		t.Fatalf("expected %d results, got: %d", len(want), len(out))
	}
	for i, v := range want {
		if out[i] != v {
			t.Fatalf("expected %v, got: %v", want, out)
		}
	}
}

func TestTryStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := core.FromChanMany(ctx,
		Finally(ctx,
			Junction(ctx,
				core.ToChanManyOutcomes[string, error](ctx, []string{"4", "bad"}),
				Try(func(_ context.Context, s string) (int, error) {
					return strconv.Atoi(s)
				}),
				1),
			FinallyHandlers[int, string, error]{
				OnOk:  func(_ context.Context, v int) string { return strconv.Itoa(v) },
				OnErr: func(_ context.Context, e error) string { return "err" },
			},
		),
	)

	sort.Strings(out)
	if len(out) != 2 || out[0] != "4" || out[1] != "err" {
		t.Fatalf("expected [4 err], got: %v", out)
	}
}

func TestFinally_CanceledPredicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan outcome.Outcome[int, error], 2)
	in <- outcome.Err[int](context.Canceled)
	in <- outcome.Err[int](errors.New("boom"))
	close(in)

	out := core.FromChanMany(ctx,
		Finally(ctx, in,
			FinallyHandlers[int, string, error]{
				OnOk:     func(_ context.Context, v int) string { return "ok" },
				OnErr:    func(_ context.Context, e error) string { return "err" },
				OnCancel: func(_ context.Context, e error) string { return "cancel" },
				Canceled: outcome.IsCancellation,
			},
		),
	)

	sort.Strings(out)
	if len(out) != 2 || out[0] != "cancel" || out[1] != "err" {
		t.Fatalf("expected [cancel err], got: %v", out)
	}
}

func TestBuffer_PreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	buffered := Buffer(ctx, core.ToChanManyOutcomes[int, error](ctx, []int{1, 2, 3, 4, 5}))

	got := make([]int, 0, 5)
	for o := range buffered {
		if !o.IsOk() {
			t.Fatalf("unexpected failure: %v", o.Err())
		}
		got = append(got, o.Value())
	}

	if len(got) != 5 {
		t.Fatalf("expected 5 results, got: %v", got)
	}
	for i, v := range []int{1, 2, 3, 4, 5} {
		if got[i] != v {
			t.Fatalf("expected ordered [1 2 3 4 5], got: %v", got)
		}
	}
}

func TestRunWith_DeliveryCallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var mu sync.Mutex
	delivered := 0
	onDelivered := func(_ context.Context, o outcome.Outcome[int, error]) {
		if o.IsOk() {
			mu.Lock()
			delivered++
			mu.Unlock()
		}
	}

	engine := func(ctx context.Context, in outcome.Outcome[int, error]) <-chan outcome.Outcome[int, error] {
		out := make(chan outcome.Outcome[int, error], 1)
		go func() {
			defer close(out)
			out <- flow.Map(ctx, in, func(_ context.Context, v int) int { return v * 2 })
		}()
		return out
	}

	results := core.FromChanMany(ctx,
		RunWith(ctx,
			core.ToChanManyOutcomes[int, error](ctx, []int{1, 2, 3, 4, 5}),
			engine, core.CancellationHandlers[int, int, error]{}, onDelivered, 2))

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got: %d", len(results))
	}

	seen := make(map[int]bool)
	for _, r := range results {
		if !r.IsOk() {
			t.Fatalf("unexpected failure: %v", r.Err())
		}
		seen[r.Value()] = true
	}
	for _, want := range []int{2, 4, 6, 8, 10} {
		if !seen[want] {
			t.Fatalf("expected doubled value %d, got: %v", want, results)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if delivered != 5 {
		t.Fatalf("expected 5 delivery callbacks, got: %d", delivered)
	}
}

func TestJunctionWith_CancelledInputsAreAccounted(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan outcome.Outcome[int, error], 3)
	for i := 1; i <= 3; i++ {
		in <- outcome.Ok[error](i)
	}
	close(in)
	cancel()

	handlers := core.CancellationHandlers[int, int, error]{
		OnCancel:            CancelRemainingOutcomes[int, int],
		OnCancelUnprocessed: CancelRemainingOutcome[int, int],
		OnCancelProcessed:   CancelProcessedOutcome[int, int],
	}

	engine := func(ctx context.Context, input outcome.Outcome[int, error]) <-chan outcome.Outcome[int, error] {
		out := make(chan outcome.Outcome[int, error], 1)
		go func() {
			defer close(out)
			out <- input
		}()
		return out
	}

	// the collection loop must not select on the cancelled context, so
	// no core.FromChanMany here
	var results []outcome.Outcome[int, error]
	for r := range JunctionWith(ctx, in, engine, handlers, nil, 1) {
		results = append(results, r)
	}

	// every queued outcome is accounted for: either processed before the
	// cancellation won, or reported as cancelled
	if len(results) != 3 {
		t.Fatalf("expected 3 accounted outcomes, got: %d", len(results))
	}
	for _, r := range results {
		if r.IsOk() {
			if r.Value() < 1 || r.Value() > 3 {
				t.Fatalf("unexpected value: %d", r.Value())
			}
			continue
		}
		if !errors.Is(r.Err(), ErrCancelled) {
			t.Fatalf("expected cancellation failure, got: %v", r.Err())
		}
	}
}

func TestBuffer_FlushOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(core.WithProcessOptions(context.Background(), true))
	defer cancel()

	in := make(chan outcome.Outcome[int, error])
	buffered := Buffer(ctx, in)

	// unbuffered sends, so every outcome is queued before cancellation
	for i := 1; i <= 5; i++ {
		in <- outcome.Ok[error](i)
	}
	close(in)
	cancel()

	got := make([]int, 0, 5)
	for o := range buffered {
		got = append(got, o.Value())
	}

	if len(got) != 5 {
		t.Fatalf("expected all 5 queued outcomes to be delivered, got: %v", got)
	}
	for i, v := range []int{1, 2, 3, 4, 5} {
		if got[i] != v {
			t.Fatalf("expected ordered [1 2 3 4 5], got: %v", got)
		}
	}
}

func TestBuffer_DropOnCancelWhenProcessRemainingDisabled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(core.WithProcessOptions(context.Background(), false))
	defer cancel()

	in := make(chan outcome.Outcome[int, error])
	buffered := Buffer(ctx, in)

	for i := 1; i <= 3; i++ {
		in <- outcome.Ok[error](i)
	}
	cancel()

	// no receiver is present, so the buffer observes the cancellation
	// and shuts down before the drain below starts
	time.Sleep(50 * time.Millisecond)

	got := 0
	for range buffered {
		got++
	}

	if got != 0 {
		t.Fatalf("expected no outcomes after cancellation, got: %d", got)
	}
}

func TestRun_TrackCountFromContext(t *testing.T) {
	t.Parallel()
	ctx := core.WithTrackOptions(context.Background(), 4)

	out := core.FromChanMany(ctx,
		Finally(ctx,
			Run(ctx,
				core.ToChanManyOutcomes[int, error](ctx, []int{1, 2, 3, 4, 5, 6}),
				Tee[int, error](func(_ context.Context, o outcome.Outcome[int, error]) {}),
				1),
			FinallyHandlers[int, int, error]{
				OnOk:  func(_ context.Context, v int) int { return v },
				OnErr: func(_ context.Context, e error) int { return -1 },
			},
		),
	)

	if len(out) != 6 {
		t.Fatalf("expected all 6 results, got: %d", len(out))
	}
}
