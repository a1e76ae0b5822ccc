package steps

import (
	"context"
	"sync"
	"testing"

	"github.com/baucmind/site/internal/platform/schedule"
)

func TestBoardOverall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		statuses []Status
		want     Overall
		passed   bool
	}{
		{name: "pending", statuses: []Status{StatusPending, StatusSuccess}, want: OverallChecking},
		{name: "error wins early", statuses: []Status{StatusChecking, StatusError}, want: OverallBlocked},
		{name: "all success", statuses: []Status{StatusSuccess, StatusSuccess}, want: OverallReady, passed: true},
		{name: "warning", statuses: []Status{StatusSuccess, StatusWarning}, want: OverallWarning, passed: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var board Board
			for i, status := range tc.statuses {
				board.Checks = append(board.Checks, Check{ID: string(rune('a' + i)), Status: status})
			}
			if got := board.Overall(); got != tc.want {
				t.Fatalf("Overall() = %q, want %q", got, tc.want)
			}
			if got := board.Passed(); got != tc.passed {
				t.Fatalf("Passed() = %t, want %t", got, tc.passed)
			}
		})
	}
}

func TestStatusKind(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusPending, StatusChecking} {
		if status.Resolved() {
			t.Fatalf("%q.Resolved() = true, want false", status)
		}
	}
	for status, want := range map[Status]Kind{StatusSuccess: KindSuccess, StatusWarning: KindWarning, StatusError: KindError} {
		got, ok := status.Kind()
		if !ok || got != want {
			t.Fatalf("%q.Kind() = (%q, %t), want (%q, true)", status, got, ok, want)
		}
	}
}

func TestPreflightScriptEndsBlocked(t *testing.T) {
	t.Parallel()

	script := PreflightScript()
	if got := script.Initial().Overall(); got != OverallChecking {
		t.Fatalf("initial Overall() = %q, want %q", got, OverallChecking)
	}
	final := script.Final()
	if got := final.Overall(); got != OverallBlocked {
		t.Fatalf("final Overall() = %q, want %q", got, OverallBlocked)
	}
	if PreflightReady(final) {
		t.Fatal("PreflightReady(final) = true, want false")
	}
	pixel, ok := final.Lookup(PreflightPixel)
	if !ok || pixel.Description != PreflightPixelMissing {
		t.Fatalf("pixel = %+v, want not found description", pixel)
	}
	if got := final.Count(StatusSuccess); got != 3 {
		t.Fatalf("Count(success) = %d, want 3", got)
	}
}

func TestBrandGuardScriptEndsWithWarning(t *testing.T) {
	t.Parallel()

	final := BrandGuardScript().Final()
	if got := final.Overall(); got != OverallWarning {
		t.Fatalf("Overall() = %q, want %q", got, OverallWarning)
	}
	tone, _ := final.Lookup(BrandTone)
	if tone.Status != StatusWarning {
		t.Fatalf("tone status = %q, want %q", tone.Status, StatusWarning)
	}
}

func TestScriptRunEmitsEveryUpdateInOrder(t *testing.T) {
	t.Parallel()

	script := PreflightScript().Scaled(0.01)
	sched := schedule.New(context.Background())
	defer sched.Stop()

	var mu sync.Mutex
	var last Board
	var seen []string
	script.Run(sched, func(_ context.Context, board Board, u Update) {
		mu.Lock()
		defer mu.Unlock()
		last = board
		seen = append(seen, u.CheckID+":"+string(u.Status))
	})
	sched.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != len(script.Updates) {
		t.Fatalf("emitted %d updates, want %d", len(seen), len(script.Updates))
	}
	want := []string{
		"utm:checking", "pixel:checking", "utm:success", "audience:checking",
		"budget:checking", "pixel:error", "audience:success", "budget:success",
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("update %d = %q, want %q", i, seen[i], want[i])
		}
	}
	if got := last.Overall(); got != OverallBlocked {
		t.Fatalf("last Overall() = %q, want %q", got, OverallBlocked)
	}
}

func TestScriptRunStopsWithScheduler(t *testing.T) {
	t.Parallel()

	sched := schedule.New(context.Background())
	var mu sync.Mutex
	emitted := 0
	PreflightScript().Run(sched, func(context.Context, Board, Update) {
		mu.Lock()
		emitted++
		mu.Unlock()
	})
	sched.Stop()

	mu.Lock()
	defer mu.Unlock()
	if emitted != 0 {
		t.Fatalf("emitted = %d after immediate stop, want 0", emitted)
	}
}

func TestScaledLeavesOriginalUntouched(t *testing.T) {
	t.Parallel()

	script := BrandGuardScript()
	scaled := script.Scaled(0.5)
	if scaled.Duration() != script.Duration()/2 {
		t.Fatalf("scaled Duration() = %v, want %v", scaled.Duration(), script.Duration()/2)
	}
	if script.Duration() != BrandGuardScript().Duration() {
		t.Fatal("Scaled mutated the original script")
	}
}
