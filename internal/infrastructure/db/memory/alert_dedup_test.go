package memory

import (
	"context"
	"testing"
	"time"
)

func TestAlertDedup_MarkThenSeen(t *testing.T) {
	d := NewAlertDedup(time.Minute)

	seen, err := d.Seen(context.Background(), 1)
	if err != nil {
		t.Fatalf("seen: %v", err)
	}
	if seen {
		t.Fatalf("unmarked patient reported as seen")
	}

	if err := d.Mark(context.Background(), 1); err != nil {
		t.Fatalf("mark: %v", err)
	}

	seen, err = d.Seen(context.Background(), 1)
	if err != nil {
		t.Fatalf("seen: %v", err)
	}
	if !seen {
		t.Fatalf("marked patient not reported as seen")
	}

	// other patients unaffected
	if seen, _ := d.Seen(context.Background(), 2); seen {
		t.Fatalf("unrelated patient reported as seen")
	}
}

func TestAlertDedup_Expires(t *testing.T) {
	d := NewAlertDedup(time.Millisecond)

	if err := d.Mark(context.Background(), 1); err != nil {
		t.Fatalf("mark: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if seen, _ := d.Seen(context.Background(), 1); seen {
		t.Fatalf("entry should have expired")
	}
}
