package bench

import (
	"context"
	"testing"
)

func TestVerify_AllPropertiesHold(t *testing.T) {
	rep, err := Verify(context.Background(), 7)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	for _, c := range rep.Checks {
		if !c.Passed {
			t.Errorf("%s n=%d: %s", c.Property, c.Size, c.Detail)
		}
	}
}

func TestVerify_SizeLimit(t *testing.T) {
	if _, err := Verify(context.Background(), MaxVerifySize+1); err == nil {
		t.Error("expected error above MaxVerifySize")
	}
	rep, err := Verify(context.Background(), 0)
	if err != nil {
		t.Fatalf("Verify(0): %v", err)
	}
	if len(rep.Checks) != 0 {
		t.Errorf("Verify(0) ran %d checks", len(rep.Checks))
	}
}

func TestVerify_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Verify(ctx, 3); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
