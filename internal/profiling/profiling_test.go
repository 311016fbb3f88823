package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		stop := Track("test.Op")
		time.Sleep(time.Millisecond)
		stop()
	}
	Track("other.Op")()

	if got := Calls("test.Op"); got != 3 {
		t.Fatalf("calls: got %d, want 3", got)
	}
	if got := Snapshot()["test.Op"]; got < 3*time.Millisecond {
		t.Fatalf("total: got %v, want >= 3ms", got)
	}
	if got, want := SumWithPrefix("test."), Snapshot()["test.Op"]; got != want {
		t.Fatalf("prefix sum: got %v, want %v", got, want)
	}

	top := TopN(1)
	if !strings.HasPrefix(top, "test.Op:") || !strings.Contains(top, "(x3)") {
		t.Fatalf("TopN(1) = %q", top)
	}
	if strings.Contains(top, "other.Op") {
		t.Fatalf("TopN(1) listed more than one entry: %q", top)
	}

	ResetFrame()
	if len(Snapshot()) != 0 || Calls("test.Op") != 0 {
		t.Fatal("ResetFrame left entries behind")
	}
	if TopN(5) != "" {
		t.Fatalf("empty TopN = %q", TopN(5))
	}
}
