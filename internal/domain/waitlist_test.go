package domain

import (
	"testing"
)

func TestWaitlistStatusValid(t *testing.T) {
	for _, status := range WaitlistStatuses {
		if !status.Valid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if WaitlistStatus("cancelled").Valid() {
		t.Error("expected unknown status to be invalid")
	}
	if WaitlistStatus("").Valid() {
		t.Error("expected empty status to be invalid")
	}
}
