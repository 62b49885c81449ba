package domain

import "testing"

func TestParseCallbackMessageID(t *testing.T) {
	data := RegenerateCallbackData(421)
	if data != "regenerate:421" {
		t.Fatalf("unexpected callback data: %q", data)
	}

	id, err := ParseCallbackMessageID(data, RegenerateCallbackPrefix)
	if err != nil {
		t.Fatalf("ParseCallbackMessageID: %v", err)
	}
	if id != 421 {
		t.Errorf("got id %d, want 421", id)
	}

	if _, err := ParseCallbackMessageID("regenerate:abc", RegenerateCallbackPrefix); err == nil {
		t.Error("expected error for non-numeric id")
	}
}
