package persona

import (
	"strings"
	"testing"
)

func TestLookupKnownPersonas(t *testing.T) {
	h := Lookup(HiteshSir)
	if h.ID != HiteshSir || h.Name != "Hitesh Choudhary" {
		t.Fatalf("unexpected hitesh persona: %+v", h)
	}
	p := Lookup(PiyushSir)
	if p.ID != PiyushSir || p.Name != "Piyush Garg" {
		t.Fatalf("unexpected piyush persona: %+v", p)
	}
	if h.Prompt == p.Prompt {
		t.Fatalf("personas must have distinct prompts")
	}
	if h.Prompt == "" || p.Prompt == "" {
		t.Fatalf("prompts must be non-empty")
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	for _, id := range []ID{"", "someoneElse", "HITESHSIR"} {
		got := Lookup(id)
		if got.ID != Default {
			t.Fatalf("Lookup(%q) = %s, want default %s", id, got.ID, Default)
		}
	}
}

func TestAllOrderAndValidity(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("want 2 personas, got %d", len(all))
	}
	if all[0].ID != HiteshSir || all[1].ID != PiyushSir {
		t.Fatalf("unexpected order: %s, %s", all[0].ID, all[1].ID)
	}
	for _, p := range all {
		if !Valid(p.ID) {
			t.Fatalf("persona %s should be valid", p.ID)
		}
		if p.AvatarURL == "" || p.Bio == "" || !strings.Contains(p.Prompt, p.Name) {
			t.Fatalf("incomplete metadata for %s", p.ID)
		}
	}
	if Valid("nope") {
		t.Fatalf("unknown ID reported valid")
	}
}
