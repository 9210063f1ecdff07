package news

import "testing"

func TestCategoryKnown(t *testing.T) {
	cases := []struct {
		cat  Category
		want bool
	}{
		{CategoryAnnouncement, true},
		{CategoryAchievement, true},
		{CategoryOpportunity, true},
		{"Gossip", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := tc.cat.Known(); got != tc.want {
			t.Fatalf("expected Known(%q)=%v, got %v", tc.cat, tc.want, got)
		}
	}
}

func TestIDsPreservesOrder(t *testing.T) {
	ids := IDs([]Item{{ID: "4"}, {ID: "1"}, {ID: "3"}})
	if len(ids) != 3 || ids[0] != "4" || ids[1] != "1" || ids[2] != "3" {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestCloneAllReturnsIndependentSlice(t *testing.T) {
	orig := []Item{{ID: "1", Title: "a"}}
	cp := CloneAll(orig)
	cp[0].Title = "b"
	if orig[0].Title != "a" {
		t.Fatalf("expected original untouched")
	}
	if got := CloneAll(nil); got == nil {
		t.Fatalf("expected non-nil slice for nil input")
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize(Item{ID: "  42 ", Title: " Hi "})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.ID != "42" || got.Title != " Hi " {
		t.Fatalf("expected only the id trimmed, got %+v", got)
	}

	for _, title := range []string{"", "  \t"} {
		if _, err := Normalize(Item{ID: "1", Title: title}); err != ErrTitleRequired {
			t.Fatalf("expected ErrTitleRequired for %q, got %v", title, err)
		}
	}
}
