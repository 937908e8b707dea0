package model

import "testing"

func TestNextID(t *testing.T) {
	cases := []struct {
		list List
		want int
	}{
		{nil, 0},
		{List{}, 0},
		{List{{ID: 0}}, 1},
		{List{{ID: 0}, {ID: 1}, {ID: 2}}, 3},
		{List{{ID: 5}}, 6},          // survives deletions below the max
		{List{{ID: 2}, {ID: 0}}, 3}, // order does not matter
	}
	for _, tc := range cases {
		if got := tc.list.NextID(); got != tc.want {
			t.Fatalf("NextID(%v) = %d, want %d", tc.list, got, tc.want)
		}
	}
}

func TestFind(t *testing.T) {
	l := List{{ID: 3}, {ID: 7}}
	if i := l.Find(7); i != 1 {
		t.Fatalf("Find(7) = %d, want 1", i)
	}
	if i := l.Find(4); i != -1 {
		t.Fatalf("Find(4) = %d, want -1", i)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := List{{ID: 0, Text: "a"}}
	cl := orig.Clone()
	cl[0].Text = "changed"
	if orig[0].Text != "a" {
		t.Fatalf("clone shares backing storage with the original")
	}
}

func TestCounts(t *testing.T) {
	l := List{{ID: 0}, {ID: 1, Completed: true}, {ID: 2}}
	if l.ActiveCount() != 2 {
		t.Fatalf("ActiveCount = %d", l.ActiveCount())
	}
	if l.CompletedCount() != 1 {
		t.Fatalf("CompletedCount = %d", l.CompletedCount())
	}
}

func TestEqual(t *testing.T) {
	a := List{{ID: 0, Text: "x"}}
	b := List{{ID: 0, Text: "x"}}
	if !a.Equal(b) {
		t.Fatalf("identical lists reported unequal")
	}
	if a.Equal(List{{ID: 0, Text: "y"}}) {
		t.Fatalf("different texts reported equal")
	}
	if a.Equal(List{}) {
		t.Fatalf("different lengths reported equal")
	}
	if !(List{}).Equal(List{}) {
		t.Fatalf("empty lists reported unequal")
	}
}
