package briansbrain

import "testing"

func TestFiringCellDecays(t *testing.T) {
	b := New(5, 5)
	idx := 2*5 + 2
	b.Cells()[idx] = stateOn

	if err := b.Step(); err != nil {
		t.Fatal(err)
	}
	if got := b.Cells()[idx]; got != stateDying {
		t.Fatalf("after one step state = %d, want dying", got)
	}

	if err := b.Step(); err != nil {
		t.Fatal(err)
	}
	if got := b.Cells()[idx]; got != stateDead {
		t.Fatalf("after two steps state = %d, want dead", got)
	}
}

func TestDeadCellFiresWithTwoFiringNeighbors(t *testing.T) {
	b := New(5, 5)
	w := 5
	b.Cells()[1*w+2] = stateOn
	b.Cells()[3*w+2] = stateOn

	if err := b.Step(); err != nil {
		t.Fatal(err)
	}
	if got := b.Cells()[2*w+2]; got != stateOn {
		t.Fatalf("center state = %d, want firing", got)
	}
}
