package controls

import "testing"

func TestListSetGet(t *testing.T) {
	l := NewList()
	if l.Len() != 0 {
		t.Errorf("expected empty list, got %d entries", l.Len())
	}

	l.Set(AeEnable.ID, NewBool(true))
	l.Set(ExposureTime.ID, NewInt32(3000))

	if l.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", l.Len())
	}

	v, ok := l.Get(ExposureTime.ID)
	if !ok {
		t.Fatal("expected ExposureTime to be present")
	}
	if n, _ := v.Int32(); n != 3000 {
		t.Errorf("expected 3000, got %d", n)
	}

	if _, ok := l.Get(AnalogueGain.ID); ok {
		t.Error("AnalogueGain should not be present")
	}
	if l.Contains(AnalogueGain.ID) {
		t.Error("Contains should report false for AnalogueGain")
	}
}

func TestListLastWriteWins(t *testing.T) {
	l := NewList()
	l.Set(ExposureTime.ID, NewInt32(1000))
	l.Set(ExposureTime.ID, NewInt32(3000))

	if l.Len() != 1 {
		t.Errorf("expected 1 entry after overwrite, got %d", l.Len())
	}

	v, _ := l.Get(ExposureTime.ID)
	if n, _ := v.Int32(); n != 3000 {
		t.Errorf("expected the later value 3000, got %d", n)
	}
}

func TestListIDsSorted(t *testing.T) {
	l := NewList()
	l.Set(26, NewBool(true))
	l.Set(1, NewBool(true))
	l.Set(8, NewFloat(2))

	ids := l.IDs()
	want := []uint32{1, 8, 26}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], id)
		}
	}
}
