package molecule

import "testing"

func TestStereocentersSameGroup(t *testing.T) {
	var st Stereocenters
	st.Add(0, StereoAbs, 0)
	st.Add(1, StereoOr, 1)
	st.Add(2, StereoOr, 1)
	st.Add(3, StereoOr, 2)

	if !st.SameGroup(1, 2) {
		t.Errorf("atoms 1 and 2 should be in the same OR group")
	}
	if st.SameGroup(1, 3) {
		t.Errorf("atoms 1 and 3 are in different OR groups, SameGroup should be false")
	}
	if st.SameGroup(0, 1) {
		t.Errorf("ABS and OR centers should never report SameGroup")
	}
}

func TestStereocentersHaveAllAbsAny(t *testing.T) {
	var st Stereocenters
	if !st.HaveAllAbsAny() {
		t.Errorf("empty stereocenter set should vacuously report HaveAllAbsAny")
	}

	st.Add(0, StereoAbs, 0)
	st.Add(1, StereoAbs, 0)
	if !st.HaveAllAbsAny() {
		t.Errorf("all-ABS set should report HaveAllAbsAny")
	}

	st.Add(2, StereoOr, 1)
	if st.HaveAllAbsAny() {
		t.Errorf("mixed ABS/OR set should not report HaveAllAbsAny")
	}
}

func TestStereocentersAtomsSorted(t *testing.T) {
	var st Stereocenters
	st.Add(5, StereoAbs, 0)
	st.Add(1, StereoAbs, 0)
	st.Add(3, StereoAbs, 0)

	got := st.Atoms()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d atoms, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Atoms()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
