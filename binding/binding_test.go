package binding

import "testing"

func TestVertexInfoFetchLayout(t *testing.T) {
	vi := VertexInfo{
		Fetch:       true,
		ExportCount: 1,
		Fetches: []FetchDescriptor{
			{RegisterStart: 1, RegistersNum: 3, AttrIndex: 0},
			{RegisterStart: 4, RegistersNum: 2, AttrIndex: 1},
		},
	}

	if len(vi.Fetches) != 2 {
		t.Fatalf("len(Fetches) = %d, want 2", len(vi.Fetches))
	}
	if vi.Fetches[0].RegistersNum != 3 {
		t.Errorf("Fetches[0].RegistersNum = %d, want 3", vi.Fetches[0].RegistersNum)
	}
}

func TestResourcesExtendedMapping(t *testing.T) {
	r := Resources{
		StorageBuffers: ResourceRange{
			Count:         1,
			BindingIndex:  0,
			StartRegister: []uint32{16},
			Extended:      []bool{true},
		},
		Extended: ExtendedInfo{Used: true, StartRegister: 16},
	}

	if !r.Extended.Used {
		t.Fatal("expected Extended.Used to be true")
	}
	if r.StorageBuffers.StartRegister[0] != r.Extended.StartRegister {
		t.Errorf("storage buffer start register %d does not match extended window start %d",
			r.StorageBuffers.StartRegister[0], r.Extended.StartRegister)
	}
}

func TestPixelInfoTargetOutputModes(t *testing.T) {
	pi := PixelInfo{
		TargetOutputMode: []uint32{TargetOutputPackedHalf, TargetOutputFourFloat},
	}
	if pi.TargetOutputMode[0] != 4 {
		t.Errorf("TargetOutputMode[0] = %d, want 4", pi.TargetOutputMode[0])
	}
	if pi.TargetOutputMode[1] != 9 {
		t.Errorf("TargetOutputMode[1] = %d, want 9", pi.TargetOutputMode[1])
	}
}
