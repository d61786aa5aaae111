package seq

import "testing"

func Test_classify(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		wantDNA bool
		wantRNA bool
		wantNA  bool
	}{
		{"not a nucleic acid", "ASDKJB", false, false, false},
		{"empty sequence", "", true, true, true},
		{"RNA with a U", "CGACGGACUUAGU", false, true, true},
		{"DNA", "CGACGAATACCCG", true, false, true},
		{"lower case DNA", "acgtacgt", true, false, true},
		{"mixed T and U", "ACGTU", false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDNA(tt.seq); got != tt.wantDNA {
				t.Errorf("IsDNA() = %v, want %v", got, tt.wantDNA)
			}
			if got := IsRNA(tt.seq); got != tt.wantRNA {
				t.Errorf("IsRNA() = %v, want %v", got, tt.wantRNA)
			}
			if got := IsNA(tt.seq); got != tt.wantNA {
				t.Errorf("IsNA() = %v, want %v", got, tt.wantNA)
			}
		})
	}
}
