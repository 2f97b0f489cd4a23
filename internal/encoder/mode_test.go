package encoder

import "testing"

func TestBestMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"0123456789", ModeNumeric},
		{"HELLO WORLD $%*+-./:", ModeAlphanumeric},
		{"ABC123", ModeAlphanumeric},
		{"hello", ModeByte},
		{"ssh-ed25519 AAAA", ModeByte},
		{"ünïcode", ModeByte},
	}
	for _, tt := range tests {
		if got := BestMode(tt.in); got != tt.want {
			t.Errorf("BestMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSingleMode(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		threshold  int
		wantMode   Mode
		wantSingle bool
	}{
		{"threshold zero", "abc1234567890", 0, ModeByte, true},
		{"data shorter than threshold", "12345", 20, ModeNumeric, true},
		{"all numeric", "0123456789012", 4, ModeNumeric, true},
		{"all alphanumeric", "HELLO WORLD 42", 3, ModeAlphanumeric, true},
		{"runs below threshold", "abc123xyz", 5, ModeByte, true},
		{"unicode without runs", "ünïcode", 3, ModeByte, true},
		{"numeric run at threshold", "abc1234567xyz", 5, ModeByte, false},
		{"alphanumeric run at threshold", "key=ABCDEFGH.IJ", 6, ModeByte, false},
		{"lowercase key with digits", "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5", 4, ModeByte, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, single := SingleMode(tt.data, tt.threshold)
			if single != tt.wantSingle {
				t.Fatalf("SingleMode(%q, %d) single = %v, want %v", tt.data, tt.threshold, single, tt.wantSingle)
			}
			if single && mode != tt.wantMode {
				t.Errorf("SingleMode(%q, %d) mode = %v, want %v", tt.data, tt.threshold, mode, tt.wantMode)
			}
		})
	}
}

func TestLongestRun(t *testing.T) {
	if got := longestRun("ab12345cd67", isNumeric); got != 5 {
		t.Errorf("longestRun numeric = %d, want 5", got)
	}
	if got := longestRun("abc", isNumeric); got != 0 {
		t.Errorf("longestRun without digits = %d, want 0", got)
	}
}
