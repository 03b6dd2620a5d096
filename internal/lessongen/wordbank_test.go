package lessongen

import (
	"slices"
	"testing"
)

func TestRepairWordBank(t *testing.T) {
	tests := []struct {
		name    string
		correct []string
		bank    []string
		want    []string
	}{
		{
			name:    "missing word appended",
			correct: []string{"a", "b"},
			bank:    []string{"a", "x", "y"},
			want:    []string{"a", "x", "y", "b"},
		},
		{
			name:    "complete bank untouched",
			correct: []string{"Je", "mange"},
			bank:    []string{"mange", "bois", "Je"},
			want:    []string{"mange", "bois", "Je"},
		},
		{
			name:    "empty bank",
			correct: []string{"Hola", "amigo"},
			bank:    nil,
			want:    []string{"Hola", "amigo"},
		},
		{
			name:    "repeated answer word",
			correct: []string{"the", "cat", "sees", "the", "dog"},
			bank:    []string{"dog", "the", "cat", "sees"},
			want:    []string{"dog", "the", "cat", "sees", "the"},
		},
		{
			name:    "case sensitive",
			correct: []string{"Le", "pain"},
			bank:    []string{"le", "pain"},
			want:    []string{"le", "pain", "Le"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairWordBank(tt.correct, tt.bank)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("RepairWordBank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRepairWordBank_DoesNotMutateInput(t *testing.T) {
	bank := make([]string, 2, 8)
	copy(bank, []string{"a", "x"})
	_ = RepairWordBank([]string{"a", "b"}, bank)
	if bank[:cap(bank)][2] != "" {
		t.Fatal("input backing array was written")
	}
}
