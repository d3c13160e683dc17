package scoring

import (
	"math"
	"testing"
)

func TestExtractSkillMeans_EmptyWindow(t *testing.T) {
	means, err := ExtractSkillMeans(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(means) != 0 {
		t.Errorf("expected empty map for no records, got %v", means)
	}

	means, err = ExtractSkillMeans([]Record{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(means) != 0 {
		t.Errorf("expected empty map for empty slice, got %v", means)
	}
}

func TestExtractSkillMeans_IgnoresNonSkillAttributes(t *testing.T) {
	records := []Record{
		{
			"video_call_session_id": NumberValue("17"),
			"end_time":              StringValue("2026-08-29T10:00:00"),
			"notes":                 StringValue("needs follow-up"),
			"critical_thinking":     NumberValue("4"),
		},
	}

	means, err := ExtractSkillMeans(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(means) != 1 {
		t.Fatalf("expected only critical_thinking extracted, got %v", means)
	}
	if _, ok := means["notes"]; ok {
		t.Error("non-skill attribute leaked into extraction output")
	}
	if got := means[CriticalThinking]; got != 4 {
		t.Errorf("critical_thinking = %v, want 4", got)
	}
}

func TestExtractSkillMeans_MeanAcrossRecords(t *testing.T) {
	records := []Record{
		{"critical_thinking": NumberValue("3")},
		{"critical_thinking": NumberValue("5")},
	}

	means, err := ExtractSkillMeans(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := means[CriticalThinking]; got != 4.00 {
		t.Errorf("critical_thinking mean = %v, want 4.00", got)
	}
}

func TestExtractSkillMeans_RoundsToTwoDecimals(t *testing.T) {
	records := []Record{
		{"communication": NumberValue("1")},
		{"communication": NumberValue("2")},
		{"communication": NumberValue("2")},
	}

	means, err := ExtractSkillMeans(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := means[Communication]; math.Abs(got-1.67) > 1e-9 {
		t.Errorf("communication mean = %v, want 1.67", got)
	}
}

func TestExtractSkillMeans_SparseSkillsStayAbsent(t *testing.T) {
	records := []Record{
		{
			"critical_thinking": NumberValue("4"),
			"communication":     NumberValue("3"),
		},
	}

	means, err := ExtractSkillMeans(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, skill := range []Skill{EmotionalAwareness, CreativeThinking, ProblemSolving} {
		if _, ok := means[skill]; ok {
			t.Errorf("skill %s absent from records but present in output", skill)
		}
	}
}

func TestExtractSkillMeans_OrderIndependent(t *testing.T) {
	forward := []Record{
		{"problem_solving": NumberValue("2.5")},
		{"problem_solving": NumberValue("3.5")},
		{"problem_solving": NumberValue("4")},
	}
	reversed := []Record{forward[2], forward[1], forward[0]}

	a, err := ExtractSkillMeans(forward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ExtractSkillMeans(reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a[ProblemSolving] != b[ProblemSolving] {
		t.Errorf("mean depends on record order: %v vs %v", a[ProblemSolving], b[ProblemSolving])
	}
}

func TestExtractSkillMeans_CoercesStringTaggedNumbers(t *testing.T) {
	records := []Record{
		{"emotional_awareness": StringValue("3.5")},
	}

	means, err := ExtractSkillMeans(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := means[EmotionalAwareness]; got != 3.5 {
		t.Errorf("emotional_awareness = %v, want 3.5", got)
	}
}

func TestExtractSkillMeans_MalformedValue(t *testing.T) {
	records := []Record{
		{"creative_thinking": StringValue("not-a-number")},
	}

	if _, err := ExtractSkillMeans(records); err == nil {
		t.Error("expected error for non-numeric skill payload")
	}
}

func TestValue_Float(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		want    float64
		wantErr bool
	}{
		{name: "number tag", value: NumberValue("4.25"), want: 4.25},
		{name: "integer payload", value: NumberValue("3"), want: 3},
		{name: "string tag with numeric payload", value: StringValue("2.5"), want: 2.5},
		{name: "empty payload", value: NumberValue(""), wantErr: true},
		{name: "garbage payload", value: StringValue("high"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.Float()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Float() = %v, want %v", got, tt.want)
			}
		})
	}
}
