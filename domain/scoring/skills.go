package scoring

// Skill identifies one of the evaluated conversation competencies.
type Skill string

const (
	CriticalThinking   Skill = "critical_thinking"
	EmotionalAwareness Skill = "emotional_awareness"
	CreativeThinking   Skill = "creative_thinking"
	Communication      Skill = "communication"
	ProblemSolving     Skill = "problem_solving"
)

// skillSchema is the fixed, ordered set of skills evaluated per session.
// Extraction and aggregation only ever touch these keys.
var skillSchema = []Skill{
	CriticalThinking,
	EmotionalAwareness,
	CreativeThinking,
	Communication,
	ProblemSolving,
}

// Skills returns the skill schema in its canonical order.
func Skills() []Skill {
	out := make([]Skill, len(skillSchema))
	copy(out, skillSchema)
	return out
}

// IsSkill reports whether name is part of the skill schema.
func IsSkill(name string) bool {
	for _, s := range skillSchema {
		if string(s) == name {
			return true
		}
	}
	return false
}
