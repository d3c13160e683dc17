package scoring

import (
	"math"

	"github.com/montanaflynn/stats"

	"skillsummary/internal/errors"
)

// ExtractSkillMeans reduces a session's raw score records to one mean per
// skill, rounded to 2 decimals. Only schema attributes are read; anything
// else on a record is ignored. A skill that appears in no record is absent
// from the result, never zero-filled — no records at all yields an empty map.
func ExtractSkillMeans(records []Record) (map[Skill]float64, error) {
	samples := make(map[Skill][]float64)
	for _, record := range records {
		for name, value := range record {
			if !IsSkill(name) {
				continue
			}
			f, err := value.Float()
			if err != nil {
				return nil, errors.Wrapf(err, "malformed %s score", name)
			}
			samples[Skill(name)] = append(samples[Skill(name)], f)
		}
	}

	means := make(map[Skill]float64, len(samples))
	for skill, values := range samples {
		mean, err := stats.Mean(values)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to average %s scores", skill)
		}
		means[skill] = round2(mean)
	}
	return means, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
