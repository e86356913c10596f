package report

import "threatdigest/internal/config"

// tagTechniques builds the technique tally keyed by technique id. Every
// recent vulnerability contributes the fixed exploitation pair once;
// every malware family present in the mapping contributes its full set
// weighted by that family's indicator count.
func tagTechniques(cfg *config.Config, recentCount int, families map[string]int) map[string]TechniqueStat {
	stats := make(map[string]TechniqueStat)

	add := func(t config.Technique, weight int) {
		if weight <= 0 || t.TechniqueID == "" {
			return
		}
		st, ok := stats[t.TechniqueID]
		if !ok {
			st = TechniqueStat{
				TacticID:      t.TacticID,
				TacticName:    t.TacticName,
				TechniqueID:   t.TechniqueID,
				TechniqueName: t.TechniqueName,
			}
		}
		st.Count += weight
		stats[t.TechniqueID] = st
	}

	add(cfg.KEVTechnique, recentCount)
	for family, count := range families {
		for _, t := range cfg.FamilyTechniques[family] {
			add(t, count)
		}
	}
	return stats
}
