package report

import "threatdigest/internal/config"

// Score computes the weighted threat score. The indicator contribution
// saturates at the configured cap so a large blocklist cannot dominate
// the vulnerability signal.
func Score(cfg *config.ScoringConfig, kevCount, ransomwareCount, c2Count int) int {
	capped := c2Count
	if capped > cfg.C2ScoreCap {
		capped = cfg.C2ScoreCap
	}
	return cfg.KEVWeight*kevCount + cfg.RansomwareWeight*ransomwareCount + cfg.C2Weight*capped
}

// Level maps a score to its bucket, then applies the ransomware
// overrides: three or more linked CVEs force CRITICAL, two force at
// least ELEVATED.
func Level(cfg *config.ScoringConfig, score, ransomwareCount int) ThreatLevel {
	var level ThreatLevel
	switch {
	case score >= cfg.CriticalThreshold:
		level = LevelCritical
	case score >= cfg.ElevatedThreshold:
		level = LevelElevated
	case score >= cfg.GuardedThreshold:
		level = LevelGuarded
	default:
		level = LevelLow
	}

	switch {
	case ransomwareCount >= 3:
		level = LevelCritical
	case ransomwareCount >= 2 && level < LevelElevated:
		level = LevelElevated
	}
	return level
}
