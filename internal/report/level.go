package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ThreatLevel is the ordered severity bucket assigned to a weekly
// report.
type ThreatLevel int

const (
	LevelLow ThreatLevel = iota
	LevelGuarded
	LevelElevated
	LevelCritical
)

var levelNames = [...]string{"LOW", "GUARDED", "ELEVATED", "CRITICAL"}

func (l ThreatLevel) String() string {
	if l < LevelLow || l > LevelCritical {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// MarshalJSON writes the level name; the JSON artifact carries names,
// not ordinals.
func (l ThreatLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *ThreatLevel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			*l = ThreatLevel(i)
			return nil
		}
	}
	return fmt.Errorf("unknown threat level %q", s)
}
