package models

import (
	"fmt"
	"strings"
)

// Answers maps a question id to the selected 0-based option index.
type Answers map[string]int

// RiskCategory is the investor profile derived from the questionnaire.
type RiskCategory int

const (
	Conservative RiskCategory = iota
	Moderate
	Aggressive
)

func (c RiskCategory) String() string {
	switch c {
	case Conservative:
		return "Conservative"
	case Moderate:
		return "Moderate"
	case Aggressive:
		return "Aggressive"
	default:
		return fmt.Sprintf("RiskCategory(%d)", int(c))
	}
}

// ParseCategory accepts the English names and the Portuguese labels
// (Conservador, Moderado, Arrojado), case-insensitively.
func ParseCategory(s string) (RiskCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conservative", "conservador":
		return Conservative, nil
	case "moderate", "moderado":
		return Moderate, nil
	case "aggressive", "arrojado":
		return Aggressive, nil
	}
	return 0, fmt.Errorf("unknown risk category %q", s)
}

// Portfolio is a named, ordered list of asset labels.
type Portfolio struct {
	Name   string   `json:"name"`
	Assets []string `json:"assets"`
}

// Clone returns a deep copy so callers cannot alias catalog data.
func (p Portfolio) Clone() Portfolio {
	return Portfolio{Name: p.Name, Assets: append([]string(nil), p.Assets...)}
}
