// Package profile turns questionnaire answers into an investor risk category.
package profile

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// AverageMode picks the divisor of the answer average.
type AverageMode int

const (
	// Strict divides by every defined question, so unanswered questions
	// pull the average down. This is the default.
	Strict AverageMode = iota
	// Lenient divides by the number of answered questions only.
	Lenient
)

// ParseAverageMode maps the config values "strict" and "lenient".
func ParseAverageMode(s string) (AverageMode, error) {
	switch s {
	case "strict", "":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}
	return Strict, fmt.Errorf("unknown average mode %q", s)
}

// Upper bounds (inclusive) of the Conservative and Moderate tiers.
var (
	conservativeMax = decimal.RequireFromString("1.9")
	moderateMax     = decimal.RequireFromString("2.9")
)

// scores returns Σ(answer+1) and the divisor for mode.
func scores(answers models.Answers, questionCount int, mode AverageMode) (decimal.Decimal, decimal.Decimal) {
	var total int64
	for _, v := range answers {
		total += int64(v) + 1
	}

	divisor := questionCount
	if mode == Lenient {
		divisor = len(answers)
	}
	return decimal.NewFromInt(total), decimal.NewFromInt(int64(divisor))
}

// Average is the mean score (1..4 per answer), rounded to two places for
// display. It is zero when the divisor is zero.
func Average(answers models.Answers, questionCount int, mode AverageMode) decimal.Decimal {
	total, divisor := scores(answers, questionCount, mode)
	if divisor.IsZero() {
		return decimal.Zero
	}
	return total.DivRound(divisor, 2)
}

// Classify maps answers to a risk category:
//
//	average <= 1.9        Conservative
//	1.9 < average <= 2.9  Moderate
//	average > 2.9         Aggressive
//
// The comparison is done as total <= bound*divisor, so boundaries are exact.
// With nothing to divide by the result is Conservative.
func Classify(answers models.Answers, questionCount int, mode AverageMode) models.RiskCategory {
	total, divisor := scores(answers, questionCount, mode)
	if divisor.Sign() <= 0 {
		return models.Conservative
	}

	switch {
	case total.LessThanOrEqual(conservativeMax.Mul(divisor)):
		return models.Conservative
	case total.LessThanOrEqual(moderateMax.Mul(divisor)):
		return models.Moderate
	default:
		return models.Aggressive
	}
}

var validate = validator.New()

// ValidateAnswers checks that every key is a known question id and every
// value a valid option index.
func ValidateAnswers(answers models.Answers) error {
	if len(answers) == 0 {
		return nil
	}
	ids := make([]string, 0, len(questionnaire))
	for _, q := range questionnaire {
		ids = append(ids, q.ID)
	}
	tag := fmt.Sprintf("dive,keys,oneof=%s,endkeys,min=0,max=%d", strings.Join(ids, " "), OptionsPerQuestion-1)

	if err := validate.Var(map[string]int(answers), tag); err != nil {
		return fmt.Errorf("%w: answers: %w", common.ErrInvalidInput, err)
	}
	return nil
}
