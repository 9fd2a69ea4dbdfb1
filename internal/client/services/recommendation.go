package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/investprofile/internal/client/catalog"
	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/client/profile"
	"github.com/dmitrijs2005/investprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investprofile/internal/common"
	"github.com/dmitrijs2005/investprofile/internal/logging"
)

// RecommendationService drives questionnaire → profile → portfolio.
//
// The risk category is never stored; it is recomputed from the persisted
// answers on every call. Reads that fail are logged and reported as absent.
type RecommendationService interface {
	SubmitAnswers(ctx context.Context, answers models.Answers) error
	Answers(ctx context.Context) (models.Answers, bool)
	Profile(ctx context.Context) (models.RiskCategory, bool)
	Suggestions(ctx context.Context) (models.RiskCategory, []models.Portfolio, bool)
	SelectPortfolio(ctx context.Context, p models.Portfolio) error
	CurrentSelection(ctx context.Context) *models.Portfolio
}

type recommendationService struct {
	kv            kv.Store
	keys          kv.Keys
	mode          profile.AverageMode
	questionCount int
	log           logging.Logger
}

func NewRecommendationService(store kv.Store, keys kv.Keys, mode profile.AverageMode, log logging.Logger) RecommendationService {
	return &recommendationService{
		kv:            store,
		keys:          keys,
		mode:          mode,
		questionCount: profile.QuestionCount(),
		log:           log.With("component", "recommendation"),
	}
}

// SubmitAnswers replaces any previously stored answers.
func (r *recommendationService) SubmitAnswers(ctx context.Context, answers models.Answers) error {
	if err := profile.ValidateAnswers(answers); err != nil {
		return err
	}
	if answers == nil {
		answers = models.Answers{}
	}
	if err := kv.SetJSON(ctx, r.kv, r.keys.Answers, answers); err != nil {
		return fmt.Errorf("save answers: %w", err)
	}
	r.log.Info(ctx, "answers saved", "answered", len(answers))
	return nil
}

func (r *recommendationService) Answers(ctx context.Context) (models.Answers, bool) {
	var answers models.Answers
	ok, err := kv.GetJSON(ctx, r.kv, r.keys.Answers, &answers)
	if err != nil {
		r.log.Warn(ctx, "cannot read answers", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if answers == nil {
		answers = models.Answers{}
	}
	return answers, true
}

func (r *recommendationService) Profile(ctx context.Context) (models.RiskCategory, bool) {
	answers, ok := r.Answers(ctx)
	if !ok {
		return models.Conservative, false
	}
	return profile.Classify(answers, r.questionCount, r.mode), true
}

func (r *recommendationService) Suggestions(ctx context.Context) (models.RiskCategory, []models.Portfolio, bool) {
	category, ok := r.Profile(ctx)
	if !ok {
		return category, nil, false
	}
	return category, catalog.Recommend(category), true
}

// SelectPortfolio stores p as the current selection. The record is a copy,
// independent of the catalog.
func (r *recommendationService) SelectPortfolio(ctx context.Context, p models.Portfolio) error {
	if p.Name == "" {
		return fmt.Errorf("%w: portfolio name is empty", common.ErrInvalidInput)
	}
	if err := kv.SetJSON(ctx, r.kv, r.keys.SelectedPortfolio, p.Clone()); err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}
	r.log.Info(ctx, "portfolio selected", "name", p.Name)
	return nil
}

func (r *recommendationService) CurrentSelection(ctx context.Context) *models.Portfolio {
	var p models.Portfolio
	ok, err := kv.GetJSON(ctx, r.kv, r.keys.SelectedPortfolio, &p)
	if err != nil {
		r.log.Warn(ctx, "cannot read selected portfolio", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &p
}
