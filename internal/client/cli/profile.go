package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/investprofile/internal/client/catalog"
	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/client/profile"
)

var errNoAnswers = errors.New("no answers yet, run 'questionnaire' first")

// Questionnaire walks through every question. A blank answer skips the
// question; anything else must be an option number. The collected answers
// replace the stored ones.
func (a *App) Questionnaire(ctx context.Context) error {
	answers := models.Answers{}

	for _, q := range profile.Questionnaire() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s. %s", q.ID, q.Text)
		for i, opt := range q.Options {
			fmt.Fprintf(&sb, "\n  %d) %s", i+1, opt)
		}

		for {
			text, err := getSimpleText(a.reader, sb.String(), a.out)
			if err != nil {
				return err
			}
			choice, ok, err := ParseChoice(text, len(q.Options))
			if err != nil {
				fmt.Fprintln(a.out, err)
				continue
			}
			if ok {
				answers[q.ID] = choice
			}
			break
		}
	}

	if err := a.recs.SubmitAnswers(ctx, answers); err != nil {
		return err
	}
	a.suggestions = nil

	fmt.Fprintf(a.out, "Answered %d of %d questions.\n", len(answers), profile.QuestionCount())
	return a.Profile(ctx)
}

// Profile prints the risk category derived from the stored answers.
func (a *App) Profile(ctx context.Context) error {
	answers, ok := a.recs.Answers(ctx)
	if !ok {
		return errNoAnswers
	}
	category, _ := a.recs.Profile(ctx)
	avg := profile.Average(answers, profile.QuestionCount(), a.mode)

	fmt.Fprintf(a.out, "Your investor profile: %s (average score %s)\n", category, avg.StringFixed(2))
	return nil
}

// Suggest lists the portfolios recommended for the current profile and
// remembers them for "select".
func (a *App) Suggest(ctx context.Context) error {
	category, list, ok := a.recs.Suggestions(ctx)
	if !ok {
		return errNoAnswers
	}
	a.suggestions = list

	a.printPortfolios(category, list)
	return nil
}

// Catalog lists the portfolios of any category, independent of the stored
// profile. Portuguese category names are accepted too.
func (a *App) Catalog(_ context.Context, arg string) error {
	category, err := models.ParseCategory(arg)
	if err != nil {
		return err
	}
	a.printPortfolios(category, catalog.Recommend(category))
	return nil
}

func (a *App) printPortfolios(category models.RiskCategory, list []models.Portfolio) {
	fmt.Fprintf(a.out, "Portfolios for the %s profile:\n", category)
	for i, p := range list {
		fmt.Fprintf(a.out, "  %d) %s: %s\n", i+1, p.Name, strings.Join(p.Assets, ", "))
	}
}

// Select stores the arg-th portfolio of the last suggestion list.
func (a *App) Select(ctx context.Context, arg string) error {
	if a.suggestions == nil {
		if err := a.Suggest(ctx); err != nil {
			return err
		}
	}

	idx, ok, err := ParseChoice(arg, len(a.suggestions))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("usage: select <1-%d>", len(a.suggestions))
	}

	chosen := a.suggestions[idx]
	if err := a.recs.SelectPortfolio(ctx, chosen); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Selected %s.\n", chosen.Name)
	return nil
}

// Portfolio prints the currently selected portfolio.
func (a *App) Portfolio(ctx context.Context) error {
	p := a.recs.CurrentSelection(ctx)
	if p == nil {
		fmt.Fprintln(a.out, "No portfolio selected.")
		return nil
	}
	fmt.Fprintf(a.out, "%s\n", p.Name)
	for _, asset := range p.Assets {
		fmt.Fprintf(a.out, "  - %s\n", asset)
	}
	return nil
}
