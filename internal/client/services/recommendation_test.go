package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/investprofile/internal/client/catalog"
	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/client/profile"
	"github.com/dmitrijs2005/investprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investprofile/internal/common"
	"github.com/dmitrijs2005/investprofile/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecs(store kv.Store, mode profile.AverageMode) RecommendationService {
	return NewRecommendationService(store, testKeys, mode, logging.Discard())
}

func allAnswered(option int) models.Answers {
	a := models.Answers{}
	for _, q := range profile.Questionnaire() {
		a[q.ID] = option
	}
	return a
}

func TestSubmitAnswers_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newRecs(kv.NewMemoryStore(), profile.Strict)

	_, ok := svc.Answers(ctx)
	assert.False(t, ok)

	in := models.Answers{"1": 0, "2": 3, "5": 2}
	require.NoError(t, svc.SubmitAnswers(ctx, in))

	got, ok := svc.Answers(ctx)
	require.True(t, ok)
	assert.Equal(t, in, got)

	// a second submission replaces the first wholesale
	require.NoError(t, svc.SubmitAnswers(ctx, models.Answers{"8": 1}))
	got, ok = svc.Answers(ctx)
	require.True(t, ok)
	assert.Equal(t, models.Answers{"8": 1}, got)
}

func TestSubmitAnswers_Empty(t *testing.T) {
	ctx := context.Background()
	svc := newRecs(kv.NewMemoryStore(), profile.Strict)

	require.NoError(t, svc.SubmitAnswers(ctx, nil))
	got, ok := svc.Answers(ctx)
	require.True(t, ok)
	assert.Empty(t, got)

	category, ok := svc.Profile(ctx)
	require.True(t, ok)
	assert.Equal(t, models.Conservative, category)
}

func TestSubmitAnswers_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := newRecs(store, profile.Strict)

	for _, bad := range []models.Answers{
		{"1": 4},
		{"1": -1},
		{"9": 0},
		{"": 1},
	} {
		assert.ErrorIs(t, svc.SubmitAnswers(ctx, bad), common.ErrInvalidInput, "%v", bad)
	}
	_, ok := svc.Answers(ctx)
	assert.False(t, ok, "rejected answers are not stored")
}

func TestSubmitAnswers_WriteFailure(t *testing.T) {
	store := newFaultyStore()
	store.failWrites = true
	svc := newRecs(store, profile.Strict)

	err := svc.SubmitAnswers(context.Background(), allAnswered(1))
	assert.ErrorIs(t, err, common.ErrStorageWrite)
}

func TestProfile_Categories(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		answers models.Answers
		want    models.RiskCategory
	}{
		{"all first options", allAnswered(0), models.Conservative},
		{"all second options", allAnswered(1), models.Moderate},
		{"all third options", allAnswered(2), models.Aggressive},
		{"all last options", allAnswered(3), models.Aggressive},
		// one answer of 4 points over 8 questions averages 0.5
		{"single high answer", models.Answers{"1": 3}, models.Conservative},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := newRecs(kv.NewMemoryStore(), profile.Strict)
			require.NoError(t, svc.SubmitAnswers(ctx, c.answers))

			got, ok := svc.Profile(ctx)
			require.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestProfile_LenientMode(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, newRecs(store, profile.Strict).SubmitAnswers(ctx, models.Answers{"1": 3}))

	strict, _ := newRecs(store, profile.Strict).Profile(ctx)
	lenient, _ := newRecs(store, profile.Lenient).Profile(ctx)
	assert.Equal(t, models.Conservative, strict)
	assert.Equal(t, models.Aggressive, lenient)
}

func TestProfile_NoAnswers(t *testing.T) {
	svc := newRecs(kv.NewMemoryStore(), profile.Strict)
	_, ok := svc.Profile(context.Background())
	assert.False(t, ok)

	_, list, ok := svc.Suggestions(context.Background())
	assert.False(t, ok)
	assert.Nil(t, list)
}

func TestProfile_CorruptAnswersReadAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, testKeys.Answers, []byte("not json")))

	_, ok := newRecs(store, profile.Strict).Profile(ctx)
	assert.False(t, ok)
}

func TestSuggestions_MatchCatalog(t *testing.T) {
	ctx := context.Background()
	svc := newRecs(kv.NewMemoryStore(), profile.Strict)
	require.NoError(t, svc.SubmitAnswers(ctx, allAnswered(1)))

	category, list, ok := svc.Suggestions(ctx)
	require.True(t, ok)
	assert.Equal(t, models.Moderate, category)
	assert.Equal(t, catalog.Recommend(models.Moderate), list)
}

func TestSelectPortfolio(t *testing.T) {
	ctx := context.Background()
	svc := newRecs(kv.NewMemoryStore(), profile.Strict)
	assert.Nil(t, svc.CurrentSelection(ctx))

	p := catalog.Recommend(models.Aggressive)[1]
	require.NoError(t, svc.SelectPortfolio(ctx, p))

	// mutating the caller's value does not reach the stored record
	p.Assets[0] = "changed"

	got := svc.CurrentSelection(ctx)
	require.NotNil(t, got)
	assert.Equal(t, catalog.Recommend(models.Aggressive)[1], *got)

	other := models.Portfolio{Name: "Custom", Assets: []string{"Gold"}}
	require.NoError(t, svc.SelectPortfolio(ctx, other))
	assert.Equal(t, other, *svc.CurrentSelection(ctx))
}

func TestSelectPortfolio_Invalid(t *testing.T) {
	svc := newRecs(kv.NewMemoryStore(), profile.Strict)
	err := svc.SelectPortfolio(context.Background(), models.Portfolio{Assets: []string{"x"}})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Nil(t, svc.CurrentSelection(context.Background()))
}

func TestSelectPortfolio_WriteFailure(t *testing.T) {
	store := newFaultyStore()
	store.failWrites = true
	svc := newRecs(store, profile.Strict)

	err := svc.SelectPortfolio(context.Background(), catalog.Recommend(models.Conservative)[0])
	assert.ErrorIs(t, err, common.ErrStorageWrite)
}

func TestCurrentSelection_ReadFailure(t *testing.T) {
	ctx := context.Background()
	store := newFaultyStore()
	svc := newRecs(store, profile.Strict)
	require.NoError(t, svc.SelectPortfolio(ctx, catalog.Recommend(models.Moderate)[0]))

	store.failGet = true
	assert.Nil(t, svc.CurrentSelection(ctx))
	_, ok := svc.Answers(ctx)
	assert.False(t, ok)
}

func TestRestart_AnswersAndSelectionSurvive(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := kv.OpenSQLite(ctx, path)
	require.NoError(t, err)
	svc := newRecs(kv.NewSQLiteStore(db), profile.Strict)
	require.NoError(t, svc.SubmitAnswers(ctx, allAnswered(2)))
	chosen := catalog.Recommend(models.Aggressive)[2]
	require.NoError(t, svc.SelectPortfolio(ctx, chosen))
	require.NoError(t, db.Close())

	db, err = kv.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	restarted := newRecs(kv.NewSQLiteStore(db), profile.Strict)

	answers, ok := restarted.Answers(ctx)
	require.True(t, ok)
	assert.Equal(t, allAnswered(2), answers)

	category, ok := restarted.Profile(ctx)
	require.True(t, ok)
	assert.Equal(t, models.Aggressive, category)

	got := restarted.CurrentSelection(ctx)
	require.NotNil(t, got)
	assert.Equal(t, chosen, *got)
}

func TestSignOut_KeepsAnswersAndSelection(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	auth := newAuth(store, AuthOptions{})
	recs := newRecs(store, profile.Strict)

	_, err := auth.SignIn(ctx, "admin@example.com", "123456")
	require.NoError(t, err)
	require.NoError(t, recs.SubmitAnswers(ctx, allAnswered(0)))
	require.NoError(t, recs.SelectPortfolio(ctx, catalog.Recommend(models.Conservative)[0]))

	require.NoError(t, auth.SignOut(ctx))

	_, ok := recs.Answers(ctx)
	assert.True(t, ok)
	assert.NotNil(t, recs.CurrentSelection(ctx))
}
