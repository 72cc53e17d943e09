package service

import (
	"context"
	"testing"

	"virtual-lawyer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLawService() (*LawService, *fakeLawStore, *fakePenaltyStore) {
	laws := newFakeLawStore(seededLaws()...)
	penalties := &fakePenaltyStore{}
	return NewLawService(WithLawStore(laws), WithPenaltyStore(penalties)), laws, penalties
}

func TestLawServiceList(t *testing.T) {
	svc, _, _ := newLawService()
	laws, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, laws, 4)
	assert.Equal(t, "138", laws[0].Section)
}

func TestLawServiceCreate(t *testing.T) {
	svc, store, _ := newLawService()
	ctx := context.Background()

	law, err := svc.Create(ctx, &models.Law{
		Section:  " 498A ",
		Title:    "Cruelty by Husband/Relatives",
		Keywords: []string{" cruelty", "", "498a"},
	})
	require.NoError(t, err)
	assert.Equal(t, "498A", law.Section)
	assert.Equal(t, []string{"cruelty", "498a"}, law.Keywords)
	assert.Contains(t, store.laws, "498A")

	_, err = svc.Create(ctx, &models.Law{Section: "420", Title: "Cheating again"})
	assert.ErrorIs(t, err, ErrDuplicateSection)

	_, err = svc.Create(ctx, &models.Law{Section: "1"})
	assert.ErrorIs(t, err, ErrInvalidLaw)
}

func TestLawServiceUpdate(t *testing.T) {
	svc, store, _ := newLawService()
	ctx := context.Background()
	id := store.laws["379"].ID

	law, err := svc.Update(ctx, "379", &models.Law{Section: "379", Title: "Theft", ShortDescription: "Theft of movable property", Keywords: []string{"theft", "steal", "stolen"}})
	require.NoError(t, err)
	assert.Equal(t, id, law.ID)
	assert.Equal(t, []string{"theft", "steal", "stolen"}, store.laws["379"].Keywords)

	_, err = svc.Update(ctx, "999", &models.Law{Section: "999", Title: "Nothing"})
	assert.ErrorIs(t, err, ErrLawNotFound)

	_, err = svc.Update(ctx, "379", &models.Law{Section: "420", Title: "Clash"})
	assert.ErrorIs(t, err, ErrDuplicateSection)
}

func TestLawServiceDelete(t *testing.T) {
	svc, store, _ := newLawService()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "302"))
	assert.NotContains(t, store.laws, "302")
	assert.ErrorIs(t, svc.Delete(ctx, "302"), ErrLawNotFound)
}

func TestLawServicePenalties(t *testing.T) {
	svc, _, _ := newLawService()
	ctx := context.Background()

	_, err := svc.AddPenalty(ctx, &models.Penalty{LawSection: "302", Imprisonment: "Life", Fine: "Yes", Severity: "high"})
	require.NoError(t, err)

	_, err = svc.AddPenalty(ctx, &models.Penalty{LawSection: "999"})
	assert.ErrorIs(t, err, ErrLawNotFound)

	_, err = svc.AddPenalty(ctx, &models.Penalty{LawSection: " "})
	assert.ErrorIs(t, err, ErrInvalidPenalty)

	detail, err := svc.Get(ctx, "302")
	require.NoError(t, err)
	assert.Equal(t, "Murder", detail.Law.Title)
	require.Len(t, detail.Penalties, 1)
	assert.Equal(t, "Life", detail.Penalties[0].Imprisonment)

	detail, err = svc.Get(ctx, "379")
	require.NoError(t, err)
	assert.NotNil(t, detail.Penalties)
	assert.Empty(t, detail.Penalties)

	_, err = svc.Get(ctx, "999")
	assert.ErrorIs(t, err, ErrLawNotFound)
}

func TestLawServiceDeletePenalty(t *testing.T) {
	svc, _, penalties := newLawService()
	ctx := context.Background()

	p, err := svc.AddPenalty(ctx, &models.Penalty{LawSection: "302", Imprisonment: "Life"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePenalty(ctx, "379", p.ID), ErrPenaltyNotFound, "penalty belongs to another section")
	require.Len(t, penalties.penalties, 1)

	require.NoError(t, svc.DeletePenalty(ctx, "302", p.ID))
	assert.Empty(t, penalties.penalties)

	assert.ErrorIs(t, svc.DeletePenalty(ctx, "302", p.ID), ErrPenaltyNotFound)
}
