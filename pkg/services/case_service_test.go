package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseCreate_CanonicalizesNames(t *testing.T) {
	f := setup(t)

	lc, err := f.cases.Create(context.Background(), f.firmID, CreateCaseRequest{
		CaseName:      "  Ashford   Estate \t Dispute ",
		OpposingParty: " Basilica   Holdings ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ashford Estate Dispute", lc.CaseName)
	assert.Equal(t, "Basilica Holdings", lc.OpposingParty)
}

func TestCaseCreate_RequiresName(t *testing.T) {
	f := setup(t)

	_, err := f.cases.Create(context.Background(), f.firmID, CreateCaseRequest{CaseName: "   "})
	assert.True(t, IsValidationError(err))
}

func TestCaseGet_CrossTenant(t *testing.T) {
	f := setup(t)

	_, err := f.cases.Get(context.Background(), f.otherFirmID, f.caseID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCaseList_ScopedToFirm(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.cases.Create(ctx, f.otherFirmID, CreateCaseRequest{CaseName: "Other Firm Matter"})
	require.NoError(t, err)

	mine, err := f.cases.List(ctx, f.firmID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.caseID, mine[0].ID)
}

func TestAddWitness(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	w, err := f.cases.AddWitness(ctx, f.firmID, f.caseID, "  Lena   Varga ", "lena@ashford.test", "custodian")
	require.NoError(t, err)
	assert.Equal(t, "Lena Varga", w.Name)
	assert.Equal(t, f.caseID, w.CaseID)

	_, err = f.cases.AddWitness(ctx, f.firmID, f.caseID, "   ", "", "")
	assert.True(t, IsValidationError(err))

	// Adding to another firm's case reads as not-found.
	_, err = f.cases.AddWitness(ctx, f.otherFirmID, f.caseID, "Intruder", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetWitness_CrossTenant(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	w, err := f.cases.GetWitness(ctx, f.firmID, f.witnessID)
	require.NoError(t, err)
	assert.Equal(t, "Daniel Okafor", w.Name)

	_, err = f.cases.GetWitness(ctx, f.otherFirmID, f.witnessID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "a b c", Canonicalize("  a \t b \n c  "))
	assert.Equal(t, "", Canonicalize("   "))
	assert.Equal(t, "unchanged", Canonicalize("unchanged"))
}
