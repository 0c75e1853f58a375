package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/pkg/models"
	"github.com/verdictlabs/verdict/test/util"
)

// fixtures wires every service against a per-test database schema with one
// firm/case/witness already in place, plus a second firm for tenant isolation
// checks.
type fixtures struct {
	client   *ent.Client
	users    *UserService
	cases    *CaseService
	sessions *SessionService
	events   *EventService
	alerts   *AlertService
	briefs   *BriefService

	firmID      string
	otherFirmID string
	caseID      string
	witnessID   string
}

func setup(t *testing.T) *fixtures {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	events := NewEventService(client)
	f := &fixtures{
		client:   client,
		users:    NewUserService(client),
		cases:    NewCaseService(client),
		sessions: NewSessionService(client, events),
		events:   events,
		alerts:   NewAlertService(client),
		briefs:   NewBriefService(client, 7*24*time.Hour),
	}

	f.firmID = f.createFirm(t, "Harland & Moss LLP")
	f.otherFirmID = f.createFirm(t, "Basilica Defense Group")

	lc, err := f.cases.Create(ctx, f.firmID, CreateCaseRequest{
		CaseName:      "Meridian Logistics v. Calloway Freight",
		CaseType:      "COMMERCIAL_DISPUTE",
		OpposingParty: "Calloway Freight",
	})
	require.NoError(t, err)
	f.caseID = lc.ID

	w, err := f.cases.AddWitness(ctx, f.firmID, f.caseID, "Daniel Okafor", "daniel@meridian.test", "operations manager")
	require.NoError(t, err)
	f.witnessID = w.ID

	return f
}

func (f *fixtures) createFirm(t *testing.T, name string) string {
	t.Helper()
	firm, err := f.client.Firm.Create().
		SetID(uuid.New().String()).
		SetName(name).
		Save(context.Background())
	require.NoError(t, err)
	return firm.ID
}

// newSession creates a LOBBY session on the default case/witness.
func (f *fixtures) newSession(t *testing.T) *ent.Session {
	t.Helper()
	sess, err := f.sessions.Create(context.Background(), f.firmID, models.CreateSessionRequest{
		CaseID:    f.caseID,
		WitnessID: f.witnessID,
	})
	require.NoError(t, err)
	return sess
}

// activeSession creates a session and starts it.
func (f *fixtures) activeSession(t *testing.T) *ent.Session {
	t.Helper()
	sess := f.newSession(t)
	started, err := f.sessions.Start(context.Background(), f.firmID, sess.ID)
	require.NoError(t, err)
	return started
}

// completeSession walks a session to COMPLETE.
func (f *fixtures) completeSession(t *testing.T) *ent.Session {
	t.Helper()
	sess := f.activeSession(t)
	ended, err := f.sessions.End(context.Background(), f.firmID, sess.ID)
	require.NoError(t, err)
	return ended
}
