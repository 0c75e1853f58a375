package brief

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent"
	entbrief "github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/pkg/agent"
	"github.com/verdictlabs/verdict/pkg/blob"
	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/models"
	"github.com/verdictlabs/verdict/pkg/services"
	"github.com/verdictlabs/verdict/pkg/voice"
	"github.com/verdictlabs/verdict/test/util"
)

// reviewChat answers the reviewer's single non-streaming exchange.
type reviewChat struct {
	response string
	err      error
}

func (c *reviewChat) Chat(context.Context, llm.ChatRequest) (string, error) {
	return c.response, c.err
}

func (c *reviewChat) ChatStream(context.Context, llm.ChatRequest) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk)
	close(ch)
	return ch, nil
}

const reviewerJSON = `{
  "sessionScore": 74.0,
  "consistencyRate": 0.9,
  "topRecommendations": ["Pause before answering.", "Keep answers short.", "Never guess at dates."],
  "narrativeText": "Held up well overall.",
  "weaknessMapScores": {"composure": 70, "tactical_discipline": 75, "professionalism": 88, "directness": 72, "consistency": 80}
}`

type generatorFixture struct {
	client    *ent.Client
	generator *Generator
	events    *services.EventService
	firmID    string
	sessionID string
}

// newGeneratorFixture builds a COMPLETE session with three questions, their
// answers, and one pending objection alert.
func newGeneratorFixture(t *testing.T, chat *reviewChat) *generatorFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	firm, err := client.Firm.Create().
		SetID(uuid.New().String()).
		SetName("Harland & Moss LLP").
		Save(ctx)
	require.NoError(t, err)
	lc, err := client.LegalCase.Create().
		SetID(uuid.New().String()).
		SetFirmID(firm.ID).
		SetCaseName("Meridian v. Calloway").
		SetCaseType(legalcase.CaseTypeCommercialDispute).
		Save(ctx)
	require.NoError(t, err)
	wit, err := client.Witness.Create().
		SetID(uuid.New().String()).
		SetCaseID(lc.ID).
		SetName("Daniel Okafor").
		Save(ctx)
	require.NoError(t, err)

	events := services.NewEventService(client)
	sessions := services.NewSessionService(client, events)
	alerts := services.NewAlertService(client)
	briefs := services.NewBriefService(client, 7*24*time.Hour)

	sess, err := sessions.Create(ctx, firm.ID, models.CreateSessionRequest{
		CaseID:    lc.ID,
		WitnessID: wit.ID,
	})
	require.NoError(t, err)
	_, err = sessions.Start(ctx, firm.ID, sess.ID)
	require.NoError(t, err)

	answers := []string{
		"At the depot, as far as I recall.",
		"Dispatch handled the reroute.",
		"I did not sign anything in March.",
	}
	for i, answer := range answers {
		_, err = events.Append(ctx, models.AppendEventRequest{
			SessionID: sess.ID,
			EventType: sessionevent.EventTypeQuestionAsked,
			Payload:   map[string]any{"question_number": i + 1, "text": "Question?"},
		})
		require.NoError(t, err)
		_, err = events.Append(ctx, models.AppendEventRequest{
			SessionID: sess.ID,
			EventType: sessionevent.EventTypeAnswerReceived,
			Payload:   map[string]any{"question_number": i + 1, "text": answer},
		})
		require.NoError(t, err)
		_, err = sessions.IncrementQuestionCount(ctx, sess.ID)
		require.NoError(t, err)
	}

	_, err = alerts.Create(ctx, models.CreateAlertRequest{
		SessionID:  sess.ID,
		AlertType:  "OBJECTION",
		Confidence: 0.85,
	})
	require.NoError(t, err)

	_, err = sessions.End(ctx, firm.ID, sess.ID)
	require.NoError(t, err)

	blobs, err := blob.NewStore(ctx, blob.Config{Disabled: true})
	require.NoError(t, err)

	generator := NewGenerator(
		client,
		agent.NewReviewer(chat),
		events,
		alerts,
		briefs,
		voice.NewClient(voice.Config{}),
		blobs,
		logger,
	)
	return &generatorFixture{
		client:    client,
		generator: generator,
		events:    events,
		firmID:    firm.ID,
		sessionID: sess.ID,
	}
}

func TestGenerate_ModelReview(t *testing.T) {
	f := newGeneratorFixture(t, &reviewChat{response: reviewerJSON})

	b, err := f.generator.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, entbrief.GeneratedByModel, b.GeneratedBy)
	assert.Equal(t, 74.0, b.SessionScore)
	assert.Equal(t, 0.9, b.ConsistencyRate)
	assert.Len(t, b.Recommendations, 3)
	assert.Equal(t, "Held up well overall.", b.NarrativeText)

	// Alert rollups land on the brief row.
	assert.Equal(t, 0, b.ConfirmedFlags)
	assert.Equal(t, 1, b.ObjectionCount)
	assert.Equal(t, 0, b.ComposureAlerts)

	// The timeline records the generation.
	last, err := f.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(f.sessionID),
			sessionevent.EventTypeEQ(sessionevent.EventTypeBriefGenerated),
		).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, b.ID, last.Payload["brief_id"])
}

func TestGenerate_ReviewerFailureFallsBackToHeuristic(t *testing.T) {
	f := newGeneratorFixture(t, &reviewChat{err: errors.New("model down")})

	b, err := f.generator.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, entbrief.GeneratedByHeuristic, b.GeneratedBy)
	assert.GreaterOrEqual(t, b.SessionScore, 0.0)
	assert.LessOrEqual(t, b.SessionScore, 100.0)
	assert.GreaterOrEqual(t, b.ConsistencyRate, 0.0)
	assert.LessOrEqual(t, b.ConsistencyRate, 1.0)
	assert.Len(t, b.Recommendations, 3)
	for _, score := range b.WeaknessMap {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
	assert.Equal(t, 1, b.ObjectionCount)
	assert.Equal(t, 0, b.ConfirmedFlags)
	assert.Equal(t, 0, b.ComposureAlerts)
}

func TestGenerate_Idempotent(t *testing.T) {
	f := newGeneratorFixture(t, &reviewChat{response: reviewerJSON})

	first, err := f.generator.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)
	second, err := f.generator.Generate(context.Background(), f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestRecordFailure_WritesPlaceholderOnce(t *testing.T) {
	f := newGeneratorFixture(t, &reviewChat{response: reviewerJSON})
	ctx := context.Background()

	require.NoError(t, f.generator.RecordFailure(ctx, f.sessionID, errors.New("pool exhausted")))

	b, err := f.client.Brief.Query().
		Where(entbrief.SessionIDEQ(f.sessionID)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.NarrativeText, FailedNarrativePrefix))
	assert.Contains(t, b.NarrativeText, "pool exhausted")
	assert.Len(t, b.Recommendations, 3)

	// Re-recording never duplicates the row.
	require.NoError(t, f.generator.RecordFailure(ctx, f.sessionID, errors.New("again")))
	n, err := f.client.Brief.Query().
		Where(entbrief.SessionIDEQ(f.sessionID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGenerate_ReplacesFailurePlaceholder(t *testing.T) {
	f := newGeneratorFixture(t, &reviewChat{response: reviewerJSON})
	ctx := context.Background()

	require.NoError(t, f.generator.RecordFailure(ctx, f.sessionID, errors.New("model down")))

	b, err := f.generator.Generate(ctx, f.sessionID)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(b.NarrativeText, FailedNarrativePrefix))
	assert.Equal(t, entbrief.GeneratedByModel, b.GeneratedBy)

	n, err := f.client.Brief.Query().
		Where(entbrief.SessionIDEQ(f.sessionID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordFailure_LeavesRealBriefAlone(t *testing.T) {
	f := newGeneratorFixture(t, &reviewChat{response: reviewerJSON})
	ctx := context.Background()

	generated, err := f.generator.Generate(ctx, f.sessionID)
	require.NoError(t, err)

	require.NoError(t, f.generator.RecordFailure(ctx, f.sessionID, errors.New("late failure")))

	got, err := f.client.Brief.Query().
		Where(entbrief.SessionIDEQ(f.sessionID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, generated.ID, got.ID)
	assert.Equal(t, generated.NarrativeText, got.NarrativeText)
}
