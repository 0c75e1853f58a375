package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent"
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

// scriptedChat plays back a fixed chunk sequence for streaming calls.
type scriptedChat struct {
	chunks   []llm.Chunk
	response string
}

func (c *scriptedChat) Chat(context.Context, llm.ChatRequest) (string, error) {
	return c.response, nil
}

func (c *scriptedChat) ChatStream(context.Context, llm.ChatRequest) (<-chan llm.Chunk, error) {
	ch := make(chan llm.Chunk, len(c.chunks))
	for _, chunk := range c.chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

type downClassifier struct{}

func (downClassifier) Classify(context.Context, string) (string, error) {
	return "", llm.ErrUnavailable
}

// frame is one recorded SSE emission.
type frame struct {
	event string
	data  map[string]any
}

// frameRecorder captures emitted frames and can simulate a client that drops
// the connection on a given frame type.
type frameRecorder struct {
	frames  []frame
	dropOn  string
	onFrame func(event string)
}

func (r *frameRecorder) emit(event string, data map[string]any) error {
	if r.onFrame != nil {
		r.onFrame(event)
	}
	if r.dropOn != "" && event == r.dropOn {
		return errors.New("client disconnected")
	}
	r.frames = append(r.frames, frame{event: event, data: data})
	return nil
}

func (r *frameRecorder) count(event string) int {
	n := 0
	for _, f := range r.frames {
		if f.event == event {
			n++
		}
	}
	return n
}

type orchestratorFixture struct {
	client   *ent.Client
	orch     *Orchestrator
	sessions *services.SessionService
	events   *services.EventService

	firmID    string
	sessionID string
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newOrchestratorFixture wires an orchestrator over a test database with an
// ACTIVE session whose per-answer agent passes are switched off.
func newOrchestratorFixture(t *testing.T, chat llm.ChatClient, voiceClient *voice.Client) *orchestratorFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

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
		SetPriorStatements("I was fully involved in reviewing all quarterly financial reports and I approved them personally.").
		Save(ctx)
	require.NoError(t, err)
	wit, err := client.Witness.Create().
		SetID(uuid.New().String()).
		SetCaseID(lc.ID).
		SetName("Daniel Okafor").
		SetRole("DEFENDANT").
		Save(ctx)
	require.NoError(t, err)

	events := services.NewEventService(client)
	sessions := services.NewSessionService(client, events)
	alerts := services.NewAlertService(client)

	off := false
	sess, err := sessions.Create(ctx, firm.ID, models.CreateSessionRequest{
		CaseID:                  lc.ID,
		WitnessID:               wit.ID,
		AggressionLevel:         "ELEVATED",
		ObjectionCopilotEnabled: &off,
		SentinelEnabled:         &off,
	})
	require.NoError(t, err)
	_, err = sessions.Start(ctx, firm.ID, sess.ID)
	require.NoError(t, err)

	logger := testLogger()
	blobs, err := blob.NewStore(ctx, blob.Config{Disabled: true})
	require.NoError(t, err)
	if voiceClient == nil {
		voiceClient = voice.NewClient(voice.Config{})
	}

	orch := NewOrchestrator(
		client,
		sessions,
		events,
		alerts,
		agent.NewInterrogator(chat, nil, 200),
		agent.NewObjectionCopilot(chat, nil, 3, logger),
		agent.NewSentinel(downClassifier{}, chat, nil, agent.SentinelThresholds{Live: 0.75, Secondary: 0.60, FallbackLive: 0.85}, 5, logger),
		voiceClient,
		blobs,
		0.7,
		logger,
	)

	return &orchestratorFixture{
		client:    client,
		orch:      orch,
		sessions:  sessions,
		events:    events,
		firmID:    firm.ID,
		sessionID: sess.ID,
	}
}

func (f *orchestratorFixture) questionEvents(t *testing.T) []*ent.SessionEvent {
	t.Helper()
	events, err := f.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(f.sessionID),
			sessionevent.EventTypeEQ(sessionevent.EventTypeQuestionAsked),
		).
		Order(ent.Asc(sessionevent.FieldSeq)).
		All(context.Background())
	require.NoError(t, err)
	return events
}

func TestAskQuestion_FrameSequence(t *testing.T) {
	chat := &scriptedChat{chunks: []llm.Chunk{
		llm.TextChunk{Text: "Did you approve the quarterly "},
		llm.TextChunk{Text: "financial reports yourself?"},
	}}
	f := newOrchestratorFixture(t, chat, nil)

	// The question must already be on the timeline when the terminal frame
	// goes out, so a poller that sees QUESTION_END can rely on finding it.
	var persistedAtEnd bool
	rec := &frameRecorder{}
	rec.onFrame = func(event string) {
		if event == FrameQuestionEnd {
			persistedAtEnd = len(f.questionEvents(t)) == 1
		}
	}

	err := f.orch.AskQuestion(context.Background(), f.firmID, f.sessionID, AskInput{Topic: "revenue fraud"}, rec.emit)
	require.NoError(t, err)

	assert.Equal(t, FrameQuestionStart, rec.frames[0].event)
	assert.GreaterOrEqual(t, rec.count(FrameQuestionChunk), 1)
	assert.Equal(t, 1, rec.count(FrameQuestionEnd))
	assert.Equal(t, FrameQuestionEnd, rec.frames[len(rec.frames)-1].event)
	assert.True(t, persistedAtEnd)

	events := f.questionEvents(t)
	require.Len(t, events, 1)
	assert.Equal(t, "Did you approve the quarterly financial reports yourself?", events[0].Payload["text"])
	assert.Equal(t, float64(1), events[0].Payload["question_number"])
	assert.Nil(t, events[0].Payload["truncated"])

	sess, err := f.client.Session.Get(context.Background(), f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.QuestionCount)
	assert.Equal(t, "revenue fraud", sess.CurrentTopic)
}

func TestAskQuestion_DisconnectMidStreamPersistsTruncated(t *testing.T) {
	chat := &scriptedChat{chunks: []llm.Chunk{
		llm.TextChunk{Text: "Did you authorize "},
		llm.TextChunk{Text: "the falsified revenue figures?"},
	}}
	f := newOrchestratorFixture(t, chat, nil)

	rec := &frameRecorder{dropOn: FrameQuestionChunk}
	err := f.orch.AskQuestion(context.Background(), f.firmID, f.sessionID, AskInput{}, rec.emit)
	require.NoError(t, err)

	assert.Zero(t, rec.count(FrameQuestionEnd), "no terminal frame after a disconnect")

	// Exactly one truncated question event, and it still counts.
	events := f.questionEvents(t)
	require.Len(t, events, 1)
	assert.Equal(t, true, events[0].Payload["truncated"])

	sess, err := f.client.Session.Get(context.Background(), f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.QuestionCount)

	// The next stream picks up at question 2.
	rec = &frameRecorder{}
	require.NoError(t, f.orch.AskQuestion(context.Background(), f.firmID, f.sessionID, AskInput{}, rec.emit))
	assert.Equal(t, 2, rec.frames[0].data["questionNumber"])
}

func TestIngestAnswer_TranscriptionFailureRecordsInaudible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	voiceClient := voice.NewClient(voice.Config{APIKey: "test-key", BaseURL: srv.URL})

	chat := &scriptedChat{chunks: []llm.Chunk{llm.TextChunk{Text: "Q?"}}}
	f := newOrchestratorFixture(t, chat, voiceClient)
	require.NoError(t, f.orch.AskQuestion(context.Background(), f.firmID, f.sessionID, AskInput{}, (&frameRecorder{}).emit))

	outcome, err := f.orch.IngestAnswer(context.Background(), f.firmID, f.sessionID,
		[]byte("not really audio"), "answer.webm", AnswerMeta{QuestionNumber: 1, DurationMs: 4200})
	require.NoError(t, err)
	assert.Equal(t, InaudibleTranscript, outcome.Transcript)

	answers, err := f.client.SessionEvent.Query().
		Where(
			sessionevent.SessionIDEQ(f.sessionID),
			sessionevent.EventTypeEQ(sessionevent.EventTypeAnswerReceived),
		).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, InaudibleTranscript, answers[0].Payload["text"])
	assert.Equal(t, float64(1), answers[0].Payload["question_number"])
	assert.Equal(t, float64(4200), answers[0].Payload["duration_ms"])
}

func TestAskQuestion_RequiresActiveSession(t *testing.T) {
	chat := &scriptedChat{chunks: []llm.Chunk{llm.TextChunk{Text: "Q?"}}}
	f := newOrchestratorFixture(t, chat, nil)

	_, err := f.sessions.End(context.Background(), f.firmID, f.sessionID)
	require.NoError(t, err)

	err = f.orch.AskQuestion(context.Background(), f.firmID, f.sessionID, AskInput{}, (&frameRecorder{}).emit)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestIngestTextAnswer_RecordsExchange(t *testing.T) {
	chat := &scriptedChat{chunks: []llm.Chunk{llm.TextChunk{Text: "Who reviewed the reports?"}}}
	f := newOrchestratorFixture(t, chat, nil)
	require.NoError(t, f.orch.AskQuestion(context.Background(), f.firmID, f.sessionID, AskInput{}, (&frameRecorder{}).emit))

	outcome, err := f.orch.IngestTextAnswer(context.Background(), f.firmID, f.sessionID,
		"I never reviewed the quarterly reports; that was the CFO's job.")
	require.NoError(t, err)
	assert.Equal(t, "I never reviewed the quarterly reports; that was the CFO's job.", outcome.Transcript)
	assert.Nil(t, outcome.Objection, "copilot disabled on this session")
	assert.Nil(t, outcome.Sentinel, "sentinel disabled on this session")

	sess, err := f.client.Session.Get(context.Background(), f.sessionID)
	require.NoError(t, err)
	require.NotNil(t, sess.LastInteractionAt)
}

func TestFlattenFacts_SortedAndStable(t *testing.T) {
	facts := map[string]interface{}{
		"route_change":  "rerouted through Laredo",
		"contract_date": "2024-02-12",
	}
	want := "contract_date: 2024-02-12\nroute_change: rerouted through Laredo"
	assert.Equal(t, want, flattenFacts(facts))
	assert.Empty(t, flattenFacts(nil))
}
