package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/user"
	"github.com/verdictlabs/verdict/pkg/config"
	"github.com/verdictlabs/verdict/pkg/models"
	"github.com/verdictlabs/verdict/pkg/services"
	"github.com/verdictlabs/verdict/test/util"
)

const testPassword = "correct horse battery"

// testServer is a fully routed API server over a per-test database schema,
// with one firm and one attorney already registered.
type testServer struct {
	srv      *Server
	client   *ent.Client
	sessions *services.SessionService
	cases    *services.CaseService
	briefs   *services.BriefService

	firmID string
	userID string
	email  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	cfg := config.Default()
	cfg.Auth.JWTSecret = "test-secret"

	events := services.NewEventService(client)
	users := services.NewUserService(client)
	ts := &testServer{
		client:   client,
		sessions: services.NewSessionService(client, events),
		cases:    services.NewCaseService(client),
		briefs:   services.NewBriefService(client, cfg.Auth.ShareLinkTTL),
	}

	ts.srv = NewServer(cfg, Deps{
		Users:    users,
		Cases:    ts.cases,
		Sessions: ts.sessions,
		Events:   events,
		Alerts:   services.NewAlertService(client),
		Briefs:   ts.briefs,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	firm, err := client.Firm.Create().
		SetID(uuid.New().String()).
		SetName("Harland & Moss LLP").
		Save(ctx)
	require.NoError(t, err)
	ts.firmID = firm.ID

	ts.email = "aria@harlandmoss.test"
	u, err := users.Create(ctx, firm.ID, ts.email, testPassword, "Aria Chen", user.RolePartner)
	require.NoError(t, err)
	ts.userID = u.ID

	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.srv.http.Handler.ServeHTTP(w, req)
	return w
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": ts.email, "password": testPassword})
	w := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func authed(method, target, token string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	return envelope.Error.Code
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestLoginAndAuthedRequest(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	w := ts.do(authed(http.MethodGet, "/api/v1/cases", token, nil))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestLogin_BadCredentials(t *testing.T) {
	ts := newTestServer(t)

	for _, creds := range []map[string]string{
		{"email": ts.email, "password": "wrong password"},
		{"email": "nobody@nowhere.test", "password": testPassword},
	} {
		body, _ := json.Marshal(creds)
		w := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, CodeTokenInvalid, errorCode(t, w), "wrong password and unknown email are indistinguishable")
	}
}

func TestRequireAuth_MissingToken(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/cases", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeTokenMissing, errorCode(t, w))
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cases", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := ts.do(req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeTokenInvalid, errorCode(t, w))
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(authed(http.MethodGet, "/api/v1/cases", "not.a.jwt", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeTokenInvalid, errorCode(t, w))
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	ts := newTestServer(t)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": ts.userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	w := ts.do(authed(http.MethodGet, "/api/v1/cases", forged, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeTokenInvalid, errorCode(t, w))
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	ts := newTestServer(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": ts.userID,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := ts.do(authed(http.MethodGet, "/api/v1/cases", expired, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeTokenInvalid, errorCode(t, w))
}

func TestRequireAuth_InactiveAccount(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	require.NoError(t, ts.client.User.UpdateOneID(ts.userID).
		SetIsActive(false).Exec(context.Background()))

	w := ts.do(authed(http.MethodGet, "/api/v1/cases", token, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, CodeAccountInactive, errorCode(t, w))
}

func TestWitnessToken_MismatchedSession(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	lc, err := ts.cases.Create(ctx, ts.firmID, services.CreateCaseRequest{CaseName: "Meridian v. Calloway"})
	require.NoError(t, err)
	wit, err := ts.cases.AddWitness(ctx, ts.firmID, lc.ID, "Daniel Okafor", "", "")
	require.NoError(t, err)
	sess, err := ts.sessions.Create(ctx, ts.firmID, models.CreateSessionRequest{CaseID: lc.ID, WitnessID: wit.ID})
	require.NoError(t, err)

	// A real token presented against a different session is rejected.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/other-session/answers/text", nil)
	req.Header.Set("X-Witness-Token", sess.WitnessToken)
	w := ts.do(req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeTokenInvalid, errorCode(t, w))

	// An unknown token is rejected outright.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/answers/text", nil)
	req.Header.Set("X-Witness-Token", "bogus")
	w = ts.do(req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWitnessToken_AbsentFallsBackToJWT(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/any/answers/text", nil)
	w := ts.do(req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeTokenMissing, errorCode(t, w))
}

func TestCrossTenantReadsAs404(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	token := ts.login(t)

	// A case owned by a different firm.
	otherFirm, err := ts.client.Firm.Create().
		SetID(uuid.New().String()).
		SetName("Basilica Defense Group").
		Save(ctx)
	require.NoError(t, err)
	foreign, err := ts.cases.Create(ctx, otherFirm.ID, services.CreateCaseRequest{CaseName: "Ashford Estate"})
	require.NoError(t, err)

	w := ts.do(authed(http.MethodGet, "/api/v1/cases/"+foreign.ID, token, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeNotFound, errorCode(t, w))
}

func TestSessionTransitionConflict(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	token := ts.login(t)

	lc, err := ts.cases.Create(ctx, ts.firmID, services.CreateCaseRequest{CaseName: "Meridian v. Calloway"})
	require.NoError(t, err)
	wit, err := ts.cases.AddWitness(ctx, ts.firmID, lc.ID, "Daniel Okafor", "", "")
	require.NoError(t, err)
	sess, err := ts.sessions.Create(ctx, ts.firmID, models.CreateSessionRequest{CaseID: lc.ID, WitnessID: wit.ID})
	require.NoError(t, err)

	// Pausing a LOBBY session is a state conflict.
	w := ts.do(authed(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/pause", token, nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, CodeConflict, errorCode(t, w))

	w = ts.do(authed(http.MethodPost, "/api/v1/sessions/"+sess.ID+"/start", token, nil))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSharedBrief_UnknownToken(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/briefs/shared/no-such-token", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeNotFound, errorCode(t, w))
}

func TestValidationErrorsAre422(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	body, _ := json.Marshal(map[string]string{"case_name": "   "})
	w := ts.do(authed(http.MethodPost, "/api/v1/cases", token, bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, CodeValidationError, errorCode(t, w))
}
