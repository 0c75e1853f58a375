// Package seed loads the demo scenarios used for local development and
// acceptance checks. Seeding is idempotent: every entity gets a
// deterministic UUIDv5 ID, and rows that already exist are left alone.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/ent/user"
)

// DemoPassword is the password for every seeded account.
const DemoPassword = "rehearsal-demo"

// id derives a stable UUID for a seed entity from its logical name.
func id(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("seed:"+name)).String()
}

// Run loads scenarios S1-S6. Safe to re-run.
func Run(ctx context.Context, client *ent.Client, logger *slog.Logger) error {
	s := &seeder{client: client, logger: logger}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"S1 baseline firm", s.s1Baseline},
		{"S2 lobby session", s.s2Lobby},
		{"S3 active session", s.s3Active},
		{"S4 completed session with brief", s.s4Complete},
		{"S5 contradiction alerts", s.s5Alerts},
		{"S6 second firm", s.s6SecondFirm},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		s.logger.Info("Seeded", "scenario", step.name)
	}
	return nil
}

type seeder struct {
	client *ent.Client
	logger *slog.Logger
}

// S1: firm, partner account, case with facts and prior statements, witness.
func (s *seeder) s1Baseline(ctx context.Context) error {
	if err := s.ensureFirm(ctx, id("firm-harland"), "Harland & Moss LLP"); err != nil {
		return err
	}
	if err := s.ensureUser(ctx, id("user-aria"), id("firm-harland"),
		"aria@harlandmoss.test", "Aria Chen", user.RolePartner); err != nil {
		return err
	}
	if err := s.ensureCase(ctx, caseSpec{
		id:            id("case-meridian"),
		firmID:        id("firm-harland"),
		name:          "Meridian Logistics v. Calloway Freight",
		caseType:      "COMMERCIAL_DISPUTE",
		opposingParty: "Calloway Freight Inc.",
		caseNumber:    "2026-CV-01841",
		description:   "Breach of a carrier agreement over refrigerated freight losses.",
		exhibitList:   "Exhibit A: carrier agreement. Exhibit B: temperature logs, March 2025. Exhibit C: email thread re: route change.",
		priorStatements: "Okafor deposition excerpt, p.142: \"We never rerouted refrigerated loads without a signed variance.\" " +
			"Okafor deposition excerpt, p.88: \"I reviewed the temperature logs every morning.\"",
		aggressionPreset: "ELEVATED",
		focusAreas:       []string{"temperature logs", "route approval"},
		facts: map[string]interface{}{
			"contract_date":   "2024-02-12",
			"claimed_damages": "$2.4M in spoiled cargo across 11 shipments",
			"route_change":    "Dispatcher rerouted through Laredo without written approval",
			"key_dispute":     "Whether temperature excursions occurred before or after handoff",
		},
	}); err != nil {
		return err
	}
	return s.ensureWitness(ctx, id("witness-okafor"), id("case-meridian"),
		"Daniel Okafor", "d.okafor@meridianlog.test", "operations manager")
}

// S2: a session still in the lobby.
func (s *seeder) s2Lobby(ctx context.Context) error {
	_, err := s.ensureSession(ctx, sessionSpec{
		id:        id("session-lobby"),
		caseID:    id("case-meridian"),
		witnessID: id("witness-okafor"),
		status:    session.StatusLobby,
	})
	return err
}

// S3: an active session mid-flight with a question/answer exchange.
func (s *seeder) s3Active(ctx context.Context) error {
	now := time.Now()
	started := now.Add(-12 * time.Minute)
	sess, err := s.ensureSession(ctx, sessionSpec{
		id:            id("session-active"),
		caseID:        id("case-meridian"),
		witnessID:     id("witness-okafor"),
		status:        session.StatusActive,
		aggression:    session.AggressionLevelElevated,
		focusAreas:    []string{"temperature logs", "route approval"},
		questionCount: 2,
		startedAt:     &started,
	})
	if err != nil || sess == nil {
		return err
	}

	events := []eventSpec{
		{1, sessionevent.EventTypeSessionStarted, nil},
		{2, sessionevent.EventTypeQuestionAsked, map[string]interface{}{
			"question_number": 1,
			"text":            "Mr. Okafor, who authorized the Laredo reroute on March 3rd?",
		}},
		{3, sessionevent.EventTypeAnswerReceived, map[string]interface{}{
			"question_number": 1,
			"text":            "I believe dispatch handled that. I don't recall signing anything.",
		}},
		{4, sessionevent.EventTypeQuestionAsked, map[string]interface{}{
			"question_number": 2,
			"text":            "Is it your testimony that a $2.4 million reroute needed no sign-off from you?",
		}},
	}
	return s.ensureEvents(ctx, sess.ID, events)
}

// S4: a completed session with a generated brief and an active share link.
func (s *seeder) s4Complete(ctx context.Context) error {
	now := time.Now()
	started := now.Add(-3 * 24 * time.Hour)
	ended := started.Add(42 * time.Minute)
	sess, err := s.ensureSession(ctx, sessionSpec{
		id:            id("session-complete"),
		caseID:        id("case-meridian"),
		witnessID:     id("witness-okafor"),
		status:        session.StatusComplete,
		questionCount: 14,
		startedAt:     &started,
		endedAt:       &ended,
		briefStatus:   session.BriefStatusDone,
	})
	if err != nil || sess == nil {
		return err
	}

	if err := s.ensureEvents(ctx, sess.ID, []eventSpec{
		{1, sessionevent.EventTypeSessionStarted, nil},
		{2, sessionevent.EventTypeSessionEnded, nil},
	}); err != nil {
		return err
	}

	exists, err := s.client.Brief.Query().Where(brief.IDEQ(id("brief-complete"))).Exist(ctx)
	if err != nil || exists {
		return err
	}
	shareExpires := now.Add(7 * 24 * time.Hour)
	return s.client.Brief.Create().
		SetID(id("brief-complete")).
		SetSessionID(sess.ID).
		SetSessionScore(68.4).
		SetConsistencyRate(0.86).
		SetWeaknessMap(map[string]float64{
			"composure":           72,
			"tactical_discipline": 58,
			"professionalism":     85,
			"directness":          61,
			"consistency":         79,
		}).
		SetNarrativeText("The witness held composure under sustained pressure but volunteered detail on the reroute timeline and hedged on document sign-off.").
		SetRecommendations([]string{
			"Answer only the question asked; stop after the direct answer.",
			"Rehearse the reroute timeline until dates come without hedging.",
			"Pause before answering compound questions and ask for one part at a time.",
		}).
		SetConfirmedFlags(1).
		SetObjectionCount(2).
		SetComposureAlerts(1).
		SetGeneratedBy(brief.GeneratedByModel).
		SetShareToken(id("share-complete")).
		SetShareExpiresAt(shareExpires).
		Exec(ctx)
}

// S5: alert fixtures covering both review states and a composure ping.
func (s *seeder) s5Alerts(ctx context.Context) error {
	specs := []alertSpec{
		{
			id:         id("alert-pending"),
			confidence: 0.81,
			status:     "PENDING",
			priorQuote: "We never rerouted refrigerated loads without a signed variance.",
			quote:      "Dispatch reroutes happened all the time, nobody signed anything.",
			page:       142, line: 7, questionNumber: 6,
		},
		{
			id:         id("alert-confirmed"),
			confidence: 0.93,
			status:     "CONFIRMED",
			priorQuote: "I reviewed the temperature logs every morning.",
			quote:      "I never saw the temperature logs before this lawsuit.",
			page:       88, line: 19, questionNumber: 9,
		},
		{
			id:             id("alert-composure"),
			alertType:      alertTypeComposure,
			confidence:     0.77,
			status:         "PENDING",
			quote:          "Look, I already answered that. Move on.",
			questionNumber: 11,
		},
	}
	for _, spec := range specs {
		if err := s.ensureAlert(ctx, id("session-complete"), spec); err != nil {
			return err
		}
	}
	return nil
}

// S6: an unrelated firm, for tenant-isolation checks.
func (s *seeder) s6SecondFirm(ctx context.Context) error {
	if err := s.ensureFirm(ctx, id("firm-basilica"), "Basilica Defense Group"); err != nil {
		return err
	}
	if err := s.ensureUser(ctx, id("user-marco"), id("firm-basilica"),
		"marco@basilica.test", "Marco Reyes", user.RoleAssociate); err != nil {
		return err
	}
	if err := s.ensureCase(ctx, caseSpec{
		id:       id("case-ashford"),
		firmID:   id("firm-basilica"),
		name:     "Ashford Estate Dispute",
		caseType: "CONTRACT_BREACH",
	}); err != nil {
		return err
	}
	return s.ensureWitness(ctx, id("witness-lena"), id("case-ashford"),
		"Lena Ashford", "", "beneficiary")
}
