package seed

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/firm"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/ent/user"
	"github.com/verdictlabs/verdict/ent/witness"
)

func (s *seeder) ensureFirm(ctx context.Context, firmID, name string) error {
	exists, err := s.client.Firm.Query().Where(firm.IDEQ(firmID)).Exist(ctx)
	if err != nil || exists {
		return err
	}
	return s.client.Firm.Create().
		SetID(firmID).
		SetName(name).
		Exec(ctx)
}

func (s *seeder) ensureUser(ctx context.Context, userID, firmID, email, fullName string, role user.Role) error {
	exists, err := s.client.User.Query().Where(user.IDEQ(userID)).Exist(ctx)
	if err != nil || exists {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.client.User.Create().
		SetID(userID).
		SetFirmID(firmID).
		SetEmail(email).
		SetPasswordHash(string(hash)).
		SetFullName(fullName).
		SetRole(role).
		Exec(ctx)
}

type caseSpec struct {
	id               string
	firmID           string
	name             string
	caseType         string
	opposingParty    string
	caseNumber       string
	description      string
	exhibitList      string
	priorStatements  string
	aggressionPreset string
	focusAreas       []string
	facts            map[string]interface{}
}

func (s *seeder) ensureCase(ctx context.Context, spec caseSpec) error {
	exists, err := s.client.LegalCase.Query().Where(legalcase.IDEQ(spec.id)).Exist(ctx)
	if err != nil || exists {
		return err
	}
	builder := s.client.LegalCase.Create().
		SetID(spec.id).
		SetFirmID(spec.firmID).
		SetCaseName(spec.name).
		SetCaseType(legalcase.CaseType(spec.caseType)).
		SetOpposingParty(spec.opposingParty)
	if spec.caseNumber != "" {
		builder.SetCaseNumber(spec.caseNumber)
	}
	if spec.description != "" {
		builder.SetDescription(spec.description)
	}
	if spec.exhibitList != "" {
		builder.SetExhibitList(spec.exhibitList)
	}
	if spec.priorStatements != "" {
		builder.SetPriorStatements(spec.priorStatements)
	}
	if spec.aggressionPreset != "" {
		builder.SetAggressionPreset(legalcase.AggressionPreset(spec.aggressionPreset))
	}
	if len(spec.focusAreas) > 0 {
		builder.SetFocusAreas(spec.focusAreas)
	}
	if len(spec.facts) > 0 {
		builder.SetExtractedFacts(spec.facts)
	}
	return builder.Exec(ctx)
}

func (s *seeder) ensureWitness(ctx context.Context, witnessID, caseID, name, email, role string) error {
	exists, err := s.client.Witness.Query().Where(witness.IDEQ(witnessID)).Exist(ctx)
	if err != nil || exists {
		return err
	}
	return s.client.Witness.Create().
		SetID(witnessID).
		SetCaseID(caseID).
		SetName(name).
		SetEmail(email).
		SetRole(role).
		Exec(ctx)
}

type sessionSpec struct {
	id            string
	caseID        string
	witnessID     string
	status        session.Status
	aggression    session.AggressionLevel
	focusAreas    []string
	questionCount int
	startedAt     *time.Time
	endedAt       *time.Time
	briefStatus   session.BriefStatus
}

// ensureSession creates the session if missing. Returns nil when the row
// already existed so callers skip dependent fixtures too.
func (s *seeder) ensureSession(ctx context.Context, spec sessionSpec) (*ent.Session, error) {
	exists, err := s.client.Session.Query().Where(session.IDEQ(spec.id)).Exist(ctx)
	if err != nil || exists {
		return nil, err
	}

	builder := s.client.Session.Create().
		SetID(spec.id).
		SetCaseID(spec.caseID).
		SetWitnessID(spec.witnessID).
		SetWitnessToken(seedToken(spec.id)).
		SetStatus(spec.status).
		SetQuestionCount(spec.questionCount).
		SetLastInteractionAt(time.Now())
	if spec.aggression != "" {
		builder.SetAggressionLevel(spec.aggression)
	}
	if len(spec.focusAreas) > 0 {
		builder.SetFocusAreas(spec.focusAreas)
	}
	if spec.startedAt != nil {
		builder.SetStartedAt(*spec.startedAt)
	}
	if spec.endedAt != nil {
		builder.SetEndedAt(*spec.endedAt)
	}
	if spec.briefStatus != "" {
		builder.SetBriefStatus(spec.briefStatus)
	}
	return builder.Save(ctx)
}

// seedToken derives a stable 24-character opaque witness token, matching the
// shape the session service mints at runtime.
func seedToken(sessionID string) string {
	return strings.ReplaceAll(id("token-"+sessionID), "-", "")[:24]
}

type eventSpec struct {
	seq       int
	eventType sessionevent.EventType
	payload   map[string]interface{}
}

func (s *seeder) ensureEvents(ctx context.Context, sessionID string, specs []eventSpec) error {
	for _, spec := range specs {
		eventID := id("event-" + sessionID + "-" + strconv.Itoa(spec.seq))
		exists, err := s.client.SessionEvent.Query().
			Where(sessionevent.IDEQ(eventID)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		builder := s.client.SessionEvent.Create().
			SetID(eventID).
			SetSessionID(sessionID).
			SetSeq(spec.seq).
			SetEventType(spec.eventType)
		if len(spec.payload) > 0 {
			builder.SetPayload(spec.payload)
		}
		if err := builder.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

const alertTypeComposure = alert.AlertTypeComposure

type alertSpec struct {
	id             string
	alertType      alert.AlertType
	confidence     float64
	status         string
	priorQuote     string
	quote          string
	page           int
	line           int
	questionNumber int
}

func (s *seeder) ensureAlert(ctx context.Context, sessionID string, spec alertSpec) error {
	exists, err := s.client.Alert.Query().Where(alert.IDEQ(spec.id)).Exist(ctx)
	if err != nil || exists {
		return err
	}
	alertType := spec.alertType
	if alertType == "" {
		alertType = alert.AlertTypeContradiction
	}
	builder := s.client.Alert.Create().
		SetID(spec.id).
		SetSessionID(sessionID).
		SetAlertType(alertType).
		SetStatus(alert.Status(spec.status)).
		SetConfidence(spec.confidence).
		SetCurrentQuote(spec.quote).
		SetQuestionNumber(spec.questionNumber)
	if alertType == alert.AlertTypeContradiction {
		builder.SetImpeachmentRisk(alert.ImpeachmentRiskHigh).
			SetPriorQuote(spec.priorQuote).
			SetPriorSourcePage(spec.page).
			SetPriorSourceLine(spec.line)
	}
	if spec.status == "CONFIRMED" {
		builder.SetConfirmedAt(time.Now())
	}
	return builder.Exec(ctx)
}
