// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/document"
	"github.com/verdictlabs/verdict/ent/firm"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/predicate"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/ent/user"
	"github.com/verdictlabs/verdict/ent/witness"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert        = "Alert"
	TypeBrief        = "Brief"
	TypeDocument     = "Document"
	TypeFirm         = "Firm"
	TypeLegalCase    = "LegalCase"
	TypeSession      = "Session"
	TypeSessionEvent = "SessionEvent"
	TypeUser         = "User"
	TypeWitness      = "Witness"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	alert_type           *alert.AlertType
	status               *alert.Status
	confidence           *float64
	addconfidence        *float64
	impeachment_risk     *alert.ImpeachmentRisk
	prior_quote          *string
	prior_source_page    *int
	addprior_source_page *int
	prior_source_line    *int
	addprior_source_line *int
	current_quote        *string
	fre_rule             *string
	fre_classification   *string
	question_number      *int
	addquestion_number   *int
	confirmed_at         *time.Time
	rejected_at          *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	session              *string
	clearedsession       bool
	done                 bool
	oldValue             func(context.Context) (*Alert, error)
	predicates           []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id string) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AlertMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AlertMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AlertMutation) ResetSessionID() {
	m.session = nil
}

// SetAlertType sets the "alert_type" field.
func (m *AlertMutation) SetAlertType(at alert.AlertType) {
	m.alert_type = &at
}

// AlertType returns the value of the "alert_type" field in the mutation.
func (m *AlertMutation) AlertType() (r alert.AlertType, exists bool) {
	v := m.alert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertType returns the old "alert_type" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAlertType(ctx context.Context) (v alert.AlertType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertType: %w", err)
	}
	return oldValue.AlertType, nil
}

// ResetAlertType resets all changes to the "alert_type" field.
func (m *AlertMutation) ResetAlertType() {
	m.alert_type = nil
}

// SetStatus sets the "status" field.
func (m *AlertMutation) SetStatus(a alert.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertMutation) Status() (r alert.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldStatus(ctx context.Context) (v alert.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertMutation) ResetStatus() {
	m.status = nil
}

// SetConfidence sets the "confidence" field.
func (m *AlertMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AlertMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AlertMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AlertMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AlertMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetImpeachmentRisk sets the "impeachment_risk" field.
func (m *AlertMutation) SetImpeachmentRisk(ar alert.ImpeachmentRisk) {
	m.impeachment_risk = &ar
}

// ImpeachmentRisk returns the value of the "impeachment_risk" field in the mutation.
func (m *AlertMutation) ImpeachmentRisk() (r alert.ImpeachmentRisk, exists bool) {
	v := m.impeachment_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldImpeachmentRisk returns the old "impeachment_risk" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldImpeachmentRisk(ctx context.Context) (v alert.ImpeachmentRisk, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpeachmentRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpeachmentRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpeachmentRisk: %w", err)
	}
	return oldValue.ImpeachmentRisk, nil
}

// ClearImpeachmentRisk clears the value of the "impeachment_risk" field.
func (m *AlertMutation) ClearImpeachmentRisk() {
	m.impeachment_risk = nil
	m.clearedFields[alert.FieldImpeachmentRisk] = struct{}{}
}

// ImpeachmentRiskCleared returns if the "impeachment_risk" field was cleared in this mutation.
func (m *AlertMutation) ImpeachmentRiskCleared() bool {
	_, ok := m.clearedFields[alert.FieldImpeachmentRisk]
	return ok
}

// ResetImpeachmentRisk resets all changes to the "impeachment_risk" field.
func (m *AlertMutation) ResetImpeachmentRisk() {
	m.impeachment_risk = nil
	delete(m.clearedFields, alert.FieldImpeachmentRisk)
}

// SetPriorQuote sets the "prior_quote" field.
func (m *AlertMutation) SetPriorQuote(s string) {
	m.prior_quote = &s
}

// PriorQuote returns the value of the "prior_quote" field in the mutation.
func (m *AlertMutation) PriorQuote() (r string, exists bool) {
	v := m.prior_quote
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorQuote returns the old "prior_quote" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldPriorQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorQuote: %w", err)
	}
	return oldValue.PriorQuote, nil
}

// ClearPriorQuote clears the value of the "prior_quote" field.
func (m *AlertMutation) ClearPriorQuote() {
	m.prior_quote = nil
	m.clearedFields[alert.FieldPriorQuote] = struct{}{}
}

// PriorQuoteCleared returns if the "prior_quote" field was cleared in this mutation.
func (m *AlertMutation) PriorQuoteCleared() bool {
	_, ok := m.clearedFields[alert.FieldPriorQuote]
	return ok
}

// ResetPriorQuote resets all changes to the "prior_quote" field.
func (m *AlertMutation) ResetPriorQuote() {
	m.prior_quote = nil
	delete(m.clearedFields, alert.FieldPriorQuote)
}

// SetPriorSourcePage sets the "prior_source_page" field.
func (m *AlertMutation) SetPriorSourcePage(i int) {
	m.prior_source_page = &i
	m.addprior_source_page = nil
}

// PriorSourcePage returns the value of the "prior_source_page" field in the mutation.
func (m *AlertMutation) PriorSourcePage() (r int, exists bool) {
	v := m.prior_source_page
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorSourcePage returns the old "prior_source_page" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldPriorSourcePage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorSourcePage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorSourcePage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorSourcePage: %w", err)
	}
	return oldValue.PriorSourcePage, nil
}

// AddPriorSourcePage adds i to the "prior_source_page" field.
func (m *AlertMutation) AddPriorSourcePage(i int) {
	if m.addprior_source_page != nil {
		*m.addprior_source_page += i
	} else {
		m.addprior_source_page = &i
	}
}

// AddedPriorSourcePage returns the value that was added to the "prior_source_page" field in this mutation.
func (m *AlertMutation) AddedPriorSourcePage() (r int, exists bool) {
	v := m.addprior_source_page
	if v == nil {
		return
	}
	return *v, true
}

// ClearPriorSourcePage clears the value of the "prior_source_page" field.
func (m *AlertMutation) ClearPriorSourcePage() {
	m.prior_source_page = nil
	m.addprior_source_page = nil
	m.clearedFields[alert.FieldPriorSourcePage] = struct{}{}
}

// PriorSourcePageCleared returns if the "prior_source_page" field was cleared in this mutation.
func (m *AlertMutation) PriorSourcePageCleared() bool {
	_, ok := m.clearedFields[alert.FieldPriorSourcePage]
	return ok
}

// ResetPriorSourcePage resets all changes to the "prior_source_page" field.
func (m *AlertMutation) ResetPriorSourcePage() {
	m.prior_source_page = nil
	m.addprior_source_page = nil
	delete(m.clearedFields, alert.FieldPriorSourcePage)
}

// SetPriorSourceLine sets the "prior_source_line" field.
func (m *AlertMutation) SetPriorSourceLine(i int) {
	m.prior_source_line = &i
	m.addprior_source_line = nil
}

// PriorSourceLine returns the value of the "prior_source_line" field in the mutation.
func (m *AlertMutation) PriorSourceLine() (r int, exists bool) {
	v := m.prior_source_line
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorSourceLine returns the old "prior_source_line" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldPriorSourceLine(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorSourceLine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorSourceLine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorSourceLine: %w", err)
	}
	return oldValue.PriorSourceLine, nil
}

// AddPriorSourceLine adds i to the "prior_source_line" field.
func (m *AlertMutation) AddPriorSourceLine(i int) {
	if m.addprior_source_line != nil {
		*m.addprior_source_line += i
	} else {
		m.addprior_source_line = &i
	}
}

// AddedPriorSourceLine returns the value that was added to the "prior_source_line" field in this mutation.
func (m *AlertMutation) AddedPriorSourceLine() (r int, exists bool) {
	v := m.addprior_source_line
	if v == nil {
		return
	}
	return *v, true
}

// ClearPriorSourceLine clears the value of the "prior_source_line" field.
func (m *AlertMutation) ClearPriorSourceLine() {
	m.prior_source_line = nil
	m.addprior_source_line = nil
	m.clearedFields[alert.FieldPriorSourceLine] = struct{}{}
}

// PriorSourceLineCleared returns if the "prior_source_line" field was cleared in this mutation.
func (m *AlertMutation) PriorSourceLineCleared() bool {
	_, ok := m.clearedFields[alert.FieldPriorSourceLine]
	return ok
}

// ResetPriorSourceLine resets all changes to the "prior_source_line" field.
func (m *AlertMutation) ResetPriorSourceLine() {
	m.prior_source_line = nil
	m.addprior_source_line = nil
	delete(m.clearedFields, alert.FieldPriorSourceLine)
}

// SetCurrentQuote sets the "current_quote" field.
func (m *AlertMutation) SetCurrentQuote(s string) {
	m.current_quote = &s
}

// CurrentQuote returns the value of the "current_quote" field in the mutation.
func (m *AlertMutation) CurrentQuote() (r string, exists bool) {
	v := m.current_quote
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentQuote returns the old "current_quote" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCurrentQuote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentQuote: %w", err)
	}
	return oldValue.CurrentQuote, nil
}

// ClearCurrentQuote clears the value of the "current_quote" field.
func (m *AlertMutation) ClearCurrentQuote() {
	m.current_quote = nil
	m.clearedFields[alert.FieldCurrentQuote] = struct{}{}
}

// CurrentQuoteCleared returns if the "current_quote" field was cleared in this mutation.
func (m *AlertMutation) CurrentQuoteCleared() bool {
	_, ok := m.clearedFields[alert.FieldCurrentQuote]
	return ok
}

// ResetCurrentQuote resets all changes to the "current_quote" field.
func (m *AlertMutation) ResetCurrentQuote() {
	m.current_quote = nil
	delete(m.clearedFields, alert.FieldCurrentQuote)
}

// SetFreRule sets the "fre_rule" field.
func (m *AlertMutation) SetFreRule(s string) {
	m.fre_rule = &s
}

// FreRule returns the value of the "fre_rule" field in the mutation.
func (m *AlertMutation) FreRule() (r string, exists bool) {
	v := m.fre_rule
	if v == nil {
		return
	}
	return *v, true
}

// OldFreRule returns the old "fre_rule" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldFreRule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreRule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreRule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreRule: %w", err)
	}
	return oldValue.FreRule, nil
}

// ClearFreRule clears the value of the "fre_rule" field.
func (m *AlertMutation) ClearFreRule() {
	m.fre_rule = nil
	m.clearedFields[alert.FieldFreRule] = struct{}{}
}

// FreRuleCleared returns if the "fre_rule" field was cleared in this mutation.
func (m *AlertMutation) FreRuleCleared() bool {
	_, ok := m.clearedFields[alert.FieldFreRule]
	return ok
}

// ResetFreRule resets all changes to the "fre_rule" field.
func (m *AlertMutation) ResetFreRule() {
	m.fre_rule = nil
	delete(m.clearedFields, alert.FieldFreRule)
}

// SetFreClassification sets the "fre_classification" field.
func (m *AlertMutation) SetFreClassification(s string) {
	m.fre_classification = &s
}

// FreClassification returns the value of the "fre_classification" field in the mutation.
func (m *AlertMutation) FreClassification() (r string, exists bool) {
	v := m.fre_classification
	if v == nil {
		return
	}
	return *v, true
}

// OldFreClassification returns the old "fre_classification" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldFreClassification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreClassification: %w", err)
	}
	return oldValue.FreClassification, nil
}

// ClearFreClassification clears the value of the "fre_classification" field.
func (m *AlertMutation) ClearFreClassification() {
	m.fre_classification = nil
	m.clearedFields[alert.FieldFreClassification] = struct{}{}
}

// FreClassificationCleared returns if the "fre_classification" field was cleared in this mutation.
func (m *AlertMutation) FreClassificationCleared() bool {
	_, ok := m.clearedFields[alert.FieldFreClassification]
	return ok
}

// ResetFreClassification resets all changes to the "fre_classification" field.
func (m *AlertMutation) ResetFreClassification() {
	m.fre_classification = nil
	delete(m.clearedFields, alert.FieldFreClassification)
}

// SetQuestionNumber sets the "question_number" field.
func (m *AlertMutation) SetQuestionNumber(i int) {
	m.question_number = &i
	m.addquestion_number = nil
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *AlertMutation) QuestionNumber() (r int, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldQuestionNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// AddQuestionNumber adds i to the "question_number" field.
func (m *AlertMutation) AddQuestionNumber(i int) {
	if m.addquestion_number != nil {
		*m.addquestion_number += i
	} else {
		m.addquestion_number = &i
	}
}

// AddedQuestionNumber returns the value that was added to the "question_number" field in this mutation.
func (m *AlertMutation) AddedQuestionNumber() (r int, exists bool) {
	v := m.addquestion_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuestionNumber clears the value of the "question_number" field.
func (m *AlertMutation) ClearQuestionNumber() {
	m.question_number = nil
	m.addquestion_number = nil
	m.clearedFields[alert.FieldQuestionNumber] = struct{}{}
}

// QuestionNumberCleared returns if the "question_number" field was cleared in this mutation.
func (m *AlertMutation) QuestionNumberCleared() bool {
	_, ok := m.clearedFields[alert.FieldQuestionNumber]
	return ok
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *AlertMutation) ResetQuestionNumber() {
	m.question_number = nil
	m.addquestion_number = nil
	delete(m.clearedFields, alert.FieldQuestionNumber)
}

// SetConfirmedAt sets the "confirmed_at" field.
func (m *AlertMutation) SetConfirmedAt(t time.Time) {
	m.confirmed_at = &t
}

// ConfirmedAt returns the value of the "confirmed_at" field in the mutation.
func (m *AlertMutation) ConfirmedAt() (r time.Time, exists bool) {
	v := m.confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedAt returns the old "confirmed_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedAt: %w", err)
	}
	return oldValue.ConfirmedAt, nil
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (m *AlertMutation) ClearConfirmedAt() {
	m.confirmed_at = nil
	m.clearedFields[alert.FieldConfirmedAt] = struct{}{}
}

// ConfirmedAtCleared returns if the "confirmed_at" field was cleared in this mutation.
func (m *AlertMutation) ConfirmedAtCleared() bool {
	_, ok := m.clearedFields[alert.FieldConfirmedAt]
	return ok
}

// ResetConfirmedAt resets all changes to the "confirmed_at" field.
func (m *AlertMutation) ResetConfirmedAt() {
	m.confirmed_at = nil
	delete(m.clearedFields, alert.FieldConfirmedAt)
}

// SetRejectedAt sets the "rejected_at" field.
func (m *AlertMutation) SetRejectedAt(t time.Time) {
	m.rejected_at = &t
}

// RejectedAt returns the value of the "rejected_at" field in the mutation.
func (m *AlertMutation) RejectedAt() (r time.Time, exists bool) {
	v := m.rejected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedAt returns the old "rejected_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldRejectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedAt: %w", err)
	}
	return oldValue.RejectedAt, nil
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (m *AlertMutation) ClearRejectedAt() {
	m.rejected_at = nil
	m.clearedFields[alert.FieldRejectedAt] = struct{}{}
}

// RejectedAtCleared returns if the "rejected_at" field was cleared in this mutation.
func (m *AlertMutation) RejectedAtCleared() bool {
	_, ok := m.clearedFields[alert.FieldRejectedAt]
	return ok
}

// ResetRejectedAt resets all changes to the "rejected_at" field.
func (m *AlertMutation) ResetRejectedAt() {
	m.rejected_at = nil
	delete(m.clearedFields, alert.FieldRejectedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *AlertMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[alert.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *AlertMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AlertMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AlertMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.session != nil {
		fields = append(fields, alert.FieldSessionID)
	}
	if m.alert_type != nil {
		fields = append(fields, alert.FieldAlertType)
	}
	if m.status != nil {
		fields = append(fields, alert.FieldStatus)
	}
	if m.confidence != nil {
		fields = append(fields, alert.FieldConfidence)
	}
	if m.impeachment_risk != nil {
		fields = append(fields, alert.FieldImpeachmentRisk)
	}
	if m.prior_quote != nil {
		fields = append(fields, alert.FieldPriorQuote)
	}
	if m.prior_source_page != nil {
		fields = append(fields, alert.FieldPriorSourcePage)
	}
	if m.prior_source_line != nil {
		fields = append(fields, alert.FieldPriorSourceLine)
	}
	if m.current_quote != nil {
		fields = append(fields, alert.FieldCurrentQuote)
	}
	if m.fre_rule != nil {
		fields = append(fields, alert.FieldFreRule)
	}
	if m.fre_classification != nil {
		fields = append(fields, alert.FieldFreClassification)
	}
	if m.question_number != nil {
		fields = append(fields, alert.FieldQuestionNumber)
	}
	if m.confirmed_at != nil {
		fields = append(fields, alert.FieldConfirmedAt)
	}
	if m.rejected_at != nil {
		fields = append(fields, alert.FieldRejectedAt)
	}
	if m.created_at != nil {
		fields = append(fields, alert.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldSessionID:
		return m.SessionID()
	case alert.FieldAlertType:
		return m.AlertType()
	case alert.FieldStatus:
		return m.Status()
	case alert.FieldConfidence:
		return m.Confidence()
	case alert.FieldImpeachmentRisk:
		return m.ImpeachmentRisk()
	case alert.FieldPriorQuote:
		return m.PriorQuote()
	case alert.FieldPriorSourcePage:
		return m.PriorSourcePage()
	case alert.FieldPriorSourceLine:
		return m.PriorSourceLine()
	case alert.FieldCurrentQuote:
		return m.CurrentQuote()
	case alert.FieldFreRule:
		return m.FreRule()
	case alert.FieldFreClassification:
		return m.FreClassification()
	case alert.FieldQuestionNumber:
		return m.QuestionNumber()
	case alert.FieldConfirmedAt:
		return m.ConfirmedAt()
	case alert.FieldRejectedAt:
		return m.RejectedAt()
	case alert.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldSessionID:
		return m.OldSessionID(ctx)
	case alert.FieldAlertType:
		return m.OldAlertType(ctx)
	case alert.FieldStatus:
		return m.OldStatus(ctx)
	case alert.FieldConfidence:
		return m.OldConfidence(ctx)
	case alert.FieldImpeachmentRisk:
		return m.OldImpeachmentRisk(ctx)
	case alert.FieldPriorQuote:
		return m.OldPriorQuote(ctx)
	case alert.FieldPriorSourcePage:
		return m.OldPriorSourcePage(ctx)
	case alert.FieldPriorSourceLine:
		return m.OldPriorSourceLine(ctx)
	case alert.FieldCurrentQuote:
		return m.OldCurrentQuote(ctx)
	case alert.FieldFreRule:
		return m.OldFreRule(ctx)
	case alert.FieldFreClassification:
		return m.OldFreClassification(ctx)
	case alert.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case alert.FieldConfirmedAt:
		return m.OldConfirmedAt(ctx)
	case alert.FieldRejectedAt:
		return m.OldRejectedAt(ctx)
	case alert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case alert.FieldAlertType:
		v, ok := value.(alert.AlertType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertType(v)
		return nil
	case alert.FieldStatus:
		v, ok := value.(alert.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alert.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case alert.FieldImpeachmentRisk:
		v, ok := value.(alert.ImpeachmentRisk)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpeachmentRisk(v)
		return nil
	case alert.FieldPriorQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorQuote(v)
		return nil
	case alert.FieldPriorSourcePage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorSourcePage(v)
		return nil
	case alert.FieldPriorSourceLine:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorSourceLine(v)
		return nil
	case alert.FieldCurrentQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentQuote(v)
		return nil
	case alert.FieldFreRule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreRule(v)
		return nil
	case alert.FieldFreClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreClassification(v)
		return nil
	case alert.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case alert.FieldConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedAt(v)
		return nil
	case alert.FieldRejectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedAt(v)
		return nil
	case alert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, alert.FieldConfidence)
	}
	if m.addprior_source_page != nil {
		fields = append(fields, alert.FieldPriorSourcePage)
	}
	if m.addprior_source_line != nil {
		fields = append(fields, alert.FieldPriorSourceLine)
	}
	if m.addquestion_number != nil {
		fields = append(fields, alert.FieldQuestionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldConfidence:
		return m.AddedConfidence()
	case alert.FieldPriorSourcePage:
		return m.AddedPriorSourcePage()
	case alert.FieldPriorSourceLine:
		return m.AddedPriorSourceLine()
	case alert.FieldQuestionNumber:
		return m.AddedQuestionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alert.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case alert.FieldPriorSourcePage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorSourcePage(v)
		return nil
	case alert.FieldPriorSourceLine:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorSourceLine(v)
		return nil
	case alert.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldImpeachmentRisk) {
		fields = append(fields, alert.FieldImpeachmentRisk)
	}
	if m.FieldCleared(alert.FieldPriorQuote) {
		fields = append(fields, alert.FieldPriorQuote)
	}
	if m.FieldCleared(alert.FieldPriorSourcePage) {
		fields = append(fields, alert.FieldPriorSourcePage)
	}
	if m.FieldCleared(alert.FieldPriorSourceLine) {
		fields = append(fields, alert.FieldPriorSourceLine)
	}
	if m.FieldCleared(alert.FieldCurrentQuote) {
		fields = append(fields, alert.FieldCurrentQuote)
	}
	if m.FieldCleared(alert.FieldFreRule) {
		fields = append(fields, alert.FieldFreRule)
	}
	if m.FieldCleared(alert.FieldFreClassification) {
		fields = append(fields, alert.FieldFreClassification)
	}
	if m.FieldCleared(alert.FieldQuestionNumber) {
		fields = append(fields, alert.FieldQuestionNumber)
	}
	if m.FieldCleared(alert.FieldConfirmedAt) {
		fields = append(fields, alert.FieldConfirmedAt)
	}
	if m.FieldCleared(alert.FieldRejectedAt) {
		fields = append(fields, alert.FieldRejectedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldImpeachmentRisk:
		m.ClearImpeachmentRisk()
		return nil
	case alert.FieldPriorQuote:
		m.ClearPriorQuote()
		return nil
	case alert.FieldPriorSourcePage:
		m.ClearPriorSourcePage()
		return nil
	case alert.FieldPriorSourceLine:
		m.ClearPriorSourceLine()
		return nil
	case alert.FieldCurrentQuote:
		m.ClearCurrentQuote()
		return nil
	case alert.FieldFreRule:
		m.ClearFreRule()
		return nil
	case alert.FieldFreClassification:
		m.ClearFreClassification()
		return nil
	case alert.FieldQuestionNumber:
		m.ClearQuestionNumber()
		return nil
	case alert.FieldConfirmedAt:
		m.ClearConfirmedAt()
		return nil
	case alert.FieldRejectedAt:
		m.ClearRejectedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldSessionID:
		m.ResetSessionID()
		return nil
	case alert.FieldAlertType:
		m.ResetAlertType()
		return nil
	case alert.FieldStatus:
		m.ResetStatus()
		return nil
	case alert.FieldConfidence:
		m.ResetConfidence()
		return nil
	case alert.FieldImpeachmentRisk:
		m.ResetImpeachmentRisk()
		return nil
	case alert.FieldPriorQuote:
		m.ResetPriorQuote()
		return nil
	case alert.FieldPriorSourcePage:
		m.ResetPriorSourcePage()
		return nil
	case alert.FieldPriorSourceLine:
		m.ResetPriorSourceLine()
		return nil
	case alert.FieldCurrentQuote:
		m.ResetCurrentQuote()
		return nil
	case alert.FieldFreRule:
		m.ResetFreRule()
		return nil
	case alert.FieldFreClassification:
		m.ResetFreClassification()
		return nil
	case alert.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case alert.FieldConfirmedAt:
		m.ResetConfirmedAt()
		return nil
	case alert.FieldRejectedAt:
		m.ResetRejectedAt()
		return nil
	case alert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, alert.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alert.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, alert.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	switch name {
	case alert.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	switch name {
	case alert.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	switch name {
	case alert.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Alert edge %s", name)
}

// BriefMutation represents an operation that mutates the Brief nodes in the graph.
type BriefMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	session_score         *float64
	addsession_score      *float64
	consistency_rate      *float64
	addconsistency_rate   *float64
	weakness_map          *map[string]float64
	narrative_text        *string
	recommendations       *[]string
	appendrecommendations []string
	confirmed_flags       *int
	addconfirmed_flags    *int
	objection_count       *int
	addobjection_count    *int
	composure_alerts      *int
	addcomposure_alerts   *int
	delta_vs_baseline     *float64
	adddelta_vs_baseline  *float64
	share_token           *string
	share_expires_at      *time.Time
	pdf_key               *string
	coach_audio_key       *string
	generated_by          *brief.GeneratedBy
	created_at            *time.Time
	clearedFields         map[string]struct{}
	session               *string
	clearedsession        bool
	done                  bool
	oldValue              func(context.Context) (*Brief, error)
	predicates            []predicate.Brief
}

var _ ent.Mutation = (*BriefMutation)(nil)

// briefOption allows management of the mutation configuration using functional options.
type briefOption func(*BriefMutation)

// newBriefMutation creates new mutation for the Brief entity.
func newBriefMutation(c config, op Op, opts ...briefOption) *BriefMutation {
	m := &BriefMutation{
		config:        c,
		op:            op,
		typ:           TypeBrief,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBriefID sets the ID field of the mutation.
func withBriefID(id string) briefOption {
	return func(m *BriefMutation) {
		var (
			err   error
			once  sync.Once
			value *Brief
		)
		m.oldValue = func(ctx context.Context) (*Brief, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Brief.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBrief sets the old Brief of the mutation.
func withBrief(node *Brief) briefOption {
	return func(m *BriefMutation) {
		m.oldValue = func(context.Context) (*Brief, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BriefMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BriefMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Brief entities.
func (m *BriefMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BriefMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BriefMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Brief.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *BriefMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *BriefMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *BriefMutation) ResetSessionID() {
	m.session = nil
}

// SetSessionScore sets the "session_score" field.
func (m *BriefMutation) SetSessionScore(f float64) {
	m.session_score = &f
	m.addsession_score = nil
}

// SessionScore returns the value of the "session_score" field in the mutation.
func (m *BriefMutation) SessionScore() (r float64, exists bool) {
	v := m.session_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionScore returns the old "session_score" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldSessionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionScore: %w", err)
	}
	return oldValue.SessionScore, nil
}

// AddSessionScore adds f to the "session_score" field.
func (m *BriefMutation) AddSessionScore(f float64) {
	if m.addsession_score != nil {
		*m.addsession_score += f
	} else {
		m.addsession_score = &f
	}
}

// AddedSessionScore returns the value that was added to the "session_score" field in this mutation.
func (m *BriefMutation) AddedSessionScore() (r float64, exists bool) {
	v := m.addsession_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionScore resets all changes to the "session_score" field.
func (m *BriefMutation) ResetSessionScore() {
	m.session_score = nil
	m.addsession_score = nil
}

// SetConsistencyRate sets the "consistency_rate" field.
func (m *BriefMutation) SetConsistencyRate(f float64) {
	m.consistency_rate = &f
	m.addconsistency_rate = nil
}

// ConsistencyRate returns the value of the "consistency_rate" field in the mutation.
func (m *BriefMutation) ConsistencyRate() (r float64, exists bool) {
	v := m.consistency_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldConsistencyRate returns the old "consistency_rate" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldConsistencyRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsistencyRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsistencyRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsistencyRate: %w", err)
	}
	return oldValue.ConsistencyRate, nil
}

// AddConsistencyRate adds f to the "consistency_rate" field.
func (m *BriefMutation) AddConsistencyRate(f float64) {
	if m.addconsistency_rate != nil {
		*m.addconsistency_rate += f
	} else {
		m.addconsistency_rate = &f
	}
}

// AddedConsistencyRate returns the value that was added to the "consistency_rate" field in this mutation.
func (m *BriefMutation) AddedConsistencyRate() (r float64, exists bool) {
	v := m.addconsistency_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsistencyRate resets all changes to the "consistency_rate" field.
func (m *BriefMutation) ResetConsistencyRate() {
	m.consistency_rate = nil
	m.addconsistency_rate = nil
}

// SetWeaknessMap sets the "weakness_map" field.
func (m *BriefMutation) SetWeaknessMap(value map[string]float64) {
	m.weakness_map = &value
}

// WeaknessMap returns the value of the "weakness_map" field in the mutation.
func (m *BriefMutation) WeaknessMap() (r map[string]float64, exists bool) {
	v := m.weakness_map
	if v == nil {
		return
	}
	return *v, true
}

// OldWeaknessMap returns the old "weakness_map" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldWeaknessMap(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeaknessMap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeaknessMap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeaknessMap: %w", err)
	}
	return oldValue.WeaknessMap, nil
}

// ResetWeaknessMap resets all changes to the "weakness_map" field.
func (m *BriefMutation) ResetWeaknessMap() {
	m.weakness_map = nil
}

// SetNarrativeText sets the "narrative_text" field.
func (m *BriefMutation) SetNarrativeText(s string) {
	m.narrative_text = &s
}

// NarrativeText returns the value of the "narrative_text" field in the mutation.
func (m *BriefMutation) NarrativeText() (r string, exists bool) {
	v := m.narrative_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrativeText returns the old "narrative_text" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldNarrativeText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrativeText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrativeText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrativeText: %w", err)
	}
	return oldValue.NarrativeText, nil
}

// ResetNarrativeText resets all changes to the "narrative_text" field.
func (m *BriefMutation) ResetNarrativeText() {
	m.narrative_text = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *BriefMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *BriefMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *BriefMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *BriefMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *BriefMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
}

// SetConfirmedFlags sets the "confirmed_flags" field.
func (m *BriefMutation) SetConfirmedFlags(i int) {
	m.confirmed_flags = &i
	m.addconfirmed_flags = nil
}

// ConfirmedFlags returns the value of the "confirmed_flags" field in the mutation.
func (m *BriefMutation) ConfirmedFlags() (r int, exists bool) {
	v := m.confirmed_flags
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedFlags returns the old "confirmed_flags" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldConfirmedFlags(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedFlags: %w", err)
	}
	return oldValue.ConfirmedFlags, nil
}

// AddConfirmedFlags adds i to the "confirmed_flags" field.
func (m *BriefMutation) AddConfirmedFlags(i int) {
	if m.addconfirmed_flags != nil {
		*m.addconfirmed_flags += i
	} else {
		m.addconfirmed_flags = &i
	}
}

// AddedConfirmedFlags returns the value that was added to the "confirmed_flags" field in this mutation.
func (m *BriefMutation) AddedConfirmedFlags() (r int, exists bool) {
	v := m.addconfirmed_flags
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfirmedFlags resets all changes to the "confirmed_flags" field.
func (m *BriefMutation) ResetConfirmedFlags() {
	m.confirmed_flags = nil
	m.addconfirmed_flags = nil
}

// SetObjectionCount sets the "objection_count" field.
func (m *BriefMutation) SetObjectionCount(i int) {
	m.objection_count = &i
	m.addobjection_count = nil
}

// ObjectionCount returns the value of the "objection_count" field in the mutation.
func (m *BriefMutation) ObjectionCount() (r int, exists bool) {
	v := m.objection_count
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectionCount returns the old "objection_count" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldObjectionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectionCount: %w", err)
	}
	return oldValue.ObjectionCount, nil
}

// AddObjectionCount adds i to the "objection_count" field.
func (m *BriefMutation) AddObjectionCount(i int) {
	if m.addobjection_count != nil {
		*m.addobjection_count += i
	} else {
		m.addobjection_count = &i
	}
}

// AddedObjectionCount returns the value that was added to the "objection_count" field in this mutation.
func (m *BriefMutation) AddedObjectionCount() (r int, exists bool) {
	v := m.addobjection_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetObjectionCount resets all changes to the "objection_count" field.
func (m *BriefMutation) ResetObjectionCount() {
	m.objection_count = nil
	m.addobjection_count = nil
}

// SetComposureAlerts sets the "composure_alerts" field.
func (m *BriefMutation) SetComposureAlerts(i int) {
	m.composure_alerts = &i
	m.addcomposure_alerts = nil
}

// ComposureAlerts returns the value of the "composure_alerts" field in the mutation.
func (m *BriefMutation) ComposureAlerts() (r int, exists bool) {
	v := m.composure_alerts
	if v == nil {
		return
	}
	return *v, true
}

// OldComposureAlerts returns the old "composure_alerts" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldComposureAlerts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComposureAlerts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComposureAlerts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComposureAlerts: %w", err)
	}
	return oldValue.ComposureAlerts, nil
}

// AddComposureAlerts adds i to the "composure_alerts" field.
func (m *BriefMutation) AddComposureAlerts(i int) {
	if m.addcomposure_alerts != nil {
		*m.addcomposure_alerts += i
	} else {
		m.addcomposure_alerts = &i
	}
}

// AddedComposureAlerts returns the value that was added to the "composure_alerts" field in this mutation.
func (m *BriefMutation) AddedComposureAlerts() (r int, exists bool) {
	v := m.addcomposure_alerts
	if v == nil {
		return
	}
	return *v, true
}

// ResetComposureAlerts resets all changes to the "composure_alerts" field.
func (m *BriefMutation) ResetComposureAlerts() {
	m.composure_alerts = nil
	m.addcomposure_alerts = nil
}

// SetDeltaVsBaseline sets the "delta_vs_baseline" field.
func (m *BriefMutation) SetDeltaVsBaseline(f float64) {
	m.delta_vs_baseline = &f
	m.adddelta_vs_baseline = nil
}

// DeltaVsBaseline returns the value of the "delta_vs_baseline" field in the mutation.
func (m *BriefMutation) DeltaVsBaseline() (r float64, exists bool) {
	v := m.delta_vs_baseline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeltaVsBaseline returns the old "delta_vs_baseline" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldDeltaVsBaseline(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeltaVsBaseline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeltaVsBaseline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeltaVsBaseline: %w", err)
	}
	return oldValue.DeltaVsBaseline, nil
}

// AddDeltaVsBaseline adds f to the "delta_vs_baseline" field.
func (m *BriefMutation) AddDeltaVsBaseline(f float64) {
	if m.adddelta_vs_baseline != nil {
		*m.adddelta_vs_baseline += f
	} else {
		m.adddelta_vs_baseline = &f
	}
}

// AddedDeltaVsBaseline returns the value that was added to the "delta_vs_baseline" field in this mutation.
func (m *BriefMutation) AddedDeltaVsBaseline() (r float64, exists bool) {
	v := m.adddelta_vs_baseline
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeltaVsBaseline clears the value of the "delta_vs_baseline" field.
func (m *BriefMutation) ClearDeltaVsBaseline() {
	m.delta_vs_baseline = nil
	m.adddelta_vs_baseline = nil
	m.clearedFields[brief.FieldDeltaVsBaseline] = struct{}{}
}

// DeltaVsBaselineCleared returns if the "delta_vs_baseline" field was cleared in this mutation.
func (m *BriefMutation) DeltaVsBaselineCleared() bool {
	_, ok := m.clearedFields[brief.FieldDeltaVsBaseline]
	return ok
}

// ResetDeltaVsBaseline resets all changes to the "delta_vs_baseline" field.
func (m *BriefMutation) ResetDeltaVsBaseline() {
	m.delta_vs_baseline = nil
	m.adddelta_vs_baseline = nil
	delete(m.clearedFields, brief.FieldDeltaVsBaseline)
}

// SetShareToken sets the "share_token" field.
func (m *BriefMutation) SetShareToken(s string) {
	m.share_token = &s
}

// ShareToken returns the value of the "share_token" field in the mutation.
func (m *BriefMutation) ShareToken() (r string, exists bool) {
	v := m.share_token
	if v == nil {
		return
	}
	return *v, true
}

// OldShareToken returns the old "share_token" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldShareToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShareToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShareToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShareToken: %w", err)
	}
	return oldValue.ShareToken, nil
}

// ClearShareToken clears the value of the "share_token" field.
func (m *BriefMutation) ClearShareToken() {
	m.share_token = nil
	m.clearedFields[brief.FieldShareToken] = struct{}{}
}

// ShareTokenCleared returns if the "share_token" field was cleared in this mutation.
func (m *BriefMutation) ShareTokenCleared() bool {
	_, ok := m.clearedFields[brief.FieldShareToken]
	return ok
}

// ResetShareToken resets all changes to the "share_token" field.
func (m *BriefMutation) ResetShareToken() {
	m.share_token = nil
	delete(m.clearedFields, brief.FieldShareToken)
}

// SetShareExpiresAt sets the "share_expires_at" field.
func (m *BriefMutation) SetShareExpiresAt(t time.Time) {
	m.share_expires_at = &t
}

// ShareExpiresAt returns the value of the "share_expires_at" field in the mutation.
func (m *BriefMutation) ShareExpiresAt() (r time.Time, exists bool) {
	v := m.share_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldShareExpiresAt returns the old "share_expires_at" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldShareExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShareExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShareExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShareExpiresAt: %w", err)
	}
	return oldValue.ShareExpiresAt, nil
}

// ClearShareExpiresAt clears the value of the "share_expires_at" field.
func (m *BriefMutation) ClearShareExpiresAt() {
	m.share_expires_at = nil
	m.clearedFields[brief.FieldShareExpiresAt] = struct{}{}
}

// ShareExpiresAtCleared returns if the "share_expires_at" field was cleared in this mutation.
func (m *BriefMutation) ShareExpiresAtCleared() bool {
	_, ok := m.clearedFields[brief.FieldShareExpiresAt]
	return ok
}

// ResetShareExpiresAt resets all changes to the "share_expires_at" field.
func (m *BriefMutation) ResetShareExpiresAt() {
	m.share_expires_at = nil
	delete(m.clearedFields, brief.FieldShareExpiresAt)
}

// SetPdfKey sets the "pdf_key" field.
func (m *BriefMutation) SetPdfKey(s string) {
	m.pdf_key = &s
}

// PdfKey returns the value of the "pdf_key" field in the mutation.
func (m *BriefMutation) PdfKey() (r string, exists bool) {
	v := m.pdf_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfKey returns the old "pdf_key" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldPdfKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfKey: %w", err)
	}
	return oldValue.PdfKey, nil
}

// ClearPdfKey clears the value of the "pdf_key" field.
func (m *BriefMutation) ClearPdfKey() {
	m.pdf_key = nil
	m.clearedFields[brief.FieldPdfKey] = struct{}{}
}

// PdfKeyCleared returns if the "pdf_key" field was cleared in this mutation.
func (m *BriefMutation) PdfKeyCleared() bool {
	_, ok := m.clearedFields[brief.FieldPdfKey]
	return ok
}

// ResetPdfKey resets all changes to the "pdf_key" field.
func (m *BriefMutation) ResetPdfKey() {
	m.pdf_key = nil
	delete(m.clearedFields, brief.FieldPdfKey)
}

// SetCoachAudioKey sets the "coach_audio_key" field.
func (m *BriefMutation) SetCoachAudioKey(s string) {
	m.coach_audio_key = &s
}

// CoachAudioKey returns the value of the "coach_audio_key" field in the mutation.
func (m *BriefMutation) CoachAudioKey() (r string, exists bool) {
	v := m.coach_audio_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCoachAudioKey returns the old "coach_audio_key" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldCoachAudioKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoachAudioKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoachAudioKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoachAudioKey: %w", err)
	}
	return oldValue.CoachAudioKey, nil
}

// ClearCoachAudioKey clears the value of the "coach_audio_key" field.
func (m *BriefMutation) ClearCoachAudioKey() {
	m.coach_audio_key = nil
	m.clearedFields[brief.FieldCoachAudioKey] = struct{}{}
}

// CoachAudioKeyCleared returns if the "coach_audio_key" field was cleared in this mutation.
func (m *BriefMutation) CoachAudioKeyCleared() bool {
	_, ok := m.clearedFields[brief.FieldCoachAudioKey]
	return ok
}

// ResetCoachAudioKey resets all changes to the "coach_audio_key" field.
func (m *BriefMutation) ResetCoachAudioKey() {
	m.coach_audio_key = nil
	delete(m.clearedFields, brief.FieldCoachAudioKey)
}

// SetGeneratedBy sets the "generated_by" field.
func (m *BriefMutation) SetGeneratedBy(bb brief.GeneratedBy) {
	m.generated_by = &bb
}

// GeneratedBy returns the value of the "generated_by" field in the mutation.
func (m *BriefMutation) GeneratedBy() (r brief.GeneratedBy, exists bool) {
	v := m.generated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedBy returns the old "generated_by" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldGeneratedBy(ctx context.Context) (v brief.GeneratedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedBy: %w", err)
	}
	return oldValue.GeneratedBy, nil
}

// ResetGeneratedBy resets all changes to the "generated_by" field.
func (m *BriefMutation) ResetGeneratedBy() {
	m.generated_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BriefMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BriefMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Brief entity.
// If the Brief object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BriefMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BriefMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *BriefMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[brief.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *BriefMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *BriefMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *BriefMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the BriefMutation builder.
func (m *BriefMutation) Where(ps ...predicate.Brief) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BriefMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BriefMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Brief, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BriefMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BriefMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Brief).
func (m *BriefMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BriefMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.session != nil {
		fields = append(fields, brief.FieldSessionID)
	}
	if m.session_score != nil {
		fields = append(fields, brief.FieldSessionScore)
	}
	if m.consistency_rate != nil {
		fields = append(fields, brief.FieldConsistencyRate)
	}
	if m.weakness_map != nil {
		fields = append(fields, brief.FieldWeaknessMap)
	}
	if m.narrative_text != nil {
		fields = append(fields, brief.FieldNarrativeText)
	}
	if m.recommendations != nil {
		fields = append(fields, brief.FieldRecommendations)
	}
	if m.confirmed_flags != nil {
		fields = append(fields, brief.FieldConfirmedFlags)
	}
	if m.objection_count != nil {
		fields = append(fields, brief.FieldObjectionCount)
	}
	if m.composure_alerts != nil {
		fields = append(fields, brief.FieldComposureAlerts)
	}
	if m.delta_vs_baseline != nil {
		fields = append(fields, brief.FieldDeltaVsBaseline)
	}
	if m.share_token != nil {
		fields = append(fields, brief.FieldShareToken)
	}
	if m.share_expires_at != nil {
		fields = append(fields, brief.FieldShareExpiresAt)
	}
	if m.pdf_key != nil {
		fields = append(fields, brief.FieldPdfKey)
	}
	if m.coach_audio_key != nil {
		fields = append(fields, brief.FieldCoachAudioKey)
	}
	if m.generated_by != nil {
		fields = append(fields, brief.FieldGeneratedBy)
	}
	if m.created_at != nil {
		fields = append(fields, brief.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BriefMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case brief.FieldSessionID:
		return m.SessionID()
	case brief.FieldSessionScore:
		return m.SessionScore()
	case brief.FieldConsistencyRate:
		return m.ConsistencyRate()
	case brief.FieldWeaknessMap:
		return m.WeaknessMap()
	case brief.FieldNarrativeText:
		return m.NarrativeText()
	case brief.FieldRecommendations:
		return m.Recommendations()
	case brief.FieldConfirmedFlags:
		return m.ConfirmedFlags()
	case brief.FieldObjectionCount:
		return m.ObjectionCount()
	case brief.FieldComposureAlerts:
		return m.ComposureAlerts()
	case brief.FieldDeltaVsBaseline:
		return m.DeltaVsBaseline()
	case brief.FieldShareToken:
		return m.ShareToken()
	case brief.FieldShareExpiresAt:
		return m.ShareExpiresAt()
	case brief.FieldPdfKey:
		return m.PdfKey()
	case brief.FieldCoachAudioKey:
		return m.CoachAudioKey()
	case brief.FieldGeneratedBy:
		return m.GeneratedBy()
	case brief.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BriefMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case brief.FieldSessionID:
		return m.OldSessionID(ctx)
	case brief.FieldSessionScore:
		return m.OldSessionScore(ctx)
	case brief.FieldConsistencyRate:
		return m.OldConsistencyRate(ctx)
	case brief.FieldWeaknessMap:
		return m.OldWeaknessMap(ctx)
	case brief.FieldNarrativeText:
		return m.OldNarrativeText(ctx)
	case brief.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case brief.FieldConfirmedFlags:
		return m.OldConfirmedFlags(ctx)
	case brief.FieldObjectionCount:
		return m.OldObjectionCount(ctx)
	case brief.FieldComposureAlerts:
		return m.OldComposureAlerts(ctx)
	case brief.FieldDeltaVsBaseline:
		return m.OldDeltaVsBaseline(ctx)
	case brief.FieldShareToken:
		return m.OldShareToken(ctx)
	case brief.FieldShareExpiresAt:
		return m.OldShareExpiresAt(ctx)
	case brief.FieldPdfKey:
		return m.OldPdfKey(ctx)
	case brief.FieldCoachAudioKey:
		return m.OldCoachAudioKey(ctx)
	case brief.FieldGeneratedBy:
		return m.OldGeneratedBy(ctx)
	case brief.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Brief field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BriefMutation) SetField(name string, value ent.Value) error {
	switch name {
	case brief.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case brief.FieldSessionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionScore(v)
		return nil
	case brief.FieldConsistencyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsistencyRate(v)
		return nil
	case brief.FieldWeaknessMap:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeaknessMap(v)
		return nil
	case brief.FieldNarrativeText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrativeText(v)
		return nil
	case brief.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case brief.FieldConfirmedFlags:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedFlags(v)
		return nil
	case brief.FieldObjectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectionCount(v)
		return nil
	case brief.FieldComposureAlerts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComposureAlerts(v)
		return nil
	case brief.FieldDeltaVsBaseline:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeltaVsBaseline(v)
		return nil
	case brief.FieldShareToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShareToken(v)
		return nil
	case brief.FieldShareExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShareExpiresAt(v)
		return nil
	case brief.FieldPdfKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfKey(v)
		return nil
	case brief.FieldCoachAudioKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoachAudioKey(v)
		return nil
	case brief.FieldGeneratedBy:
		v, ok := value.(brief.GeneratedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedBy(v)
		return nil
	case brief.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Brief field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BriefMutation) AddedFields() []string {
	var fields []string
	if m.addsession_score != nil {
		fields = append(fields, brief.FieldSessionScore)
	}
	if m.addconsistency_rate != nil {
		fields = append(fields, brief.FieldConsistencyRate)
	}
	if m.addconfirmed_flags != nil {
		fields = append(fields, brief.FieldConfirmedFlags)
	}
	if m.addobjection_count != nil {
		fields = append(fields, brief.FieldObjectionCount)
	}
	if m.addcomposure_alerts != nil {
		fields = append(fields, brief.FieldComposureAlerts)
	}
	if m.adddelta_vs_baseline != nil {
		fields = append(fields, brief.FieldDeltaVsBaseline)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BriefMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case brief.FieldSessionScore:
		return m.AddedSessionScore()
	case brief.FieldConsistencyRate:
		return m.AddedConsistencyRate()
	case brief.FieldConfirmedFlags:
		return m.AddedConfirmedFlags()
	case brief.FieldObjectionCount:
		return m.AddedObjectionCount()
	case brief.FieldComposureAlerts:
		return m.AddedComposureAlerts()
	case brief.FieldDeltaVsBaseline:
		return m.AddedDeltaVsBaseline()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BriefMutation) AddField(name string, value ent.Value) error {
	switch name {
	case brief.FieldSessionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionScore(v)
		return nil
	case brief.FieldConsistencyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsistencyRate(v)
		return nil
	case brief.FieldConfirmedFlags:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfirmedFlags(v)
		return nil
	case brief.FieldObjectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObjectionCount(v)
		return nil
	case brief.FieldComposureAlerts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComposureAlerts(v)
		return nil
	case brief.FieldDeltaVsBaseline:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeltaVsBaseline(v)
		return nil
	}
	return fmt.Errorf("unknown Brief numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BriefMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(brief.FieldDeltaVsBaseline) {
		fields = append(fields, brief.FieldDeltaVsBaseline)
	}
	if m.FieldCleared(brief.FieldShareToken) {
		fields = append(fields, brief.FieldShareToken)
	}
	if m.FieldCleared(brief.FieldShareExpiresAt) {
		fields = append(fields, brief.FieldShareExpiresAt)
	}
	if m.FieldCleared(brief.FieldPdfKey) {
		fields = append(fields, brief.FieldPdfKey)
	}
	if m.FieldCleared(brief.FieldCoachAudioKey) {
		fields = append(fields, brief.FieldCoachAudioKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BriefMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BriefMutation) ClearField(name string) error {
	switch name {
	case brief.FieldDeltaVsBaseline:
		m.ClearDeltaVsBaseline()
		return nil
	case brief.FieldShareToken:
		m.ClearShareToken()
		return nil
	case brief.FieldShareExpiresAt:
		m.ClearShareExpiresAt()
		return nil
	case brief.FieldPdfKey:
		m.ClearPdfKey()
		return nil
	case brief.FieldCoachAudioKey:
		m.ClearCoachAudioKey()
		return nil
	}
	return fmt.Errorf("unknown Brief nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BriefMutation) ResetField(name string) error {
	switch name {
	case brief.FieldSessionID:
		m.ResetSessionID()
		return nil
	case brief.FieldSessionScore:
		m.ResetSessionScore()
		return nil
	case brief.FieldConsistencyRate:
		m.ResetConsistencyRate()
		return nil
	case brief.FieldWeaknessMap:
		m.ResetWeaknessMap()
		return nil
	case brief.FieldNarrativeText:
		m.ResetNarrativeText()
		return nil
	case brief.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case brief.FieldConfirmedFlags:
		m.ResetConfirmedFlags()
		return nil
	case brief.FieldObjectionCount:
		m.ResetObjectionCount()
		return nil
	case brief.FieldComposureAlerts:
		m.ResetComposureAlerts()
		return nil
	case brief.FieldDeltaVsBaseline:
		m.ResetDeltaVsBaseline()
		return nil
	case brief.FieldShareToken:
		m.ResetShareToken()
		return nil
	case brief.FieldShareExpiresAt:
		m.ResetShareExpiresAt()
		return nil
	case brief.FieldPdfKey:
		m.ResetPdfKey()
		return nil
	case brief.FieldCoachAudioKey:
		m.ResetCoachAudioKey()
		return nil
	case brief.FieldGeneratedBy:
		m.ResetGeneratedBy()
		return nil
	case brief.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Brief field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BriefMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, brief.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BriefMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case brief.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BriefMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BriefMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BriefMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, brief.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BriefMutation) EdgeCleared(name string) bool {
	switch name {
	case brief.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BriefMutation) ClearEdge(name string) error {
	switch name {
	case brief.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Brief unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BriefMutation) ResetEdge(name string) error {
	switch name {
	case brief.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Brief edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	file_name              *string
	mime_type              *string
	storage_key            *string
	doc_type               *string
	file_hash              *string
	page_count             *int
	addpage_count          *int
	ingestion_status       *document.IngestionStatus
	ingestion_error        *string
	extracted_facts        *map[string]interface{}
	ingestion_started_at   *time.Time
	ingestion_completed_at *time.Time
	created_at             *time.Time
	clearedFields          map[string]struct{}
	legal_case             *string
	clearedlegal_case      bool
	done                   bool
	oldValue               func(context.Context) (*Document, error)
	predicates             []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *DocumentMutation) SetCaseID(s string) {
	m.legal_case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *DocumentMutation) CaseID() (r string, exists bool) {
	v := m.legal_case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *DocumentMutation) ResetCaseID() {
	m.legal_case = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetMimeType sets the "mime_type" field.
func (m *DocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *DocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *DocumentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *DocumentMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *DocumentMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *DocumentMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetDocType sets the "doc_type" field.
func (m *DocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *DocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *DocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetFileHash sets the "file_hash" field.
func (m *DocumentMutation) SetFileHash(s string) {
	m.file_hash = &s
}

// FileHash returns the value of the "file_hash" field in the mutation.
func (m *DocumentMutation) FileHash() (r string, exists bool) {
	v := m.file_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHash returns the old "file_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHash: %w", err)
	}
	return oldValue.FileHash, nil
}

// ClearFileHash clears the value of the "file_hash" field.
func (m *DocumentMutation) ClearFileHash() {
	m.file_hash = nil
	m.clearedFields[document.FieldFileHash] = struct{}{}
}

// FileHashCleared returns if the "file_hash" field was cleared in this mutation.
func (m *DocumentMutation) FileHashCleared() bool {
	_, ok := m.clearedFields[document.FieldFileHash]
	return ok
}

// ResetFileHash resets all changes to the "file_hash" field.
func (m *DocumentMutation) ResetFileHash() {
	m.file_hash = nil
	delete(m.clearedFields, document.FieldFileHash)
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageCount clears the value of the "page_count" field.
func (m *DocumentMutation) ClearPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	m.clearedFields[document.FieldPageCount] = struct{}{}
}

// PageCountCleared returns if the "page_count" field was cleared in this mutation.
func (m *DocumentMutation) PageCountCleared() bool {
	_, ok := m.clearedFields[document.FieldPageCount]
	return ok
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	delete(m.clearedFields, document.FieldPageCount)
}

// SetIngestionStatus sets the "ingestion_status" field.
func (m *DocumentMutation) SetIngestionStatus(ds document.IngestionStatus) {
	m.ingestion_status = &ds
}

// IngestionStatus returns the value of the "ingestion_status" field in the mutation.
func (m *DocumentMutation) IngestionStatus() (r document.IngestionStatus, exists bool) {
	v := m.ingestion_status
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionStatus returns the old "ingestion_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIngestionStatus(ctx context.Context) (v document.IngestionStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionStatus: %w", err)
	}
	return oldValue.IngestionStatus, nil
}

// ResetIngestionStatus resets all changes to the "ingestion_status" field.
func (m *DocumentMutation) ResetIngestionStatus() {
	m.ingestion_status = nil
}

// SetIngestionError sets the "ingestion_error" field.
func (m *DocumentMutation) SetIngestionError(s string) {
	m.ingestion_error = &s
}

// IngestionError returns the value of the "ingestion_error" field in the mutation.
func (m *DocumentMutation) IngestionError() (r string, exists bool) {
	v := m.ingestion_error
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionError returns the old "ingestion_error" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIngestionError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionError: %w", err)
	}
	return oldValue.IngestionError, nil
}

// ClearIngestionError clears the value of the "ingestion_error" field.
func (m *DocumentMutation) ClearIngestionError() {
	m.ingestion_error = nil
	m.clearedFields[document.FieldIngestionError] = struct{}{}
}

// IngestionErrorCleared returns if the "ingestion_error" field was cleared in this mutation.
func (m *DocumentMutation) IngestionErrorCleared() bool {
	_, ok := m.clearedFields[document.FieldIngestionError]
	return ok
}

// ResetIngestionError resets all changes to the "ingestion_error" field.
func (m *DocumentMutation) ResetIngestionError() {
	m.ingestion_error = nil
	delete(m.clearedFields, document.FieldIngestionError)
}

// SetExtractedFacts sets the "extracted_facts" field.
func (m *DocumentMutation) SetExtractedFacts(value map[string]interface{}) {
	m.extracted_facts = &value
}

// ExtractedFacts returns the value of the "extracted_facts" field in the mutation.
func (m *DocumentMutation) ExtractedFacts() (r map[string]interface{}, exists bool) {
	v := m.extracted_facts
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFacts returns the old "extracted_facts" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedFacts(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFacts: %w", err)
	}
	return oldValue.ExtractedFacts, nil
}

// ClearExtractedFacts clears the value of the "extracted_facts" field.
func (m *DocumentMutation) ClearExtractedFacts() {
	m.extracted_facts = nil
	m.clearedFields[document.FieldExtractedFacts] = struct{}{}
}

// ExtractedFactsCleared returns if the "extracted_facts" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedFactsCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedFacts]
	return ok
}

// ResetExtractedFacts resets all changes to the "extracted_facts" field.
func (m *DocumentMutation) ResetExtractedFacts() {
	m.extracted_facts = nil
	delete(m.clearedFields, document.FieldExtractedFacts)
}

// SetIngestionStartedAt sets the "ingestion_started_at" field.
func (m *DocumentMutation) SetIngestionStartedAt(t time.Time) {
	m.ingestion_started_at = &t
}

// IngestionStartedAt returns the value of the "ingestion_started_at" field in the mutation.
func (m *DocumentMutation) IngestionStartedAt() (r time.Time, exists bool) {
	v := m.ingestion_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionStartedAt returns the old "ingestion_started_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIngestionStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionStartedAt: %w", err)
	}
	return oldValue.IngestionStartedAt, nil
}

// ClearIngestionStartedAt clears the value of the "ingestion_started_at" field.
func (m *DocumentMutation) ClearIngestionStartedAt() {
	m.ingestion_started_at = nil
	m.clearedFields[document.FieldIngestionStartedAt] = struct{}{}
}

// IngestionStartedAtCleared returns if the "ingestion_started_at" field was cleared in this mutation.
func (m *DocumentMutation) IngestionStartedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldIngestionStartedAt]
	return ok
}

// ResetIngestionStartedAt resets all changes to the "ingestion_started_at" field.
func (m *DocumentMutation) ResetIngestionStartedAt() {
	m.ingestion_started_at = nil
	delete(m.clearedFields, document.FieldIngestionStartedAt)
}

// SetIngestionCompletedAt sets the "ingestion_completed_at" field.
func (m *DocumentMutation) SetIngestionCompletedAt(t time.Time) {
	m.ingestion_completed_at = &t
}

// IngestionCompletedAt returns the value of the "ingestion_completed_at" field in the mutation.
func (m *DocumentMutation) IngestionCompletedAt() (r time.Time, exists bool) {
	v := m.ingestion_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestionCompletedAt returns the old "ingestion_completed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIngestionCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestionCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestionCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestionCompletedAt: %w", err)
	}
	return oldValue.IngestionCompletedAt, nil
}

// ClearIngestionCompletedAt clears the value of the "ingestion_completed_at" field.
func (m *DocumentMutation) ClearIngestionCompletedAt() {
	m.ingestion_completed_at = nil
	m.clearedFields[document.FieldIngestionCompletedAt] = struct{}{}
}

// IngestionCompletedAtCleared returns if the "ingestion_completed_at" field was cleared in this mutation.
func (m *DocumentMutation) IngestionCompletedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldIngestionCompletedAt]
	return ok
}

// ResetIngestionCompletedAt resets all changes to the "ingestion_completed_at" field.
func (m *DocumentMutation) ResetIngestionCompletedAt() {
	m.ingestion_completed_at = nil
	delete(m.clearedFields, document.FieldIngestionCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLegalCaseID sets the "legal_case" edge to the LegalCase entity by id.
func (m *DocumentMutation) SetLegalCaseID(id string) {
	m.legal_case = &id
}

// ClearLegalCase clears the "legal_case" edge to the LegalCase entity.
func (m *DocumentMutation) ClearLegalCase() {
	m.clearedlegal_case = true
	m.clearedFields[document.FieldCaseID] = struct{}{}
}

// LegalCaseCleared reports if the "legal_case" edge to the LegalCase entity was cleared.
func (m *DocumentMutation) LegalCaseCleared() bool {
	return m.clearedlegal_case
}

// LegalCaseID returns the "legal_case" edge ID in the mutation.
func (m *DocumentMutation) LegalCaseID() (id string, exists bool) {
	if m.legal_case != nil {
		return *m.legal_case, true
	}
	return
}

// LegalCaseIDs returns the "legal_case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LegalCaseID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) LegalCaseIDs() (ids []string) {
	if id := m.legal_case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLegalCase resets all changes to the "legal_case" edge.
func (m *DocumentMutation) ResetLegalCase() {
	m.legal_case = nil
	m.clearedlegal_case = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.legal_case != nil {
		fields = append(fields, document.FieldCaseID)
	}
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.mime_type != nil {
		fields = append(fields, document.FieldMimeType)
	}
	if m.storage_key != nil {
		fields = append(fields, document.FieldStorageKey)
	}
	if m.doc_type != nil {
		fields = append(fields, document.FieldDocType)
	}
	if m.file_hash != nil {
		fields = append(fields, document.FieldFileHash)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.ingestion_status != nil {
		fields = append(fields, document.FieldIngestionStatus)
	}
	if m.ingestion_error != nil {
		fields = append(fields, document.FieldIngestionError)
	}
	if m.extracted_facts != nil {
		fields = append(fields, document.FieldExtractedFacts)
	}
	if m.ingestion_started_at != nil {
		fields = append(fields, document.FieldIngestionStartedAt)
	}
	if m.ingestion_completed_at != nil {
		fields = append(fields, document.FieldIngestionCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldCaseID:
		return m.CaseID()
	case document.FieldFileName:
		return m.FileName()
	case document.FieldMimeType:
		return m.MimeType()
	case document.FieldStorageKey:
		return m.StorageKey()
	case document.FieldDocType:
		return m.DocType()
	case document.FieldFileHash:
		return m.FileHash()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldIngestionStatus:
		return m.IngestionStatus()
	case document.FieldIngestionError:
		return m.IngestionError()
	case document.FieldExtractedFacts:
		return m.ExtractedFacts()
	case document.FieldIngestionStartedAt:
		return m.IngestionStartedAt()
	case document.FieldIngestionCompletedAt:
		return m.IngestionCompletedAt()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldCaseID:
		return m.OldCaseID(ctx)
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldMimeType:
		return m.OldMimeType(ctx)
	case document.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case document.FieldDocType:
		return m.OldDocType(ctx)
	case document.FieldFileHash:
		return m.OldFileHash(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldIngestionStatus:
		return m.OldIngestionStatus(ctx)
	case document.FieldIngestionError:
		return m.OldIngestionError(ctx)
	case document.FieldExtractedFacts:
		return m.OldExtractedFacts(ctx)
	case document.FieldIngestionStartedAt:
		return m.OldIngestionStartedAt(ctx)
	case document.FieldIngestionCompletedAt:
		return m.OldIngestionCompletedAt(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case document.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case document.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case document.FieldFileHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHash(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldIngestionStatus:
		v, ok := value.(document.IngestionStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionStatus(v)
		return nil
	case document.FieldIngestionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionError(v)
		return nil
	case document.FieldExtractedFacts:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFacts(v)
		return nil
	case document.FieldIngestionStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionStartedAt(v)
		return nil
	case document.FieldIngestionCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestionCompletedAt(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldFileHash) {
		fields = append(fields, document.FieldFileHash)
	}
	if m.FieldCleared(document.FieldPageCount) {
		fields = append(fields, document.FieldPageCount)
	}
	if m.FieldCleared(document.FieldIngestionError) {
		fields = append(fields, document.FieldIngestionError)
	}
	if m.FieldCleared(document.FieldExtractedFacts) {
		fields = append(fields, document.FieldExtractedFacts)
	}
	if m.FieldCleared(document.FieldIngestionStartedAt) {
		fields = append(fields, document.FieldIngestionStartedAt)
	}
	if m.FieldCleared(document.FieldIngestionCompletedAt) {
		fields = append(fields, document.FieldIngestionCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldFileHash:
		m.ClearFileHash()
		return nil
	case document.FieldPageCount:
		m.ClearPageCount()
		return nil
	case document.FieldIngestionError:
		m.ClearIngestionError()
		return nil
	case document.FieldExtractedFacts:
		m.ClearExtractedFacts()
		return nil
	case document.FieldIngestionStartedAt:
		m.ClearIngestionStartedAt()
		return nil
	case document.FieldIngestionCompletedAt:
		m.ClearIngestionCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldCaseID:
		m.ResetCaseID()
		return nil
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldMimeType:
		m.ResetMimeType()
		return nil
	case document.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case document.FieldDocType:
		m.ResetDocType()
		return nil
	case document.FieldFileHash:
		m.ResetFileHash()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldIngestionStatus:
		m.ResetIngestionStatus()
		return nil
	case document.FieldIngestionError:
		m.ResetIngestionError()
		return nil
	case document.FieldExtractedFacts:
		m.ResetExtractedFacts()
		return nil
	case document.FieldIngestionStartedAt:
		m.ResetIngestionStartedAt()
		return nil
	case document.FieldIngestionCompletedAt:
		m.ResetIngestionCompletedAt()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.legal_case != nil {
		edges = append(edges, document.EdgeLegalCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeLegalCase:
		if id := m.legal_case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlegal_case {
		edges = append(edges, document.EdgeLegalCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeLegalCase:
		return m.clearedlegal_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeLegalCase:
		m.ClearLegalCase()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeLegalCase:
		m.ResetLegalCase()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// FirmMutation represents an operation that mutates the Firm nodes in the graph.
type FirmMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	retention_days    *int
	addretention_days *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	users             map[string]struct{}
	removedusers      map[string]struct{}
	clearedusers      bool
	cases             map[string]struct{}
	removedcases      map[string]struct{}
	clearedcases      bool
	done              bool
	oldValue          func(context.Context) (*Firm, error)
	predicates        []predicate.Firm
}

var _ ent.Mutation = (*FirmMutation)(nil)

// firmOption allows management of the mutation configuration using functional options.
type firmOption func(*FirmMutation)

// newFirmMutation creates new mutation for the Firm entity.
func newFirmMutation(c config, op Op, opts ...firmOption) *FirmMutation {
	m := &FirmMutation{
		config:        c,
		op:            op,
		typ:           TypeFirm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFirmID sets the ID field of the mutation.
func withFirmID(id string) firmOption {
	return func(m *FirmMutation) {
		var (
			err   error
			once  sync.Once
			value *Firm
		)
		m.oldValue = func(ctx context.Context) (*Firm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Firm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFirm sets the old Firm of the mutation.
func withFirm(node *Firm) firmOption {
	return func(m *FirmMutation) {
		m.oldValue = func(context.Context) (*Firm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FirmMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FirmMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Firm entities.
func (m *FirmMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FirmMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FirmMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Firm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FirmMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FirmMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Firm entity.
// If the Firm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FirmMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FirmMutation) ResetName() {
	m.name = nil
}

// SetRetentionDays sets the "retention_days" field.
func (m *FirmMutation) SetRetentionDays(i int) {
	m.retention_days = &i
	m.addretention_days = nil
}

// RetentionDays returns the value of the "retention_days" field in the mutation.
func (m *FirmMutation) RetentionDays() (r int, exists bool) {
	v := m.retention_days
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionDays returns the old "retention_days" field's value of the Firm entity.
// If the Firm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FirmMutation) OldRetentionDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionDays: %w", err)
	}
	return oldValue.RetentionDays, nil
}

// AddRetentionDays adds i to the "retention_days" field.
func (m *FirmMutation) AddRetentionDays(i int) {
	if m.addretention_days != nil {
		*m.addretention_days += i
	} else {
		m.addretention_days = &i
	}
}

// AddedRetentionDays returns the value that was added to the "retention_days" field in this mutation.
func (m *FirmMutation) AddedRetentionDays() (r int, exists bool) {
	v := m.addretention_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetentionDays resets all changes to the "retention_days" field.
func (m *FirmMutation) ResetRetentionDays() {
	m.retention_days = nil
	m.addretention_days = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FirmMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FirmMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Firm entity.
// If the Firm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FirmMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FirmMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *FirmMutation) AddUserIDs(ids ...string) {
	if m.users == nil {
		m.users = make(map[string]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *FirmMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *FirmMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *FirmMutation) RemoveUserIDs(ids ...string) {
	if m.removedusers == nil {
		m.removedusers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *FirmMutation) RemovedUsersIDs() (ids []string) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *FirmMutation) UsersIDs() (ids []string) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *FirmMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddCaseIDs adds the "cases" edge to the LegalCase entity by ids.
func (m *FirmMutation) AddCaseIDs(ids ...string) {
	if m.cases == nil {
		m.cases = make(map[string]struct{})
	}
	for i := range ids {
		m.cases[ids[i]] = struct{}{}
	}
}

// ClearCases clears the "cases" edge to the LegalCase entity.
func (m *FirmMutation) ClearCases() {
	m.clearedcases = true
}

// CasesCleared reports if the "cases" edge to the LegalCase entity was cleared.
func (m *FirmMutation) CasesCleared() bool {
	return m.clearedcases
}

// RemoveCaseIDs removes the "cases" edge to the LegalCase entity by IDs.
func (m *FirmMutation) RemoveCaseIDs(ids ...string) {
	if m.removedcases == nil {
		m.removedcases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cases, ids[i])
		m.removedcases[ids[i]] = struct{}{}
	}
}

// RemovedCases returns the removed IDs of the "cases" edge to the LegalCase entity.
func (m *FirmMutation) RemovedCasesIDs() (ids []string) {
	for id := range m.removedcases {
		ids = append(ids, id)
	}
	return
}

// CasesIDs returns the "cases" edge IDs in the mutation.
func (m *FirmMutation) CasesIDs() (ids []string) {
	for id := range m.cases {
		ids = append(ids, id)
	}
	return
}

// ResetCases resets all changes to the "cases" edge.
func (m *FirmMutation) ResetCases() {
	m.cases = nil
	m.clearedcases = false
	m.removedcases = nil
}

// Where appends a list predicates to the FirmMutation builder.
func (m *FirmMutation) Where(ps ...predicate.Firm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FirmMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FirmMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Firm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FirmMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FirmMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Firm).
func (m *FirmMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FirmMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, firm.FieldName)
	}
	if m.retention_days != nil {
		fields = append(fields, firm.FieldRetentionDays)
	}
	if m.created_at != nil {
		fields = append(fields, firm.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FirmMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case firm.FieldName:
		return m.Name()
	case firm.FieldRetentionDays:
		return m.RetentionDays()
	case firm.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FirmMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case firm.FieldName:
		return m.OldName(ctx)
	case firm.FieldRetentionDays:
		return m.OldRetentionDays(ctx)
	case firm.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Firm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FirmMutation) SetField(name string, value ent.Value) error {
	switch name {
	case firm.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case firm.FieldRetentionDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionDays(v)
		return nil
	case firm.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Firm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FirmMutation) AddedFields() []string {
	var fields []string
	if m.addretention_days != nil {
		fields = append(fields, firm.FieldRetentionDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FirmMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case firm.FieldRetentionDays:
		return m.AddedRetentionDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FirmMutation) AddField(name string, value ent.Value) error {
	switch name {
	case firm.FieldRetentionDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetentionDays(v)
		return nil
	}
	return fmt.Errorf("unknown Firm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FirmMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FirmMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FirmMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Firm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FirmMutation) ResetField(name string) error {
	switch name {
	case firm.FieldName:
		m.ResetName()
		return nil
	case firm.FieldRetentionDays:
		m.ResetRetentionDays()
		return nil
	case firm.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Firm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FirmMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.users != nil {
		edges = append(edges, firm.EdgeUsers)
	}
	if m.cases != nil {
		edges = append(edges, firm.EdgeCases)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FirmMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case firm.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case firm.EdgeCases:
		ids := make([]ent.Value, 0, len(m.cases))
		for id := range m.cases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FirmMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedusers != nil {
		edges = append(edges, firm.EdgeUsers)
	}
	if m.removedcases != nil {
		edges = append(edges, firm.EdgeCases)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FirmMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case firm.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case firm.EdgeCases:
		ids := make([]ent.Value, 0, len(m.removedcases))
		for id := range m.removedcases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FirmMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedusers {
		edges = append(edges, firm.EdgeUsers)
	}
	if m.clearedcases {
		edges = append(edges, firm.EdgeCases)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FirmMutation) EdgeCleared(name string) bool {
	switch name {
	case firm.EdgeUsers:
		return m.clearedusers
	case firm.EdgeCases:
		return m.clearedcases
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FirmMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Firm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FirmMutation) ResetEdge(name string) error {
	switch name {
	case firm.EdgeUsers:
		m.ResetUsers()
		return nil
	case firm.EdgeCases:
		m.ResetCases()
		return nil
	}
	return fmt.Errorf("unknown Firm edge %s", name)
}

// LegalCaseMutation represents an operation that mutates the LegalCase nodes in the graph.
type LegalCaseMutation struct {
	config
	op                Op
	typ               string
	id                *string
	case_name         *string
	case_type         *legalcase.CaseType
	opposing_party    *string
	case_number       *string
	description       *string
	deposition_date   *time.Time
	extracted_facts   *map[string]interface{}
	prior_statements  *string
	exhibit_list      *string
	focus_areas       *[]string
	appendfocus_areas []string
	aggression_preset *legalcase.AggressionPreset
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	firm              *string
	clearedfirm       bool
	witnesses         map[string]struct{}
	removedwitnesses  map[string]struct{}
	clearedwitnesses  bool
	sessions          map[string]struct{}
	removedsessions   map[string]struct{}
	clearedsessions   bool
	documents         map[string]struct{}
	removeddocuments  map[string]struct{}
	cleareddocuments  bool
	done              bool
	oldValue          func(context.Context) (*LegalCase, error)
	predicates        []predicate.LegalCase
}

var _ ent.Mutation = (*LegalCaseMutation)(nil)

// legalcaseOption allows management of the mutation configuration using functional options.
type legalcaseOption func(*LegalCaseMutation)

// newLegalCaseMutation creates new mutation for the LegalCase entity.
func newLegalCaseMutation(c config, op Op, opts ...legalcaseOption) *LegalCaseMutation {
	m := &LegalCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeLegalCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLegalCaseID sets the ID field of the mutation.
func withLegalCaseID(id string) legalcaseOption {
	return func(m *LegalCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *LegalCase
		)
		m.oldValue = func(ctx context.Context) (*LegalCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LegalCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLegalCase sets the old LegalCase of the mutation.
func withLegalCase(node *LegalCase) legalcaseOption {
	return func(m *LegalCaseMutation) {
		m.oldValue = func(context.Context) (*LegalCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LegalCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LegalCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LegalCase entities.
func (m *LegalCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LegalCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LegalCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LegalCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirmID sets the "firm_id" field.
func (m *LegalCaseMutation) SetFirmID(s string) {
	m.firm = &s
}

// FirmID returns the value of the "firm_id" field in the mutation.
func (m *LegalCaseMutation) FirmID() (r string, exists bool) {
	v := m.firm
	if v == nil {
		return
	}
	return *v, true
}

// OldFirmID returns the old "firm_id" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldFirmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirmID: %w", err)
	}
	return oldValue.FirmID, nil
}

// ResetFirmID resets all changes to the "firm_id" field.
func (m *LegalCaseMutation) ResetFirmID() {
	m.firm = nil
}

// SetCaseName sets the "case_name" field.
func (m *LegalCaseMutation) SetCaseName(s string) {
	m.case_name = &s
}

// CaseName returns the value of the "case_name" field in the mutation.
func (m *LegalCaseMutation) CaseName() (r string, exists bool) {
	v := m.case_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseName returns the old "case_name" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldCaseName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseName: %w", err)
	}
	return oldValue.CaseName, nil
}

// ResetCaseName resets all changes to the "case_name" field.
func (m *LegalCaseMutation) ResetCaseName() {
	m.case_name = nil
}

// SetCaseType sets the "case_type" field.
func (m *LegalCaseMutation) SetCaseType(lt legalcase.CaseType) {
	m.case_type = &lt
}

// CaseType returns the value of the "case_type" field in the mutation.
func (m *LegalCaseMutation) CaseType() (r legalcase.CaseType, exists bool) {
	v := m.case_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseType returns the old "case_type" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldCaseType(ctx context.Context) (v legalcase.CaseType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseType: %w", err)
	}
	return oldValue.CaseType, nil
}

// ResetCaseType resets all changes to the "case_type" field.
func (m *LegalCaseMutation) ResetCaseType() {
	m.case_type = nil
}

// SetOpposingParty sets the "opposing_party" field.
func (m *LegalCaseMutation) SetOpposingParty(s string) {
	m.opposing_party = &s
}

// OpposingParty returns the value of the "opposing_party" field in the mutation.
func (m *LegalCaseMutation) OpposingParty() (r string, exists bool) {
	v := m.opposing_party
	if v == nil {
		return
	}
	return *v, true
}

// OldOpposingParty returns the old "opposing_party" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldOpposingParty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpposingParty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpposingParty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpposingParty: %w", err)
	}
	return oldValue.OpposingParty, nil
}

// ClearOpposingParty clears the value of the "opposing_party" field.
func (m *LegalCaseMutation) ClearOpposingParty() {
	m.opposing_party = nil
	m.clearedFields[legalcase.FieldOpposingParty] = struct{}{}
}

// OpposingPartyCleared returns if the "opposing_party" field was cleared in this mutation.
func (m *LegalCaseMutation) OpposingPartyCleared() bool {
	_, ok := m.clearedFields[legalcase.FieldOpposingParty]
	return ok
}

// ResetOpposingParty resets all changes to the "opposing_party" field.
func (m *LegalCaseMutation) ResetOpposingParty() {
	m.opposing_party = nil
	delete(m.clearedFields, legalcase.FieldOpposingParty)
}

// SetCaseNumber sets the "case_number" field.
func (m *LegalCaseMutation) SetCaseNumber(s string) {
	m.case_number = &s
}

// CaseNumber returns the value of the "case_number" field in the mutation.
func (m *LegalCaseMutation) CaseNumber() (r string, exists bool) {
	v := m.case_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseNumber returns the old "case_number" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldCaseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseNumber: %w", err)
	}
	return oldValue.CaseNumber, nil
}

// ClearCaseNumber clears the value of the "case_number" field.
func (m *LegalCaseMutation) ClearCaseNumber() {
	m.case_number = nil
	m.clearedFields[legalcase.FieldCaseNumber] = struct{}{}
}

// CaseNumberCleared returns if the "case_number" field was cleared in this mutation.
func (m *LegalCaseMutation) CaseNumberCleared() bool {
	_, ok := m.clearedFields[legalcase.FieldCaseNumber]
	return ok
}

// ResetCaseNumber resets all changes to the "case_number" field.
func (m *LegalCaseMutation) ResetCaseNumber() {
	m.case_number = nil
	delete(m.clearedFields, legalcase.FieldCaseNumber)
}

// SetDescription sets the "description" field.
func (m *LegalCaseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *LegalCaseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *LegalCaseMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[legalcase.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *LegalCaseMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[legalcase.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *LegalCaseMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, legalcase.FieldDescription)
}

// SetDepositionDate sets the "deposition_date" field.
func (m *LegalCaseMutation) SetDepositionDate(t time.Time) {
	m.deposition_date = &t
}

// DepositionDate returns the value of the "deposition_date" field in the mutation.
func (m *LegalCaseMutation) DepositionDate() (r time.Time, exists bool) {
	v := m.deposition_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDepositionDate returns the old "deposition_date" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldDepositionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepositionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepositionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepositionDate: %w", err)
	}
	return oldValue.DepositionDate, nil
}

// ClearDepositionDate clears the value of the "deposition_date" field.
func (m *LegalCaseMutation) ClearDepositionDate() {
	m.deposition_date = nil
	m.clearedFields[legalcase.FieldDepositionDate] = struct{}{}
}

// DepositionDateCleared returns if the "deposition_date" field was cleared in this mutation.
func (m *LegalCaseMutation) DepositionDateCleared() bool {
	_, ok := m.clearedFields[legalcase.FieldDepositionDate]
	return ok
}

// ResetDepositionDate resets all changes to the "deposition_date" field.
func (m *LegalCaseMutation) ResetDepositionDate() {
	m.deposition_date = nil
	delete(m.clearedFields, legalcase.FieldDepositionDate)
}

// SetExtractedFacts sets the "extracted_facts" field.
func (m *LegalCaseMutation) SetExtractedFacts(value map[string]interface{}) {
	m.extracted_facts = &value
}

// ExtractedFacts returns the value of the "extracted_facts" field in the mutation.
func (m *LegalCaseMutation) ExtractedFacts() (r map[string]interface{}, exists bool) {
	v := m.extracted_facts
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFacts returns the old "extracted_facts" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldExtractedFacts(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFacts: %w", err)
	}
	return oldValue.ExtractedFacts, nil
}

// ClearExtractedFacts clears the value of the "extracted_facts" field.
func (m *LegalCaseMutation) ClearExtractedFacts() {
	m.extracted_facts = nil
	m.clearedFields[legalcase.FieldExtractedFacts] = struct{}{}
}

// ExtractedFactsCleared returns if the "extracted_facts" field was cleared in this mutation.
func (m *LegalCaseMutation) ExtractedFactsCleared() bool {
	_, ok := m.clearedFields[legalcase.FieldExtractedFacts]
	return ok
}

// ResetExtractedFacts resets all changes to the "extracted_facts" field.
func (m *LegalCaseMutation) ResetExtractedFacts() {
	m.extracted_facts = nil
	delete(m.clearedFields, legalcase.FieldExtractedFacts)
}

// SetPriorStatements sets the "prior_statements" field.
func (m *LegalCaseMutation) SetPriorStatements(s string) {
	m.prior_statements = &s
}

// PriorStatements returns the value of the "prior_statements" field in the mutation.
func (m *LegalCaseMutation) PriorStatements() (r string, exists bool) {
	v := m.prior_statements
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorStatements returns the old "prior_statements" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldPriorStatements(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorStatements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorStatements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorStatements: %w", err)
	}
	return oldValue.PriorStatements, nil
}

// ClearPriorStatements clears the value of the "prior_statements" field.
func (m *LegalCaseMutation) ClearPriorStatements() {
	m.prior_statements = nil
	m.clearedFields[legalcase.FieldPriorStatements] = struct{}{}
}

// PriorStatementsCleared returns if the "prior_statements" field was cleared in this mutation.
func (m *LegalCaseMutation) PriorStatementsCleared() bool {
	_, ok := m.clearedFields[legalcase.FieldPriorStatements]
	return ok
}

// ResetPriorStatements resets all changes to the "prior_statements" field.
func (m *LegalCaseMutation) ResetPriorStatements() {
	m.prior_statements = nil
	delete(m.clearedFields, legalcase.FieldPriorStatements)
}

// SetExhibitList sets the "exhibit_list" field.
func (m *LegalCaseMutation) SetExhibitList(s string) {
	m.exhibit_list = &s
}

// ExhibitList returns the value of the "exhibit_list" field in the mutation.
func (m *LegalCaseMutation) ExhibitList() (r string, exists bool) {
	v := m.exhibit_list
	if v == nil {
		return
	}
	return *v, true
}

// OldExhibitList returns the old "exhibit_list" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldExhibitList(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExhibitList is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExhibitList requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExhibitList: %w", err)
	}
	return oldValue.ExhibitList, nil
}

// ClearExhibitList clears the value of the "exhibit_list" field.
func (m *LegalCaseMutation) ClearExhibitList() {
	m.exhibit_list = nil
	m.clearedFields[legalcase.FieldExhibitList] = struct{}{}
}

// ExhibitListCleared returns if the "exhibit_list" field was cleared in this mutation.
func (m *LegalCaseMutation) ExhibitListCleared() bool {
	_, ok := m.clearedFields[legalcase.FieldExhibitList]
	return ok
}

// ResetExhibitList resets all changes to the "exhibit_list" field.
func (m *LegalCaseMutation) ResetExhibitList() {
	m.exhibit_list = nil
	delete(m.clearedFields, legalcase.FieldExhibitList)
}

// SetFocusAreas sets the "focus_areas" field.
func (m *LegalCaseMutation) SetFocusAreas(s []string) {
	m.focus_areas = &s
	m.appendfocus_areas = nil
}

// FocusAreas returns the value of the "focus_areas" field in the mutation.
func (m *LegalCaseMutation) FocusAreas() (r []string, exists bool) {
	v := m.focus_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusAreas returns the old "focus_areas" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldFocusAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusAreas: %w", err)
	}
	return oldValue.FocusAreas, nil
}

// AppendFocusAreas adds s to the "focus_areas" field.
func (m *LegalCaseMutation) AppendFocusAreas(s []string) {
	m.appendfocus_areas = append(m.appendfocus_areas, s...)
}

// AppendedFocusAreas returns the list of values that were appended to the "focus_areas" field in this mutation.
func (m *LegalCaseMutation) AppendedFocusAreas() ([]string, bool) {
	if len(m.appendfocus_areas) == 0 {
		return nil, false
	}
	return m.appendfocus_areas, true
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (m *LegalCaseMutation) ClearFocusAreas() {
	m.focus_areas = nil
	m.appendfocus_areas = nil
	m.clearedFields[legalcase.FieldFocusAreas] = struct{}{}
}

// FocusAreasCleared returns if the "focus_areas" field was cleared in this mutation.
func (m *LegalCaseMutation) FocusAreasCleared() bool {
	_, ok := m.clearedFields[legalcase.FieldFocusAreas]
	return ok
}

// ResetFocusAreas resets all changes to the "focus_areas" field.
func (m *LegalCaseMutation) ResetFocusAreas() {
	m.focus_areas = nil
	m.appendfocus_areas = nil
	delete(m.clearedFields, legalcase.FieldFocusAreas)
}

// SetAggressionPreset sets the "aggression_preset" field.
func (m *LegalCaseMutation) SetAggressionPreset(lp legalcase.AggressionPreset) {
	m.aggression_preset = &lp
}

// AggressionPreset returns the value of the "aggression_preset" field in the mutation.
func (m *LegalCaseMutation) AggressionPreset() (r legalcase.AggressionPreset, exists bool) {
	v := m.aggression_preset
	if v == nil {
		return
	}
	return *v, true
}

// OldAggressionPreset returns the old "aggression_preset" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldAggressionPreset(ctx context.Context) (v legalcase.AggressionPreset, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggressionPreset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggressionPreset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggressionPreset: %w", err)
	}
	return oldValue.AggressionPreset, nil
}

// ResetAggressionPreset resets all changes to the "aggression_preset" field.
func (m *LegalCaseMutation) ResetAggressionPreset() {
	m.aggression_preset = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LegalCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LegalCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LegalCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LegalCaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LegalCaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LegalCase entity.
// If the LegalCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalCaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LegalCaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFirm clears the "firm" edge to the Firm entity.
func (m *LegalCaseMutation) ClearFirm() {
	m.clearedfirm = true
	m.clearedFields[legalcase.FieldFirmID] = struct{}{}
}

// FirmCleared reports if the "firm" edge to the Firm entity was cleared.
func (m *LegalCaseMutation) FirmCleared() bool {
	return m.clearedfirm
}

// FirmIDs returns the "firm" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FirmID instead. It exists only for internal usage by the builders.
func (m *LegalCaseMutation) FirmIDs() (ids []string) {
	if id := m.firm; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFirm resets all changes to the "firm" edge.
func (m *LegalCaseMutation) ResetFirm() {
	m.firm = nil
	m.clearedfirm = false
}

// AddWitnessIDs adds the "witnesses" edge to the Witness entity by ids.
func (m *LegalCaseMutation) AddWitnessIDs(ids ...string) {
	if m.witnesses == nil {
		m.witnesses = make(map[string]struct{})
	}
	for i := range ids {
		m.witnesses[ids[i]] = struct{}{}
	}
}

// ClearWitnesses clears the "witnesses" edge to the Witness entity.
func (m *LegalCaseMutation) ClearWitnesses() {
	m.clearedwitnesses = true
}

// WitnessesCleared reports if the "witnesses" edge to the Witness entity was cleared.
func (m *LegalCaseMutation) WitnessesCleared() bool {
	return m.clearedwitnesses
}

// RemoveWitnessIDs removes the "witnesses" edge to the Witness entity by IDs.
func (m *LegalCaseMutation) RemoveWitnessIDs(ids ...string) {
	if m.removedwitnesses == nil {
		m.removedwitnesses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.witnesses, ids[i])
		m.removedwitnesses[ids[i]] = struct{}{}
	}
}

// RemovedWitnesses returns the removed IDs of the "witnesses" edge to the Witness entity.
func (m *LegalCaseMutation) RemovedWitnessesIDs() (ids []string) {
	for id := range m.removedwitnesses {
		ids = append(ids, id)
	}
	return
}

// WitnessesIDs returns the "witnesses" edge IDs in the mutation.
func (m *LegalCaseMutation) WitnessesIDs() (ids []string) {
	for id := range m.witnesses {
		ids = append(ids, id)
	}
	return
}

// ResetWitnesses resets all changes to the "witnesses" edge.
func (m *LegalCaseMutation) ResetWitnesses() {
	m.witnesses = nil
	m.clearedwitnesses = false
	m.removedwitnesses = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *LegalCaseMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *LegalCaseMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *LegalCaseMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *LegalCaseMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *LegalCaseMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *LegalCaseMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *LegalCaseMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *LegalCaseMutation) AddDocumentIDs(ids ...string) {
	if m.documents == nil {
		m.documents = make(map[string]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *LegalCaseMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *LegalCaseMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *LegalCaseMutation) RemoveDocumentIDs(ids ...string) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *LegalCaseMutation) RemovedDocumentsIDs() (ids []string) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *LegalCaseMutation) DocumentsIDs() (ids []string) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *LegalCaseMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the LegalCaseMutation builder.
func (m *LegalCaseMutation) Where(ps ...predicate.LegalCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LegalCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LegalCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LegalCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LegalCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LegalCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LegalCase).
func (m *LegalCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LegalCaseMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.firm != nil {
		fields = append(fields, legalcase.FieldFirmID)
	}
	if m.case_name != nil {
		fields = append(fields, legalcase.FieldCaseName)
	}
	if m.case_type != nil {
		fields = append(fields, legalcase.FieldCaseType)
	}
	if m.opposing_party != nil {
		fields = append(fields, legalcase.FieldOpposingParty)
	}
	if m.case_number != nil {
		fields = append(fields, legalcase.FieldCaseNumber)
	}
	if m.description != nil {
		fields = append(fields, legalcase.FieldDescription)
	}
	if m.deposition_date != nil {
		fields = append(fields, legalcase.FieldDepositionDate)
	}
	if m.extracted_facts != nil {
		fields = append(fields, legalcase.FieldExtractedFacts)
	}
	if m.prior_statements != nil {
		fields = append(fields, legalcase.FieldPriorStatements)
	}
	if m.exhibit_list != nil {
		fields = append(fields, legalcase.FieldExhibitList)
	}
	if m.focus_areas != nil {
		fields = append(fields, legalcase.FieldFocusAreas)
	}
	if m.aggression_preset != nil {
		fields = append(fields, legalcase.FieldAggressionPreset)
	}
	if m.created_at != nil {
		fields = append(fields, legalcase.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, legalcase.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LegalCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case legalcase.FieldFirmID:
		return m.FirmID()
	case legalcase.FieldCaseName:
		return m.CaseName()
	case legalcase.FieldCaseType:
		return m.CaseType()
	case legalcase.FieldOpposingParty:
		return m.OpposingParty()
	case legalcase.FieldCaseNumber:
		return m.CaseNumber()
	case legalcase.FieldDescription:
		return m.Description()
	case legalcase.FieldDepositionDate:
		return m.DepositionDate()
	case legalcase.FieldExtractedFacts:
		return m.ExtractedFacts()
	case legalcase.FieldPriorStatements:
		return m.PriorStatements()
	case legalcase.FieldExhibitList:
		return m.ExhibitList()
	case legalcase.FieldFocusAreas:
		return m.FocusAreas()
	case legalcase.FieldAggressionPreset:
		return m.AggressionPreset()
	case legalcase.FieldCreatedAt:
		return m.CreatedAt()
	case legalcase.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LegalCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case legalcase.FieldFirmID:
		return m.OldFirmID(ctx)
	case legalcase.FieldCaseName:
		return m.OldCaseName(ctx)
	case legalcase.FieldCaseType:
		return m.OldCaseType(ctx)
	case legalcase.FieldOpposingParty:
		return m.OldOpposingParty(ctx)
	case legalcase.FieldCaseNumber:
		return m.OldCaseNumber(ctx)
	case legalcase.FieldDescription:
		return m.OldDescription(ctx)
	case legalcase.FieldDepositionDate:
		return m.OldDepositionDate(ctx)
	case legalcase.FieldExtractedFacts:
		return m.OldExtractedFacts(ctx)
	case legalcase.FieldPriorStatements:
		return m.OldPriorStatements(ctx)
	case legalcase.FieldExhibitList:
		return m.OldExhibitList(ctx)
	case legalcase.FieldFocusAreas:
		return m.OldFocusAreas(ctx)
	case legalcase.FieldAggressionPreset:
		return m.OldAggressionPreset(ctx)
	case legalcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case legalcase.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LegalCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LegalCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case legalcase.FieldFirmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirmID(v)
		return nil
	case legalcase.FieldCaseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseName(v)
		return nil
	case legalcase.FieldCaseType:
		v, ok := value.(legalcase.CaseType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseType(v)
		return nil
	case legalcase.FieldOpposingParty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpposingParty(v)
		return nil
	case legalcase.FieldCaseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseNumber(v)
		return nil
	case legalcase.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case legalcase.FieldDepositionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepositionDate(v)
		return nil
	case legalcase.FieldExtractedFacts:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFacts(v)
		return nil
	case legalcase.FieldPriorStatements:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorStatements(v)
		return nil
	case legalcase.FieldExhibitList:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExhibitList(v)
		return nil
	case legalcase.FieldFocusAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusAreas(v)
		return nil
	case legalcase.FieldAggressionPreset:
		v, ok := value.(legalcase.AggressionPreset)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggressionPreset(v)
		return nil
	case legalcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case legalcase.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LegalCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LegalCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LegalCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LegalCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LegalCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LegalCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(legalcase.FieldOpposingParty) {
		fields = append(fields, legalcase.FieldOpposingParty)
	}
	if m.FieldCleared(legalcase.FieldCaseNumber) {
		fields = append(fields, legalcase.FieldCaseNumber)
	}
	if m.FieldCleared(legalcase.FieldDescription) {
		fields = append(fields, legalcase.FieldDescription)
	}
	if m.FieldCleared(legalcase.FieldDepositionDate) {
		fields = append(fields, legalcase.FieldDepositionDate)
	}
	if m.FieldCleared(legalcase.FieldExtractedFacts) {
		fields = append(fields, legalcase.FieldExtractedFacts)
	}
	if m.FieldCleared(legalcase.FieldPriorStatements) {
		fields = append(fields, legalcase.FieldPriorStatements)
	}
	if m.FieldCleared(legalcase.FieldExhibitList) {
		fields = append(fields, legalcase.FieldExhibitList)
	}
	if m.FieldCleared(legalcase.FieldFocusAreas) {
		fields = append(fields, legalcase.FieldFocusAreas)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LegalCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LegalCaseMutation) ClearField(name string) error {
	switch name {
	case legalcase.FieldOpposingParty:
		m.ClearOpposingParty()
		return nil
	case legalcase.FieldCaseNumber:
		m.ClearCaseNumber()
		return nil
	case legalcase.FieldDescription:
		m.ClearDescription()
		return nil
	case legalcase.FieldDepositionDate:
		m.ClearDepositionDate()
		return nil
	case legalcase.FieldExtractedFacts:
		m.ClearExtractedFacts()
		return nil
	case legalcase.FieldPriorStatements:
		m.ClearPriorStatements()
		return nil
	case legalcase.FieldExhibitList:
		m.ClearExhibitList()
		return nil
	case legalcase.FieldFocusAreas:
		m.ClearFocusAreas()
		return nil
	}
	return fmt.Errorf("unknown LegalCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LegalCaseMutation) ResetField(name string) error {
	switch name {
	case legalcase.FieldFirmID:
		m.ResetFirmID()
		return nil
	case legalcase.FieldCaseName:
		m.ResetCaseName()
		return nil
	case legalcase.FieldCaseType:
		m.ResetCaseType()
		return nil
	case legalcase.FieldOpposingParty:
		m.ResetOpposingParty()
		return nil
	case legalcase.FieldCaseNumber:
		m.ResetCaseNumber()
		return nil
	case legalcase.FieldDescription:
		m.ResetDescription()
		return nil
	case legalcase.FieldDepositionDate:
		m.ResetDepositionDate()
		return nil
	case legalcase.FieldExtractedFacts:
		m.ResetExtractedFacts()
		return nil
	case legalcase.FieldPriorStatements:
		m.ResetPriorStatements()
		return nil
	case legalcase.FieldExhibitList:
		m.ResetExhibitList()
		return nil
	case legalcase.FieldFocusAreas:
		m.ResetFocusAreas()
		return nil
	case legalcase.FieldAggressionPreset:
		m.ResetAggressionPreset()
		return nil
	case legalcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case legalcase.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LegalCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LegalCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.firm != nil {
		edges = append(edges, legalcase.EdgeFirm)
	}
	if m.witnesses != nil {
		edges = append(edges, legalcase.EdgeWitnesses)
	}
	if m.sessions != nil {
		edges = append(edges, legalcase.EdgeSessions)
	}
	if m.documents != nil {
		edges = append(edges, legalcase.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LegalCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case legalcase.EdgeFirm:
		if id := m.firm; id != nil {
			return []ent.Value{*id}
		}
	case legalcase.EdgeWitnesses:
		ids := make([]ent.Value, 0, len(m.witnesses))
		for id := range m.witnesses {
			ids = append(ids, id)
		}
		return ids
	case legalcase.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case legalcase.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LegalCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedwitnesses != nil {
		edges = append(edges, legalcase.EdgeWitnesses)
	}
	if m.removedsessions != nil {
		edges = append(edges, legalcase.EdgeSessions)
	}
	if m.removeddocuments != nil {
		edges = append(edges, legalcase.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LegalCaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case legalcase.EdgeWitnesses:
		ids := make([]ent.Value, 0, len(m.removedwitnesses))
		for id := range m.removedwitnesses {
			ids = append(ids, id)
		}
		return ids
	case legalcase.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case legalcase.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LegalCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedfirm {
		edges = append(edges, legalcase.EdgeFirm)
	}
	if m.clearedwitnesses {
		edges = append(edges, legalcase.EdgeWitnesses)
	}
	if m.clearedsessions {
		edges = append(edges, legalcase.EdgeSessions)
	}
	if m.cleareddocuments {
		edges = append(edges, legalcase.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LegalCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case legalcase.EdgeFirm:
		return m.clearedfirm
	case legalcase.EdgeWitnesses:
		return m.clearedwitnesses
	case legalcase.EdgeSessions:
		return m.clearedsessions
	case legalcase.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LegalCaseMutation) ClearEdge(name string) error {
	switch name {
	case legalcase.EdgeFirm:
		m.ClearFirm()
		return nil
	}
	return fmt.Errorf("unknown LegalCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LegalCaseMutation) ResetEdge(name string) error {
	switch name {
	case legalcase.EdgeFirm:
		m.ResetFirm()
		return nil
	case legalcase.EdgeWitnesses:
		m.ResetWitnesses()
		return nil
	case legalcase.EdgeSessions:
		m.ResetSessions()
		return nil
	case legalcase.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown LegalCase edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	status                    *session.Status
	aggression_level          *session.AggressionLevel
	focus_areas               *[]string
	appendfocus_areas         []string
	duration_minutes          *int
	addduration_minutes       *int
	current_topic             *string
	objection_copilot_enabled *bool
	sentinel_enabled          *bool
	brief_status              *session.BriefStatus
	witness_token             *string
	question_count            *int
	addquestion_count         *int
	started_at                *time.Time
	ended_at                  *time.Time
	paused_at                 *time.Time
	total_pause_ms            *int64
	addtotal_pause_ms         *int64
	last_interaction_at       *time.Time
	session_score             *float64
	addsession_score          *float64
	consistency_rate          *float64
	addconsistency_rate       *float64
	prior_weak_areas          *[]string
	appendprior_weak_areas    []string
	external_context_id       *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	legal_case                *string
	clearedlegal_case         bool
	witness                   *string
	clearedwitness            bool
	events                    map[string]struct{}
	removedevents             map[string]struct{}
	clearedevents             bool
	alerts                    map[string]struct{}
	removedalerts             map[string]struct{}
	clearedalerts             bool
	brief                     *string
	clearedbrief              bool
	done                      bool
	oldValue                  func(context.Context) (*Session, error)
	predicates                []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *SessionMutation) SetCaseID(s string) {
	m.legal_case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *SessionMutation) CaseID() (r string, exists bool) {
	v := m.legal_case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *SessionMutation) ResetCaseID() {
	m.legal_case = nil
}

// SetWitnessID sets the "witness_id" field.
func (m *SessionMutation) SetWitnessID(s string) {
	m.witness = &s
}

// WitnessID returns the value of the "witness_id" field in the mutation.
func (m *SessionMutation) WitnessID() (r string, exists bool) {
	v := m.witness
	if v == nil {
		return
	}
	return *v, true
}

// OldWitnessID returns the old "witness_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldWitnessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWitnessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWitnessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWitnessID: %w", err)
	}
	return oldValue.WitnessID, nil
}

// ResetWitnessID resets all changes to the "witness_id" field.
func (m *SessionMutation) ResetWitnessID() {
	m.witness = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetAggressionLevel sets the "aggression_level" field.
func (m *SessionMutation) SetAggressionLevel(sl session.AggressionLevel) {
	m.aggression_level = &sl
}

// AggressionLevel returns the value of the "aggression_level" field in the mutation.
func (m *SessionMutation) AggressionLevel() (r session.AggressionLevel, exists bool) {
	v := m.aggression_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAggressionLevel returns the old "aggression_level" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAggressionLevel(ctx context.Context) (v session.AggressionLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggressionLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggressionLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggressionLevel: %w", err)
	}
	return oldValue.AggressionLevel, nil
}

// ResetAggressionLevel resets all changes to the "aggression_level" field.
func (m *SessionMutation) ResetAggressionLevel() {
	m.aggression_level = nil
}

// SetFocusAreas sets the "focus_areas" field.
func (m *SessionMutation) SetFocusAreas(s []string) {
	m.focus_areas = &s
	m.appendfocus_areas = nil
}

// FocusAreas returns the value of the "focus_areas" field in the mutation.
func (m *SessionMutation) FocusAreas() (r []string, exists bool) {
	v := m.focus_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusAreas returns the old "focus_areas" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFocusAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusAreas: %w", err)
	}
	return oldValue.FocusAreas, nil
}

// AppendFocusAreas adds s to the "focus_areas" field.
func (m *SessionMutation) AppendFocusAreas(s []string) {
	m.appendfocus_areas = append(m.appendfocus_areas, s...)
}

// AppendedFocusAreas returns the list of values that were appended to the "focus_areas" field in this mutation.
func (m *SessionMutation) AppendedFocusAreas() ([]string, bool) {
	if len(m.appendfocus_areas) == 0 {
		return nil, false
	}
	return m.appendfocus_areas, true
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (m *SessionMutation) ClearFocusAreas() {
	m.focus_areas = nil
	m.appendfocus_areas = nil
	m.clearedFields[session.FieldFocusAreas] = struct{}{}
}

// FocusAreasCleared returns if the "focus_areas" field was cleared in this mutation.
func (m *SessionMutation) FocusAreasCleared() bool {
	_, ok := m.clearedFields[session.FieldFocusAreas]
	return ok
}

// ResetFocusAreas resets all changes to the "focus_areas" field.
func (m *SessionMutation) ResetFocusAreas() {
	m.focus_areas = nil
	m.appendfocus_areas = nil
	delete(m.clearedFields, session.FieldFocusAreas)
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *SessionMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *SessionMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *SessionMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *SessionMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *SessionMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetCurrentTopic sets the "current_topic" field.
func (m *SessionMutation) SetCurrentTopic(s string) {
	m.current_topic = &s
}

// CurrentTopic returns the value of the "current_topic" field in the mutation.
func (m *SessionMutation) CurrentTopic() (r string, exists bool) {
	v := m.current_topic
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTopic returns the old "current_topic" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCurrentTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTopic: %w", err)
	}
	return oldValue.CurrentTopic, nil
}

// ClearCurrentTopic clears the value of the "current_topic" field.
func (m *SessionMutation) ClearCurrentTopic() {
	m.current_topic = nil
	m.clearedFields[session.FieldCurrentTopic] = struct{}{}
}

// CurrentTopicCleared returns if the "current_topic" field was cleared in this mutation.
func (m *SessionMutation) CurrentTopicCleared() bool {
	_, ok := m.clearedFields[session.FieldCurrentTopic]
	return ok
}

// ResetCurrentTopic resets all changes to the "current_topic" field.
func (m *SessionMutation) ResetCurrentTopic() {
	m.current_topic = nil
	delete(m.clearedFields, session.FieldCurrentTopic)
}

// SetObjectionCopilotEnabled sets the "objection_copilot_enabled" field.
func (m *SessionMutation) SetObjectionCopilotEnabled(b bool) {
	m.objection_copilot_enabled = &b
}

// ObjectionCopilotEnabled returns the value of the "objection_copilot_enabled" field in the mutation.
func (m *SessionMutation) ObjectionCopilotEnabled() (r bool, exists bool) {
	v := m.objection_copilot_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectionCopilotEnabled returns the old "objection_copilot_enabled" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldObjectionCopilotEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectionCopilotEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectionCopilotEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectionCopilotEnabled: %w", err)
	}
	return oldValue.ObjectionCopilotEnabled, nil
}

// ResetObjectionCopilotEnabled resets all changes to the "objection_copilot_enabled" field.
func (m *SessionMutation) ResetObjectionCopilotEnabled() {
	m.objection_copilot_enabled = nil
}

// SetSentinelEnabled sets the "sentinel_enabled" field.
func (m *SessionMutation) SetSentinelEnabled(b bool) {
	m.sentinel_enabled = &b
}

// SentinelEnabled returns the value of the "sentinel_enabled" field in the mutation.
func (m *SessionMutation) SentinelEnabled() (r bool, exists bool) {
	v := m.sentinel_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldSentinelEnabled returns the old "sentinel_enabled" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSentinelEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentinelEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentinelEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentinelEnabled: %w", err)
	}
	return oldValue.SentinelEnabled, nil
}

// ResetSentinelEnabled resets all changes to the "sentinel_enabled" field.
func (m *SessionMutation) ResetSentinelEnabled() {
	m.sentinel_enabled = nil
}

// SetBriefStatus sets the "brief_status" field.
func (m *SessionMutation) SetBriefStatus(ss session.BriefStatus) {
	m.brief_status = &ss
}

// BriefStatus returns the value of the "brief_status" field in the mutation.
func (m *SessionMutation) BriefStatus() (r session.BriefStatus, exists bool) {
	v := m.brief_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBriefStatus returns the old "brief_status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldBriefStatus(ctx context.Context) (v session.BriefStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBriefStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBriefStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBriefStatus: %w", err)
	}
	return oldValue.BriefStatus, nil
}

// ResetBriefStatus resets all changes to the "brief_status" field.
func (m *SessionMutation) ResetBriefStatus() {
	m.brief_status = nil
}

// SetWitnessToken sets the "witness_token" field.
func (m *SessionMutation) SetWitnessToken(s string) {
	m.witness_token = &s
}

// WitnessToken returns the value of the "witness_token" field in the mutation.
func (m *SessionMutation) WitnessToken() (r string, exists bool) {
	v := m.witness_token
	if v == nil {
		return
	}
	return *v, true
}

// OldWitnessToken returns the old "witness_token" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldWitnessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWitnessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWitnessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWitnessToken: %w", err)
	}
	return oldValue.WitnessToken, nil
}

// ResetWitnessToken resets all changes to the "witness_token" field.
func (m *SessionMutation) ResetWitnessToken() {
	m.witness_token = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *SessionMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *SessionMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *SessionMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *SessionMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *SessionMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[session.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, session.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *SessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[session.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *SessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, session.FieldEndedAt)
}

// SetPausedAt sets the "paused_at" field.
func (m *SessionMutation) SetPausedAt(t time.Time) {
	m.paused_at = &t
}

// PausedAt returns the value of the "paused_at" field in the mutation.
func (m *SessionMutation) PausedAt() (r time.Time, exists bool) {
	v := m.paused_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPausedAt returns the old "paused_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPausedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausedAt: %w", err)
	}
	return oldValue.PausedAt, nil
}

// ClearPausedAt clears the value of the "paused_at" field.
func (m *SessionMutation) ClearPausedAt() {
	m.paused_at = nil
	m.clearedFields[session.FieldPausedAt] = struct{}{}
}

// PausedAtCleared returns if the "paused_at" field was cleared in this mutation.
func (m *SessionMutation) PausedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldPausedAt]
	return ok
}

// ResetPausedAt resets all changes to the "paused_at" field.
func (m *SessionMutation) ResetPausedAt() {
	m.paused_at = nil
	delete(m.clearedFields, session.FieldPausedAt)
}

// SetTotalPauseMs sets the "total_pause_ms" field.
func (m *SessionMutation) SetTotalPauseMs(i int64) {
	m.total_pause_ms = &i
	m.addtotal_pause_ms = nil
}

// TotalPauseMs returns the value of the "total_pause_ms" field in the mutation.
func (m *SessionMutation) TotalPauseMs() (r int64, exists bool) {
	v := m.total_pause_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPauseMs returns the old "total_pause_ms" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTotalPauseMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPauseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPauseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPauseMs: %w", err)
	}
	return oldValue.TotalPauseMs, nil
}

// AddTotalPauseMs adds i to the "total_pause_ms" field.
func (m *SessionMutation) AddTotalPauseMs(i int64) {
	if m.addtotal_pause_ms != nil {
		*m.addtotal_pause_ms += i
	} else {
		m.addtotal_pause_ms = &i
	}
}

// AddedTotalPauseMs returns the value that was added to the "total_pause_ms" field in this mutation.
func (m *SessionMutation) AddedTotalPauseMs() (r int64, exists bool) {
	v := m.addtotal_pause_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPauseMs resets all changes to the "total_pause_ms" field.
func (m *SessionMutation) ResetTotalPauseMs() {
	m.total_pause_ms = nil
	m.addtotal_pause_ms = nil
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *SessionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *SessionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *SessionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[session.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *SessionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[session.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *SessionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, session.FieldLastInteractionAt)
}

// SetSessionScore sets the "session_score" field.
func (m *SessionMutation) SetSessionScore(f float64) {
	m.session_score = &f
	m.addsession_score = nil
}

// SessionScore returns the value of the "session_score" field in the mutation.
func (m *SessionMutation) SessionScore() (r float64, exists bool) {
	v := m.session_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionScore returns the old "session_score" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionScore: %w", err)
	}
	return oldValue.SessionScore, nil
}

// AddSessionScore adds f to the "session_score" field.
func (m *SessionMutation) AddSessionScore(f float64) {
	if m.addsession_score != nil {
		*m.addsession_score += f
	} else {
		m.addsession_score = &f
	}
}

// AddedSessionScore returns the value that was added to the "session_score" field in this mutation.
func (m *SessionMutation) AddedSessionScore() (r float64, exists bool) {
	v := m.addsession_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSessionScore clears the value of the "session_score" field.
func (m *SessionMutation) ClearSessionScore() {
	m.session_score = nil
	m.addsession_score = nil
	m.clearedFields[session.FieldSessionScore] = struct{}{}
}

// SessionScoreCleared returns if the "session_score" field was cleared in this mutation.
func (m *SessionMutation) SessionScoreCleared() bool {
	_, ok := m.clearedFields[session.FieldSessionScore]
	return ok
}

// ResetSessionScore resets all changes to the "session_score" field.
func (m *SessionMutation) ResetSessionScore() {
	m.session_score = nil
	m.addsession_score = nil
	delete(m.clearedFields, session.FieldSessionScore)
}

// SetConsistencyRate sets the "consistency_rate" field.
func (m *SessionMutation) SetConsistencyRate(f float64) {
	m.consistency_rate = &f
	m.addconsistency_rate = nil
}

// ConsistencyRate returns the value of the "consistency_rate" field in the mutation.
func (m *SessionMutation) ConsistencyRate() (r float64, exists bool) {
	v := m.consistency_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldConsistencyRate returns the old "consistency_rate" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldConsistencyRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsistencyRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsistencyRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsistencyRate: %w", err)
	}
	return oldValue.ConsistencyRate, nil
}

// AddConsistencyRate adds f to the "consistency_rate" field.
func (m *SessionMutation) AddConsistencyRate(f float64) {
	if m.addconsistency_rate != nil {
		*m.addconsistency_rate += f
	} else {
		m.addconsistency_rate = &f
	}
}

// AddedConsistencyRate returns the value that was added to the "consistency_rate" field in this mutation.
func (m *SessionMutation) AddedConsistencyRate() (r float64, exists bool) {
	v := m.addconsistency_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearConsistencyRate clears the value of the "consistency_rate" field.
func (m *SessionMutation) ClearConsistencyRate() {
	m.consistency_rate = nil
	m.addconsistency_rate = nil
	m.clearedFields[session.FieldConsistencyRate] = struct{}{}
}

// ConsistencyRateCleared returns if the "consistency_rate" field was cleared in this mutation.
func (m *SessionMutation) ConsistencyRateCleared() bool {
	_, ok := m.clearedFields[session.FieldConsistencyRate]
	return ok
}

// ResetConsistencyRate resets all changes to the "consistency_rate" field.
func (m *SessionMutation) ResetConsistencyRate() {
	m.consistency_rate = nil
	m.addconsistency_rate = nil
	delete(m.clearedFields, session.FieldConsistencyRate)
}

// SetPriorWeakAreas sets the "prior_weak_areas" field.
func (m *SessionMutation) SetPriorWeakAreas(s []string) {
	m.prior_weak_areas = &s
	m.appendprior_weak_areas = nil
}

// PriorWeakAreas returns the value of the "prior_weak_areas" field in the mutation.
func (m *SessionMutation) PriorWeakAreas() (r []string, exists bool) {
	v := m.prior_weak_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorWeakAreas returns the old "prior_weak_areas" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPriorWeakAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorWeakAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorWeakAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorWeakAreas: %w", err)
	}
	return oldValue.PriorWeakAreas, nil
}

// AppendPriorWeakAreas adds s to the "prior_weak_areas" field.
func (m *SessionMutation) AppendPriorWeakAreas(s []string) {
	m.appendprior_weak_areas = append(m.appendprior_weak_areas, s...)
}

// AppendedPriorWeakAreas returns the list of values that were appended to the "prior_weak_areas" field in this mutation.
func (m *SessionMutation) AppendedPriorWeakAreas() ([]string, bool) {
	if len(m.appendprior_weak_areas) == 0 {
		return nil, false
	}
	return m.appendprior_weak_areas, true
}

// ClearPriorWeakAreas clears the value of the "prior_weak_areas" field.
func (m *SessionMutation) ClearPriorWeakAreas() {
	m.prior_weak_areas = nil
	m.appendprior_weak_areas = nil
	m.clearedFields[session.FieldPriorWeakAreas] = struct{}{}
}

// PriorWeakAreasCleared returns if the "prior_weak_areas" field was cleared in this mutation.
func (m *SessionMutation) PriorWeakAreasCleared() bool {
	_, ok := m.clearedFields[session.FieldPriorWeakAreas]
	return ok
}

// ResetPriorWeakAreas resets all changes to the "prior_weak_areas" field.
func (m *SessionMutation) ResetPriorWeakAreas() {
	m.prior_weak_areas = nil
	m.appendprior_weak_areas = nil
	delete(m.clearedFields, session.FieldPriorWeakAreas)
}

// SetExternalContextID sets the "external_context_id" field.
func (m *SessionMutation) SetExternalContextID(s string) {
	m.external_context_id = &s
}

// ExternalContextID returns the value of the "external_context_id" field in the mutation.
func (m *SessionMutation) ExternalContextID() (r string, exists bool) {
	v := m.external_context_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalContextID returns the old "external_context_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExternalContextID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalContextID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalContextID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalContextID: %w", err)
	}
	return oldValue.ExternalContextID, nil
}

// ClearExternalContextID clears the value of the "external_context_id" field.
func (m *SessionMutation) ClearExternalContextID() {
	m.external_context_id = nil
	m.clearedFields[session.FieldExternalContextID] = struct{}{}
}

// ExternalContextIDCleared returns if the "external_context_id" field was cleared in this mutation.
func (m *SessionMutation) ExternalContextIDCleared() bool {
	_, ok := m.clearedFields[session.FieldExternalContextID]
	return ok
}

// ResetExternalContextID resets all changes to the "external_context_id" field.
func (m *SessionMutation) ResetExternalContextID() {
	m.external_context_id = nil
	delete(m.clearedFields, session.FieldExternalContextID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLegalCaseID sets the "legal_case" edge to the LegalCase entity by id.
func (m *SessionMutation) SetLegalCaseID(id string) {
	m.legal_case = &id
}

// ClearLegalCase clears the "legal_case" edge to the LegalCase entity.
func (m *SessionMutation) ClearLegalCase() {
	m.clearedlegal_case = true
	m.clearedFields[session.FieldCaseID] = struct{}{}
}

// LegalCaseCleared reports if the "legal_case" edge to the LegalCase entity was cleared.
func (m *SessionMutation) LegalCaseCleared() bool {
	return m.clearedlegal_case
}

// LegalCaseID returns the "legal_case" edge ID in the mutation.
func (m *SessionMutation) LegalCaseID() (id string, exists bool) {
	if m.legal_case != nil {
		return *m.legal_case, true
	}
	return
}

// LegalCaseIDs returns the "legal_case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LegalCaseID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) LegalCaseIDs() (ids []string) {
	if id := m.legal_case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLegalCase resets all changes to the "legal_case" edge.
func (m *SessionMutation) ResetLegalCase() {
	m.legal_case = nil
	m.clearedlegal_case = false
}

// ClearWitness clears the "witness" edge to the Witness entity.
func (m *SessionMutation) ClearWitness() {
	m.clearedwitness = true
	m.clearedFields[session.FieldWitnessID] = struct{}{}
}

// WitnessCleared reports if the "witness" edge to the Witness entity was cleared.
func (m *SessionMutation) WitnessCleared() bool {
	return m.clearedwitness
}

// WitnessIDs returns the "witness" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WitnessID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) WitnessIDs() (ids []string) {
	if id := m.witness; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWitness resets all changes to the "witness" edge.
func (m *SessionMutation) ResetWitness() {
	m.witness = nil
	m.clearedwitness = false
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by ids.
func (m *SessionMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the SessionEvent entity.
func (m *SessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the SessionEvent entity was cleared.
func (m *SessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the SessionEvent entity by IDs.
func (m *SessionMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the SessionEvent entity.
func (m *SessionMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SessionMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by ids.
func (m *SessionMutation) AddAlertIDs(ids ...string) {
	if m.alerts == nil {
		m.alerts = make(map[string]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the Alert entity.
func (m *SessionMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the Alert entity was cleared.
func (m *SessionMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the Alert entity by IDs.
func (m *SessionMutation) RemoveAlertIDs(ids ...string) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the Alert entity.
func (m *SessionMutation) RemovedAlertsIDs() (ids []string) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *SessionMutation) AlertsIDs() (ids []string) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *SessionMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// SetBriefID sets the "brief" edge to the Brief entity by id.
func (m *SessionMutation) SetBriefID(id string) {
	m.brief = &id
}

// ClearBrief clears the "brief" edge to the Brief entity.
func (m *SessionMutation) ClearBrief() {
	m.clearedbrief = true
}

// BriefCleared reports if the "brief" edge to the Brief entity was cleared.
func (m *SessionMutation) BriefCleared() bool {
	return m.clearedbrief
}

// BriefID returns the "brief" edge ID in the mutation.
func (m *SessionMutation) BriefID() (id string, exists bool) {
	if m.brief != nil {
		return *m.brief, true
	}
	return
}

// BriefIDs returns the "brief" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BriefID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) BriefIDs() (ids []string) {
	if id := m.brief; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBrief resets all changes to the "brief" edge.
func (m *SessionMutation) ResetBrief() {
	m.brief = nil
	m.clearedbrief = false
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.legal_case != nil {
		fields = append(fields, session.FieldCaseID)
	}
	if m.witness != nil {
		fields = append(fields, session.FieldWitnessID)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.aggression_level != nil {
		fields = append(fields, session.FieldAggressionLevel)
	}
	if m.focus_areas != nil {
		fields = append(fields, session.FieldFocusAreas)
	}
	if m.duration_minutes != nil {
		fields = append(fields, session.FieldDurationMinutes)
	}
	if m.current_topic != nil {
		fields = append(fields, session.FieldCurrentTopic)
	}
	if m.objection_copilot_enabled != nil {
		fields = append(fields, session.FieldObjectionCopilotEnabled)
	}
	if m.sentinel_enabled != nil {
		fields = append(fields, session.FieldSentinelEnabled)
	}
	if m.brief_status != nil {
		fields = append(fields, session.FieldBriefStatus)
	}
	if m.witness_token != nil {
		fields = append(fields, session.FieldWitnessToken)
	}
	if m.question_count != nil {
		fields = append(fields, session.FieldQuestionCount)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.paused_at != nil {
		fields = append(fields, session.FieldPausedAt)
	}
	if m.total_pause_ms != nil {
		fields = append(fields, session.FieldTotalPauseMs)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, session.FieldLastInteractionAt)
	}
	if m.session_score != nil {
		fields = append(fields, session.FieldSessionScore)
	}
	if m.consistency_rate != nil {
		fields = append(fields, session.FieldConsistencyRate)
	}
	if m.prior_weak_areas != nil {
		fields = append(fields, session.FieldPriorWeakAreas)
	}
	if m.external_context_id != nil {
		fields = append(fields, session.FieldExternalContextID)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCaseID:
		return m.CaseID()
	case session.FieldWitnessID:
		return m.WitnessID()
	case session.FieldStatus:
		return m.Status()
	case session.FieldAggressionLevel:
		return m.AggressionLevel()
	case session.FieldFocusAreas:
		return m.FocusAreas()
	case session.FieldDurationMinutes:
		return m.DurationMinutes()
	case session.FieldCurrentTopic:
		return m.CurrentTopic()
	case session.FieldObjectionCopilotEnabled:
		return m.ObjectionCopilotEnabled()
	case session.FieldSentinelEnabled:
		return m.SentinelEnabled()
	case session.FieldBriefStatus:
		return m.BriefStatus()
	case session.FieldWitnessToken:
		return m.WitnessToken()
	case session.FieldQuestionCount:
		return m.QuestionCount()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldEndedAt:
		return m.EndedAt()
	case session.FieldPausedAt:
		return m.PausedAt()
	case session.FieldTotalPauseMs:
		return m.TotalPauseMs()
	case session.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case session.FieldSessionScore:
		return m.SessionScore()
	case session.FieldConsistencyRate:
		return m.ConsistencyRate()
	case session.FieldPriorWeakAreas:
		return m.PriorWeakAreas()
	case session.FieldExternalContextID:
		return m.ExternalContextID()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldCaseID:
		return m.OldCaseID(ctx)
	case session.FieldWitnessID:
		return m.OldWitnessID(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldAggressionLevel:
		return m.OldAggressionLevel(ctx)
	case session.FieldFocusAreas:
		return m.OldFocusAreas(ctx)
	case session.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case session.FieldCurrentTopic:
		return m.OldCurrentTopic(ctx)
	case session.FieldObjectionCopilotEnabled:
		return m.OldObjectionCopilotEnabled(ctx)
	case session.FieldSentinelEnabled:
		return m.OldSentinelEnabled(ctx)
	case session.FieldBriefStatus:
		return m.OldBriefStatus(ctx)
	case session.FieldWitnessToken:
		return m.OldWitnessToken(ctx)
	case session.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case session.FieldPausedAt:
		return m.OldPausedAt(ctx)
	case session.FieldTotalPauseMs:
		return m.OldTotalPauseMs(ctx)
	case session.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case session.FieldSessionScore:
		return m.OldSessionScore(ctx)
	case session.FieldConsistencyRate:
		return m.OldConsistencyRate(ctx)
	case session.FieldPriorWeakAreas:
		return m.OldPriorWeakAreas(ctx)
	case session.FieldExternalContextID:
		return m.OldExternalContextID(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case session.FieldWitnessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWitnessID(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldAggressionLevel:
		v, ok := value.(session.AggressionLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggressionLevel(v)
		return nil
	case session.FieldFocusAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusAreas(v)
		return nil
	case session.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case session.FieldCurrentTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTopic(v)
		return nil
	case session.FieldObjectionCopilotEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectionCopilotEnabled(v)
		return nil
	case session.FieldSentinelEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentinelEnabled(v)
		return nil
	case session.FieldBriefStatus:
		v, ok := value.(session.BriefStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBriefStatus(v)
		return nil
	case session.FieldWitnessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWitnessToken(v)
		return nil
	case session.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case session.FieldPausedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausedAt(v)
		return nil
	case session.FieldTotalPauseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPauseMs(v)
		return nil
	case session.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case session.FieldSessionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionScore(v)
		return nil
	case session.FieldConsistencyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsistencyRate(v)
		return nil
	case session.FieldPriorWeakAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorWeakAreas(v)
		return nil
	case session.FieldExternalContextID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalContextID(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, session.FieldDurationMinutes)
	}
	if m.addquestion_count != nil {
		fields = append(fields, session.FieldQuestionCount)
	}
	if m.addtotal_pause_ms != nil {
		fields = append(fields, session.FieldTotalPauseMs)
	}
	if m.addsession_score != nil {
		fields = append(fields, session.FieldSessionScore)
	}
	if m.addconsistency_rate != nil {
		fields = append(fields, session.FieldConsistencyRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case session.FieldQuestionCount:
		return m.AddedQuestionCount()
	case session.FieldTotalPauseMs:
		return m.AddedTotalPauseMs()
	case session.FieldSessionScore:
		return m.AddedSessionScore()
	case session.FieldConsistencyRate:
		return m.AddedConsistencyRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case session.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	case session.FieldTotalPauseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPauseMs(v)
		return nil
	case session.FieldSessionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionScore(v)
		return nil
	case session.FieldConsistencyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsistencyRate(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldFocusAreas) {
		fields = append(fields, session.FieldFocusAreas)
	}
	if m.FieldCleared(session.FieldCurrentTopic) {
		fields = append(fields, session.FieldCurrentTopic)
	}
	if m.FieldCleared(session.FieldStartedAt) {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.FieldCleared(session.FieldEndedAt) {
		fields = append(fields, session.FieldEndedAt)
	}
	if m.FieldCleared(session.FieldPausedAt) {
		fields = append(fields, session.FieldPausedAt)
	}
	if m.FieldCleared(session.FieldLastInteractionAt) {
		fields = append(fields, session.FieldLastInteractionAt)
	}
	if m.FieldCleared(session.FieldSessionScore) {
		fields = append(fields, session.FieldSessionScore)
	}
	if m.FieldCleared(session.FieldConsistencyRate) {
		fields = append(fields, session.FieldConsistencyRate)
	}
	if m.FieldCleared(session.FieldPriorWeakAreas) {
		fields = append(fields, session.FieldPriorWeakAreas)
	}
	if m.FieldCleared(session.FieldExternalContextID) {
		fields = append(fields, session.FieldExternalContextID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldFocusAreas:
		m.ClearFocusAreas()
		return nil
	case session.FieldCurrentTopic:
		m.ClearCurrentTopic()
		return nil
	case session.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case session.FieldPausedAt:
		m.ClearPausedAt()
		return nil
	case session.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case session.FieldSessionScore:
		m.ClearSessionScore()
		return nil
	case session.FieldConsistencyRate:
		m.ClearConsistencyRate()
		return nil
	case session.FieldPriorWeakAreas:
		m.ClearPriorWeakAreas()
		return nil
	case session.FieldExternalContextID:
		m.ClearExternalContextID()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldCaseID:
		m.ResetCaseID()
		return nil
	case session.FieldWitnessID:
		m.ResetWitnessID()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldAggressionLevel:
		m.ResetAggressionLevel()
		return nil
	case session.FieldFocusAreas:
		m.ResetFocusAreas()
		return nil
	case session.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case session.FieldCurrentTopic:
		m.ResetCurrentTopic()
		return nil
	case session.FieldObjectionCopilotEnabled:
		m.ResetObjectionCopilotEnabled()
		return nil
	case session.FieldSentinelEnabled:
		m.ResetSentinelEnabled()
		return nil
	case session.FieldBriefStatus:
		m.ResetBriefStatus()
		return nil
	case session.FieldWitnessToken:
		m.ResetWitnessToken()
		return nil
	case session.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case session.FieldPausedAt:
		m.ResetPausedAt()
		return nil
	case session.FieldTotalPauseMs:
		m.ResetTotalPauseMs()
		return nil
	case session.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case session.FieldSessionScore:
		m.ResetSessionScore()
		return nil
	case session.FieldConsistencyRate:
		m.ResetConsistencyRate()
		return nil
	case session.FieldPriorWeakAreas:
		m.ResetPriorWeakAreas()
		return nil
	case session.FieldExternalContextID:
		m.ResetExternalContextID()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.legal_case != nil {
		edges = append(edges, session.EdgeLegalCase)
	}
	if m.witness != nil {
		edges = append(edges, session.EdgeWitness)
	}
	if m.events != nil {
		edges = append(edges, session.EdgeEvents)
	}
	if m.alerts != nil {
		edges = append(edges, session.EdgeAlerts)
	}
	if m.brief != nil {
		edges = append(edges, session.EdgeBrief)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeLegalCase:
		if id := m.legal_case; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeWitness:
		if id := m.witness; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeBrief:
		if id := m.brief; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedevents != nil {
		edges = append(edges, session.EdgeEvents)
	}
	if m.removedalerts != nil {
		edges = append(edges, session.EdgeAlerts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedlegal_case {
		edges = append(edges, session.EdgeLegalCase)
	}
	if m.clearedwitness {
		edges = append(edges, session.EdgeWitness)
	}
	if m.clearedevents {
		edges = append(edges, session.EdgeEvents)
	}
	if m.clearedalerts {
		edges = append(edges, session.EdgeAlerts)
	}
	if m.clearedbrief {
		edges = append(edges, session.EdgeBrief)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeLegalCase:
		return m.clearedlegal_case
	case session.EdgeWitness:
		return m.clearedwitness
	case session.EdgeEvents:
		return m.clearedevents
	case session.EdgeAlerts:
		return m.clearedalerts
	case session.EdgeBrief:
		return m.clearedbrief
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeLegalCase:
		m.ClearLegalCase()
		return nil
	case session.EdgeWitness:
		m.ClearWitness()
		return nil
	case session.EdgeBrief:
		m.ClearBrief()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeLegalCase:
		m.ResetLegalCase()
		return nil
	case session.EdgeWitness:
		m.ResetWitness()
		return nil
	case session.EdgeEvents:
		m.ResetEvents()
		return nil
	case session.EdgeAlerts:
		m.ResetAlerts()
		return nil
	case session.EdgeBrief:
		m.ResetBrief()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	seq            *int
	addseq         *int
	event_type     *sessionevent.EventType
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*SessionEvent, error)
	predicates     []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id string) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionEvent entities.
func (m *SessionEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session = nil
}

// SetSeq sets the "seq" field.
func (m *SessionEventMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *SessionEventMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *SessionEventMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *SessionEventMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *SessionEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetEventType sets the "event_type" field.
func (m *SessionEventMutation) SetEventType(st sessionevent.EventType) {
	m.event_type = &st
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SessionEventMutation) EventType() (r sessionevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldEventType(ctx context.Context) (v sessionevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SessionEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *SessionEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SessionEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *SessionEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[sessionevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *SessionEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *SessionEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, sessionevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *SessionEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *SessionEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.seq != nil {
		fields = append(fields, sessionevent.FieldSeq)
	}
	if m.event_type != nil {
		fields = append(fields, sessionevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, sessionevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, sessionevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldSeq:
		return m.Seq()
	case sessionevent.FieldEventType:
		return m.EventType()
	case sessionevent.FieldPayload:
		return m.Payload()
	case sessionevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldSeq:
		return m.OldSeq(ctx)
	case sessionevent.FieldEventType:
		return m.OldEventType(ctx)
	case sessionevent.FieldPayload:
		return m.OldPayload(ctx)
	case sessionevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case sessionevent.FieldEventType:
		v, ok := value.(sessionevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case sessionevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case sessionevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, sessionevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldPayload) {
		fields = append(fields, sessionevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldSeq:
		m.ResetSeq()
		return nil
	case sessionevent.FieldEventType:
		m.ResetEventType()
		return nil
	case sessionevent.FieldPayload:
		m.ResetPayload()
		return nil
	case sessionevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	switch name {
	case sessionevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	switch name {
	case sessionevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	email         *string
	password_hash *string
	full_name     *string
	role          *user.Role
	is_active     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	firm          *string
	clearedfirm   bool
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirmID sets the "firm_id" field.
func (m *UserMutation) SetFirmID(s string) {
	m.firm = &s
}

// FirmID returns the value of the "firm_id" field in the mutation.
func (m *UserMutation) FirmID() (r string, exists bool) {
	v := m.firm
	if v == nil {
		return
	}
	return *v, true
}

// OldFirmID returns the old "firm_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirmID: %w", err)
	}
	return oldValue.FirmID, nil
}

// ResetFirmID resets all changes to the "firm_id" field.
func (m *UserMutation) ResetFirmID() {
	m.firm = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetFullName sets the "full_name" field.
func (m *UserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *UserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *UserMutation) ResetFullName() {
	m.full_name = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFirm clears the "firm" edge to the Firm entity.
func (m *UserMutation) ClearFirm() {
	m.clearedfirm = true
	m.clearedFields[user.FieldFirmID] = struct{}{}
}

// FirmCleared reports if the "firm" edge to the Firm entity was cleared.
func (m *UserMutation) FirmCleared() bool {
	return m.clearedfirm
}

// FirmIDs returns the "firm" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FirmID instead. It exists only for internal usage by the builders.
func (m *UserMutation) FirmIDs() (ids []string) {
	if id := m.firm; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFirm resets all changes to the "firm" edge.
func (m *UserMutation) ResetFirm() {
	m.firm = nil
	m.clearedfirm = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.firm != nil {
		fields = append(fields, user.FieldFirmID)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.full_name != nil {
		fields = append(fields, user.FieldFullName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFirmID:
		return m.FirmID()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldFullName:
		return m.FullName()
	case user.FieldRole:
		return m.Role()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldFirmID:
		return m.OldFirmID(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldFullName:
		return m.OldFullName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldFirmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirmID(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldFirmID:
		m.ResetFirmID()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldFullName:
		m.ResetFullName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.firm != nil {
		edges = append(edges, user.EdgeFirm)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeFirm:
		if id := m.firm; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfirm {
		edges = append(edges, user.EdgeFirm)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeFirm:
		return m.clearedfirm
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeFirm:
		m.ClearFirm()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeFirm:
		m.ResetFirm()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WitnessMutation represents an operation that mutates the Witness nodes in the graph.
type WitnessMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	email             *string
	role              *string
	session_count     *int
	addsession_count  *int
	latest_score      *float64
	addlatest_score   *float64
	baseline_score    *float64
	addbaseline_score *float64
	plateau_detected  *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	legal_case        *string
	clearedlegal_case bool
	sessions          map[string]struct{}
	removedsessions   map[string]struct{}
	clearedsessions   bool
	done              bool
	oldValue          func(context.Context) (*Witness, error)
	predicates        []predicate.Witness
}

var _ ent.Mutation = (*WitnessMutation)(nil)

// witnessOption allows management of the mutation configuration using functional options.
type witnessOption func(*WitnessMutation)

// newWitnessMutation creates new mutation for the Witness entity.
func newWitnessMutation(c config, op Op, opts ...witnessOption) *WitnessMutation {
	m := &WitnessMutation{
		config:        c,
		op:            op,
		typ:           TypeWitness,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWitnessID sets the ID field of the mutation.
func withWitnessID(id string) witnessOption {
	return func(m *WitnessMutation) {
		var (
			err   error
			once  sync.Once
			value *Witness
		)
		m.oldValue = func(ctx context.Context) (*Witness, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Witness.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWitness sets the old Witness of the mutation.
func withWitness(node *Witness) witnessOption {
	return func(m *WitnessMutation) {
		m.oldValue = func(context.Context) (*Witness, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WitnessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WitnessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Witness entities.
func (m *WitnessMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WitnessMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WitnessMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Witness.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *WitnessMutation) SetCaseID(s string) {
	m.legal_case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *WitnessMutation) CaseID() (r string, exists bool) {
	v := m.legal_case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *WitnessMutation) ResetCaseID() {
	m.legal_case = nil
}

// SetName sets the "name" field.
func (m *WitnessMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WitnessMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WitnessMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *WitnessMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *WitnessMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *WitnessMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[witness.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *WitnessMutation) EmailCleared() bool {
	_, ok := m.clearedFields[witness.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *WitnessMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, witness.FieldEmail)
}

// SetRole sets the "role" field.
func (m *WitnessMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *WitnessMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *WitnessMutation) ClearRole() {
	m.role = nil
	m.clearedFields[witness.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *WitnessMutation) RoleCleared() bool {
	_, ok := m.clearedFields[witness.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *WitnessMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, witness.FieldRole)
}

// SetSessionCount sets the "session_count" field.
func (m *WitnessMutation) SetSessionCount(i int) {
	m.session_count = &i
	m.addsession_count = nil
}

// SessionCount returns the value of the "session_count" field in the mutation.
func (m *WitnessMutation) SessionCount() (r int, exists bool) {
	v := m.session_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCount returns the old "session_count" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldSessionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCount: %w", err)
	}
	return oldValue.SessionCount, nil
}

// AddSessionCount adds i to the "session_count" field.
func (m *WitnessMutation) AddSessionCount(i int) {
	if m.addsession_count != nil {
		*m.addsession_count += i
	} else {
		m.addsession_count = &i
	}
}

// AddedSessionCount returns the value that was added to the "session_count" field in this mutation.
func (m *WitnessMutation) AddedSessionCount() (r int, exists bool) {
	v := m.addsession_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionCount resets all changes to the "session_count" field.
func (m *WitnessMutation) ResetSessionCount() {
	m.session_count = nil
	m.addsession_count = nil
}

// SetLatestScore sets the "latest_score" field.
func (m *WitnessMutation) SetLatestScore(f float64) {
	m.latest_score = &f
	m.addlatest_score = nil
}

// LatestScore returns the value of the "latest_score" field in the mutation.
func (m *WitnessMutation) LatestScore() (r float64, exists bool) {
	v := m.latest_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestScore returns the old "latest_score" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldLatestScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestScore: %w", err)
	}
	return oldValue.LatestScore, nil
}

// AddLatestScore adds f to the "latest_score" field.
func (m *WitnessMutation) AddLatestScore(f float64) {
	if m.addlatest_score != nil {
		*m.addlatest_score += f
	} else {
		m.addlatest_score = &f
	}
}

// AddedLatestScore returns the value that was added to the "latest_score" field in this mutation.
func (m *WitnessMutation) AddedLatestScore() (r float64, exists bool) {
	v := m.addlatest_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatestScore clears the value of the "latest_score" field.
func (m *WitnessMutation) ClearLatestScore() {
	m.latest_score = nil
	m.addlatest_score = nil
	m.clearedFields[witness.FieldLatestScore] = struct{}{}
}

// LatestScoreCleared returns if the "latest_score" field was cleared in this mutation.
func (m *WitnessMutation) LatestScoreCleared() bool {
	_, ok := m.clearedFields[witness.FieldLatestScore]
	return ok
}

// ResetLatestScore resets all changes to the "latest_score" field.
func (m *WitnessMutation) ResetLatestScore() {
	m.latest_score = nil
	m.addlatest_score = nil
	delete(m.clearedFields, witness.FieldLatestScore)
}

// SetBaselineScore sets the "baseline_score" field.
func (m *WitnessMutation) SetBaselineScore(f float64) {
	m.baseline_score = &f
	m.addbaseline_score = nil
}

// BaselineScore returns the value of the "baseline_score" field in the mutation.
func (m *WitnessMutation) BaselineScore() (r float64, exists bool) {
	v := m.baseline_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBaselineScore returns the old "baseline_score" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldBaselineScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaselineScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaselineScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaselineScore: %w", err)
	}
	return oldValue.BaselineScore, nil
}

// AddBaselineScore adds f to the "baseline_score" field.
func (m *WitnessMutation) AddBaselineScore(f float64) {
	if m.addbaseline_score != nil {
		*m.addbaseline_score += f
	} else {
		m.addbaseline_score = &f
	}
}

// AddedBaselineScore returns the value that was added to the "baseline_score" field in this mutation.
func (m *WitnessMutation) AddedBaselineScore() (r float64, exists bool) {
	v := m.addbaseline_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearBaselineScore clears the value of the "baseline_score" field.
func (m *WitnessMutation) ClearBaselineScore() {
	m.baseline_score = nil
	m.addbaseline_score = nil
	m.clearedFields[witness.FieldBaselineScore] = struct{}{}
}

// BaselineScoreCleared returns if the "baseline_score" field was cleared in this mutation.
func (m *WitnessMutation) BaselineScoreCleared() bool {
	_, ok := m.clearedFields[witness.FieldBaselineScore]
	return ok
}

// ResetBaselineScore resets all changes to the "baseline_score" field.
func (m *WitnessMutation) ResetBaselineScore() {
	m.baseline_score = nil
	m.addbaseline_score = nil
	delete(m.clearedFields, witness.FieldBaselineScore)
}

// SetPlateauDetected sets the "plateau_detected" field.
func (m *WitnessMutation) SetPlateauDetected(b bool) {
	m.plateau_detected = &b
}

// PlateauDetected returns the value of the "plateau_detected" field in the mutation.
func (m *WitnessMutation) PlateauDetected() (r bool, exists bool) {
	v := m.plateau_detected
	if v == nil {
		return
	}
	return *v, true
}

// OldPlateauDetected returns the old "plateau_detected" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldPlateauDetected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlateauDetected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlateauDetected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlateauDetected: %w", err)
	}
	return oldValue.PlateauDetected, nil
}

// ResetPlateauDetected resets all changes to the "plateau_detected" field.
func (m *WitnessMutation) ResetPlateauDetected() {
	m.plateau_detected = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WitnessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WitnessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Witness entity.
// If the Witness object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WitnessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WitnessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLegalCaseID sets the "legal_case" edge to the LegalCase entity by id.
func (m *WitnessMutation) SetLegalCaseID(id string) {
	m.legal_case = &id
}

// ClearLegalCase clears the "legal_case" edge to the LegalCase entity.
func (m *WitnessMutation) ClearLegalCase() {
	m.clearedlegal_case = true
	m.clearedFields[witness.FieldCaseID] = struct{}{}
}

// LegalCaseCleared reports if the "legal_case" edge to the LegalCase entity was cleared.
func (m *WitnessMutation) LegalCaseCleared() bool {
	return m.clearedlegal_case
}

// LegalCaseID returns the "legal_case" edge ID in the mutation.
func (m *WitnessMutation) LegalCaseID() (id string, exists bool) {
	if m.legal_case != nil {
		return *m.legal_case, true
	}
	return
}

// LegalCaseIDs returns the "legal_case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LegalCaseID instead. It exists only for internal usage by the builders.
func (m *WitnessMutation) LegalCaseIDs() (ids []string) {
	if id := m.legal_case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLegalCase resets all changes to the "legal_case" edge.
func (m *WitnessMutation) ResetLegalCase() {
	m.legal_case = nil
	m.clearedlegal_case = false
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *WitnessMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *WitnessMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *WitnessMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *WitnessMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *WitnessMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *WitnessMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *WitnessMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the WitnessMutation builder.
func (m *WitnessMutation) Where(ps ...predicate.Witness) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WitnessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WitnessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Witness, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WitnessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WitnessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Witness).
func (m *WitnessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WitnessMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.legal_case != nil {
		fields = append(fields, witness.FieldCaseID)
	}
	if m.name != nil {
		fields = append(fields, witness.FieldName)
	}
	if m.email != nil {
		fields = append(fields, witness.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, witness.FieldRole)
	}
	if m.session_count != nil {
		fields = append(fields, witness.FieldSessionCount)
	}
	if m.latest_score != nil {
		fields = append(fields, witness.FieldLatestScore)
	}
	if m.baseline_score != nil {
		fields = append(fields, witness.FieldBaselineScore)
	}
	if m.plateau_detected != nil {
		fields = append(fields, witness.FieldPlateauDetected)
	}
	if m.created_at != nil {
		fields = append(fields, witness.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WitnessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case witness.FieldCaseID:
		return m.CaseID()
	case witness.FieldName:
		return m.Name()
	case witness.FieldEmail:
		return m.Email()
	case witness.FieldRole:
		return m.Role()
	case witness.FieldSessionCount:
		return m.SessionCount()
	case witness.FieldLatestScore:
		return m.LatestScore()
	case witness.FieldBaselineScore:
		return m.BaselineScore()
	case witness.FieldPlateauDetected:
		return m.PlateauDetected()
	case witness.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WitnessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case witness.FieldCaseID:
		return m.OldCaseID(ctx)
	case witness.FieldName:
		return m.OldName(ctx)
	case witness.FieldEmail:
		return m.OldEmail(ctx)
	case witness.FieldRole:
		return m.OldRole(ctx)
	case witness.FieldSessionCount:
		return m.OldSessionCount(ctx)
	case witness.FieldLatestScore:
		return m.OldLatestScore(ctx)
	case witness.FieldBaselineScore:
		return m.OldBaselineScore(ctx)
	case witness.FieldPlateauDetected:
		return m.OldPlateauDetected(ctx)
	case witness.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Witness field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WitnessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case witness.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case witness.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case witness.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case witness.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case witness.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCount(v)
		return nil
	case witness.FieldLatestScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestScore(v)
		return nil
	case witness.FieldBaselineScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaselineScore(v)
		return nil
	case witness.FieldPlateauDetected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlateauDetected(v)
		return nil
	case witness.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Witness field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WitnessMutation) AddedFields() []string {
	var fields []string
	if m.addsession_count != nil {
		fields = append(fields, witness.FieldSessionCount)
	}
	if m.addlatest_score != nil {
		fields = append(fields, witness.FieldLatestScore)
	}
	if m.addbaseline_score != nil {
		fields = append(fields, witness.FieldBaselineScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WitnessMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case witness.FieldSessionCount:
		return m.AddedSessionCount()
	case witness.FieldLatestScore:
		return m.AddedLatestScore()
	case witness.FieldBaselineScore:
		return m.AddedBaselineScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WitnessMutation) AddField(name string, value ent.Value) error {
	switch name {
	case witness.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionCount(v)
		return nil
	case witness.FieldLatestScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatestScore(v)
		return nil
	case witness.FieldBaselineScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBaselineScore(v)
		return nil
	}
	return fmt.Errorf("unknown Witness numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WitnessMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(witness.FieldEmail) {
		fields = append(fields, witness.FieldEmail)
	}
	if m.FieldCleared(witness.FieldRole) {
		fields = append(fields, witness.FieldRole)
	}
	if m.FieldCleared(witness.FieldLatestScore) {
		fields = append(fields, witness.FieldLatestScore)
	}
	if m.FieldCleared(witness.FieldBaselineScore) {
		fields = append(fields, witness.FieldBaselineScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WitnessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WitnessMutation) ClearField(name string) error {
	switch name {
	case witness.FieldEmail:
		m.ClearEmail()
		return nil
	case witness.FieldRole:
		m.ClearRole()
		return nil
	case witness.FieldLatestScore:
		m.ClearLatestScore()
		return nil
	case witness.FieldBaselineScore:
		m.ClearBaselineScore()
		return nil
	}
	return fmt.Errorf("unknown Witness nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WitnessMutation) ResetField(name string) error {
	switch name {
	case witness.FieldCaseID:
		m.ResetCaseID()
		return nil
	case witness.FieldName:
		m.ResetName()
		return nil
	case witness.FieldEmail:
		m.ResetEmail()
		return nil
	case witness.FieldRole:
		m.ResetRole()
		return nil
	case witness.FieldSessionCount:
		m.ResetSessionCount()
		return nil
	case witness.FieldLatestScore:
		m.ResetLatestScore()
		return nil
	case witness.FieldBaselineScore:
		m.ResetBaselineScore()
		return nil
	case witness.FieldPlateauDetected:
		m.ResetPlateauDetected()
		return nil
	case witness.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Witness field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WitnessMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.legal_case != nil {
		edges = append(edges, witness.EdgeLegalCase)
	}
	if m.sessions != nil {
		edges = append(edges, witness.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WitnessMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case witness.EdgeLegalCase:
		if id := m.legal_case; id != nil {
			return []ent.Value{*id}
		}
	case witness.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WitnessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, witness.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WitnessMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case witness.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WitnessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlegal_case {
		edges = append(edges, witness.EdgeLegalCase)
	}
	if m.clearedsessions {
		edges = append(edges, witness.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WitnessMutation) EdgeCleared(name string) bool {
	switch name {
	case witness.EdgeLegalCase:
		return m.clearedlegal_case
	case witness.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WitnessMutation) ClearEdge(name string) error {
	switch name {
	case witness.EdgeLegalCase:
		m.ClearLegalCase()
		return nil
	}
	return fmt.Errorf("unknown Witness unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WitnessMutation) ResetEdge(name string) error {
	switch name {
	case witness.EdgeLegalCase:
		m.ResetLegalCase()
		return nil
	case witness.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Witness edge %s", name)
}
