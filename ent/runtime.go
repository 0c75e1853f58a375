// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/verdictlabs/verdict/ent/alert"
	"github.com/verdictlabs/verdict/ent/brief"
	"github.com/verdictlabs/verdict/ent/document"
	"github.com/verdictlabs/verdict/ent/firm"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/schema"
	"github.com/verdictlabs/verdict/ent/session"
	"github.com/verdictlabs/verdict/ent/sessionevent"
	"github.com/verdictlabs/verdict/ent/user"
	"github.com/verdictlabs/verdict/ent/witness"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertFields[15].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	briefFields := schema.Brief{}.Fields()
	_ = briefFields
	// briefDescConfirmedFlags is the schema descriptor for confirmed_flags field.
	briefDescConfirmedFlags := briefFields[7].Descriptor()
	// brief.DefaultConfirmedFlags holds the default value on creation for the confirmed_flags field.
	brief.DefaultConfirmedFlags = briefDescConfirmedFlags.Default.(int)
	// briefDescObjectionCount is the schema descriptor for objection_count field.
	briefDescObjectionCount := briefFields[8].Descriptor()
	// brief.DefaultObjectionCount holds the default value on creation for the objection_count field.
	brief.DefaultObjectionCount = briefDescObjectionCount.Default.(int)
	// briefDescComposureAlerts is the schema descriptor for composure_alerts field.
	briefDescComposureAlerts := briefFields[9].Descriptor()
	// brief.DefaultComposureAlerts holds the default value on creation for the composure_alerts field.
	brief.DefaultComposureAlerts = briefDescComposureAlerts.Default.(int)
	// briefDescCreatedAt is the schema descriptor for created_at field.
	briefDescCreatedAt := briefFields[16].Descriptor()
	// brief.DefaultCreatedAt holds the default value on creation for the created_at field.
	brief.DefaultCreatedAt = briefDescCreatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[2].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescDocType is the schema descriptor for doc_type field.
	documentDescDocType := documentFields[5].Descriptor()
	// document.DefaultDocType holds the default value on creation for the doc_type field.
	document.DefaultDocType = documentDescDocType.Default.(string)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[13].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	firmFields := schema.Firm{}.Fields()
	_ = firmFields
	// firmDescName is the schema descriptor for name field.
	firmDescName := firmFields[1].Descriptor()
	// firm.NameValidator is a validator for the "name" field. It is called by the builders before save.
	firm.NameValidator = firmDescName.Validators[0].(func(string) error)
	// firmDescRetentionDays is the schema descriptor for retention_days field.
	firmDescRetentionDays := firmFields[2].Descriptor()
	// firm.DefaultRetentionDays holds the default value on creation for the retention_days field.
	firm.DefaultRetentionDays = firmDescRetentionDays.Default.(int)
	// firmDescCreatedAt is the schema descriptor for created_at field.
	firmDescCreatedAt := firmFields[3].Descriptor()
	// firm.DefaultCreatedAt holds the default value on creation for the created_at field.
	firm.DefaultCreatedAt = firmDescCreatedAt.Default.(func() time.Time)
	legalcaseFields := schema.LegalCase{}.Fields()
	_ = legalcaseFields
	// legalcaseDescCaseName is the schema descriptor for case_name field.
	legalcaseDescCaseName := legalcaseFields[2].Descriptor()
	// legalcase.CaseNameValidator is a validator for the "case_name" field. It is called by the builders before save.
	legalcase.CaseNameValidator = legalcaseDescCaseName.Validators[0].(func(string) error)
	// legalcaseDescCreatedAt is the schema descriptor for created_at field.
	legalcaseDescCreatedAt := legalcaseFields[13].Descriptor()
	// legalcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	legalcase.DefaultCreatedAt = legalcaseDescCreatedAt.Default.(func() time.Time)
	// legalcaseDescUpdatedAt is the schema descriptor for updated_at field.
	legalcaseDescUpdatedAt := legalcaseFields[14].Descriptor()
	// legalcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	legalcase.DefaultUpdatedAt = legalcaseDescUpdatedAt.Default.(func() time.Time)
	// legalcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	legalcase.UpdateDefaultUpdatedAt = legalcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescDurationMinutes is the schema descriptor for duration_minutes field.
	sessionDescDurationMinutes := sessionFields[6].Descriptor()
	// session.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	session.DefaultDurationMinutes = sessionDescDurationMinutes.Default.(int)
	// sessionDescObjectionCopilotEnabled is the schema descriptor for objection_copilot_enabled field.
	sessionDescObjectionCopilotEnabled := sessionFields[8].Descriptor()
	// session.DefaultObjectionCopilotEnabled holds the default value on creation for the objection_copilot_enabled field.
	session.DefaultObjectionCopilotEnabled = sessionDescObjectionCopilotEnabled.Default.(bool)
	// sessionDescSentinelEnabled is the schema descriptor for sentinel_enabled field.
	sessionDescSentinelEnabled := sessionFields[9].Descriptor()
	// session.DefaultSentinelEnabled holds the default value on creation for the sentinel_enabled field.
	session.DefaultSentinelEnabled = sessionDescSentinelEnabled.Default.(bool)
	// sessionDescQuestionCount is the schema descriptor for question_count field.
	sessionDescQuestionCount := sessionFields[12].Descriptor()
	// session.DefaultQuestionCount holds the default value on creation for the question_count field.
	session.DefaultQuestionCount = sessionDescQuestionCount.Default.(int)
	// sessionDescTotalPauseMs is the schema descriptor for total_pause_ms field.
	sessionDescTotalPauseMs := sessionFields[16].Descriptor()
	// session.DefaultTotalPauseMs holds the default value on creation for the total_pause_ms field.
	session.DefaultTotalPauseMs = sessionDescTotalPauseMs.Default.(int64)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[22].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[23].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescCreatedAt is the schema descriptor for created_at field.
	sessioneventDescCreatedAt := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionevent.DefaultCreatedAt = sessioneventDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[6].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	witnessFields := schema.Witness{}.Fields()
	_ = witnessFields
	// witnessDescName is the schema descriptor for name field.
	witnessDescName := witnessFields[2].Descriptor()
	// witness.NameValidator is a validator for the "name" field. It is called by the builders before save.
	witness.NameValidator = witnessDescName.Validators[0].(func(string) error)
	// witnessDescSessionCount is the schema descriptor for session_count field.
	witnessDescSessionCount := witnessFields[5].Descriptor()
	// witness.DefaultSessionCount holds the default value on creation for the session_count field.
	witness.DefaultSessionCount = witnessDescSessionCount.Default.(int)
	// witnessDescPlateauDetected is the schema descriptor for plateau_detected field.
	witnessDescPlateauDetected := witnessFields[8].Descriptor()
	// witness.DefaultPlateauDetected holds the default value on creation for the plateau_detected field.
	witness.DefaultPlateauDetected = witnessDescPlateauDetected.Default.(bool)
	// witnessDescCreatedAt is the schema descriptor for created_at field.
	witnessDescCreatedAt := witnessFields[9].Descriptor()
	// witness.DefaultCreatedAt holds the default value on creation for the created_at field.
	witness.DefaultCreatedAt = witnessDescCreatedAt.Default.(func() time.Time)
}
