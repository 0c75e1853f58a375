// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// Brief is the predicate function for brief builders.
type Brief func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Firm is the predicate function for firm builders.
type Firm func(*sql.Selector)

// LegalCase is the predicate function for legalcase builders.
type LegalCase func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Witness is the predicate function for witness builders.
type Witness func(*sql.Selector)
