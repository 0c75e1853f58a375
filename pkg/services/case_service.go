package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/verdictlabs/verdict/ent"
	"github.com/verdictlabs/verdict/ent/legalcase"
	"github.com/verdictlabs/verdict/ent/witness"
)

// CaseService manages case files and their witnesses.
type CaseService struct {
	client *ent.Client
}

// NewCaseService creates a new CaseService
func NewCaseService(client *ent.Client) *CaseService {
	return &CaseService{client: client}
}

// CreateCaseRequest contains fields for opening a case file.
type CreateCaseRequest struct {
	CaseName      string `json:"case_name"`
	CaseType      string `json:"case_type,omitempty"`
	OpposingParty string `json:"opposing_party,omitempty"`
	CaseNumber    string `json:"case_number,omitempty"`
	Description   string `json:"description,omitempty"`
	ExhibitList   string `json:"exhibit_list,omitempty"`
}

// Create opens a case file for a firm. case_name and opposing_party are
// canonicalized before writing.
func (s *CaseService) Create(ctx context.Context, firmID string, req CreateCaseRequest) (*ent.LegalCase, error) {
	name := Canonicalize(req.CaseName)
	if name == "" {
		return nil, NewValidationError("case_name", "required")
	}

	builder := s.client.LegalCase.Create().
		SetID(uuid.New().String()).
		SetFirmID(firmID).
		SetCaseName(name).
		SetOpposingParty(Canonicalize(req.OpposingParty))

	if req.CaseType != "" {
		builder.SetCaseType(legalcase.CaseType(req.CaseType))
	}
	if req.CaseNumber != "" {
		builder.SetCaseNumber(req.CaseNumber)
	}
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.ExhibitList != "" {
		builder.SetExhibitList(req.ExhibitList)
	}

	lc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return lc, nil
}

// Get returns a case by ID scoped to the firm.
func (s *CaseService) Get(ctx context.Context, firmID, caseID string) (*ent.LegalCase, error) {
	lc, err := s.client.LegalCase.Query().
		Where(legalcase.IDEQ(caseID), legalcase.FirmIDEQ(firmID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return lc, nil
}

// List returns the firm's cases, newest first.
func (s *CaseService) List(ctx context.Context, firmID string) ([]*ent.LegalCase, error) {
	cases, err := s.client.LegalCase.Query().
		Where(legalcase.FirmIDEQ(firmID)).
		Order(ent.Desc(legalcase.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// AddWitness registers a deponent on a case.
func (s *CaseService) AddWitness(ctx context.Context, firmID, caseID, name, email, role string) (*ent.Witness, error) {
	name = Canonicalize(name)
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Firm scoping happens through the case lookup.
	if _, err := s.Get(ctx, firmID, caseID); err != nil {
		return nil, err
	}

	w, err := s.client.Witness.Create().
		SetID(uuid.New().String()).
		SetCaseID(caseID).
		SetName(name).
		SetEmail(email).
		SetRole(role).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create witness: %w", err)
	}
	return w, nil
}

// GetWitness returns a witness scoped to the firm via its case.
func (s *CaseService) GetWitness(ctx context.Context, firmID, witnessID string) (*ent.Witness, error) {
	w, err := s.client.Witness.Query().
		Where(
			witness.IDEQ(witnessID),
			witness.HasLegalCaseWith(legalcase.FirmIDEQ(firmID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get witness: %w", err)
	}
	return w, nil
}
