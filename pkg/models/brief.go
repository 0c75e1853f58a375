package models

import "github.com/verdictlabs/verdict/ent"

// WeaknessMap scores the five coaching dimensions, each 0..100.
type WeaknessMap struct {
	Composure          float64 `json:"composure"`
	TacticalDiscipline float64 `json:"tactical_discipline"`
	Professionalism    float64 `json:"professionalism"`
	Directness         float64 `json:"directness"`
	Consistency        float64 `json:"consistency"`
}

// AsMap converts to the JSON shape stored on the brief row.
func (w WeaknessMap) AsMap() map[string]float64 {
	return map[string]float64{
		"composure":           w.Composure,
		"tactical_discipline": w.TacticalDiscipline,
		"professionalism":     w.Professionalism,
		"directness":          w.Directness,
		"consistency":         w.Consistency,
	}
}

// BriefResponse wraps a Brief row plus a presigned PDF URL when available.
type BriefResponse struct {
	*ent.Brief
	PDFURL string `json:"pdf_url,omitempty"`
}

// ShareResponse is returned when a share link is minted.
type ShareResponse struct {
	ShareToken string `json:"share_token"`
	ShareURL   string `json:"share_url"`
	ExpiresAt  string `json:"expires_at"`
}
