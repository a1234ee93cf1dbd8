package domain

import (
	"strings"
	"time"
)

// ClientCategory selects which field set a document carries.
type ClientCategory string

const (
	Individual   ClientCategory = "Individual"
	Professional ClientCategory = "Professional"
)

// DocumentKind is one of the three document types the bank issues.
type DocumentKind string

const (
	AccountStatement   DocumentKind = "AccountStatement"
	AccountAttestation DocumentKind = "AccountAttestation"
	TaxAttestation     DocumentKind = "TaxAttestation"
)

// ClientCategories lists every valid category.
var ClientCategories = []ClientCategory{Individual, Professional}

// DocumentKinds lists every valid document kind.
var DocumentKinds = []DocumentKind{AccountStatement, AccountAttestation, TaxAttestation}

// ParseClientCategory maps a wire value to a category. The legacy names
// "Particulier" and "Professionnel" are still accepted.
func ParseClientCategory(s string) (ClientCategory, bool) {
	switch strings.TrimSpace(s) {
	case "Individual", "Particulier":
		return Individual, true
	case "Professional", "Professionnel":
		return Professional, true
	}
	return "", false
}

// ParseDocumentKind maps a wire value to a kind. The legacy names "RIB",
// "Attestation" and "AttestationFiscale" are still accepted.
func ParseDocumentKind(s string) (DocumentKind, bool) {
	switch strings.TrimSpace(s) {
	case "AccountStatement", "RIB":
		return AccountStatement, true
	case "AccountAttestation", "Attestation":
		return AccountAttestation, true
	case "TaxAttestation", "AttestationFiscale":
		return TaxAttestation, true
	}
	return "", false
}

type GeneratedDocument struct {
	Kind     DocumentKind   `json:"kind"`
	Category ClientCategory `json:"category"`
	Content  string         `json:"content"`
	IssuedAt time.Time      `json:"issuedAt"`
}
