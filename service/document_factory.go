package service

import "bank-documents/domain"

// DocumentFactory builds the documents of one client category. Adding a
// category means adding a factory; adding a kind means adding a method here.
type DocumentFactory interface {
	AccountStatement() DocumentTemplate
	AccountAttestation() DocumentTemplate
	TaxAttestation() DocumentTemplate
}

type IndividualFactory struct{}

func (IndividualFactory) AccountStatement() DocumentTemplate {
	return newIndividualAccountStatement()
}

func (IndividualFactory) AccountAttestation() DocumentTemplate {
	return newIndividualAccountAttestation()
}

func (IndividualFactory) TaxAttestation() DocumentTemplate {
	return newIndividualTaxAttestation()
}

type ProfessionalFactory struct{}

func (ProfessionalFactory) AccountStatement() DocumentTemplate {
	return newProfessionalAccountStatement()
}

func (ProfessionalFactory) AccountAttestation() DocumentTemplate {
	return newProfessionalAccountAttestation()
}

func (ProfessionalFactory) TaxAttestation() DocumentTemplate {
	return newProfessionalTaxAttestation()
}

var (
	_ DocumentFactory = IndividualFactory{}
	_ DocumentFactory = ProfessionalFactory{}
)

// FactoryFor returns the factory bound to category.
func FactoryFor(category domain.ClientCategory) (DocumentFactory, error) {
	switch category {
	case domain.Individual:
		return IndividualFactory{}, nil
	case domain.Professional:
		return ProfessionalFactory{}, nil
	}
	return nil, &InvalidRequestError{Field: "client category", Value: string(category)}
}

func templateFor(factory DocumentFactory, kind domain.DocumentKind) (DocumentTemplate, error) {
	switch kind {
	case domain.AccountStatement:
		return factory.AccountStatement(), nil
	case domain.AccountAttestation:
		return factory.AccountAttestation(), nil
	case domain.TaxAttestation:
		return factory.TaxAttestation(), nil
	}
	return nil, &InvalidRequestError{Field: "document kind", Value: string(kind)}
}
