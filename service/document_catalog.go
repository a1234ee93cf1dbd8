package service

import (
	"strconv"
	"time"

	"bank-documents/domain"
)

// Fixed professional identity printed on professional documents.
const (
	professionalSiret   = "123 456 789 12345"
	professionalCompany = "SARL TECHNOLOGIE"
	professionalAddress = "123 Rue des Entrepreneurs"
	professionalLegal   = "Conformément à l'article L. 123-456 du Code de commerce"

	individualHolder = "M. Jean DUPONT"
	maskedIBAN       = "FR76 XXXX XXXX XXXX XXXX XXXX XXX"
	maskedBIC        = "XXXXXXXXXXX"
)

func newIndividualAccountStatement() DocumentTemplate {
	return fixedTemplate{
		kind:     domain.AccountStatement,
		category: domain.Individual,
		title:    "RELEVE D'IDENTITE BANCAIRE SIMPLIFIE",
		body: func(now time.Time) []string {
			return []string{
				"Client: Particulier",
				"IBAN: " + maskedIBAN,
				"BIC: " + maskedBIC,
				"Titulaire: " + individualHolder,
				"Date d'émission: " + issueDate(now),
				"[Signature électronique sécurisée]",
			}
		},
	}
}

func newProfessionalAccountStatement() DocumentTemplate {
	return fixedTemplate{
		kind:     domain.AccountStatement,
		category: domain.Professional,
		title:    "RELEVE D'IDENTITE BANCAIRE DETAILLE",
		body: func(now time.Time) []string {
			return []string{
				"Client: Professionnel",
				"SIRET: " + professionalSiret,
				"IBAN: " + maskedIBAN,
				"BIC: " + maskedBIC,
				"Entreprise: " + professionalCompany,
				"Adresse professionnelle: " + professionalAddress,
				"Date d'émission: " + issueDate(now),
				"[Signature électronique sécurisée Niveau 2]",
			}
		},
	}
}

func newIndividualAccountAttestation() DocumentTemplate {
	return fixedTemplate{
		kind:     domain.AccountAttestation,
		category: domain.Individual,
		title:    "ATTESTATION DE COMPTE STANDARDISEE",
		body: func(now time.Time) []string {
			return []string{
				"Type de client: Particulier",
				"Le soussigné, la Banque, atteste que " + individualHolder,
				"est titulaire d'un compte courant depuis le 15/01/2015.",
				"Date: " + issueDate(now),
				"Cachet de la banque",
			}
		},
	}
}

func newProfessionalAccountAttestation() DocumentTemplate {
	return fixedTemplate{
		kind:     domain.AccountAttestation,
		category: domain.Professional,
		title:    "ATTESTATION DE COMPTE AVEC MENTIONS LEGALES",
		body: func(now time.Time) []string {
			return []string{
				"Type de client: Professionnel",
				"Entreprise: " + professionalCompany,
				"SIRET: " + professionalSiret,
				"La Banque atteste que l'entreprise ci-dessus",
				"dispose d'un compte professionnel depuis le 20/03/2010.",
				"Mentions légales: " + professionalLegal,
				"Date: " + issueDate(now),
				"Cachet et signature autorisée",
			}
		},
	}
}

func newIndividualTaxAttestation() DocumentTemplate {
	return fixedTemplate{
		kind:     domain.TaxAttestation,
		category: domain.Individual,
		title:    "ATTESTATION FISCALE PARTICULIER",
		body: func(now time.Time) []string {
			return []string{
				"Attestation fiscale pour déclaration IR",
				"Montant des intérêts perçus: 150,00 €",
				"Année: " + strconv.Itoa(now.Year()),
			}
		},
	}
}

func newProfessionalTaxAttestation() DocumentTemplate {
	return fixedTemplate{
		kind:     domain.TaxAttestation,
		category: domain.Professional,
		title:    "ATTESTATION FISCALE PROFESSIONNELLE",
		body: func(now time.Time) []string {
			return []string{
				"Attestation fiscale pour entreprise",
				"Bénéfices: 50 000,00 €",
				"TVA déductible: 10 000,00 €",
				"SIRET: " + professionalSiret,
				"Année: " + strconv.Itoa(now.Year()),
			}
		},
	}
}
