package service

const (
	// BrandMark heads every issued document.
	BrandMark = "LOGO_BANQUE"

	MaxLoanAmount   = 1_000_000_000 // 1 billion
	MaxInterestRate = 1000          // 1000% per year
	MaxTermMonths   = 600           // 50 years
	MinTermMonths   = 1

	// Credit terms applied when neither the order nor the client sets them.
	DefaultCreditTermMonths = 36
	DefaultCreditRate       = "3.5"

	// Upper bound on the number of terms evaluated by TermOptions.
	MaxTermRangeMonths = 120 // 10 years

	issueDateLayout = "02/01/2006"
)
