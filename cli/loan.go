package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bank-documents/domain"
	"bank-documents/service"
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Compute the monthly payment of a loan",
	Long: `Prints the amortized monthly payment. Out-of-range terms print 0.00,
matching the order flow.`,
	Args: cobra.NoArgs,
	RunE: runLoan,
}

var (
	loanPrincipal string
	loanRate      string
	loanTerm      int
	loanSchedule  bool
)

func init() {
	loanCmd.Flags().StringVarP(&loanPrincipal, "principal", "p", "", "Amount financed")
	loanCmd.Flags().StringVarP(&loanRate, "rate", "r", "3.5", "Annual interest rate in percent")
	loanCmd.Flags().IntVarP(&loanTerm, "term", "n", 36, "Term in months")
	loanCmd.Flags().BoolVar(&loanSchedule, "schedule", false, "Print the amortization schedule")
	_ = loanCmd.MarkFlagRequired("principal")

	rootCmd.AddCommand(loanCmd)
}

func runLoan(cmd *cobra.Command, _ []string) error {
	principal, err := decimal.NewFromString(loanPrincipal)
	if err != nil {
		return fmt.Errorf("invalid --principal: %w", err)
	}
	rate, err := decimal.NewFromString(loanRate)
	if err != nil {
		return fmt.Errorf("invalid --rate: %w", err)
	}

	out := cmd.OutOrStdout()
	monthly := service.MonthlyPayment(principal, rate, loanTerm)
	fmt.Fprintf(out, "Mensualité: %s€ sur %d mois\n", service.RoundMoney(monthly).StringFixed(2), loanTerm)

	if !loanSchedule {
		return nil
	}

	schedule := service.AmortizationSchedule(domain.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: rate,
		TermMonths:        loanTerm,
	})
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Mois\tPaiement\tCapital\tIntérêts\tRestant\t")
	for _, inst := range schedule {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", inst.Month,
			inst.Payment.StringFixed(2), inst.Principal.StringFixed(2),
			inst.Interest.StringFixed(2), inst.RemainingBalance.StringFixed(2))
	}
	return tw.Flush()
}
