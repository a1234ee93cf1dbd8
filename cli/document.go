package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bank-documents/domain"
	"bank-documents/service"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Work with bank documents",
}

var documentGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a document to stdout",
	Long: `Renders one document. Kinds: AccountStatement, AccountAttestation,
TaxAttestation. Categories: Individual, Professional.`,
	Args: cobra.NoArgs,
	RunE: runDocumentGenerate,
}

var (
	documentKind     string
	documentCategory string
	documentDate     string
)

func init() {
	documentGenerateCmd.Flags().StringVarP(&documentKind, "kind", "k", string(domain.AccountStatement), "Document kind")
	documentGenerateCmd.Flags().StringVarP(&documentCategory, "category", "t", string(domain.Individual), "Client category")
	documentGenerateCmd.Flags().StringVar(&documentDate, "date", "", "Issue date as YYYY-MM-DD (default today)")

	documentCmd.AddCommand(documentGenerateCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentGenerate(cmd *cobra.Command, _ []string) error {
	clock := service.DefaultClock
	if documentDate != "" {
		issued, err := time.Parse(time.DateOnly, documentDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		clock = func() time.Time { return issued }
	}

	kind, ok := domain.ParseDocumentKind(documentKind)
	if !ok {
		kind = domain.DocumentKind(documentKind)
	}
	category, ok := domain.ParseClientCategory(documentCategory)
	if !ok {
		category = domain.ClientCategory(documentCategory)
	}

	doc, err := service.NewDocumentService(clock, nil).Generate(kind, category)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), doc.Content)
	return err
}
