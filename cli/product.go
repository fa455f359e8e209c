package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func productsCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "product",
		Aliases: []string{"products"},
		Short:   "Browse the product catalog",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
		$ screener product list
		$ screener product view <id|sku>
		`),
	}

	cmd.AddCommand(
		listProductsCommand(cfg),
		viewProductCommand(cfg),
	)

	return cmd
}

func listProductsCommand(cfg *Config) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list products matching the given criteria",
		Example: heredoc.Doc(`
			$ screener product list
			$ screener product list -f types=physical -f in_stock=true --sort price
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			res, err := clnt.ListProducts(cmd.Context(), flags.params())
			if err != nil {
				return err
			}

			spinner.Stop()
			if flags.output == outputJSON {
				printJSON(res)
				return nil
			}

			report := [][]string{}
			report = append(report, []string{"ID", "SKU", "NAME", "TYPE", "CATEGORY", "PRICE", "RATING", "IN STOCK"})
			for _, p := range res.Items {
				report = append(report, []string{
					p.ID, term.Bluef(p.SKU), p.Name, string(p.Type), fmtOrDash(p.Category),
					fmtFloat(p.Price), fmtFloat(p.Rating), fmt.Sprint(p.InStock),
				})
			}
			printer.Table(os.Stdout, report)
			fmt.Println(pageFooter(res))
			return nil
		},
	}

	flags.register(cmd, "filter criteria, e.g. types=digital or min_rating=4")

	return cmd
}

func viewProductCommand(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "view <id|sku>",
		Short: "view the product with the given id or SKU",
		Example: heredoc.Doc(`
			$ screener product view EB-GO
			$ screener product view 4fc2907e-a052-4d92-9b4e-6b80bf5e3c45
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			p, err := clnt.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			spinner.Stop()
			if output == outputJSON {
				printJSON(p)
				return nil
			}

			printer.Table(os.Stdout, [][]string{
				{"ID", p.ID},
				{"SKU", term.Bluef(p.SKU)},
				{"NAME", p.Name},
				{"TYPE", string(p.Type)},
				{"CATEGORY", fmtOrDash(p.Category)},
				{"PRICE", fmtFloat(p.Price)},
				{"RATING", fmtFloat(p.Rating)},
				{"IN STOCK", fmt.Sprint(p.InStock)},
				{"TAGS", fmtList(p.Tags)},
			})
			return nil
		},
	}

	outputFlag(cmd, &output)

	return cmd
}
