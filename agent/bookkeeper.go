package agent

import (
	"context"
	"fmt"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/config"
	"github.com/etnz/cashbook/docs"
	"github.com/etnz/cashbook/renderer"
	"google.golang.org/genai"
)

// NewBookkeeper creates the expert in charge of the user's ledger. It can only
// read the ledger.
func NewBookkeeper(ledger *cashbook.Ledger, currency, model string) *Expert {
	if model == "" {
		model = config.DefaultGeminiModel
	}
	lib := Tools(ledger, currency)
	return &Expert{
		Name:      "Bookkeeper",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's personal cashbook: a list of
				incomes and expenses, each with a date (DD-MM-YYYY), a category, an amount and a description.

				Use the Tools to read the records, the balance or to search records before answering.
				Never guess figures that you did not get from a tool.
				Answer in the language of the user, using markdown. Keep answers short.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Tools returns the functions reading ledger. Amounts are formatted in currency.
func Tools(ledger *cashbook.Ledger, currency string) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Records",
				Description: `Records lists the records of the cashbook, optionally only the ones of a category. Amounts are displayed positive for both incomes and expenses.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category": {
							Type:        genai.TypeString,
							Description: "Either Income or Expense. All records are listed when empty.",
							Enum:        []string{string(cashbook.Income), string(cashbook.Expense)},
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the records with their position, date, category, amount and description.",
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				c, err := stringArg(args, "category")
				if err != nil {
					return "", err
				}
				if c == "" {
					return renderer.RenderRecords(renderer.NewTable("All records", currency, ledger.All()).WithPositions()), nil
				}
				category, err := cashbook.ParseCategory(c)
				if err != nil {
					return "", err
				}
				return renderer.RenderRecords(renderer.NewTable(category.String(), currency, ledger.ByCategory(category)).WithPositions()), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Balance",
				Description: `Balance computes the current balance of the cashbook: total incomes minus total expenses.`,
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown document with the balance, the total of incomes, of expenses and the number of records.",
				},
			},
			Func: func(_ context.Context, _ map[string]any) (string, error) {
				return renderer.BalanceMarkdown(ledger, currency), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "Search",
				Description: `Search returns the records matching all the given criteria. Criteria left empty are ignored.

				` + must(docs.GetTopic("search")),
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date":        {Type: genai.TypeString, Description: "Exact date DD-MM-YYYY."},
						"category":    {Type: genai.TypeString, Description: "Income or Expense."},
						"amount":      {Type: genai.TypeString, Description: "'>N', '<N' or a whole number N, compared to the signed amount (expenses are negative)."},
						"description": {Type: genai.TypeString, Description: "Text contained in the description, ignoring case."},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of the matching records.",
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				criteria, err := searchCriteria(args)
				if err != nil {
					return "", err
				}
				return renderer.SearchResults(ledger.Search(criteria...), currency), nil
			},
		},
	}
}

// searchArgs names the Search argument of each parameter.
var searchArgs = map[cashbook.Param]string{
	cashbook.ParamDate:        "date",
	cashbook.ParamCategory:    "category",
	cashbook.ParamAmount:      "amount",
	cashbook.ParamDescription: "description",
}

func searchCriteria(args map[string]any) ([]cashbook.Criterion, error) {
	var criteria []cashbook.Criterion
	for _, p := range cashbook.Params {
		v, err := stringArg(args, searchArgs[p])
		if err != nil {
			return nil, err
		}
		if v != "" {
			criteria = append(criteria, cashbook.Criterion{Param: p, Value: v})
		}
	}
	return criteria, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("agent: %v", err))
	}
	return v
}
