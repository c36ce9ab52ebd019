package agent

import (
	"context"

	"github.com/etnz/camdash"
	"github.com/etnz/camdash/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a credit account manager or a team lead. He is here primarily to understand
			the standing of the accounts in his collections book and what to decide next.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know his accounts, check the dashboard first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert for outside-world questions: debtor companies,
// industry conditions, anything that needs grounding in recent news.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a credit analyst,
		very well aware of healthcare providers, payer mixes and industry conditions,
		and of the latest news about the different debtor companies.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert credit analyst. You can search and find about anything related to
			debtor companies, healthcare providers, markets and payers. You leverage Google Search
			to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's accounts.
				`}}},
		},
	}
}

// NewBookkeeper returns the expert over the user's own dashboard data.
func NewBookkeeper(repo *camdash.Repository) *Expert {
	lib := []Function{
		accountsFunc(repo),
		dashboardFunc(repo),
		timelineFunc(repo),
		dueFunc(repo),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's collections
		dashboard. He can list the accounts, compute the aggregate figures, recall any account's
		decision history and tell which accounts still need a decision this week.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's collections dashboard.
				You know how to use the Tools to extract relevant information about the accounts
				under management. You are part of a team of experts; yours is everything recorded
				in the dashboard. They might ask you questions about the accounts, pardon their
				approximative language and figure out what they meant.

				Use the available tools to get information about
				  - the list of accounts with balances, risk and health
				  - the aggregate dashboard figures
				  - one account's decision timeline
				  - the accounts still needing a decision this week
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// markdownFunc wraps a markdown-producing report into a Function. All the
// dashboard reads share the same shape: no failure mode beyond a missing
// account, and a markdown document as output.
func markdownFunc(decl *genai.FunctionDeclaration, run func(args map[string]any) (string, error)) *Func {
	return &Func{
		Decl: decl,
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out, err := run(args)
			if err != nil {
				return &genai.FunctionResponse{
					ID: id, Name: decl.Name,
					Response: map[string]any{"error": err.Error()},
				}
			}
			return &genai.FunctionResponse{
				ID: id, Name: decl.Name,
				Response: map[string]any{"output": out},
			}
		},
	}
}

func accountsFunc(repo *camdash.Repository) *Func {
	return markdownFunc(&genai.FunctionDeclaration{
		Name: "Accounts",
		Description: `Accounts lists every account under management with its risk level, status,
		AR balance, days past due, latest health score and owning CAM.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of all accounts.",
		},
	}, func(map[string]any) (string, error) {
		return renderer.AccountsMarkdown(repo.Accounts()), nil
	})
}

func dashboardFunc(repo *camdash.Repository) *Func {
	return markdownFunc(&genai.FunctionDeclaration{
		Name: "Dashboard",
		Description: `Dashboard computes the aggregate figures: total AR balance, risk
		distribution, average health score and recent decision activity.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted summary of the aggregate figures.",
		},
	}, func(map[string]any) (string, error) {
		now := repo.Now()
		stats := camdash.ComputeStats(repo.Accounts(), now)
		return renderer.StatsMarkdown(stats, camdash.ReviewUrgency(now)), nil
	})
}

func timelineFunc(repo *camdash.Repository) *Func {
	return markdownFunc(&genai.FunctionDeclaration{
		Name: "Timeline",
		Description: `Timeline recalls one account's decision history, newest first, each
		decision annotated with the health standing on its date.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"account_id": {
					Type:        genai.TypeString,
					Description: "The id of the account, as listed by Accounts.",
				},
			},
			Required: []string{"account_id"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted decision timeline.",
		},
	}, func(args map[string]any) (string, error) {
		id, _ := args["account_id"].(string)
		a, ok := repo.Account(id)
		if !ok {
			return "", camdash.ErrAccountNotFound
		}
		return renderer.TimelineMarkdown(camdash.NewTimeline(a)), nil
	})
}

func dueFunc(repo *camdash.Repository) *Func {
	return markdownFunc(&genai.FunctionDeclaration{
		Name: "Due",
		Description: `Due lists the accounts still without a decision in the current week and
		tells whether the weekly review deadline has passed.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted checklist of accounts needing a decision.",
		},
	}, func(map[string]any) (string, error) {
		return renderer.DueMarkdown(repo.Accounts(), repo.Now()), nil
	})
}
