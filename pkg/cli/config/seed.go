package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Seed is the seed-data configuration: templates, rules and demo cases
// loaded into the repository at startup.
type Seed struct {
	path string

	Templates []SeedTemplate `toml:"template"`
	Rules     []SeedRule     `toml:"rule"`
	Cases     []SeedCase     `toml:"case"`
}

// SeedTemplate declares one workflow template
type SeedTemplate struct {
	ID    string     `toml:"id"`
	Name  string     `toml:"name"`
	Steps []SeedStep `toml:"step"`
}

// SeedStep declares one template step
type SeedStep struct {
	ID              string          `toml:"id"`
	Title           string          `toml:"title"`
	Description     string          `toml:"description"`
	Type            string          `toml:"type"`
	Required        bool            `toml:"required"`
	DecisionOptions []string        `toml:"decision_options"`
	Fields          []SeedField     `toml:"field"`
	Items           []SeedChecklist `toml:"item"`
}

// SeedField declares one field of an INPUT step
type SeedField struct {
	Name     string   `toml:"name"`
	Label    string   `toml:"label"`
	Type     string   `toml:"type"`
	Options  []string `toml:"options"`
	Required bool     `toml:"required"`
}

// SeedChecklist declares one item of a CHECKLIST step
type SeedChecklist struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Required bool   `toml:"required"`
}

// SeedRule declares one status rule. File order is evaluation order.
type SeedRule struct {
	ID      string  `toml:"id"`
	Name    string  `toml:"name"`
	Enabled bool    `toml:"enabled"`
	FactKey string  `toml:"fact_key"`
	Op      string  `toml:"op"`
	Value   float64 `toml:"value"`
	Status  string  `toml:"status"`
}

// SeedCase declares one demo case
type SeedCase struct {
	ID         string       `toml:"id"`
	Title      string       `toml:"title"`
	Status     string       `toml:"status"`
	Priority   string       `toml:"priority"`
	Assignee   string       `toml:"assignee"`
	TemplateID string       `toml:"template_id"`
	Facts      []model.Fact `toml:"fact"`
}

func (x *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "Path to seed data TOML file",
			Sources:     cli.EnvVars("THEMIS_SEED"),
			Destination: &x.path,
		},
	}
}

// SeedData is the validated, domain-typed seed content
type SeedData struct {
	Templates []*model.Template
	Rules     []*model.Rule
	Cases     []*model.Case
}

// Configure loads and validates the seed file. A missing --seed flag yields
// an empty data set.
func (x *Seed) Configure() (*SeedData, error) {
	if x.path == "" {
		return &SeedData{}, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	raw, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.V("path", x.path))
	}

	if err := toml.Unmarshal(raw, x); err != nil {
		return nil, goerr.Wrap(err, "failed to parse seed TOML", goerr.V("path", x.path))
	}

	data := &SeedData{}

	templateIDs := make(map[string]bool, len(x.Templates))
	for _, st := range x.Templates {
		tpl, err := st.ToModel()
		if err != nil {
			return nil, err
		}
		if templateIDs[tpl.ID] {
			return nil, goerr.New("duplicate template ID in seed", goerr.V("id", tpl.ID))
		}
		templateIDs[tpl.ID] = true
		data.Templates = append(data.Templates, tpl)
	}

	for _, sr := range x.Rules {
		rule, err := sr.ToModel()
		if err != nil {
			return nil, err
		}
		data.Rules = append(data.Rules, rule)
	}

	caseIDs := make(map[string]bool, len(x.Cases))
	for _, sc := range x.Cases {
		c, err := sc.ToModel()
		if err != nil {
			return nil, err
		}
		if caseIDs[c.ID] {
			return nil, goerr.New("duplicate case ID in seed", goerr.V("id", c.ID))
		}
		if !templateIDs[c.TemplateID] {
			return nil, goerr.New("case references unknown template",
				goerr.V("id", c.ID), goerr.V("template_id", c.TemplateID))
		}
		caseIDs[c.ID] = true
		data.Cases = append(data.Cases, c)
	}

	return data, nil
}

// ToModel converts and validates a seed template
func (x *SeedTemplate) ToModel() (*model.Template, error) {
	tpl := &model.Template{
		ID:   x.ID,
		Name: x.Name,
	}
	for _, ss := range x.Steps {
		step := model.Step{
			ID:          ss.ID,
			Title:       ss.Title,
			Description: ss.Description,
			Type:        types.StepType(ss.Type),
			Required:    ss.Required,
		}
		for _, opt := range ss.DecisionOptions {
			step.DecisionOptions = append(step.DecisionOptions, types.DecisionOption(opt))
		}
		for _, f := range ss.Fields {
			step.InputFields = append(step.InputFields, model.InputField{
				Name:     f.Name,
				Label:    f.Label,
				Type:     types.InputFieldType(f.Type),
				Options:  f.Options,
				Required: f.Required,
			})
		}
		for _, item := range ss.Items {
			step.ChecklistItems = append(step.ChecklistItems, model.ChecklistItem{
				ID:       item.ID,
				Label:    item.Label,
				Required: item.Required,
			})
		}
		tpl.Steps = append(tpl.Steps, step)
	}

	if err := tpl.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid seed template", goerr.V("id", x.ID))
	}
	return tpl, nil
}

// ToModel converts and validates a seed rule
func (x *SeedRule) ToModel() (*model.Rule, error) {
	rule := &model.Rule{
		ID:      x.ID,
		Name:    x.Name,
		Enabled: x.Enabled,
		If: model.RuleCondition{
			FactKey:  x.FactKey,
			Operator: types.RuleOperator(x.Op),
			Value:    x.Value,
		},
		Then: model.RuleTarget{
			Status: types.CaseStatus(x.Status),
		},
	}

	if err := rule.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid seed rule", goerr.V("name", x.Name))
	}
	return rule, nil
}

// ToModel converts and validates a seed case
func (x *SeedCase) ToModel() (*model.Case, error) {
	if x.ID == "" {
		return nil, goerr.New("seed case ID is required")
	}
	if x.Title == "" {
		return nil, goerr.New("seed case title is required", goerr.V("id", x.ID))
	}

	status, err := types.ParseCaseStatus(x.Status)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid seed case status", goerr.V("id", x.ID))
	}
	priority, err := types.ParseCasePriority(x.Priority)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid seed case priority", goerr.V("id", x.ID))
	}
	if x.TemplateID == "" {
		return nil, goerr.New("seed case template_id is required", goerr.V("id", x.ID))
	}

	c := &model.Case{
		ID:         x.ID,
		Title:      x.Title,
		Status:     status,
		Priority:   priority,
		TemplateID: x.TemplateID,
		Facts:      x.Facts,
	}
	if x.Assignee != "" {
		assignee := x.Assignee
		c.Assignee = &assignee
	}
	return c, nil
}
