package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

// seedFile is the YAML shape of a program question set. Questions may carry
// a key so later questions can reference them in show_if rules before any
// database IDs exist.
type seedFile struct {
	Questions []seedQuestion `yaml:"questions"`
}

type seedQuestion struct {
	Key        string         `yaml:"key"`
	Step       string         `yaml:"step"`
	Type       string         `yaml:"type"`
	Text       string         `yaml:"text"`
	Required   bool           `yaml:"required"`
	Order      int            `yaml:"order"`
	Group      string         `yaml:"group"`
	GroupOrder int            `yaml:"group_order"`
	Options    map[string]any `yaml:"options"`
	ShowIf     *seedShowIf    `yaml:"show_if"`
}

type seedShowIf struct {
	Key    string `yaml:"key"`
	Answer string `yaml:"answer"`
}

// QuestionSeeder loads the default question set into an empty question bank
// on first boot. A non-empty bank is left alone.
type QuestionSeeder struct {
	log          *logger.Logger
	questionRepo repos.AnalysisQuestionRepo
}

func NewQuestionSeeder(log *logger.Logger, questionRepo repos.AnalysisQuestionRepo) *QuestionSeeder {
	return &QuestionSeeder{
		log:          log.With("service", "QuestionSeeder"),
		questionRepo: questionRepo,
	}
}

func (s *QuestionSeeder) SeedFromFile(ctx context.Context, path string) error {
	count, err := s.questionRepo.CountAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		s.log.Debug("Question bank already populated, skipping seed", "count", count)
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	rows, err := buildSeedRows(file.Questions)
	if err != nil {
		return err
	}
	if _, err := s.questionRepo.Create(ctx, nil, rows); err != nil {
		return fmt.Errorf("insert seed questions: %w", err)
	}
	s.log.Info("Question bank seeded", "count", len(rows), "path", path)
	return nil
}

func buildSeedRows(seeds []seedQuestion) ([]*types.AnalysisQuestion, error) {
	idsByKey := make(map[string]uuid.UUID, len(seeds))
	rows := make([]*types.AnalysisQuestion, 0, len(seeds))

	for _, sq := range seeds {
		id := uuid.New()
		if sq.Key != "" {
			idsByKey[sq.Key] = id
		}
		group := sq.Group
		if group == "" {
			group = "General"
		}
		row := &types.AnalysisQuestion{
			ID:            id,
			Step:          types.AnalysisStep(sq.Step),
			Type:          sq.Type,
			Text:          sq.Text,
			Required:      sq.Required,
			Order:         sq.Order,
			QuestionGroup: group,
			GroupOrder:    sq.GroupOrder,
		}
		if len(sq.Options) > 0 {
			opts, err := json.Marshal(sq.Options)
			if err != nil {
				return nil, fmt.Errorf("marshal options for %q: %w", sq.Text, err)
			}
			row.Options = opts
		}
		rows = append(rows, row)
	}

	// show_if references resolve in a second pass so a rule may point at any
	// question in the file, not just earlier ones.
	for i, sq := range seeds {
		if sq.ShowIf == nil {
			continue
		}
		target, ok := idsByKey[sq.ShowIf.Key]
		if !ok {
			return nil, fmt.Errorf("show_if references unknown question key %q", sq.ShowIf.Key)
		}
		cl, err := json.Marshal(map[string]any{
			"showIf": types.ShowIfRule{QuestionID: target.String(), Answer: sq.ShowIf.Answer},
		})
		if err != nil {
			return nil, fmt.Errorf("marshal show_if for %q: %w", sq.Text, err)
		}
		rows[i].ConditionalLogic = cl
	}
	return rows, nil
}
