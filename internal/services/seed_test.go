package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type memQuestionRepo struct {
	rows []*types.AnalysisQuestion
}

func (m *memQuestionRepo) Create(_ context.Context, _ *gorm.DB, rows []*types.AnalysisQuestion) ([]*types.AnalysisQuestion, error) {
	m.rows = append(m.rows, rows...)
	return rows, nil
}

func (m *memQuestionRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.AnalysisQuestion, error) {
	var out []*types.AnalysisQuestion
	for _, row := range m.rows {
		for _, id := range ids {
			if row.ID == id {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func (m *memQuestionRepo) ListAll(_ context.Context, _ *gorm.DB) ([]*types.AnalysisQuestion, error) {
	return m.rows, nil
}

func (m *memQuestionRepo) CountAll(_ context.Context, _ *gorm.DB) (int64, error) {
	return int64(len(m.rows)), nil
}

var _ repos.AnalysisQuestionRepo = (*memQuestionRepo)(nil)

const seedYAML = `questions:
  - key: vector_trimmed
    step: clone_editing
    type: yes_no
    text: Did you trim the vector sequence?
    required: true
    order: 0
  - step: clone_editing
    type: textarea
    text: Describe what you removed.
    order: 1
    show_if:
      key: vector_trimmed
      answer: "yes"
  - step: blast
    type: select
    text: Which database did you search?
    group: Setup
    group_order: 0
    options:
      choices: [nr, nt, refseq]
`

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func newSeedLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestSeedFromFile(t *testing.T) {
	repo := &memQuestionRepo{}
	seeder := NewQuestionSeeder(newSeedLogger(t), repo)
	path := writeSeedFile(t, seedYAML)

	if err := seeder.SeedFromFile(context.Background(), path); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(repo.rows) != 3 {
		t.Fatalf("seeded %d questions, want 3", len(repo.rows))
	}

	gate := repo.rows[0]
	dependent := repo.rows[1]
	blast := repo.rows[2]

	if gate.Step != types.StepCloneEditing || gate.Type != types.QuestionTypeYesNo || !gate.Required {
		t.Fatalf("gate question mismatch: %+v", gate)
	}
	if gate.QuestionGroup != "General" {
		t.Fatalf("missing group did not default to General: %q", gate.QuestionGroup)
	}

	rule := dependent.ShowIf()
	if rule == nil {
		t.Fatal("show_if not resolved into conditional logic")
	}
	if rule.QuestionID != gate.ID.String() {
		t.Fatalf("show_if target = %q, want gate id %s", rule.QuestionID, gate.ID)
	}
	if rule.Answer != "yes" {
		t.Fatalf("show_if answer = %q, want yes", rule.Answer)
	}

	if blast.QuestionGroup != "Setup" || len(blast.Options) == 0 {
		t.Fatalf("blast question options/group lost: %+v", blast)
	}
}

func TestSeedSkipsPopulatedBank(t *testing.T) {
	repo := &memQuestionRepo{rows: []*types.AnalysisQuestion{
		{ID: uuid.New(), Step: types.StepBlast, Type: types.QuestionTypeText, Text: "existing"},
	}}
	seeder := NewQuestionSeeder(newSeedLogger(t), repo)
	path := writeSeedFile(t, seedYAML)

	if err := seeder.SeedFromFile(context.Background(), path); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("populated bank was reseeded: %d rows", len(repo.rows))
	}
}

func TestSeedRejectsUnknownShowIfKey(t *testing.T) {
	seeder := NewQuestionSeeder(newSeedLogger(t), &memQuestionRepo{})
	path := writeSeedFile(t, `questions:
  - step: blast
    type: text
    text: Dangling rule.
    show_if:
      key: no_such_question
      answer: "yes"
`)

	if err := seeder.SeedFromFile(context.Background(), path); err == nil {
		t.Fatal("expected error for unresolvable show_if key")
	}
}
