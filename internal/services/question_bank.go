package services

import (
	"context"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/types"
	"github.com/gabevillegas628/dsap-backend/internal/workflow"
)

// QuestionBankService serves the program's question definitions, ordered by
// step, group order, then question order. It satisfies workflow.QuestionBank.
type QuestionBankService interface {
	workflow.QuestionBank
}

type questionBankService struct {
	log          *logger.Logger
	questionRepo repos.AnalysisQuestionRepo
	helpRepo     repos.HelpTopicRepo
}

func NewQuestionBankService(log *logger.Logger, questionRepo repos.AnalysisQuestionRepo, helpRepo repos.HelpTopicRepo) QuestionBankService {
	return &questionBankService{
		log:          log.With("service", "QuestionBankService"),
		questionRepo: questionRepo,
		helpRepo:     helpRepo,
	}
}

func (s *questionBankService) FetchQuestions(ctx context.Context) ([]*types.AnalysisQuestion, error) {
	return s.questionRepo.ListAll(ctx, nil)
}

func (s *questionBankService) FetchHelpTopics(ctx context.Context) ([]*types.HelpTopic, error) {
	return s.helpRepo.ListAll(ctx, nil)
}
