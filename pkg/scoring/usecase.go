package scoring

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/artem13815/resumescan/pkg/llm"
)

type service struct {
	llm llm.ChatModel
}

func NewService(model llm.ChatModel) UseCase {
	return &service{llm: model}
}

// Validate checks the request before any model call.
func Validate(req Request) error {
	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobDescription) == "" {
		return ErrEmptyInput
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.JobDescription)) < MinJobDescriptionChars {
		return ErrJobDescriptionTooShort
	}
	return nil
}

func (s *service) Evaluate(ctx context.Context, req Request) (Evaluation, error) {
	if err := Validate(req); err != nil {
		return Evaluation{}, err
	}
	if s.llm == nil {
		return Evaluation{}, fmt.Errorf("%w: LLM не настроена", ErrModel)
	}
	reply, err := s.llm.Ask(ctx, systemPrompt, userPrompt(req))
	if err != nil {
		return Evaluation{}, fmt.Errorf("%w: %w", ErrModel, err)
	}
	return ParseReply(reply)
}
