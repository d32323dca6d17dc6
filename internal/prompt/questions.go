package prompt

import "context"

// Answers for the TypeScript question.
const (
	AnswerYes = "y"
	AnswerNo  = "n"
)

// AskProjectName asks for the project name.
func (p *Prompter) AskProjectName(ctx context.Context, defaultName string) (string, error) {
	return p.Input(ctx, "Project name:", defaultName)
}

// AskTypeScript asks whether the project should use TypeScript.
func (p *Prompter) AskTypeScript(ctx context.Context, defaultValue bool) (bool, error) {
	def := AnswerNo
	if defaultValue {
		def = AnswerYes
	}

	answer, err := p.Select(ctx, "Use Typescript?", []string{AnswerYes, AnswerNo}, def)
	if err != nil {
		return false, err
	}
	return answer == AnswerYes, nil
}
