// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/antgroup/seqmatch/modules/trace"
	"github.com/antgroup/seqmatch/pkg/tr"
)

var (
	ErrInterrupted = errors.New("interrupted")
)

// Prompter asks the user questions.
type Prompter interface {
	Select(message string, options []string) (int, error)
	Input(message string, validate func(string) error) (string, error)
}

// SurveyPrompter prompts on the terminal with survey.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter returns a prompter bound to the given stdio; nil values
// fall back to the process stdio.
func NewSurveyPrompter(in terminal.FileReader, out terminal.FileWriter, errw io.Writer) *SurveyPrompter {
	p := &SurveyPrompter{}
	if in != nil && out != nil {
		p.opts = append(p.opts, survey.WithStdio(in, out, errw))
	}
	return p
}

func convertErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}

func (p *SurveyPrompter) Select(message string, options []string) (int, error) {
	var answer string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &answer, p.opts...); err != nil {
		return -1, convertErr(err)
	}
	for i, o := range options {
		if o == answer {
			return i, nil
		}
	}
	return -1, ErrInvalidToken
}

func (p *SurveyPrompter) Input(message string, validate func(string) error) (string, error) {
	var answer string
	opts := p.opts
	if validate != nil {
		opts = append(opts[:len(opts):len(opts)], survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, opts...); err != nil {
		return "", convertErr(err)
	}
	return answer, nil
}

func validateNumbers(s string) error {
	_, err := ParseString(s)
	return err
}

func askNumbers(p Prompter, message string) ([]float64, error) {
	answer, err := p.Input(tr.W(message), validateNumbers)
	if err != nil {
		return nil, err
	}
	return ParseString(answer)
}

// Interactive runs the prompt sequence: input source, then either a filename
// or the sequence elements, then the pattern unless the file already carried
// one or askPattern is false.
func Interactive(p Prompter, askPattern bool) (*Input, error) {
	mode, err := p.Select(tr.W("Select the input source"), []string{tr.W("Keyboard"), tr.W("File")})
	if err != nil {
		return nil, err
	}
	var in *Input
	if Mode(mode) == ModeFile {
		name, err := p.Input(tr.W("Enter filename:"), nil)
		if err != nil {
			return nil, err
		}
		if in, err = ReadFile(name); err != nil {
			return nil, err
		}
	} else {
		subject, err := askNumbers(p, "Enter sequence elements:")
		if err != nil {
			return nil, err
		}
		in = &Input{Mode: ModeKeyboard, Subject: subject}
	}
	if askPattern && len(in.Pattern) == 0 {
		if in.Pattern, err = askNumbers(p, "Enter pattern to search for:"); err != nil {
			return nil, err
		}
	}
	trace.DbgPrint("interactive input: %s, %d elements, %d pattern elements", in.Mode, len(in.Subject), len(in.Pattern))
	return in, nil
}
