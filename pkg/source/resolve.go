// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"io"
)

type Options struct {
	File        string // subject file, empty for stdin or prompts
	Pattern     string // pattern values from the command line
	NeedPattern bool
	Interactive bool // stdin is a terminal
	Stdin       io.Reader
	Prompter    Prompter
}

// Resolve picks the input source: an explicit file, the interactive prompts
// when stdin is a terminal, or the stdin stream. A file without a pattern
// takes it from the prompts or, when stdin is not a terminal, from stdin. A pattern given on the
// command line replaces any pattern read from the source.
func Resolve(o *Options) (*Input, error) {
	var pattern []float64
	if len(o.Pattern) != 0 {
		var err error
		if pattern, err = ParseString(o.Pattern); err != nil {
			return nil, err
		}
	}
	in, err := resolveSubject(o, o.NeedPattern && pattern == nil)
	if err != nil {
		return nil, err
	}
	if pattern != nil {
		in.Pattern = pattern
	}
	if !o.NeedPattern {
		in.Pattern = nil
	}
	return in, nil
}

func resolveSubject(o *Options, askPattern bool) (*Input, error) {
	switch {
	case len(o.File) != 0:
		in, err := ReadFile(o.File)
		if err != nil {
			return nil, err
		}
		if !askPattern || len(in.Pattern) != 0 {
			return in, nil
		}
		switch {
		case o.Interactive && o.Prompter != nil:
			in.Pattern, err = askNumbers(o.Prompter, "Enter pattern to search for:")
		case o.Stdin != nil:
			// the file holds the subject only, the pattern is piped in
			in.Pattern, err = ParseTokens(o.Stdin)
		}
		if err != nil {
			return nil, err
		}
		return in, nil
	case o.Interactive && o.Prompter != nil:
		return Interactive(o.Prompter, askPattern)
	}
	return Decode(o.Stdin)
}
