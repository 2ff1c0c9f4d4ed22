// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package source reads the subject and pattern sequences from the keyboard,
// a pipe or a file and turns them into validated float64 values.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/antgroup/seqmatch/modules/streamio"
	"github.com/antgroup/seqmatch/modules/strengthen"
	"github.com/antgroup/seqmatch/modules/trace"
)

// Separator splits subject tokens from pattern tokens in a single stream.
const Separator = "--"

var (
	ErrInvalidToken = errors.New("invalid input")
)

type Mode int

const (
	ModeKeyboard Mode = iota
	ModeFile
)

func (m Mode) String() string {
	if m == ModeFile {
		return "file"
	}
	return "keyboard"
}

// TokenError reports a token that is not a finite number.
type TokenError struct {
	Token string
	Index int // 1-based ordinal of the token in its stream
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid input: token %d '%s' is not a number", e.Index, e.Token)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// Input is what the collaborator hands to the core.
type Input struct {
	Mode    Mode
	Path    string
	Subject []float64
	Pattern []float64
}

func parseToken(tok string, index int) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &TokenError{Token: tok, Index: index}
	}
	return v, nil
}

// ParseTokens reads whitespace separated numbers until EOF.
func ParseTokens(r io.Reader) ([]float64, error) {
	subject, pattern, err := decode(r, false)
	if err != nil {
		return nil, err
	}
	return append(subject, pattern...), nil
}

// ParseString parses numbers separated by whitespace or commas.
func ParseString(s string) ([]float64, error) {
	fields := strengthen.SplitFields(s)
	values := make([]float64, 0, len(fields))
	for i, tok := range fields {
		v, err := parseToken(tok, i+1)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Decode reads subject tokens, an optional Separator token, then pattern tokens.
func Decode(r io.Reader) (*Input, error) {
	subject, pattern, err := decode(r, true)
	if err != nil {
		return nil, err
	}
	return &Input{Mode: ModeKeyboard, Subject: subject, Pattern: pattern}, nil
}

func decode(r io.Reader, split bool) ([]float64, []float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	scanner.Split(bufio.ScanWords)
	var subject, pattern []float64
	dst := &subject
	index := 0
	for scanner.Scan() {
		tok := scanner.Text()
		index++
		if split && tok == Separator && dst == &subject {
			dst = &pattern
			continue
		}
		v, err := parseToken(tok, index)
		if err != nil {
			return nil, nil, err
		}
		*dst = append(*dst, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return subject, pattern, nil
}

// ReadFile decodes a file, transparently decompressing gzip and zstd content.
// The part after a Separator token, if any, becomes the pattern.
func ReadFile(name string) (*Input, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, trace.Errorf("open %s: %w", name, err)
	}
	defer fd.Close() // nolint
	r, c, err := streamio.NewReader(fd)
	if err != nil {
		return nil, trace.Errorf("decompress %s: %w", name, err)
	}
	defer r.Close() // nolint
	trace.DbgPrint("read %s (compression: %s)", name, c)
	in, err := Decode(r)
	if err != nil {
		return nil, err
	}
	in.Mode = ModeFile
	in.Path = name
	return in, nil
}
