// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pipeline runs the search, sort, search sequence over a subject and a
// pattern sequence.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/antgroup/seqmatch/modules/deque"
	"github.com/antgroup/seqmatch/modules/heapsort"
	"github.com/antgroup/seqmatch/modules/kmp"
	"github.com/antgroup/seqmatch/modules/trace"
)

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrEmptySubject = fmt.Errorf("%w: main sequence is empty", ErrEmptyInput)
	ErrEmptyPattern = fmt.Errorf("%w: pattern sequence is empty", ErrEmptyInput)
)

type Options struct {
	Backing deque.Backing
	Limit   int
	// OnSortStep is called after every heap extraction.
	OnSortStep func(done, total int)
	Debuger    trace.Debuger
}

func (o *Options) newSeq() deque.Seq[float64] {
	return deque.New[float64](o.Backing, deque.WithLimit(o.Limit))
}

func (o *Options) dbgPrint(format string, args ...any) {
	if o.Debuger != nil {
		o.Debuger.DbgPrint(format, args...)
	}
}

// Report is the outcome of one Run. Input holds the subject before sorting,
// Sorted the subject afterwards.
type Report struct {
	Mode     string         `json:"mode" toml:"mode"`
	Input    []float64      `json:"input" toml:"input"`
	Pattern  []float64      `json:"pattern" toml:"pattern"`
	Original kmp.Match      `json:"original" toml:"original"`
	Result   kmp.Match      `json:"sorted_match" toml:"sorted_match"`
	Sorted   []float64      `json:"sorted" toml:"sorted"`
	Stats    heapsort.Stats `json:"-" toml:"-"`
}

// Load builds a sequence from values with the configured backing and limit.
func (o *Options) Load(values []float64) (deque.Seq[float64], error) {
	s := o.newSeq()
	if err := deque.Load(s, values); err != nil {
		return nil, err
	}
	return s, nil
}

// Check verifies the preconditions of Run without touching either sequence.
func Check(subject, pattern deque.Seq[float64]) error {
	if subject == nil || subject.Size() == 0 {
		return ErrEmptySubject
	}
	if pattern == nil || pattern.Size() == 0 {
		return ErrEmptyPattern
	}
	return nil
}

// Run searches pattern in subject, sorts subject in place and searches again.
// The caller keeps ownership of both sequences.
func Run(subject, pattern deque.Seq[float64], o *Options) (*Report, error) {
	if o == nil {
		o = &Options{}
	}
	if err := Check(subject, pattern); err != nil {
		return nil, err
	}
	r := &Report{
		Input:   subject.Values(),
		Pattern: pattern.Values(),
	}
	table := kmp.WithTable(o.Backing, o.Limit)
	var err error
	if r.Original, err = kmp.Search(subject, pattern, table); err != nil {
		return nil, err
	}
	o.dbgPrint("search in original sequence: %v", r.Original)
	var opts []heapsort.Option
	if o.OnSortStep != nil {
		opts = append(opts, heapsort.WithStep(o.OnSortStep))
	}
	r.Stats = heapsort.Sort(subject, opts...)
	o.dbgPrint("heap sort: %d repair passes, %d swaps", r.Stats.Passes, r.Stats.Swaps)
	if r.Result, err = kmp.Search(subject, pattern, table); err != nil {
		return nil, err
	}
	o.dbgPrint("search in sorted sequence: %v", r.Result)
	r.Sorted = subject.Values()
	return r, nil
}

// RunValues loads both sequences, runs the pipeline and releases them on every
// path.
func RunValues(subject, pattern []float64, o *Options) (*Report, error) {
	if o == nil {
		o = &Options{}
	}
	if len(subject) == 0 {
		return nil, ErrEmptySubject
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	s, err := o.Load(subject)
	if err != nil {
		return nil, err
	}
	defer s.Release()
	p, err := o.Load(pattern)
	if err != nil {
		return nil, err
	}
	defer p.Release()
	return Run(s, p, o)
}

// SortValues loads values, heap sorts them and returns the sorted copy.
func SortValues(values []float64, o *Options) ([]float64, heapsort.Stats, error) {
	if o == nil {
		o = &Options{}
	}
	if len(values) == 0 {
		return nil, heapsort.Stats{}, ErrEmptySubject
	}
	s, err := o.Load(values)
	if err != nil {
		return nil, heapsort.Stats{}, err
	}
	defer s.Release()
	var opts []heapsort.Option
	if o.OnSortStep != nil {
		opts = append(opts, heapsort.WithStep(o.OnSortStep))
	}
	st := heapsort.Sort(s, opts...)
	o.dbgPrint("heap sort: %d repair passes, %d swaps", st.Passes, st.Swaps)
	return s.Values(), st, nil
}
