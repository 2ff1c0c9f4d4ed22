// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/seqmatch/modules/deque"
	"github.com/antgroup/seqmatch/modules/kmp"
	"github.com/antgroup/seqmatch/modules/term"
	"github.com/antgroup/seqmatch/pkg/pipeline"
	"github.com/antgroup/seqmatch/pkg/tr"
	"github.com/zeebo/blake3"
)

var (
	ErrBadFormat = errors.New("unsupported output format")
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("%w: '%s'", ErrBadFormat, s)
}

type Options struct {
	Format    Format
	Precision int
	Color     term.Level
	ShowInput bool // echo the loaded sequence in text output
}

// Digest returns the blake3-256 hex digest of values, each encoded as
// little-endian IEEE 754 bits, in order.
func Digest(values []float64) string {
	h := blake3.New()
	var b [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		_, _ = h.Write(b[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

type searchDocument struct {
	Mode        string    `json:"mode,omitempty" toml:"mode,omitempty"`
	Digest      string    `json:"digest" toml:"digest"`
	Input       []float64 `json:"input" toml:"input"`
	Pattern     []float64 `json:"pattern" toml:"pattern"`
	Sorted      []float64 `json:"sorted" toml:"sorted"`
	Original    kmp.Match `json:"original" toml:"original"`
	SortedMatch kmp.Match `json:"sorted_match" toml:"sorted_match"`
}

type sortDocument struct {
	Mode   string    `json:"mode,omitempty" toml:"mode,omitempty"`
	Digest string    `json:"digest" toml:"digest"`
	Input  []float64 `json:"input" toml:"input"`
	Sorted []float64 `json:"sorted" toml:"sorted"`
}

func encode(w io.Writer, f Format, doc any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("%w: '%s'", ErrBadFormat, f)
}

func (o *Options) match(m kmp.Match) string {
	if !m.Found {
		return o.Color.Yellow(tr.W("Pattern not found"))
	}
	return o.Color.Green(tr.Sprintf("Pattern found at position %d", m.Position))
}

// Write renders a search report.
func Write(w io.Writer, r *pipeline.Report, o *Options) error {
	if o.Format != FormatText && o.Format != "" {
		return encode(w, o.Format, &searchDocument{
			Mode:        r.Mode,
			Digest:      Digest(r.Input),
			Input:       r.Input,
			Pattern:     r.Pattern,
			Sorted:      r.Sorted,
			Original:    r.Original,
			SortedMatch: r.Result,
		})
	}
	var b strings.Builder
	if o.ShowInput {
		fmt.Fprintf(&b, "%s%s\n", tr.W("Input sequence: "), deque.FormatValues(r.Input, o.Precision))
	}
	fmt.Fprintf(&b, "%s\n", tr.W("--- Search Results ---"))
	fmt.Fprintf(&b, "%s%s\n", tr.W("Search in original sequence: "), o.match(r.Original))
	fmt.Fprintf(&b, "%s%s\n", tr.W("Search in sorted sequence: "), o.match(r.Result))
	fmt.Fprintf(&b, "%s%s\n", tr.W("Sorted sequence: "), deque.FormatValues(r.Sorted, o.Precision))
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSorted renders the result of a sort-only run.
func WriteSorted(w io.Writer, mode string, input, sorted []float64, o *Options) error {
	if o.Format != FormatText && o.Format != "" {
		return encode(w, o.Format, &sortDocument{
			Mode:   mode,
			Digest: Digest(input),
			Input:  input,
			Sorted: sorted,
		})
	}
	var b strings.Builder
	if o.ShowInput {
		fmt.Fprintf(&b, "%s%s\n", tr.W("Input sequence: "), deque.FormatValues(input, o.Precision))
	}
	fmt.Fprintf(&b, "%s%s\n", tr.W("Sorted sequence: "), deque.FormatValues(sorted, o.Precision))
	_, err := io.WriteString(w, b.String())
	return err
}
