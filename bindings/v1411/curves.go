package v1411

import (
	"errors"
	"fmt"
	"strings"
)

// CurveSet is a log's data block decoded into columns and rows. Rows keep the
// raw string values; the first column is the index curve.
type CurveSet struct {
	Mnemonics []string
	Units     []string
	Rows      [][]string
}

// Curves decodes the comma separated logData block. It fails when the log
// carries no data or a row's value count does not match the mnemonic list.
func (l *Log) Curves() (*CurveSet, error) {
	if l.LogData == nil {
		return nil, errors.New("log has no logData")
	}
	cs := &CurveSet{
		Mnemonics: splitList(l.LogData.MnemonicList),
		Units:     splitList(l.LogData.UnitList),
	}
	if len(cs.Mnemonics) == 0 {
		return nil, errors.New("logData has no mnemonicList")
	}
	cs.Rows = make([][]string, 0, len(l.LogData.Data))
	for i, raw := range l.LogData.Data {
		row := strings.Split(raw, ",")
		if len(row) != len(cs.Mnemonics) {
			return nil, fmt.Errorf("data row %d has %d values, want %d", i, len(row), len(cs.Mnemonics))
		}
		cs.Rows = append(cs.Rows, row)
	}
	return cs, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
