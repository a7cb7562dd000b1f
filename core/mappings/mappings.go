// Package mappings reads and writes the word-level alignment tables that
// correlate word identifiers across Greek New Testament editions.
//
// The source data is tab-separated with one row per word token, keyed by
// the 11-digit identifiers of core/bcv. The canonical table is
// mappings-GNT-stripped.tsv from the Clear-Bible macula-greek repository
// (about 138k rows).
package mappings

import (
	"encoding/csv"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/mwatts/biblelib/core/errors"
)

// Mapping correlates one word token across Greek New Testament editions.
// Field names follow the column headers of the source TSV.
type Mapping struct {
	// NA1904ID identifies the word in Nestle 1904.
	NA1904ID string
	// NA1904Text is the word form in Nestle 1904.
	NA1904Text string
	// NA27ID identifies the word in Nestle-Aland 27th Edition.
	NA27ID string
	// NA28ID identifies the word in Nestle-Aland 28th Edition.
	NA28ID string
	// SBLGNTID identifies the word in SBL GNT.
	SBLGNTID string
	// SBLGNTText is the word form in SBL GNT.
	SBLGNTText string
	// MARBLEID identifies the word in Project MARBLE.
	MARBLEID string
}

// header is the expected TSV column order.
var header = []string{
	"NA1904_ID",
	"NA1904_Text",
	"NA27_ID",
	"NA28_ID",
	"SBLGNT_ID",
	"SBLGNT_Text",
	"MARBLE_ID",
}

// Mappings is an ordered set of word alignments.
type Mappings []Mapping

// Read decodes tab-separated mappings. The header row must carry exactly
// the expected column names, in any order.
func Read(r io.Reader) (Mappings, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true

	head, err := cr.Read()
	if err != nil {
		return nil, errors.NewParse("TSV", "", "missing header row")
	}
	index, err := headerIndex(head)
	if err != nil {
		return nil, err
	}

	var out Mappings
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParse("TSV", "", err.Error())
		}
		out = append(out, Mapping{
			NA1904ID:   row[index["NA1904_ID"]],
			NA1904Text: row[index["NA1904_Text"]],
			NA27ID:     row[index["NA27_ID"]],
			NA28ID:     row[index["NA28_ID"]],
			SBLGNTID:   row[index["SBLGNT_ID"]],
			SBLGNTText: row[index["SBLGNT_Text"]],
			MARBLEID:   row[index["MARBLE_ID"]],
		})
	}
	return out, nil
}

// headerIndex validates that the header carries exactly the expected
// field names and maps each name to its column position.
func headerIndex(head []string) (map[string]int, error) {
	index := make(map[string]int, len(head))
	for i, name := range head {
		index[strings.TrimSpace(name)] = i
	}
	if len(index) != len(header) {
		return nil, errors.NewParse("TSV", "", "fieldname discrepancy in header: "+strings.Join(head, ","))
	}
	for _, name := range header {
		if _, ok := index[name]; !ok {
			return nil, errors.NewParse("TSV", "", "missing column "+name)
		}
	}
	return index, nil
}

// ReadFile decodes a mappings file. Files with an .xz suffix are
// decompressed transparently.
func ReadFile(path string) (Mappings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("read", path, err)
		}
		r = xzr
	}
	m, err := Read(r)
	if err != nil {
		if pe, ok := err.(*errors.ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Write encodes the mappings as tab-separated rows with a header.
func (m Mappings) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(header); err != nil {
		return errors.NewIO("write", "", err)
	}
	for _, row := range m {
		record := []string{
			row.NA1904ID,
			row.NA1904Text,
			row.NA27ID,
			row.NA28ID,
			row.SBLGNTID,
			row.SBLGNTText,
			row.MARBLEID,
		}
		if err := cw.Write(record); err != nil {
			return errors.NewIO("write", "", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile encodes the mappings to a file, xz-compressed when the path
// has an .xz suffix.
func (m Mappings) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".xz") {
		xzw, err := xz.NewWriter(f)
		if err != nil {
			return errors.NewIO("write", path, err)
		}
		if err := m.Write(xzw); err != nil {
			return err
		}
		if err := xzw.Close(); err != nil {
			return errors.NewIO("write", path, err)
		}
		return f.Close()
	}
	if err := m.Write(f); err != nil {
		return err
	}
	return f.Close()
}

// AddPrefix returns a copy with "n" prepended to each NA1904 id, the
// canon-prefixed form used by newer macula-greek data. Ids already
// prefixed are left alone.
func (m Mappings) AddPrefix() Mappings {
	out := make(Mappings, len(m))
	for i, row := range m {
		if !strings.HasPrefix(row.NA1904ID, "n") {
			row.NA1904ID = "n" + row.NA1904ID
		}
		out[i] = row
	}
	return out
}

// SourceHash returns the BLAKE3 hash of a mappings file, hex-encoded.
// Used for change detection against upstream data.
func SourceHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIO("read", path, err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
