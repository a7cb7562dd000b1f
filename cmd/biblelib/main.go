// Command biblelib is the CLI for the biblelib reference library.
// It parses scripture references, enumerates ranges, inspects canon
// metadata, and queries word-alignment mapping tables.
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mwatts/biblelib/core/bcv"
	"github.com/mwatts/biblelib/core/books"
	"github.com/mwatts/biblelib/core/mappings"
	"github.com/mwatts/biblelib/core/unit"
	"github.com/mwatts/biblelib/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for biblelib.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format"`

	// Command groups (noun-first organization)
	Ref      RefGroup      `cmd:"" help:"Reference identifier operations (parse, simplify)"`
	Range    RangeGroup    `cmd:"" help:"Range enumeration"`
	Books    BooksGroup    `cmd:"" help:"Canon book metadata"`
	Mappings MappingsGroup `cmd:"" help:"Word alignment mapping tables"`
	Version  VersionCmd    `cmd:"" help:"Print version information"`
}

// RefGroup contains identifier operations.
type RefGroup struct {
	Parse    RefParseCmd    `cmd:"" help:"Parse a reference into its canonical identifier"`
	Simplify RefSimplifyCmd `cmd:"" help:"Reduce an identifier to a coarser granularity"`
}

// RangeGroup contains range operations.
type RangeGroup struct {
	Enumerate RangeEnumerateCmd `cmd:"" help:"Enumerate the identifiers a range spans"`
}

// BooksGroup contains canon metadata operations.
type BooksGroup struct {
	List BooksListCmd `cmd:"" help:"List the canon in order"`
	Show BooksShowCmd `cmd:"" help:"Show metadata for one book"`
}

// MappingsGroup contains mapping table operations.
type MappingsGroup struct {
	Stats  MappingsStatsCmd  `cmd:"" help:"Summarize a mappings file"`
	Lookup MappingsLookupCmd `cmd:"" help:"Look up a word id in a mappings file"`
	Prefix MappingsPrefixCmd `cmd:"" help:"Rewrite a mappings file with canon-prefixed NA1904 ids"`
}

// RefParseCmd parses a reference string in a named format.
type RefParseCmd struct {
	Ref    string `arg:"" help:"Reference to parse, e.g. 'MRK 4:3' or 'Mark 4:3'"`
	Format string `name:"format" default:"usfm" enum:"usfm,osis,name,logos,ubs" help:"Input format"`
}

func (c *RefParseCmd) Run() error {
	var (
		ref bcv.Ref
		err error
	)
	switch c.Format {
	case "usfm":
		ref, err = bcv.FromUSFM(c.Ref)
	case "osis":
		ref, err = bcv.FromOSIS(c.Ref)
	case "name":
		ref, err = bcv.FromName(c.Ref)
	case "logos":
		ref, err = bcv.FromLogos(c.Ref)
	case "ubs":
		ref, err = bcv.FromUBS(c.Ref)
	}
	if err != nil {
		return err
	}
	fmt.Println(ref.String())
	return nil
}

// RefSimplifyCmd reduces an identifier to book, chapter, or verse level.
type RefSimplifyCmd struct {
	ID string `arg:"" help:"Canonical identifier, e.g. 41004003"`
	To string `name:"to" default:"BCID" enum:"BID,BCID,BCVID" help:"Target granularity"`
}

func (c *RefSimplifyCmd) Run() error {
	ref, err := parseID(c.ID)
	if err != nil {
		return err
	}
	simpler, err := bcv.Simplify(ref, c.To)
	if err != nil {
		return err
	}
	fmt.Println(simpler.String())
	return nil
}

// parseID constructs the identifier matching the string's width.
func parseID(id string) (bcv.Ref, error) {
	switch len(id) {
	case 2:
		return bcv.NewBID(id)
	case 5:
		return bcv.NewBCID(id)
	case 8:
		return bcv.NewBCVID(id)
	default:
		return bcv.NewBCVWPID(id)
	}
}

// RangeEnumerateCmd expands a human-readable range reference.
type RangeEnumerateCmd struct {
	Ref string `arg:"" help:"Range reference, e.g. 'Mark 4:1-9' or 'Mark 4-5'"`
}

func (c *RangeEnumerateCmd) Run() error {
	rr, err := unit.ParseRange(c.Ref)
	if err != nil {
		return err
	}
	for _, id := range rr.IDs() {
		fmt.Println(id)
	}
	return nil
}

// BooksListCmd lists all books in canon order.
type BooksListCmd struct{}

func (c *BooksListCmd) Run() error {
	for _, b := range books.All() {
		fmt.Printf("%s\t%s\t%s\t%s\n", b.USFMNumber, b.USFMName, b.OSISID, b.Name)
	}
	return nil
}

// BooksShowCmd shows metadata for a single book.
type BooksShowCmd struct {
	Book string `arg:"" help:"Book name, USFM name, or OSIS id"`
}

func (c *BooksShowCmd) Run() error {
	b, err := resolveBook(c.Book)
	if err != nil {
		return err
	}
	id, err := bcv.NewBID(b.USFMNumber)
	if err != nil {
		return err
	}
	chapters, err := unit.ChapterCount(id)
	if err != nil {
		return err
	}
	fmt.Printf("Name:        %s\n", b.Name)
	fmt.Printf("USFM:        %s (%s)\n", b.USFMName, b.USFMNumber)
	fmt.Printf("OSIS:        %s\n", b.OSISID)
	fmt.Printf("Logos:       %s\n", b.LogosURI())
	fmt.Printf("Chapters:    %d\n", chapters)
	if b.AltName != "" {
		fmt.Printf("Also known:  %s\n", b.AltName)
	}
	return nil
}

func resolveBook(name string) (books.Book, error) {
	if b, err := books.FromName(name); err == nil {
		return b, nil
	}
	if b, err := books.ByUSFMName(name); err == nil {
		return b, nil
	}
	return books.FromOSIS(name)
}

// MappingsStatsCmd summarizes a mappings file.
type MappingsStatsCmd struct {
	Path string `arg:"" help:"Path to mappings TSV (plain or .xz)" type:"existingfile"`
}

func (c *MappingsStatsCmd) Run() error {
	start := time.Now()
	m, err := mappings.ReadFile(c.Path)
	if err != nil {
		return err
	}
	logging.MappingsLoaded(c.Path, len(m), time.Since(start))

	hash, err := mappings.SourceHash(c.Path)
	if err != nil {
		return err
	}
	fmt.Printf("Rows:    %d\n", len(m))
	fmt.Printf("BLAKE3:  %s\n", hash)
	return nil
}

// MappingsLookupCmd finds rows matching a word id in one edition.
type MappingsLookupCmd struct {
	Path    string `arg:"" help:"Path to mappings TSV (plain or .xz)" type:"existingfile"`
	ID      string `arg:"" help:"Word id to look up"`
	Edition string `name:"edition" default:"na28" enum:"na1904,na28,sblgnt,marble" help:"Edition whose ids to match"`
	DB      string `name:"db" default:"" help:"Optional SQLite cache path"`
}

func (c *MappingsLookupCmd) Run() error {
	ctx := context.Background()
	m, err := mappings.ReadFile(c.Path)
	if err != nil {
		return err
	}

	dbPath := c.DB
	if dbPath == "" {
		dbPath = ":memory:"
	}
	store, err := mappings.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Load(ctx, m); err != nil {
		return err
	}

	var hits mappings.Mappings
	switch c.Edition {
	case "na1904":
		hits, err = store.ByNA1904(ctx, c.ID)
	case "na28":
		hits, err = store.ByNA28(ctx, c.ID)
	case "sblgnt":
		hits, err = store.BySBLGNT(ctx, c.ID)
	case "marble":
		hits, err = store.ByMARBLE(ctx, c.ID)
	}
	if err != nil {
		return err
	}
	for _, hit := range hits {
		fields := []string{
			hit.NA1904ID, hit.NA1904Text, hit.NA27ID, hit.NA28ID,
			hit.SBLGNTID, hit.SBLGNTText, hit.MARBLEID,
		}
		fmt.Println(strings.Join(fields, "\t"))
	}
	return nil
}

// MappingsPrefixCmd rewrites a mappings file with canon-prefixed ids.
type MappingsPrefixCmd struct {
	Path   string `arg:"" help:"Path to mappings TSV (plain or .xz)" type:"existingfile"`
	Output string `arg:"" help:"Output path (plain or .xz)"`
}

func (c *MappingsPrefixCmd) Run() error {
	m, err := mappings.ReadFile(c.Path)
	if err != nil {
		return err
	}
	return m.AddPrefix().WriteFile(c.Output)
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("biblelib version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("biblelib"),
		kong.Description("Bible canonical references, ranges, and word alignments"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	var format logging.Format
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), format)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
