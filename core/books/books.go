// Package books provides metadata for the books of the Protestant canon:
// standard identifiers, abbreviations, and names, with lookups by each
// identifier scheme. Book order (and therefore ordinal comparison) follows
// the Protestant canon; other canons are not yet supported.
package books

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mwatts/biblelib/core/errors"
)

// Book holds the identifying metadata for one Bible book.
type Book struct {
	// LogosID is the index of this book in the Logos bible datatype.
	// It provides a stable ordinal for ordering (NT starts at 61).
	LogosID int

	// USFMNumber is the 2-character USFM book number ("41" for Mark).
	USFMNumber string

	// USFMName is the 3-character USFM name ("MRK").
	USFMName string

	// OSISID is the OSIS identifier ("Mark").
	OSISID string

	// Name is the common English name.
	Name string

	// AltName is a longer or alternate English name, or empty.
	AltName string

	// Ordinal is the position of the book in canon order, from 0.
	Ordinal int
}

// USFMNumberAlt returns the legacy USFM number based on Matt="41" rather
// than "40". Some Paratext-era filenames shift NT book numbers up by one;
// see https://github.com/usfm-bible/tcdocs/issues/3.
func (b Book) USFMNumberAlt() string {
	if b.LogosID >= 61 && b.LogosID <= 87 {
		n, _ := strconv.Atoi(b.USFMNumber)
		return fmt.Sprintf("%02d", n+1)
	}
	return b.USFMNumber
}

// LogosURI returns a ref.ly URI that opens this book in Logos.
func (b Book) LogosURI() string {
	return fmt.Sprintf("https://ref.ly/logosref/bible.%d", b.LogosID)
}

// Compare orders books by canon ordinal.
func (b Book) Compare(other Book) int {
	return b.Ordinal - other.Ordinal
}

// canon lists the 66 books of the Protestant canon in order. Ordinals are
// assigned at init.
var canon = []Book{
	{LogosID: 1, USFMNumber: "01", USFMName: "GEN", OSISID: "Gen", Name: "Genesis", AltName: ""},
	{LogosID: 2, USFMNumber: "02", USFMName: "EXO", OSISID: "Exod", Name: "Exodus", AltName: ""},
	{LogosID: 3, USFMNumber: "03", USFMName: "LEV", OSISID: "Lev", Name: "Leviticus", AltName: ""},
	{LogosID: 4, USFMNumber: "04", USFMName: "NUM", OSISID: "Num", Name: "Numbers", AltName: ""},
	{LogosID: 5, USFMNumber: "05", USFMName: "DEU", OSISID: "Deut", Name: "Deuteronomy", AltName: ""},
	{LogosID: 6, USFMNumber: "06", USFMName: "JOS", OSISID: "Josh", Name: "Joshua", AltName: ""},
	{LogosID: 7, USFMNumber: "07", USFMName: "JDG", OSISID: "Judg", Name: "Judges", AltName: ""},
	{LogosID: 8, USFMNumber: "08", USFMName: "RUT", OSISID: "Ruth", Name: "Ruth", AltName: ""},
	{LogosID: 9, USFMNumber: "09", USFMName: "1SA", OSISID: "1Sam", Name: "1 Samuel", AltName: ""},
	{LogosID: 10, USFMNumber: "10", USFMName: "2SA", OSISID: "2Sam", Name: "2 Samuel", AltName: ""},
	{LogosID: 11, USFMNumber: "11", USFMName: "1KI", OSISID: "1Kgs", Name: "1 Kings", AltName: ""},
	{LogosID: 12, USFMNumber: "12", USFMName: "2KI", OSISID: "2Kgs", Name: "2 Kings", AltName: ""},
	{LogosID: 13, USFMNumber: "13", USFMName: "1CH", OSISID: "1Chr", Name: "1 Chronicles", AltName: ""},
	{LogosID: 14, USFMNumber: "14", USFMName: "2CH", OSISID: "2Chr", Name: "2 Chronicles", AltName: ""},
	{LogosID: 15, USFMNumber: "15", USFMName: "EZR", OSISID: "Ezra", Name: "Ezra", AltName: ""},
	{LogosID: 16, USFMNumber: "16", USFMName: "NEH", OSISID: "Neh", Name: "Nehemiah", AltName: ""},
	{LogosID: 17, USFMNumber: "17", USFMName: "EST", OSISID: "Esth", Name: "Esther", AltName: ""},
	{LogosID: 18, USFMNumber: "18", USFMName: "JOB", OSISID: "Job", Name: "Job", AltName: ""},
	{LogosID: 19, USFMNumber: "19", USFMName: "PSA", OSISID: "Ps", Name: "Psalms", AltName: "Psalter"},
	{LogosID: 20, USFMNumber: "20", USFMName: "PRO", OSISID: "Prov", Name: "Proverbs", AltName: ""},
	{LogosID: 21, USFMNumber: "21", USFMName: "ECC", OSISID: "Eccl", Name: "Ecclesiastes", AltName: "Qoheleth"},
	{LogosID: 22, USFMNumber: "22", USFMName: "SNG", OSISID: "Song", Name: "Song of Songs", AltName: "Song of Solomon"},
	{LogosID: 23, USFMNumber: "23", USFMName: "ISA", OSISID: "Isa", Name: "Isaiah", AltName: ""},
	{LogosID: 24, USFMNumber: "24", USFMName: "JER", OSISID: "Jer", Name: "Jeremiah", AltName: ""},
	{LogosID: 25, USFMNumber: "25", USFMName: "LAM", OSISID: "Lam", Name: "Lamentations", AltName: ""},
	{LogosID: 26, USFMNumber: "26", USFMName: "EZK", OSISID: "Ezek", Name: "Ezekiel", AltName: ""},
	{LogosID: 27, USFMNumber: "27", USFMName: "DAN", OSISID: "Dan", Name: "Daniel", AltName: ""},
	{LogosID: 28, USFMNumber: "28", USFMName: "HOS", OSISID: "Hos", Name: "Hosea", AltName: ""},
	{LogosID: 29, USFMNumber: "29", USFMName: "JOL", OSISID: "Joel", Name: "Joel", AltName: ""},
	{LogosID: 30, USFMNumber: "30", USFMName: "AMO", OSISID: "Amos", Name: "Amos", AltName: ""},
	{LogosID: 31, USFMNumber: "31", USFMName: "OBA", OSISID: "Obad", Name: "Obadiah", AltName: ""},
	{LogosID: 32, USFMNumber: "32", USFMName: "JON", OSISID: "Jonah", Name: "Jonah", AltName: ""},
	{LogosID: 33, USFMNumber: "33", USFMName: "MIC", OSISID: "Mic", Name: "Micah", AltName: ""},
	{LogosID: 34, USFMNumber: "34", USFMName: "NAM", OSISID: "Nah", Name: "Nahum", AltName: ""},
	{LogosID: 35, USFMNumber: "35", USFMName: "HAB", OSISID: "Hab", Name: "Habakkuk", AltName: ""},
	{LogosID: 36, USFMNumber: "36", USFMName: "ZEP", OSISID: "Zeph", Name: "Zephaniah", AltName: ""},
	{LogosID: 37, USFMNumber: "37", USFMName: "HAG", OSISID: "Hag", Name: "Haggai", AltName: ""},
	{LogosID: 38, USFMNumber: "38", USFMName: "ZEC", OSISID: "Zech", Name: "Zechariah", AltName: ""},
	{LogosID: 39, USFMNumber: "39", USFMName: "MAL", OSISID: "Mal", Name: "Malachi", AltName: ""},
	{LogosID: 61, USFMNumber: "40", USFMName: "MAT", OSISID: "Matt", Name: "Matthew", AltName: ""},
	{LogosID: 62, USFMNumber: "41", USFMName: "MRK", OSISID: "Mark", Name: "Mark", AltName: ""},
	{LogosID: 63, USFMNumber: "42", USFMName: "LUK", OSISID: "Luke", Name: "Luke", AltName: ""},
	{LogosID: 64, USFMNumber: "43", USFMName: "JHN", OSISID: "John", Name: "John", AltName: ""},
	{LogosID: 65, USFMNumber: "44", USFMName: "ACT", OSISID: "Acts", Name: "Acts", AltName: "Acts of the Apostles"},
	{LogosID: 66, USFMNumber: "45", USFMName: "ROM", OSISID: "Rom", Name: "Romans", AltName: ""},
	{LogosID: 67, USFMNumber: "46", USFMName: "1CO", OSISID: "1Cor", Name: "1 Corinthians", AltName: ""},
	{LogosID: 68, USFMNumber: "47", USFMName: "2CO", OSISID: "2Cor", Name: "2 Corinthians", AltName: ""},
	{LogosID: 69, USFMNumber: "48", USFMName: "GAL", OSISID: "Gal", Name: "Galatians", AltName: ""},
	{LogosID: 70, USFMNumber: "49", USFMName: "EPH", OSISID: "Eph", Name: "Ephesians", AltName: ""},
	{LogosID: 71, USFMNumber: "50", USFMName: "PHP", OSISID: "Phil", Name: "Philippians", AltName: ""},
	{LogosID: 72, USFMNumber: "51", USFMName: "COL", OSISID: "Col", Name: "Colossians", AltName: ""},
	{LogosID: 73, USFMNumber: "52", USFMName: "1TH", OSISID: "1Thess", Name: "1 Thessalonians", AltName: ""},
	{LogosID: 74, USFMNumber: "53", USFMName: "2TH", OSISID: "2Thess", Name: "2 Thessalonians", AltName: ""},
	{LogosID: 75, USFMNumber: "54", USFMName: "1TI", OSISID: "1Tim", Name: "1 Timothy", AltName: ""},
	{LogosID: 76, USFMNumber: "55", USFMName: "2TI", OSISID: "2Tim", Name: "2 Timothy", AltName: ""},
	{LogosID: 77, USFMNumber: "56", USFMName: "TIT", OSISID: "Titus", Name: "Titus", AltName: ""},
	{LogosID: 78, USFMNumber: "57", USFMName: "PHM", OSISID: "Phlm", Name: "Philemon", AltName: ""},
	{LogosID: 79, USFMNumber: "58", USFMName: "HEB", OSISID: "Heb", Name: "Hebrews", AltName: ""},
	{LogosID: 80, USFMNumber: "59", USFMName: "JAS", OSISID: "Jas", Name: "James", AltName: ""},
	{LogosID: 81, USFMNumber: "60", USFMName: "1PE", OSISID: "1Pet", Name: "1 Peter", AltName: ""},
	{LogosID: 82, USFMNumber: "61", USFMName: "2PE", OSISID: "2Pet", Name: "2 Peter", AltName: ""},
	{LogosID: 83, USFMNumber: "62", USFMName: "1JN", OSISID: "1John", Name: "1 John", AltName: ""},
	{LogosID: 84, USFMNumber: "63", USFMName: "2JN", OSISID: "2John", Name: "2 John", AltName: ""},
	{LogosID: 85, USFMNumber: "64", USFMName: "3JN", OSISID: "3John", Name: "3 John", AltName: ""},
	{LogosID: 86, USFMNumber: "65", USFMName: "JUD", OSISID: "Jude", Name: "Jude", AltName: ""},
	{LogosID: 87, USFMNumber: "66", USFMName: "REV", OSISID: "Rev", Name: "Revelation", AltName: "Apocalypse of John"},
}

var (
	byUSFMName   = map[string]*Book{}
	byUSFMNumber = map[string]*Book{}
	byOSIS       = map[string]*Book{}
	byLogos      = map[int]*Book{}
	byName       = map[string]*Book{}
)

func init() {
	for i := range canon {
		b := &canon[i]
		b.Ordinal = i
		byUSFMName[b.USFMName] = b
		byUSFMNumber[b.USFMNumber] = b
		byOSIS[b.OSISID] = b
		byName[strings.ToLower(b.Name)] = b
		if b.AltName != "" {
			byName[strings.ToLower(b.AltName)] = b
		}
		byLogos[b.LogosID] = b
	}
}

// All returns the books of the canon in order.
func All() []Book {
	out := make([]Book, len(canon))
	copy(out, canon)
	return out
}

// ByUSFMName looks up a book by its 3-character USFM name, like "MRK".
func ByUSFMName(name string) (Book, error) {
	if b, ok := byUSFMName[strings.ToUpper(name)]; ok {
		return *b, nil
	}
	return Book{}, errors.NewNotFound("book", name)
}

// FromUSFMNumber looks up a book by its USFM number, like "41".
func FromUSFMNumber(num string) (Book, error) {
	if b, ok := byUSFMNumber[num]; ok {
		return *b, nil
	}
	return Book{}, errors.NewNotFound("book", num)
}

// FromOSIS looks up a book by its OSIS identifier, like "Mark".
func FromOSIS(osisID string) (Book, error) {
	if b, ok := byOSIS[osisID]; ok {
		return *b, nil
	}
	return Book{}, errors.NewNotFound("book", osisID)
}

// FromLogos looks up a book by Logos index, accepting either a bare int
// string or a datatype reference like "bible.62".
func FromLogos(logosID string) (Book, error) {
	s := strings.TrimPrefix(logosID, "bible.")
	n, err := strconv.Atoi(s)
	if err != nil {
		return Book{}, errors.NewValidation("logosID", fmt.Sprintf("%q is not a Logos book reference", logosID))
	}
	return FromLogosID(n)
}

// FromLogosID looks up a book by its integer Logos index.
func FromLogosID(n int) (Book, error) {
	if b, ok := byLogos[n]; ok {
		return *b, nil
	}
	return Book{}, errors.NewNotFound("book", strconv.Itoa(n))
}

// FromName looks up a book by its common English name or alternate name,
// case-insensitively.
func FromName(name string) (Book, error) {
	if b, ok := byName[strings.ToLower(name)]; ok {
		return *b, nil
	}
	return Book{}, errors.NewNotFound("book", name)
}
