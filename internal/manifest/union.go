package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Several package.json fields accept more than one shape. Each one is
// modeled as a tagged union: Kind names the variant and only the matching
// field is meaningful. Decoding picks the variant from the first JSON token.

// AuthorKind tags the variant held by an Author.
type AuthorKind int

const (
	// AuthorInline is the "Name <email> (url)" shorthand string.
	AuthorInline AuthorKind = iota
	// AuthorPerson is a structured Person record.
	AuthorPerson
)

// Author is either a Person or a free-form string. A JSON null decodes as
// the empty inline string, so a manifest with "author": null is written back
// as "author": "".
type Author struct {
	Kind   AuthorKind
	Inline string
	Person Person
}

// AuthorString returns an inline author.
func AuthorString(s string) Author {
	return Author{Kind: AuthorInline, Inline: s}
}

// AuthorRecord returns a structured author.
func AuthorRecord(p Person) Author {
	return Author{Kind: AuthorPerson, Person: p}
}

func (a Author) MarshalJSON() ([]byte, error) {
	if a.Kind == AuthorPerson {
		return marshalJSON(a.Person)
	}
	return marshalJSON(a.Inline)
}

func (a *Author) UnmarshalJSON(data []byte) error {
	switch leadingToken(data) {
	case 'n':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AuthorString(s)
	case '{':
		var p Person
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*a = AuthorRecord(p)
	default:
		return shapeError("author", data, "a string or an object")
	}
	return nil
}

func (a Author) MarshalYAML() (interface{}, error) {
	if a.Kind == AuthorPerson {
		return a.Person, nil
	}
	return a.Inline, nil
}

// FundingKind tags the variant held by a FundingField.
type FundingKind int

const (
	// FundingInline is a bare funding URL.
	FundingInline FundingKind = iota
	// FundingSingle is one Funding record.
	FundingSingle
	// FundingMany is a list of Funding records.
	FundingMany
)

// FundingField is a URL string, a Funding record, or a list of them. An
// empty list is held as a nil Many and written as [].
type FundingField struct {
	Kind   FundingKind
	Inline string
	Single Funding
	Many   []Funding
}

// FundingString returns an inline funding URL.
func FundingString(url string) *FundingField {
	return &FundingField{Kind: FundingInline, Inline: url}
}

// FundingRecord returns a single funding record.
func FundingRecord(f Funding) *FundingField {
	return &FundingField{Kind: FundingSingle, Single: f}
}

// FundingRecords returns a list of funding records.
func FundingRecords(fs ...Funding) *FundingField {
	if len(fs) == 0 {
		fs = nil
	}
	return &FundingField{Kind: FundingMany, Many: fs}
}

func (f FundingField) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FundingSingle:
		return marshalJSON(f.Single)
	case FundingMany:
		if f.Many == nil {
			return []byte("[]"), nil
		}
		return marshalJSON(f.Many)
	default:
		return marshalJSON(f.Inline)
	}
}

func (f *FundingField) UnmarshalJSON(data []byte) error {
	switch leadingToken(data) {
	case 'n':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = *FundingString(s)
	case '{':
		var one Funding
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*f = *FundingRecord(one)
	case '[':
		var many []Funding
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*f = *FundingRecords(many...)
	default:
		return shapeError("funding", data, "a string, an object or an array")
	}
	return nil
}

func (f FundingField) MarshalYAML() (interface{}, error) {
	switch f.Kind {
	case FundingSingle:
		return f.Single, nil
	case FundingMany:
		if f.Many == nil {
			return []Funding{}, nil
		}
		return f.Many, nil
	default:
		return f.Inline, nil
	}
}

// RepositoryKind tags the variant held by a RepositoryField.
type RepositoryKind int

const (
	// RepositoryInline is a shorthand such as "github:user/repo" or a URL.
	RepositoryInline RepositoryKind = iota
	// RepositoryObject is a structured Repository record.
	RepositoryObject
)

// RepositoryField is a Repository record or a shorthand string.
type RepositoryField struct {
	Kind   RepositoryKind
	Inline string
	Object Repository
}

// RepositoryString returns a shorthand repository reference.
func RepositoryString(s string) *RepositoryField {
	return &RepositoryField{Kind: RepositoryInline, Inline: s}
}

// RepositoryRecord returns a structured repository reference.
func RepositoryRecord(r Repository) *RepositoryField {
	return &RepositoryField{Kind: RepositoryObject, Object: r}
}

func (r RepositoryField) MarshalJSON() ([]byte, error) {
	if r.Kind == RepositoryObject {
		return marshalJSON(r.Object)
	}
	return marshalJSON(r.Inline)
}

func (r *RepositoryField) UnmarshalJSON(data []byte) error {
	switch leadingToken(data) {
	case 'n':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = *RepositoryString(s)
	case '{':
		var obj Repository
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = *RepositoryRecord(obj)
	default:
		return shapeError("repository", data, "a string or an object")
	}
	return nil
}

func (r RepositoryField) MarshalYAML() (interface{}, error) {
	if r.Kind == RepositoryObject {
		return r.Object, nil
	}
	return r.Inline, nil
}

// ManKind tags the variant held by a ManField.
type ManKind int

const (
	// ManSingle is one man page path.
	ManSingle ManKind = iota
	// ManList is a list of man page paths.
	ManList
)

// ManField is a single man page path or a list of them. An empty list is
// held as a nil List and written as [].
type ManField struct {
	Kind   ManKind
	Single string
	List   []string
}

// ManPage returns a single man page reference.
func ManPage(path string) *ManField {
	return &ManField{Kind: ManSingle, Single: path}
}

// ManPages returns a list of man page references.
func ManPages(paths ...string) *ManField {
	if len(paths) == 0 {
		paths = nil
	}
	return &ManField{Kind: ManList, List: paths}
}

func (m ManField) MarshalJSON() ([]byte, error) {
	if m.Kind == ManList {
		if m.List == nil {
			return []byte("[]"), nil
		}
		return marshalJSON(m.List)
	}
	return marshalJSON(m.Single)
}

func (m *ManField) UnmarshalJSON(data []byte) error {
	switch leadingToken(data) {
	case 'n':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = *ManPage(s)
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*m = *ManPages(list...)
	default:
		return shapeError("man", data, "a string or an array")
	}
	return nil
}

func (m ManField) MarshalYAML() (interface{}, error) {
	if m.Kind == ManList {
		if m.List == nil {
			return []string{}, nil
		}
		return m.List, nil
	}
	return m.Single, nil
}

// leadingToken returns the first significant byte of a JSON value, or 0
// for empty input.
func leadingToken(data []byte) byte {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

func shapeError(field string, data []byte, want string) error {
	got := "empty input"
	switch leadingToken(data) {
	case 't', 'f':
		got = "a boolean"
	case '{':
		got = "an object"
	case '[':
		got = "an array"
	case 0:
	default:
		got = "a number"
	}
	return fmt.Errorf("%s: expected %s, got %s", field, want, got)
}

// marshalJSON encodes v without HTML escaping so strings such as
// "Jane <jane@example.com>" stay readable in the written file.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
