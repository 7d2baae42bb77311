package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	authorKeyPrefix = "/authors/"
	workKeyPrefix   = "/works/"

	// createdLayout matches Open Library timestamps such as 2009-12-11T01:57:19.964652.
	createdLayout = "2006-01-02T15:04:05.000000"
)

// ParseAuthor maps an author dump payload to an Author. Missing fields
// default to the empty string.
func ParseAuthor(payload string) (Author, error) {
	doc, err := parseObject(payload)
	if err != nil {
		return Author{}, err
	}

	return Author{
		ID:           strings.TrimPrefix(doc.Get("key").String(), authorKeyPrefix),
		Name:         doc.Get("name").String(),
		PersonalName: doc.Get("personal_key").String(),
	}, nil
}

// ParseWork maps a work dump payload to a Work. Optional objects and arrays are
// only read when present; a present "created" object must hold a parseable
// "value", and every "authors" element must hold author.key.
func ParseWork(payload string) (ParsedWork, error) {
	doc, err := parseObject(payload)
	if err != nil {
		return ParsedWork{}, err
	}

	work := Work{
		ID:       strings.TrimPrefix(doc.Get("key").String(), workKeyPrefix),
		Title:    doc.Get("title").String(),
		CoverIDs: []string{},
	}

	if desc := doc.Get("description"); desc.IsObject() {
		value := desc.Get("value").String()
		work.Description = &value
	}

	if created := doc.Get("created"); created.IsObject() {
		date, err := parseCreated(created)
		if err != nil {
			return ParsedWork{}, err
		}
		work.PublishedDate = &date
	}

	if covers := doc.Get("covers"); covers.IsArray() {
		for i, c := range covers.Array() {
			if c.Type != gjson.String && c.Type != gjson.Number {
				return ParsedWork{}, fmt.Errorf("%w: covers[%d] is %s", ErrMissingField, i, c.Type)
			}
			work.CoverIDs = append(work.CoverIDs, c.String())
		}
	}

	authors := doc.Get("authors")
	if !authors.IsArray() {
		return ParsedWork{Work: work}, nil
	}

	elems := authors.Array()
	work.AuthorIDs = make([]string, 0, len(elems))
	for i, a := range elems {
		key := a.Get("author").Get("key")
		if !a.IsObject() || key.Type != gjson.String {
			return ParsedWork{}, fmt.Errorf("%w: authors[%d].author.key", ErrMissingField, i)
		}
		work.AuthorIDs = append(work.AuthorIDs, strings.TrimPrefix(key.Str, authorKeyPrefix))
	}

	return ParsedWork{Work: work, HasAuthors: true}, nil
}

func parseObject(payload string) (gjson.Result, error) {
	if !gjson.Valid(payload) {
		return gjson.Result{}, ErrMalformedJSON
	}
	doc := gjson.Parse(payload)
	if !doc.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: payload is %s, not an object", ErrMalformedJSON, doc.Type)
	}
	if key, ok := duplicateKey(doc); ok {
		return gjson.Result{}, fmt.Errorf("%w: duplicate key %q", ErrMalformedJSON, key)
	}
	return doc, nil
}

// duplicateKey reports the first key that appears twice in one object,
// searching nested objects and arrays too.
func duplicateKey(r gjson.Result) (string, bool) {
	var (
		dup   string
		found bool
	)
	switch {
	case r.IsObject():
		seen := make(map[string]struct{})
		r.ForEach(func(k, v gjson.Result) bool {
			if _, ok := seen[k.Str]; ok {
				dup, found = k.Str, true
				return false
			}
			seen[k.Str] = struct{}{}
			dup, found = duplicateKey(v)
			return !found
		})
	case r.IsArray():
		r.ForEach(func(_, v gjson.Result) bool {
			dup, found = duplicateKey(v)
			return !found
		})
	}
	return dup, found
}

func parseCreated(created gjson.Result) (time.Time, error) {
	value := created.Get("value")
	if value.Type != gjson.String {
		return time.Time{}, fmt.Errorf("%w: created.value", ErrMissingField)
	}
	t, err := time.Parse(createdLayout, value.Str)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: created.value %q: %w", ErrBadDate, value.Str, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
