// Package params maps browse state to and from URL query strings so a
// view's filters, sort, and page can be shared as a single link.
package params

import (
	"net/url"
	"strconv"
)

// Builder reads and writes typed values on a query string. Setting a
// zero value removes the key, keeping shared links minimal.
type Builder struct {
	values url.Values
}

func New() *Builder {
	return &Builder{values: url.Values{}}
}

// Parse returns a Builder over an existing query string. A malformed
// query yields an empty builder rather than an error.
func Parse(query string) *Builder {
	v, err := url.ParseQuery(query)
	if err != nil {
		v = url.Values{}
	}
	return &Builder{values: v}
}

func (b *Builder) Str(key string) string {
	return b.values.Get(key)
}

func (b *Builder) SetStr(key, val string) {
	if val == "" {
		b.values.Del(key)
		return
	}
	b.values.Set(key, val)
}

// Num returns nil when the key is absent or not an integer.
func (b *Builder) Num(key string) *int {
	s := b.values.Get(key)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func (b *Builder) SetNum(key string, val *int) {
	if val == nil {
		b.values.Del(key)
		return
	}
	b.values.Set(key, strconv.Itoa(*val))
}

// Tri reads a three-state flag: nil when absent, otherwise the parsed
// boolean. Anything that is not "true" reads as false.
func (b *Builder) Tri(key string) *bool {
	s := b.values.Get(key)
	if s == "" {
		return nil
	}
	v := s == "true"
	return &v
}

func (b *Builder) SetTri(key string, val *bool) {
	if val == nil {
		b.values.Del(key)
		return
	}
	b.values.Set(key, strconv.FormatBool(*val))
}

func (b *Builder) Encode() string {
	return b.values.Encode()
}

// Filters is the filter state every list view shares. Pointer fields
// distinguish "not filtering" from filtering on a zero value.
type Filters struct {
	Text         string
	Country      string
	Year         *int
	Discontinued *bool
}

func (b *Builder) Filters() Filters {
	return Filters{
		Text:         b.Str("q"),
		Country:      b.Str("country"),
		Year:         b.Num("year"),
		Discontinued: b.Tri("discontinued"),
	}
}

func (b *Builder) SetFilters(f Filters) {
	b.SetStr("q", f.Text)
	b.SetStr("country", f.Country)
	b.SetNum("year", f.Year)
	b.SetTri("discontinued", f.Discontinued)
}

// Sort state: column name plus direction. An empty column means the
// view's default order.
func (b *Builder) Sort() (col string, reverse bool) {
	col = b.Str("sort")
	if r := b.Tri("reverse"); r != nil {
		reverse = *r
	}
	return col, reverse
}

func (b *Builder) SetSort(col string, reverse bool) {
	b.SetStr("sort", col)
	if reverse {
		t := true
		b.SetTri("reverse", &t)
	} else {
		b.SetTri("reverse", nil)
	}
}

// Page is zero-based; page 0 is omitted from the query.
func (b *Builder) Page() int {
	if n := b.Num("page"); n != nil && *n > 0 {
		return *n
	}
	return 0
}

func (b *Builder) SetPage(page int) {
	if page <= 0 {
		b.SetNum("page", nil)
		return
	}
	b.SetNum("page", &page)
}
