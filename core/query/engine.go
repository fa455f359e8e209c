package query

import (
	"github.com/RoaringBitmap/roaring/v2"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Page selects one slice of a result. The zero value means the first page at
// DefaultPageSize.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps number to at least 1 and size into [1, MaxPageSize].
func NewPage(number, size int) Page {
	return Page{Number: clampPage(number), Size: clampPageSize(size)}
}

func (p Page) normalize() Page {
	if p.Size == 0 {
		p.Size = DefaultPageSize
	}
	return NewPage(p.Number, p.Size)
}

// ResultPage is one page of an evaluated query plus its metadata.
type ResultPage[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Evaluate filters, sorts and paginates records. records is never modified.
func Evaluate[T any](records []T, c Criteria[T]) ResultPage[T] {
	return paginate(Select(records, c), c.Page)
}

// Select returns every record matching the filters of c in sorted order,
// ignoring c.Page. The result is a fresh slice.
func Select[T any](records []T, c Criteria[T]) []T {
	matched := match(records, c.Filters)

	out := make([]T, 0, matched.GetCardinality())
	it := matched.Iterator()
	for it.HasNext() {
		out = append(out, records[it.Next()])
	}

	if c.Sort != nil {
		c.Sort.apply(out)
	}
	return out
}

// match evaluates every active filter into a bitmap of record positions and
// intersects them. Iterating the result yields positions in natural order.
func match[T any](records []T, filters []Filter[T]) *roaring.Bitmap {
	all := roaring.New()
	all.AddRange(0, uint64(len(records)))

	bitmaps := []*roaring.Bitmap{all}
	for _, f := range filters {
		if f == nil || !f.Active() {
			continue
		}

		hits := roaring.New()
		for i, rec := range records {
			if f.Match(rec) {
				hits.Add(uint32(i))
			}
		}
		bitmaps = append(bitmaps, hits)
	}

	if len(bitmaps) == 1 {
		return all
	}
	return roaring.FastAnd(bitmaps...)
}

func paginate[T any](items []T, p Page) ResultPage[T] {
	p = p.normalize()

	total := len(items)
	totalPages := 1
	if p.Size > 0 {
		totalPages = (total + p.Size - 1) / p.Size
	}

	page := []T{}
	if p.Number <= totalPages {
		offset := (p.Number - 1) * p.Size
		end := min(offset+p.Size, total)
		page = append(page, items[offset:end]...)
	}

	return ResultPage[T]{
		Items:      page,
		Page:       p.Number,
		PageSize:   p.Size,
		Total:      total,
		TotalPages: totalPages,
	}
}

func clampPage(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func clampPageSize(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxPageSize:
		return MaxPageSize
	}
	return n
}
