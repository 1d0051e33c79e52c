package services

import "gorm.io/gorm"

// Default page size shared by every list endpoint.
const (
	DefaultTake = 10
	DefaultPage = 1
)

// PageParams is the shared pagination policy: take<=0 means no limit,
// offset = (page-1)*take and is omitted when <=0. Listings order by id DESC.
type PageParams struct {
	Take int
	Page int
}

func (p PageParams) offset() int {
	return (p.Page - 1) * p.Take
}

// apply adds limit/offset/order clauses to a list query.
func (p PageParams) apply(q *gorm.DB) *gorm.DB {
	if p.Take > 0 {
		q = q.Limit(p.Take)
	}
	if off := p.offset(); off > 0 {
		q = q.Offset(off)
	}
	return q.Order("id DESC")
}
