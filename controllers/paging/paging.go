package paging

import (
	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/services"
)

type query struct {
	Take int `form:"take,default=10"`
	Page int `form:"page,default=1"`
}

// FromQuery binds the shared take/page parameters. Absent values get the
// default page size; an explicit take=0 keeps its unlimited meaning.
func FromQuery(c *gin.Context) (services.PageParams, error) {
	q := query{Take: services.DefaultTake, Page: services.DefaultPage}
	if err := c.ShouldBindQuery(&q); err != nil {
		return services.PageParams{}, err
	}
	return services.PageParams{Take: q.Take, Page: q.Page}, nil
}
