package product

type ListQuery struct {
	Category string `form:"category"`
	Search   string `form:"q"`
}
