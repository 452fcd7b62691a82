package storefront

type CategoryGroup struct {
	Name     string
	Products []Product
}

// GroupByCategory buckets products by category, keeping categories in the
// order they first appear and products in their original order.
func GroupByCategory(products []Product) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup

	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, CategoryGroup{Name: p.Category})
		}
		groups[i].Products = append(groups[i].Products, p)
	}

	return groups
}
