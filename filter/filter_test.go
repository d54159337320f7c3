package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/filter"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID: "p1", Name: "iPhone Case", Brand: "Apple", Category: "Phone Cases",
			Colors: []catalog.ColorOption{{Color: "Black", InStock: true}, {Color: "Red", InStock: false}},
		},
		{
			ID: "p2", Name: "Galaxy S24", Brand: "Samsung", Category: "Flagship Phones",
			Colors:  []catalog.ColorOption{{Color: "Gray", InStock: true}},
			Storage: []catalog.StorageOption{{Size: "256GB", InStock: true}},
		},
		{
			ID: "p3", Name: "Charger", Brand: "Anker", Category: "Chargers & Cables",
		},
		{
			ID: "p4", Name: "ROG Phone", Brand: "Asus", Category: "Gaming Phones",
			Storage: []catalog.StorageOption{{Size: "512GB", InStock: true}},
		},
		{
			ID: "p5", Name: "Pixel 9", Brand: "Google", Category: "Budget Phones",
		},
		{
			ID: "p6", Name: "Phone Grip", Brand: "CaseTech", Category: "Accessories",
		},
		{
			ID: "p7", Name: "Desk Lamp", Brand: "Ikea", Category: "Home",
		},
	}
}

func allSelectedCriteria() filter.Criteria {
	return filter.NewCriteria(
		[]string{"Black", "Gray", "Blue"},
		[]string{"256GB", "512GB"},
	)
}

func ids(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestDeriveEmptyCriteriaMatchesEverythingSelected(t *testing.T) {
	products := testProducts()
	criteria := allSelectedCriteria()

	filtered := filter.Derive(products, criteria)
	require.Equal(t, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}, ids(filtered))
}

func TestDeriveSearchMatchesNameOrBrandButNotOthers(t *testing.T) {
	products := testProducts()
	criteria := allSelectedCriteria()
	criteria.SetSearchQuery("case")

	// "iPhone Case" matches by name, "Phone Grip" by its CaseTech brand;
	// "Charger" matches neither.
	filtered := filter.Derive(products, criteria)
	require.Equal(t, []string{"p1", "p6"}, ids(filtered))
}

func TestDeriveSearchIsCaseInsensitive(t *testing.T) {
	products := testProducts()
	criteria := allSelectedCriteria()
	criteria.SetSearchQuery("GALAXY")

	require.Equal(t, []string{"p2"}, ids(filter.Derive(products, criteria)))
}

func TestDeriveCategoryGroupingPhones(t *testing.T) {
	products := testProducts()
	criteria := allSelectedCriteria()
	criteria.SetCategory("Phones")

	// Flagship, Gaming, and Budget Phones are all in the Phones grouping.
	require.Equal(t, []string{"p2", "p4", "p5"}, ids(filter.Derive(products, criteria)))
}

func TestDeriveCategoryGroupingAccessories(t *testing.T) {
	products := testProducts()
	criteria := allSelectedCriteria()
	criteria.SetCategory("Accessories")

	require.Equal(t, []string{"p1", "p3", "p6"}, ids(filter.Derive(products, criteria)))
}

func TestDeriveCategoryExactMatch(t *testing.T) {
	products := testProducts()
	criteria := allSelectedCriteria()
	criteria.SetCategory("Home")

	require.Equal(t, []string{"p7"}, ids(filter.Derive(products, criteria)))
}

func TestDeriveColorFilterExcludesUnselected(t *testing.T) {
	products := testProducts()
	criteria := filter.NewCriteria([]string{"Gray"}, []string{"256GB", "512GB"})

	filtered := filter.Derive(products, criteria)

	// p1's only in-stock color is black, which is not selected. Products
	// without in-stock colors are unconstrained by the color rule.
	require.Equal(t, []string{"p2", "p3", "p4", "p5", "p6", "p7"}, ids(filtered))
}

func TestDeriveOutOfStockColorDoesNotMatch(t *testing.T) {
	products := testProducts()
	// Red exists on p1 but is out of stock, so p1's in-stock set is just
	// black and the red selection cannot match it.
	criteria := filter.NewCriteria([]string{"Red"}, nil)

	filtered := filter.Derive(products, criteria)
	require.NotContains(t, ids(filtered), "p1")
}

func TestDeriveUnconstrainedWhenNoInStockVariants(t *testing.T) {
	products := []catalog.Product{
		{ID: "bare", Name: "Bare", Brand: "None", Category: "Home"},
	}
	criteria := filter.NewCriteria([]string{"purple"}, []string{"1TB"})

	// A product with zero in-stock colors/storages is never excluded by
	// those rules, regardless of selection.
	require.Equal(t, []string{"bare"}, ids(filter.Derive(products, criteria)))
}

func TestDeriveIsDeterministicAndOrderPreserving(t *testing.T) {
	products := testProducts()
	criteria := allSelectedCriteria()
	criteria.SetCategory("Phones")

	first := filter.Derive(products, criteria)
	second := filter.Derive(products, criteria)

	require.Equal(t, ids(first), ids(second))

	// Order-preserving: the filtered IDs appear in source order.
	position := map[string]int{}
	for i, p := range products {
		position[p.ID] = i
	}
	for i := 1; i < len(first); i++ {
		require.Less(t, position[first[i-1].ID], position[first[i].ID])
	}
}

func TestCriteriaChangesResetPage(t *testing.T) {
	criteria := allSelectedCriteria()
	criteria.SetPage(3)
	require.Equal(t, 3, criteria.Page)

	criteria.SetCategory("Phones")
	require.Equal(t, 0, criteria.Page)

	criteria.SetPage(2)
	criteria.ToggleColor("black")
	require.Equal(t, 0, criteria.Page)

	criteria.SetPage(2)
	criteria.ToggleStorage("256gb")
	require.Equal(t, 0, criteria.Page)

	criteria.SetPage(2)
	criteria.SetSearchQuery("case")
	require.Equal(t, 0, criteria.Page)
}

func TestToggleColorAddsAndRemoves(t *testing.T) {
	criteria := filter.NewCriteria([]string{"black"}, nil)

	criteria.ToggleColor("black")
	require.NotContains(t, criteria.Colors, "black")

	criteria.ToggleColor("Black")
	require.Contains(t, criteria.Colors, "black")
}

func TestPaginateClampsPage(t *testing.T) {
	products := testProducts() // 7 products

	view := filter.Paginate(products, 99, 4)
	require.Equal(t, 1, view.Page)
	require.Equal(t, 2, view.PageCount)
	require.Len(t, view.Products, 3)

	view = filter.Paginate(products, -5, 4)
	require.Equal(t, 0, view.Page)
	require.Len(t, view.Products, 4)
}

func TestPaginateEmptyResultSet(t *testing.T) {
	view := filter.Paginate(nil, 2, 4)
	require.Equal(t, 0, view.Page)
	require.Equal(t, 1, view.PageCount)
	require.Empty(t, view.Products)
	require.Equal(t, 0, view.TotalCount)
}

func TestApplyDerivesAndPaginates(t *testing.T) {
	products := testProducts()
	criteria := allSelectedCriteria()
	criteria.SetCategory("Phones")

	view := filter.Apply(products, criteria, 2)
	require.Equal(t, 3, view.TotalCount)
	require.Equal(t, 2, view.PageCount)
	require.Equal(t, []string{"p2", "p4"}, ids(view.Products))

	criteria.SetPage(1)
	view = filter.Apply(products, criteria, 2)
	require.Equal(t, []string{"p5"}, ids(view.Products))
}
