package menu

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	domain "github.com/kalori/backend/internal/domain/menu"
)

// QueryService assembles the menu read model: categories ordered by label,
// each holding its items ordered by the explicit per-category position set
// with an alphabetical fallback.
type QueryService struct {
	categoryRepo domain.CategoryRepository
	itemRepo     domain.ItemRepository
	orderRepo    domain.OrderRepository
	collator     *collate.Collator
}

// NewQueryService creates a new QueryService
func NewQueryService(
	categoryRepo domain.CategoryRepository,
	itemRepo domain.ItemRepository,
	orderRepo domain.OrderRepository,
) *QueryService {
	return &QueryService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		orderRepo:    orderRepo,
		collator:     collate.New(language.Und),
	}
}

// BuildMenu produces the ordered category tree. Hidden items are excluded
// unless includeHidden is set.
func (s *QueryService) BuildMenu(ctx context.Context, includeHidden bool) ([]CategoryView, error) {
	categories, err := s.categoryRepo.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]uuid.UUID, len(categories))
	for i, c := range categories {
		categoryIDs[i] = c.ID
	}

	items, err := s.itemRepo.FindByCategories(ctx, categoryIDs, includeHidden)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	itemsByCategory := make(map[uuid.UUID][]domain.Item)
	for _, item := range items {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}

	positionsByCategory := make(map[uuid.UUID]map[uuid.UUID]int)
	for _, entry := range orders {
		positions, ok := positionsByCategory[entry.CategoryID]
		if !ok {
			positions = make(map[uuid.UUID]int)
			positionsByCategory[entry.CategoryID] = positions
		}
		positions[entry.ItemID] = entry.Position
	}

	views := make([]CategoryView, len(categories))
	for i, category := range categories {
		ordered := s.orderItems(itemsByCategory[category.ID], positionsByCategory[category.ID])

		itemViews := make([]ItemView, len(ordered))
		for j := range ordered {
			itemViews[j] = ToItemView(&ordered[j], category.Slug)
		}

		views[i] = CategoryView{
			ID:    category.ID,
			Slug:  category.Slug,
			Label: category.Label,
			Items: itemViews,
		}
	}

	return views, nil
}

// orderItems sorts a category's items. With no position set every item sorts
// by name; otherwise positioned items come first by position and the rest
// follow sorted by name.
func (s *QueryService) orderItems(items []domain.Item, positions map[uuid.UUID]int) []domain.Item {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)

	if len(positions) == 0 {
		sort.SliceStable(sorted, func(a, b int) bool {
			return s.collator.CompareString(sorted[a].Name, sorted[b].Name) < 0
		})
		return sorted
	}

	sort.SliceStable(sorted, func(a, b int) bool {
		posA, okA := positions[sorted[a].ID]
		posB, okB := positions[sorted[b].ID]
		switch {
		case okA && okB:
			return posA < posB
		case okA:
			return true
		case okB:
			return false
		default:
			return s.collator.CompareString(sorted[a].Name, sorted[b].Name) < 0
		}
	})
	return sorted
}
