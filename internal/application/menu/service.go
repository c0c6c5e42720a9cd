package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/kalori/backend/internal/domain/menu"
	"github.com/kalori/backend/internal/domain/shared"
)

// imageFolder is the bucket folder menu item images are uploaded into
const imageFolder = "menu"

// ImageStore materializes inline image payloads and deletes stored images
type ImageStore interface {
	// UploadDataURI stores an inline-encoded image and returns its public URL
	UploadDataURI(ctx context.Context, dataURI, folder string) (string, error)
	// Delete removes the object behind a public URL. Foreign URLs are ignored.
	Delete(ctx context.Context, imageURL string) error
}

// IsDataURI reports whether an image value is an inline payload that needs
// upload, as opposed to an already-resolved URL stored verbatim.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, "data:")
}

// Service handles menu mutations: category creation, item CRUD and reorder
type Service struct {
	categoryRepo domain.CategoryRepository
	itemRepo     domain.ItemRepository
	orderRepo    domain.OrderRepository
	images       ImageStore
	logger       *zap.Logger
}

// NewService creates a new menu Service
func NewService(
	categoryRepo domain.CategoryRepository,
	itemRepo domain.ItemRepository,
	orderRepo domain.OrderRepository,
	images ImageStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		orderRepo:    orderRepo,
		images:       images,
		logger:       logger,
	}
}

// CreateCategory creates a new category. Slug collisions are left to the
// store's unique constraint and surface as a generic failure.
func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryDetail, error) {
	category, err := domain.NewCategory(req.Slug, req.Label)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryDetail(category), nil
}

// ListCategories returns all categories for the admin console
func (s *Service) ListCategories(ctx context.Context) ([]CategorySummary, error) {
	categories, err := s.categoryRepo.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]CategorySummary, len(categories))
	for i, c := range categories {
		summaries[i] = CategorySummary{ID: c.ID, Label: c.Label}
	}
	return summaries, nil
}

// CreateItem creates a menu item in the category addressed by slug
func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemView, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, req.CategorySlug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	name := strings.TrimSpace(req.Name)

	// Dedupe guard runs against the submitted triple, before any upload
	exists, err := s.itemRepo.ExistsWithSignature(ctx, category.ID, name, req.Calories, req.ImagePath)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Duplicate item")
	}

	imagePath, err := s.resolveImage(ctx, req.ImagePath)
	if err != nil {
		return nil, err
	}

	item, err := domain.NewItem(category.ID, name, req.Calories, imagePath, req.Hidden)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	view := ToItemView(item, category.Slug)
	return &view, nil
}

// UpdateItem applies a sparse patch to an item. Fields that are absent or
// fail their predicate are silently left untouched; a patch with no effective
// field at all is rejected.
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemView, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Item not found")
		}
		return nil, err
	}

	changed := false

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			item.SetName(name)
			changed = true
		}
	}
	if req.Calories != nil && *req.Calories >= 0 {
		item.SetCalories(*req.Calories)
		changed = true
	}
	if req.ImagePath != nil {
		if imagePath := strings.TrimSpace(*req.ImagePath); imagePath != "" {
			resolved, err := s.resolveImage(ctx, imagePath)
			if err != nil {
				return nil, err
			}
			item.SetImagePath(resolved)
			changed = true
		}
	}
	if req.Hidden != nil {
		item.SetHidden(*req.Hidden)
		changed = true
	}

	if !changed {
		return nil, shared.NewDomainError("INVALID_INPUT", "No changes provided")
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, item.CategoryID)
	if err != nil {
		return nil, err
	}

	view := ToItemView(item, category.Slug)
	return &view, nil
}

// DeleteItem removes an item. Deleting an unknown id succeeds silently. The
// stored image is deleted best-effort first; a failure there is logged and
// never blocks the delete.
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.images.Delete(ctx, item.ImagePath); err != nil {
		s.logger.Warn("Failed to delete item image",
			zap.String("item_id", id.String()),
			zap.String("image_path", item.ImagePath),
			zap.Error(err),
		)
	}

	return s.itemRepo.Delete(ctx, id)
}

// Reorder replaces the explicit item order of the category addressed by slug.
// Ids are only checked syntactically; ids of foreign or deleted items become
// orphan rows the read model ignores.
func (s *Service) Reorder(ctx context.Context, req ReorderRequest) error {
	category, err := s.categoryRepo.FindBySlug(ctx, req.CategorySlug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		return err
	}

	itemIDs := make([]uuid.UUID, len(req.Order))
	for i, raw := range req.Order {
		itemID, err := uuid.Parse(raw)
		if err != nil {
			return shared.NewDomainError("INVALID_INPUT", "Invalid order")
		}
		itemIDs[i] = itemID
	}

	return s.orderRepo.ReplaceForCategory(ctx, category.ID, itemIDs)
}

// resolveImage materializes inline payloads through the image store and
// passes resolved URLs through unchanged
func (s *Service) resolveImage(ctx context.Context, imagePath string) (string, error) {
	if !IsDataURI(imagePath) {
		return imagePath, nil
	}
	return s.images.UploadDataURI(ctx, imagePath, imageFolder)
}
