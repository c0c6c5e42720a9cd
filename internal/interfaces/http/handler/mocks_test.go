package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	identitydomain "github.com/kalori/backend/internal/domain/identity"
	menudomain "github.com/kalori/backend/internal/domain/menu"
	"github.com/kalori/backend/internal/infrastructure/auth"
	"github.com/kalori/backend/internal/interfaces/http/middleware"
)

// MockCategoryRepository implements menu.CategoryRepository for testing
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*menudomain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menudomain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*menudomain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menudomain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAllSorted(ctx context.Context) ([]menudomain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]menudomain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *menudomain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockItemRepository implements menu.ItemRepository for testing
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*menudomain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menudomain.Item), args.Error(1)
}

func (m *MockItemRepository) FindByCategories(ctx context.Context, categoryIDs []uuid.UUID, includeHidden bool) ([]menudomain.Item, error) {
	args := m.Called(ctx, categoryIDs, includeHidden)
	return args.Get(0).([]menudomain.Item), args.Error(1)
}

func (m *MockItemRepository) ExistsWithSignature(ctx context.Context, categoryID uuid.UUID, name string, calories int, imagePath string) (bool, error) {
	args := m.Called(ctx, categoryID, name, calories, imagePath)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *menudomain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository implements menu.OrderRepository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]menudomain.OrderEntry, error) {
	args := m.Called(ctx, categoryIDs)
	return args.Get(0).([]menudomain.OrderEntry), args.Error(1)
}

func (m *MockOrderRepository) ReplaceForCategory(ctx context.Context, categoryID uuid.UUID, itemIDs []uuid.UUID) error {
	args := m.Called(ctx, categoryID, itemIDs)
	return args.Error(0)
}

// MockAdminUserRepository implements identity.AdminUserRepository for testing
type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) FindActiveByUIDOrEmail(ctx context.Context, uid, email string) (*identitydomain.AdminUser, error) {
	args := m.Called(ctx, uid, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) FindByEmail(ctx context.Context, email string) (*identitydomain.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) Save(ctx context.Context, admin *identitydomain.AdminUser) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

// MockUserProfileRepository implements identity.UserProfileRepository for testing
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) FindByUID(ctx context.Context, uid string) (*identitydomain.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Save(ctx context.Context, profile *identitydomain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockTokenVerifier implements the gate's TokenVerifier for testing
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(tokenString string) (*auth.Identity, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}

// MockImageStore implements the application image store ports for testing
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) UploadDataURI(ctx context.Context, dataURI, folder string) (string, error) {
	args := m.Called(ctx, dataURI, folder)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Delete(ctx context.Context, imageURL string) error {
	args := m.Called(ctx, imageURL)
	return args.Error(0)
}

// Test setup helpers

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	return gin.New()
}

func newTestCategory(slug, label string) *menudomain.Category {
	category, _ := menudomain.NewCategory(slug, label)
	return category
}

func newTestItem(categoryID uuid.UUID, name string, calories int) *menudomain.Item {
	item, _ := menudomain.NewItem(categoryID, name, calories, "https://images.example/"+name+".jpg", false)
	return item
}
