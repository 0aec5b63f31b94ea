package service

import (
	"context"

	"kirana/internal/model"
	"kirana/internal/repository"
	"kirana/internal/seed"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context, categoryID *int) ([]model.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockShowcaseRepository is a mock implementation of ShowcaseRepository.
type MockShowcaseRepository struct {
	mock.Mock
}

func (m *MockShowcaseRepository) GetPrices(ctx context.Context) ([]model.PriceEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PriceEntry), args.Error(1)
}

func (m *MockShowcaseRepository) GetMilestones(ctx context.Context) ([]model.Milestone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Milestone), args.Error(1)
}

func (m *MockShowcaseRepository) GetLocations(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

// MockSeedRepository is a mock implementation of SeedRepository.
type MockSeedRepository struct {
	mock.Mock
}

func (m *MockSeedRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSeedRepository) IsEmpty(ctx context.Context, tx pgx.Tx, table repository.Table) (bool, error) {
	args := m.Called(ctx, tx, table)
	return args.Bool(0), args.Error(1)
}

func (m *MockSeedRepository) InsertCategories(ctx context.Context, tx pgx.Tx, categories []seed.Category) (map[string]int, error) {
	args := m.Called(ctx, tx, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockSeedRepository) InsertProducts(ctx context.Context, tx pgx.Tx, products []seed.Product, categoryIDs map[string]int) error {
	return m.Called(ctx, tx, products, categoryIDs).Error(0)
}

func (m *MockSeedRepository) InsertPrices(ctx context.Context, tx pgx.Tx, prices []seed.PriceEntry) error {
	return m.Called(ctx, tx, prices).Error(0)
}

func (m *MockSeedRepository) InsertMilestones(ctx context.Context, tx pgx.Tx, milestones []seed.Milestone) error {
	return m.Called(ctx, tx, milestones).Error(0)
}

func (m *MockSeedRepository) InsertLocations(ctx context.Context, tx pgx.Tx, locations []seed.Location) error {
	return m.Called(ctx, tx, locations).Error(0)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }
