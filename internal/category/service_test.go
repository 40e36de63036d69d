package category_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MGhiremath0281/Apex-Money/internal"
	"github.com/MGhiremath0281/Apex-Money/internal/category"
	"github.com/MGhiremath0281/Apex-Money/internal/core/events"
)

func TestCategoryService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Service Suite")
}

type mockCategoryRepository struct {
	categories  map[int64]*category.Category
	txCounts    map[int64]int64
	nextID      int64
	createError error
	updateError error
	deleteError error
	countError  error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{
		categories: make(map[int64]*category.Category),
		txCounts:   make(map[int64]int64),
		nextID:     1,
	}
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if m.createError != nil {
		return m.createError
	}
	c.ID = m.nextID
	m.nextID++
	stored := *c
	m.categories[c.ID] = &stored
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, userID, id int64) (*category.Category, error) {
	c, ok := m.categories[id]
	if !ok || c.UserID != userID {
		return nil, errors.New("record not found")
	}
	copied := *c
	return &copied, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, userID int64, name string) (*category.Category, error) {
	for _, c := range m.categories {
		if c.UserID == userID && c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *mockCategoryRepository) ListByUser(ctx context.Context, userID int64) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.updateError != nil {
		return m.updateError
	}
	stored := *c
	m.categories[c.ID] = &stored
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepository) CountTransactions(ctx context.Context, categoryID int64) (int64, error) {
	if m.countError != nil {
		return 0, m.countError
	}
	return m.txCounts[categoryID], nil
}

type mockEventBus struct {
	published    []events.Event
	publishError error
}

func (m *mockEventBus) PublishSync(ctx context.Context, event events.Event) error {
	if m.publishError != nil {
		return m.publishError
	}
	m.published = append(m.published, event)
	return nil
}

var _ = Describe("Category Service", func() {
	var (
		repo *mockCategoryRepository
		bus  *mockEventBus
		svc  *category.Service
		ctx  context.Context
	)

	strPtr := func(s string) *string { return &s }

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMockCategoryRepository()
		bus = &mockEventBus{}
		svc = category.NewService(repo, bus, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	Describe("Create", func() {
		It("should create a category with a trimmed name", func() {
			c, err := svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "  Groceries ", Kind: "expense"})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.ID).To(BeNumerically(">", 0))
			Expect(c.Name).To(Equal("Groceries"))
			Expect(c.Kind).To(Equal("expense"))
		})

		It("should reject an empty name", func() {
			_, err := svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "  ", Kind: "expense"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeValidationFailed))
		})

		It("should reject an unknown kind", func() {
			_, err := svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "Groceries", Kind: "transfer"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidKind))
		})

		It("should reject a duplicate name for the same user", func() {
			_, err := svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "Groceries", Kind: "expense"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "Groceries", Kind: "expense"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeCategoryExists))
		})

		It("should allow the same name for different users", func() {
			_, err := svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "Groceries", Kind: "expense"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Create(ctx, 2, category.CreateCategoryDTO{Name: "Groceries", Kind: "expense"})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Update", func() {
		var existing *category.Category

		BeforeEach(func() {
			var err error
			existing, err = svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "Groceries", Kind: "expense"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should rename and publish a rename event", func() {
			updated, err := svc.Update(ctx, 1, existing.ID, category.UpdateCategoryDTO{Name: strPtr("Food")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Food"))

			Expect(bus.published).To(HaveLen(1))
			renamed, ok := bus.published[0].(*events.CategoryRenamedEvent)
			Expect(ok).To(BeTrue())
			Expect(renamed.OldName).To(Equal("Groceries"))
			Expect(renamed.NewName).To(Equal("Food"))
			Expect(renamed.UserID).To(Equal(int64(1)))
		})

		It("should not publish when the name is unchanged", func() {
			_, err := svc.Update(ctx, 1, existing.ID, category.UpdateCategoryDTO{Name: strPtr("Groceries")})
			Expect(err).NotTo(HaveOccurred())
			Expect(bus.published).To(BeEmpty())
		})

		It("should change kind while the category has no transactions", func() {
			updated, err := svc.Update(ctx, 1, existing.ID, category.UpdateCategoryDTO{Kind: strPtr("income")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Kind).To(Equal("income"))
		})

		It("should reject a kind change while transactions exist", func() {
			repo.txCounts[existing.ID] = 3

			_, err := svc.Update(ctx, 1, existing.ID, category.UpdateCategoryDTO{Kind: strPtr("income")})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeCategoryInUse))
		})

		It("should reject renaming onto another category's name", func() {
			_, err := svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "Food", Kind: "expense"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Update(ctx, 1, existing.ID, category.UpdateCategoryDTO{Name: strPtr("Food")})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeCategoryExists))
		})

		It("should fail the update when rename propagation fails", func() {
			bus.publishError = errors.New("handler blew up")

			_, err := svc.Update(ctx, 1, existing.ID, category.UpdateCategoryDTO{Name: strPtr("Food")})
			Expect(err).To(HaveOccurred())
		})

		It("should return not found for another user's category", func() {
			_, err := svc.Update(ctx, 2, existing.ID, category.UpdateCategoryDTO{Name: strPtr("Food")})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeCategoryNotFound))
		})
	})

	Describe("Delete", func() {
		var existing *category.Category

		BeforeEach(func() {
			var err error
			existing, err = svc.Create(ctx, 1, category.CreateCategoryDTO{Name: "Groceries", Kind: "expense"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should delete an unused category and publish a deleted event", func() {
			err := svc.Delete(ctx, 1, existing.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.GetByID(ctx, 1, existing.ID)
			Expect(err).To(HaveOccurred())

			Expect(bus.published).To(HaveLen(1))
			_, ok := bus.published[0].(*events.CategoryDeletedEvent)
			Expect(ok).To(BeTrue())
		})

		It("should block deletion while transactions reference the category", func() {
			repo.txCounts[existing.ID] = 1

			err := svc.Delete(ctx, 1, existing.ID)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeCategoryInUse))
		})
	})
})
