package authorservice_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/service/authorservice"
)

// MockAuthorRepository é uma implementação mock da interface AuthorRepository
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) FindByID(ctx context.Context, id int64) (domain.Author, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindAll(ctx context.Context) ([]domain.Author, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Author), args.Error(1)
}

func (m *MockAuthorRepository) Save(ctx context.Context, author domain.Author) (domain.Author, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(domain.Author), args.Error(1)
}

func (m *MockAuthorRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var ada = domain.Author{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", About: "Math"}

func newService(repo *MockAuthorRepository) *authorservice.Service {
	return authorservice.NewService(repo, logger.NewNopLogger())
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var fieldErr *apperror.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	return fieldErr.Fields
}

// --- Create ---

func TestCreate_Success(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	in := domain.Author{Name: "Ada Lovelace", Email: "ada@example.com", About: "Math"}
	repo.On("Save", mock.Anything, in).Return(ada, nil)

	got, err := svc.Create(context.Background(), domain.AuthorRequest{Name: in.Name, Email: in.Email, About: in.About})

	require.NoError(t, err)
	assert.Equal(t, ada, got)
	repo.AssertExpectations(t)
}

func TestCreate_InvalidFields(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), domain.AuthorRequest{Name: "Al", Email: "not-an-email", About: ""})

	assert.Equal(t, map[string]string{
		"name":  "Name must be at least 3 characters long",
		"email": "Email should be valid",
		"about": "About section must be at least 1 characters long",
	}, fieldErrors(t, err))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// --- Update ---

func TestUpdate_AbsentFieldLeavesValueUnchanged(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	merged := ada
	merged.About = "x"
	repo.On("FindByID", mock.Anything, int64(1)).Return(ada, nil)
	repo.On("Save", mock.Anything, merged).Return(merged, nil)

	got, err := svc.Update(context.Background(), 1, domain.AuthorPatch{About: domain.Some("x")})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "x", got.About)
	repo.AssertExpectations(t)
}

func TestUpdate_AllFields(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	want := domain.Author{ID: 1, Name: "Grace Hopper", Email: "grace@example.com", About: "Compilers"}
	repo.On("FindByID", mock.Anything, int64(1)).Return(ada, nil)
	repo.On("Save", mock.Anything, want).Return(want, nil)

	got, err := svc.Update(context.Background(), 1, domain.AuthorPatch{
		Name:  domain.Some("Grace Hopper"),
		Email: domain.Some("grace@example.com"),
		About: domain.Some("Compilers"),
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdate_EmptyPatch(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	repo.On("FindByID", mock.Anything, int64(1)).Return(ada, nil)

	_, err := svc.Update(context.Background(), 1, domain.AuthorPatch{})

	require.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdate_BlankName(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	repo.On("FindByID", mock.Anything, int64(1)).Return(ada, nil)

	_, err := svc.Update(context.Background(), 1, domain.AuthorPatch{Name: domain.Some("")})

	fields := fieldErrors(t, err)
	assert.Equal(t, "Name must be between 2 and 50 characters", fields["name"])
	assert.Len(t, fields, 1)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdate_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		patch domain.AuthorPatch
		field string
	}{
		{"whitespace name", domain.AuthorPatch{Name: domain.Some("   ")}, "name"},
		{"name too long", domain.AuthorPatch{Name: domain.Some(strings.Repeat("a", 51))}, "name"},
		{"bad email", domain.AuthorPatch{Email: domain.Some("ada@")}, "email"},
		{"blank about", domain.AuthorPatch{About: domain.Some(" ")}, "about"},
		{"about too long", domain.AuthorPatch{About: domain.Some(strings.Repeat("a", 201))}, "about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAuthorRepository)
			svc := newService(repo)
			repo.On("FindByID", mock.Anything, int64(1)).Return(ada, nil)

			_, err := svc.Update(context.Background(), 1, tt.patch)

			assert.Contains(t, fieldErrors(t, err), tt.field)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	repo.On("FindByID", mock.Anything, int64(9)).Return(domain.Author{}, apperror.NewNotFoundError("Author not found with id: 9"))

	_, err := svc.Update(context.Background(), 9, domain.AuthorPatch{Name: domain.Some("Ada")})

	assert.IsType(t, &apperror.NotFoundError{}, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// --- Delete ---

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	repo.On("FindByID", mock.Anything, int64(9)).Return(domain.Author{}, apperror.NewNotFoundError("Author not found with id: 9"))

	err := svc.Delete(context.Background(), 9)

	assert.IsType(t, &apperror.NotFoundError{}, err)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	repo := new(MockAuthorRepository)
	svc := newService(repo)

	repo.On("FindByID", mock.Anything, int64(1)).Return(ada, nil)
	repo.On("DeleteByID", mock.Anything, int64(1)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	repo.AssertExpectations(t)
}
