package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dashboard/internal/model"
)

func newSearchFixture() (*MockUserRepository, *MockPostRepository, *MockCommunityRepository, SearchService) {
	mockUserRepo := new(MockUserRepository)
	mockPostRepo := new(MockPostRepository)
	mockCommunityRepo := new(MockCommunityRepository)
	service := NewSearchService(mockUserRepo, mockPostRepo, mockCommunityRepo)
	return mockUserRepo, mockPostRepo, mockCommunityRepo, service
}

func TestSearchService_Search(t *testing.T) {
	users := []model.User{
		{ID: uuid.New(), Name: "Anna Lee"},
		{ID: uuid.New(), Name: "Ben Tan"},
	}
	posts := []model.Post{
		{ID: uuid.New(), Text: "Having bananas for breakfast"},
		{ID: uuid.New(), Text: "nothing to see"},
	}
	communities := []model.Community{
		{ID: uuid.New(), Name: "Savanna Hikers"},
		{ID: uuid.New(), Name: "Runners"},
	}

	mockUserRepo, mockPostRepo, mockCommunityRepo, service := newSearchFixture()
	mockUserRepo.On("List", mock.Anything).Return(users, nil)
	mockPostRepo.On("List", mock.Anything).Return(posts, nil)
	mockCommunityRepo.On("List", mock.Anything).Return(communities, nil)

	results, err := service.Search(context.Background(), "anna")

	assert.NoError(t, err)
	assert.NotNil(t, results)
	// Matching is case-insensitive substring per field.
	assert.Len(t, results.Users, 1)
	assert.Equal(t, "Anna Lee", results.Users[0].Name)
	assert.Len(t, results.Posts, 1)
	assert.Equal(t, "Having bananas for breakfast", results.Posts[0].Text)
	assert.Len(t, results.Communities, 1)
	assert.Equal(t, "Savanna Hikers", results.Communities[0].Name)
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		mockUserRepo, mockPostRepo, mockCommunityRepo, service := newSearchFixture()

		results, err := service.Search(context.Background(), query)

		// No active search: nil results, not empty result sets, and no
		// corpus loading at all.
		assert.NoError(t, err)
		assert.Nil(t, results)
		mockUserRepo.AssertNotCalled(t, "List", mock.Anything)
		mockPostRepo.AssertNotCalled(t, "List", mock.Anything)
		mockCommunityRepo.AssertNotCalled(t, "List", mock.Anything)
	}
}

func TestSearchService_Search_NoMatches(t *testing.T) {
	mockUserRepo, mockPostRepo, mockCommunityRepo, service := newSearchFixture()
	mockUserRepo.On("List", mock.Anything).Return([]model.User{{ID: uuid.New(), Name: "Ben Tan"}}, nil)
	mockPostRepo.On("List", mock.Anything).Return([]model.Post{}, nil)
	mockCommunityRepo.On("List", mock.Anything).Return([]model.Community{}, nil)

	results, err := service.Search(context.Background(), "zzz")

	// A search with zero matches is still an active search.
	assert.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results.Users)
	assert.Empty(t, results.Posts)
	assert.Empty(t, results.Communities)
}
