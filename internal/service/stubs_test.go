package service

import (
	"context"
	"testing"

	"apt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-field stubs for the repository interfaces. Tests override only the
// calls they expect; anything else panics loudly via the nil function.

type userRepoStub struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getByLoginFn    func(ctx context.Context, loginID string) (*models.User, error)
	updateFn        func(ctx context.Context, user *models.User) error
	listFn          func(ctx context.Context, excludeUsername string) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByLogin(ctx context.Context, loginID string) (*models.User, error) {
	return s.getByLoginFn(ctx, loginID)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, excludeUsername string) ([]models.User, error) {
	return s.listFn(ctx, excludeUsername)
}

type postRepoStub struct {
	createFn     func(ctx context.Context, post *models.Post) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Post, error)
	listFeedFn   func(ctx context.Context) ([]*models.Post, error)
	listAuthorFn func(ctx context.Context, author string) ([]*models.Post, error)
	toggleLikeFn func(ctx context.Context, postID uint, author string) (*models.Post, bool, error)
	countLikesFn func(ctx context.Context, postID uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListFeed(ctx context.Context) ([]*models.Post, error) {
	return s.listFeedFn(ctx)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, author string) ([]*models.Post, error) {
	return s.listAuthorFn(ctx, author)
}
func (s *postRepoStub) ToggleLike(ctx context.Context, postID uint, author string) (*models.Post, bool, error) {
	return s.toggleLikeFn(ctx, postID, author)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.countLikesFn(ctx, postID)
}

type commentRepoStub struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	listByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

type messageRepoStub struct {
	createFn      func(ctx context.Context, message *models.Message) error
	listPublicFn  func(ctx context.Context) ([]*models.Message, error)
	listBetweenFn func(ctx context.Context, userA, userB string) ([]*models.Message, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) ListPublic(ctx context.Context) ([]*models.Message, error) {
	return s.listPublicFn(ctx)
}
func (s *messageRepoStub) ListBetween(ctx context.Context, userA, userB string) ([]*models.Message, error) {
	return s.listBetweenFn(ctx, userA, userB)
}

type reelRepoStub struct {
	createFn func(ctx context.Context, reel *models.Reel) error
	listFn   func(ctx context.Context) ([]*models.Reel, error)
}

func (s *reelRepoStub) Create(ctx context.Context, reel *models.Reel) error {
	return s.createFn(ctx, reel)
}
func (s *reelRepoStub) List(ctx context.Context) ([]*models.Reel, error) {
	return s.listFn(ctx)
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeValidation)
}
