package service

import (
	"context"
	"strings"

	"blogsphere/internal/models"
	"blogsphere/internal/repository"
	"blogsphere/internal/validation"
)

// CommentService implements comment creation, listing, and owner-only deletion.
type CommentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

// NewCommentService creates a CommentService.
func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// AddComment attaches a comment to an existing article. Any authenticated
// user may comment on any article.
func (s *CommentService) AddComment(ctx context.Context, articleID, authorID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if err := validation.ValidateContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// The article must exist; a comment on a deleted article is a 404.
	if _, err := s.articleRepo.GetByID(ctx, articleID, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:   content,
		ArticleID: articleID,
		UserID:    authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns an article's comments, newest first.
func (s *CommentService) ListComments(ctx context.Context, articleID uint, limit, offset int) ([]*models.Comment, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	comments, err := s.commentRepo.ListByArticle(ctx, articleID, limit, offset)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// DeleteComment removes a comment; only its own author may do so.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, callerID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(comment.UserID, callerID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, commentID)
}
