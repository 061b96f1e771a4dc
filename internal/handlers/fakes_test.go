package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/sajid-dev/bloghub/backend/internal/models"
	"github.com/sajid-dev/bloghub/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

// fakeBlogRepo is an in-memory BlogRepository
type fakeBlogRepo struct {
	blogs map[string]*models.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: make(map[string]*models.Blog)}
}

func (r *fakeBlogRepo) CreateBlog(_ context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}
	blog.UpdatedAt = blog.CreatedAt
	copied := *blog
	r.blogs[blog.ID.Hex()] = &copied
	return nil
}

func (r *fakeBlogRepo) GetBlogByID(_ context.Context, id string) (*models.Blog, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	blog, ok := r.blogs[id]
	if !ok {
		return nil, repositories.ErrBlogNotFound
	}
	copied := *blog
	return &copied, nil
}

func (r *fakeBlogRepo) GetBlogs(_ context.Context, skip, limit int64) ([]models.Blog, error) {
	all := r.sorted()
	if skip >= int64(len(all)) {
		return nil, nil
	}
	all = all[skip:]
	if limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeBlogRepo) CountBlogs(_ context.Context) (int64, error) {
	return int64(len(r.blogs)), nil
}

func (r *fakeBlogRepo) UpdateBlog(_ context.Context, id string, fields map[string]interface{}) (*models.Blog, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	blog, ok := r.blogs[id]
	if !ok {
		return nil, repositories.ErrBlogNotFound
	}
	if title, ok := fields["title"].(string); ok {
		blog.Title = title
	}
	if description, ok := fields["description"].(string); ok {
		blog.Description = description
	}
	if image, ok := fields["image"].(string); ok {
		blog.Image = image
	}
	blog.UpdatedAt = time.Now()
	copied := *blog
	return &copied, nil
}

func (r *fakeBlogRepo) DeleteBlog(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repositories.ErrInvalidID
	}
	if _, ok := r.blogs[id]; !ok {
		return repositories.ErrBlogNotFound
	}
	delete(r.blogs, id)
	return nil
}

func (r *fakeBlogRepo) sorted() []models.Blog {
	all := make([]models.Blog, 0, len(r.blogs))
	for _, blog := range r.blogs {
		all = append(all, *blog)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

// fakeCommentRepo is an in-memory CommentRepository
type fakeCommentRepo struct {
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*models.Comment)}
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	copied := *comment
	r.comments[comment.ID.Hex()] = &copied
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id string) (*models.Comment, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	comment, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) GetCommentsByBlogID(_ context.Context, blogID string) ([]models.Comment, error) {
	if _, err := primitive.ObjectIDFromHex(blogID); err != nil {
		return nil, repositories.ErrInvalidID
	}
	var matched []models.Comment
	for _, comment := range r.comments {
		if comment.BlogID.Hex() == blogID {
			matched = append(matched, *comment)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repositories.ErrInvalidID
	}
	if _, ok := r.comments[id]; !ok {
		return repositories.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}
