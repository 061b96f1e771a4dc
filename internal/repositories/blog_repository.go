package repositories

import (
	"context"
	"time"

	"github.com/sajid-dev/bloghub/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog *models.Blog) error
	GetBlogByID(ctx context.Context, id string) (*models.Blog, error)
	GetBlogs(ctx context.Context, skip, limit int64) ([]models.Blog, error)
	CountBlogs(ctx context.Context) (int64, error)
	UpdateBlog(ctx context.Context, id string, fields map[string]interface{}) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

// MongoBlogRepository implements BlogRepository for MongoDB
type MongoBlogRepository struct {
	collection *mongo.Collection
}

// NewMongoBlogRepository creates a new MongoBlogRepository
func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{collection: db.Collection("blogs")}
}

// CreateBlog creates a new blog in MongoDB
func (r *MongoBlogRepository) CreateBlog(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, blog)
	return err
}

// GetBlogByID retrieves a blog by ID from MongoDB
func (r *MongoBlogRepository) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var blog models.Blog
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// GetBlogs retrieves blogs from MongoDB with pagination, newest first
func (r *MongoBlogRepository) GetBlogs(ctx context.Context, skip, limit int64) ([]models.Blog, error) {
	var blogs []models.Blog
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// CountBlogs returns the total number of blogs
func (r *MongoBlogRepository) CountBlogs(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

// UpdateBlog applies a partial update to a blog and returns the updated
// document. Absent fields are left untouched.
func (r *MongoBlogRepository) UpdateBlog(ctx context.Context, id string, fields map[string]interface{}) (*models.Blog, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog models.Blog
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": fields}, opts).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// DeleteBlog deletes a blog by ID from MongoDB
func (r *MongoBlogRepository) DeleteBlog(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBlogNotFound
	}
	return nil
}
