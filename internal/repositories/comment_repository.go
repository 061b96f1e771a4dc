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

// CommentRepository defines the interface for comment data operations.
// GetCommentsByBlogID returns comments ordered by creation time descending.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	GetCommentsByBlogID(ctx context.Context, blogID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// CreateComment creates a new comment in MongoDB
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetCommentByID retrieves a comment by ID from MongoDB
func (r *MongoCommentRepository) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var comment models.Comment
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByBlogID retrieves all comments for a blog, newest first
func (r *MongoCommentRepository) GetCommentsByBlogID(ctx context.Context, blogID string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var comments []models.Comment
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"blog_id": objID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment deletes a comment by ID from MongoDB. Replies are neither
// reparented nor deleted.
func (r *MongoCommentRepository) DeleteComment(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCommentNotFound
	}
	return nil
}
