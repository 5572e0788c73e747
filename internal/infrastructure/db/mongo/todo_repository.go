package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskbox/todo-api/internal/core/domain"
	"github.com/taskbox/todo-api/internal/core/ports"
)

const todosCollection = "todos"

type TodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{coll: db.Collection(todosCollection)}
}

type todoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Text        string             `bson:"text"`
	Completed   bool               `bson:"completed"`
	CompletedAt *int64             `bson:"completed_at"`
	Creator     primitive.ObjectID `bson:"creator"`
}

func (d todoDoc) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:          d.ID.Hex(),
		Text:        d.Text,
		Completed:   d.Completed,
		CompletedAt: d.CompletedAt,
		Creator:     d.Creator.Hex(),
	}
}

func (r *TodoRepository) Insert(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	creator, err := primitive.ObjectIDFromHex(todo.Creator)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := todoDoc{
		Text:        todo.Text,
		Completed:   todo.Completed,
		CompletedAt: todo.CompletedAt,
		Creator:     creator,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *TodoRepository) ListByCreator(ctx context.Context, creator string) ([]domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(creator)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"creator": oid})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cur.Close(ctx)

	todos := make([]domain.Todo, 0)
	for cur.Next(ctx) {
		var doc todoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode todo: %w", err)
		}
		todos = append(todos, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) FindByIDForCreator(ctx context.Context, id, creator string) (*domain.Todo, error) {
	filter, err := ownedFilter(id, creator)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc todoDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateByIDForCreator applies the changes with a single findOneAndUpdate so
// the ownership check and the mutation cannot race with a concurrent request.
func (r *TodoRepository) UpdateByIDForCreator(ctx context.Context, id, creator string, changes ports.TodoChanges) (*domain.Todo, error) {
	filter, err := ownedFilter(id, creator)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if changes.Text != nil {
		set["text"] = *changes.Text
	}
	if changes.Completed != nil {
		set["completed"] = *changes.Completed
		set["completed_at"] = changes.CompletedAt
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc todoDoc
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TodoRepository) DeleteByIDForCreator(ctx context.Context, id, creator string) (*domain.Todo, error) {
	filter, err := ownedFilter(id, creator)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc todoDoc
	if err := r.coll.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("delete todo: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the owner lookup index on the todos collection.
func (r *TodoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// ownedFilter builds the {_id, creator} filter used by every single-item
// operation. A malformed todo id is reported as not found, identical to a
// missing or wrong-owner one.
func ownedFilter(id, creator string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}
	creatorOID, err := primitive.ObjectIDFromHex(creator)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}
	return bson.M{"_id": oid, "creator": creatorOID}, nil
}
