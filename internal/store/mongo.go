package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskboard-dev/taskboard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	projectsCollection = "projects"
	tasksCollection    = "tasks"
)

// MongoStore keeps each record type in its own collection.
type MongoStore struct {
	client   *mongo.Client
	users    *mongo.Collection
	projects *mongo.Collection
	tasks    *mongo.Collection
	now      func() time.Time
}

var _ Store = (*MongoStore)(nil)

// ConnectMongo dials uri, selects database and makes sure the indexes the
// store relies on exist.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	s := NewMongoStore(client, database)

	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return s, nil
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	db := client.Database(database)

	return &MongoStore{
		client:   client,
		users:    db.Collection(usersCollection),
		projects: db.Collection(projectsCollection),
		tasks:    db.Collection(tasksCollection),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{s.users, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{s.projects, mongo.IndexModel{Keys: bson.D{{Key: "ownerUserId", Value: 1}}}},
		{s.tasks, mongo.IndexModel{Keys: bson.D{{Key: "projectId", Value: 1}}}},
	}

	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.coll.Name(), err)
		}
	}

	return nil
}

func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

func (s *MongoStore) stamp(base *models.BaseModel) {
	now := s.now()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

func (s *MongoStore) insert(ctx context.Context, coll *mongo.Collection, base *models.BaseModel, doc any) error {
	s.stamp(base)
	_, err := coll.InsertOne(ctx, doc)
	return translateMongoError(err)
}

func (s *MongoStore) replace(ctx context.Context, coll *mongo.Collection, base *models.BaseModel, doc any) error {
	s.stamp(base)

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": base.ID}, doc)
	if err != nil {
		return translateMongoError(err)
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoStore) deleteOne(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateMongoError(err)
	}

	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.insert(ctx, s.users, &user.BaseModel, user)
}

func (s *MongoStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, translateMongoError(err)
	}

	return &user, nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, translateMongoError(err)
	}

	return &user, nil
}

func (s *MongoStore) CreateProject(ctx context.Context, project *models.Project) error {
	return s.insert(ctx, s.projects, &project.BaseModel, project)
}

func (s *MongoStore) FindProject(ctx context.Context, id, ownerID string) (*models.Project, error) {
	var project models.Project

	err := s.projects.FindOne(ctx, bson.M{"_id": id, "ownerUserId": ownerID}).Decode(&project)
	if err != nil {
		return nil, translateMongoError(err)
	}

	return &project, nil
}

func (s *MongoStore) ListProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	projects := []models.Project{}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := s.projects.Find(ctx, bson.M{"ownerUserId": ownerID}, opts)
	if err != nil {
		return nil, translateMongoError(err)
	}

	if err := cursor.All(ctx, &projects); err != nil {
		return nil, translateMongoError(err)
	}

	return projects, nil
}

func (s *MongoStore) SaveProject(ctx context.Context, project *models.Project) error {
	return s.replace(ctx, s.projects, &project.BaseModel, project)
}

func (s *MongoStore) DeleteProject(ctx context.Context, id string) error {
	return s.deleteOne(ctx, s.projects, id)
}

func (s *MongoStore) CreateTask(ctx context.Context, task *models.Task) error {
	return s.insert(ctx, s.tasks, &task.BaseModel, task)
}

func (s *MongoStore) FindTask(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task

	if err := s.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
		return nil, translateMongoError(err)
	}

	return &task, nil
}

func (s *MongoStore) ListTasksByProjects(ctx context.Context, projectIDs []string) ([]models.Task, error) {
	tasks := []models.Task{}

	if len(projectIDs) == 0 {
		return tasks, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := s.tasks.Find(ctx, bson.M{"projectId": bson.M{"$in": projectIDs}}, opts)
	if err != nil {
		return nil, translateMongoError(err)
	}

	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, translateMongoError(err)
	}

	return tasks, nil
}

func (s *MongoStore) SaveTask(ctx context.Context, task *models.Task) error {
	return s.replace(ctx, s.tasks, &task.BaseModel, task)
}

func (s *MongoStore) DeleteTask(ctx context.Context, id string) error {
	return s.deleteOne(ctx, s.tasks, id)
}

func (s *MongoStore) DeleteTasksByProject(ctx context.Context, projectID string) (int64, error) {
	res, err := s.tasks.DeleteMany(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return 0, translateMongoError(err)
	}

	return res.DeletedCount, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
