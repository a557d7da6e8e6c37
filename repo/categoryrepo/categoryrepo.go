//go:generate mockgen -destination mock_categoryrepo/mock_categoryrepo.go github.com/talkdeck/talkdeck-push-server/repo/categoryrepo CategoryRepo

package categoryrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talkdeck/talkdeck-push-server/db"
	"github.com/talkdeck/talkdeck-push-server/domain"
)

const CName = "push.categoryrepo"

const collName = "category"

var (
	ErrCategoryExists = errors.New("category already exists")
	ErrEmptyName      = errors.New("category name is empty")
)

func New() CategoryRepo {
	return new(categoryRepo)
}

type CategoryRepo interface {
	Create(ctx context.Context, name string) (category domain.Category, err error)
	// Watch calls onCreate for every category inserted after the call, until ctx is done or the stream fails.
	Watch(ctx context.Context, onCreate func(category domain.Category)) error
	app.ComponentRunnable
}

type categoryRepo struct {
	coll *mongo.Collection
}

func (r *categoryRepo) Init(a *app.App) (err error) {
	r.coll = a.MustComponent(db.CName).(db.Database).Db().Collection(collName)
	return
}

func (r *categoryRepo) Name() (name string) {
	return CName
}

func (r *categoryRepo) Run(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *categoryRepo) Create(ctx context.Context, name string) (category domain.Category, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return category, ErrEmptyName
	}
	category = domain.Category{
		Id:      uuid.NewString(),
		Name:    name,
		Created: time.Now().Unix(),
	}
	if _, err = r.coll.InsertOne(ctx, category); mongo.IsDuplicateKeyError(err) {
		err = ErrCategoryExists
	}
	return
}

type changeEvent struct {
	FullDocument struct {
		Id   bson.RawValue `bson:"_id"`
		Name string        `bson:"name"`
	} `bson:"fullDocument"`
}

func (r *categoryRepo) Watch(ctx context.Context, onCreate func(category domain.Category)) error {
	stream, err := r.coll.Watch(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "operationType", Value: "insert"}}}},
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = stream.Close(context.Background())
	}()
	for stream.Next(ctx) {
		var ev changeEvent
		if err = stream.Decode(&ev); err != nil {
			return err
		}
		onCreate(domain.Category{
			Id:   idString(ev.FullDocument.Id),
			Name: ev.FullDocument.Name,
		})
	}
	if err = stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// idString accepts both string and ObjectId keys, documents may be inserted by other tools.
func idString(v bson.RawValue) string {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	return v.String()
}

func (r *categoryRepo) Close(ctx context.Context) (err error) {
	return nil
}
