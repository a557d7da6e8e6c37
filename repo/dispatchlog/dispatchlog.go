//go:generate mockgen -destination mock_dispatchlog/mock_dispatchlog.go github.com/talkdeck/talkdeck-push-server/repo/dispatchlog DispatchLog

package dispatchlog

import (
	"context"
	"errors"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/cheggaaa/mb/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/talkdeck/talkdeck-push-server/db"
	"github.com/talkdeck/talkdeck-push-server/domain"
)

const CName = "push.dispatchlog"

const collName = "dispatch"

var log = logger.NewNamed(CName)

type Config struct {
	Enabled bool `yaml:"enabled"`
	// TTLDays expires records after the given number of days, 0 keeps them forever.
	TTLDays int `yaml:"ttlDays"`
}

type configSource interface {
	GetDispatchLog() Config
}

func New() DispatchLog {
	return new(dispatchLog)
}

// DispatchLog records gateway sends. Add never blocks a dispatch for long and never fails it.
type DispatchLog interface {
	Add(rec domain.DispatchRecord)
	Find(ctx context.Context, msgType domain.MessageType, limit int64) (recs []domain.DispatchRecord, err error)
	app.ComponentRunnable
}

type dispatchLog struct {
	conf    Config
	coll    *mongo.Collection
	batch   *mb.MB[domain.DispatchRecord]
	flushed chan struct{}
}

func (d *dispatchLog) Init(a *app.App) (err error) {
	d.conf = a.MustComponent("config").(configSource).GetDispatchLog()
	if !d.conf.Enabled {
		return
	}
	d.coll = a.MustComponent(db.CName).(db.Database).Db().Collection(collName)
	d.batch = mb.New[domain.DispatchRecord](1000)
	return
}

func (d *dispatchLog) Name() (name string) {
	return CName
}

func (d *dispatchLog) Run(ctx context.Context) (err error) {
	if !d.conf.Enabled {
		return
	}
	if _, err = d.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "type", Value: 1}, {Key: "created", Value: -1}},
	}); err != nil {
		return
	}
	if d.conf.TTLDays > 0 {
		if _, err = d.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(d.conf.TTLDays * 24 * 60 * 60)),
		}); err != nil {
			return
		}
	}
	d.flushed = make(chan struct{})
	go d.writeBatches()
	return
}

func (d *dispatchLog) Add(rec domain.DispatchRecord) {
	if !d.conf.Enabled {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.batch.Add(ctx, rec); err != nil {
		log.Warn("dispatch record dropped", zap.String("id", rec.Id), zap.Error(err))
	}
}

type recordDoc struct {
	domain.DispatchRecord `bson:",inline"`
	CreatedAt             time.Time `bson:"createdAt"`
}

func (d *dispatchLog) writeBatches() {
	defer close(d.flushed)
	cond := d.batch.NewCond().WithMin(10).WithMax(500)
	for {
		ctx := mb.CtxWithTimeLimit(context.Background(), time.Second)
		recs, err := cond.Wait(ctx)
		if err != nil {
			return
		}
		if len(recs) == 0 {
			continue
		}
		docs := make([]any, len(recs))
		for i, rec := range recs {
			docs[i] = recordDoc{DispatchRecord: rec, CreatedAt: time.Unix(rec.Created, 0)}
		}
		st := time.Now()
		if _, err = d.coll.InsertMany(context.Background(), docs, options.InsertMany().SetOrdered(false)); err != nil {
			log.Error("write dispatch records error", zap.Error(err))
		} else {
			log.Debug("dispatch records written", zap.Int("count", len(recs)), zap.Duration("dur", time.Since(st)))
		}
	}
}

func (d *dispatchLog) Find(ctx context.Context, msgType domain.MessageType, limit int64) (recs []domain.DispatchRecord, err error) {
	if !d.conf.Enabled {
		return nil, errors.New("dispatch log is disabled")
	}
	filter := bson.D{}
	if msgType != "" {
		filter = bson.D{{Key: "type", Value: msgType}}
	}
	cur, err := d.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created", Value: -1}}).SetLimit(limit))
	if err != nil {
		return
	}
	defer func() {
		_ = cur.Close(ctx)
	}()
	err = cur.All(ctx, &recs)
	return
}

func (d *dispatchLog) Close(ctx context.Context) (err error) {
	if d.batch == nil {
		return
	}
	err = d.batch.Close()
	if d.flushed == nil {
		return
	}
	select {
	case <-d.flushed:
	case <-ctx.Done():
	}
	return
}
