package tasks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
)

var ErrAlreadyAccepted = errors.Error("task already accepted")

// submissionIndex enforces at-most-once processing per (task, round, nonce).
var submissionIndex = mongo.IndexModel{
	Keys:    bson.D{{Key: "task", Value: 1}, {Key: "round", Value: 1}, {Key: "nonce", Value: 1}},
	Options: options.Index().SetName("submission_key").SetUnique(true),
}

func New(ctx context.Context, log logger.Logger, cfg MongoConfig) (API, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)

	_, err = coll.Indexes().CreateOne(ctx, submissionIndex)
	if err != nil {
		return nil, errors.WrapFail(err, "create submission index")
	}

	return &mongoJournal{
		coll: coll,
		log:  log.With("tasks_journal"),
	}, nil
}

type mongoJournal struct {
	coll *mongo.Collection
	log  logger.Logger
}

func (m *mongoJournal) Accept(ctx context.Context, task Task) (string, error) {
	now := time.Now().UTC()
	task.Status = StatusAccepted
	task.AcceptedAt = now
	task.UpdatedAt = now

	result, err := m.coll.InsertOne(ctx, task)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrAlreadyAccepted
		}
		return "", errors.WrapFail(err, "insert task")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Error("bad inserted id type")
	}

	return oid.Hex(), nil
}

func (m *mongoJournal) Get(ctx context.Context, id string) (*Task, error) {
	filter, err := m.oidFilter(id)
	if err != nil {
		return nil, err
	}

	result := m.coll.FindOne(ctx, filter)
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, errors.WrapFail(result.Err(), "find task")
	}

	var task Task
	err = result.Decode(&task)
	if err != nil {
		return nil, errors.WrapFail(err, "decode task")
	}

	task.ID = id
	return &task, nil
}

func (m *mongoJournal) SelectByStatus(ctx context.Context, status Status) ([]Task, error) {
	cur, err := m.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, errors.WrapFail(err, "select tasks by status")
	}

	defer func() {
		err := cur.Close(ctx)
		if err != nil {
			m.log.Warn(errors.WrapFail(err, "close cursor"))
		}
	}()

	var (
		selected []Task
		errs     []error
	)

	for cur.Next(ctx) {
		var t Task

		err := cur.Decode(&t)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		t.ID = cur.Current.Lookup("_id").ObjectID().Hex()
		selected = append(selected, t)
	}

	if cur.Err() != nil {
		return nil, errors.WrapFail(cur.Err(), "iterate tasks")
	}

	if len(errs) != 0 {
		m.log.Error(errors.WrapFail(errors.Collapse(errs), "decode some tasks"))
	}

	return selected, nil
}

func (m *mongoJournal) SetRunning(ctx context.Context, id string) error {
	return m.set(ctx, id, bson.D{{Key: "status", Value: StatusRunning}})
}

func (m *mongoJournal) SetDeployed(ctx context.Context, id string, branch, commitSHA string) error {
	return m.set(ctx, id, bson.D{
		{Key: "status", Value: StatusDeployed},
		{Key: "branch", Value: branch},
		{Key: "commit_sha", Value: commitSHA},
	})
}

func (m *mongoJournal) SetFailed(ctx context.Context, id string, code FailCode, reason string) error {
	return m.set(ctx, id, bson.D{
		{Key: "status", Value: StatusFailed},
		{Key: "fail_code", Value: code},
		{Key: "fail_reason", Value: reason},
	})
}

func (m *mongoJournal) Close(ctx context.Context) error {
	err := m.coll.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}

func (m *mongoJournal) set(ctx context.Context, id string, fields bson.D) error {
	filter, err := m.oidFilter(id)
	if err != nil {
		return err
	}

	fields = append(fields, bson.E{Key: "updated_at", Value: time.Now().UTC()})

	result, err := m.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return errors.WrapFail(err, "update task")
	}

	if result.MatchedCount == 0 {
		return errors.Errorf("no task with id %q", id)
	}

	return nil
}

func (m *mongoJournal) oidFilter(id string) (bson.D, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.WrapFail(err, "parse task id")
	}

	return bson.D{{Key: "_id", Value: oid}}, nil
}
