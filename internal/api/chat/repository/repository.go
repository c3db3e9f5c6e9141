package chatRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"AutoPartsBot/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Leads:    &leadsRepository{q: sqlExecutor, log: r.log},
		Messages: &messagesRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Leads interface {
		CreateLead(ctx context.Context, lead entity.Lead) error
		GetLeadsByPhone(ctx context.Context, phone string) ([]entity.Lead, error)
	}

	Messages interface {
		CreateMessage(ctx context.Context, message entity.ChatMessage) error
		GetMessagesBySession(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error)
	}

	Commit   func() error
	Rollback func() error
}

type leadsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type messagesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
