package chatRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"AutoPartsBot/internal/entity"
	contextPkg "AutoPartsBot/pkg/context"
)

type ChatMessageDB struct {
	ID        sql.NullString `db:"id"`
	SessionID sql.NullString `db:"session_id"`
	Role      sql.NullString `db:"role"`
	Content   sql.NullString `db:"content"`
	Intent    sql.NullString `db:"intent"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *messagesRepository) CreateMessage(ctx context.Context, message entity.ChatMessage) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         message.ID,
		"session_id": message.SessionID,
		"role":       message.Role,
		"content":    message.Content,
		"intent":     message.Intent,
		"created_at": message.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateMessage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateMessage")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating chat message")
		return err
	}

	return nil
}

func (r *messagesRepository) GetMessagesBySession(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)
	if limit <= 0 {
		limit = 50
	}

	query, args, err := sqlx.Named(queryGetMessagesBySession, map[string]interface{}{
		"session_id": sessionID,
		"limit":      limit,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetMessagesBySession")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []ChatMessageDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching chat messages")
		return nil, err
	}

	messages := make([]entity.ChatMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, entity.ChatMessage{
			ID:        row.ID.String,
			SessionID: row.SessionID.String,
			Role:      row.Role.String,
			Content:   row.Content.String,
			Intent:    row.Intent.String,
			CreatedAt: row.CreatedAt,
		})
	}

	return messages, nil
}
