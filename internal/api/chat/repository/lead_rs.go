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

type LeadDB struct {
	ID               sql.NullString `db:"id"`
	Name             sql.NullString `db:"name"`
	Phone            sql.NullString `db:"phone"`
	Email            sql.NullString `db:"email"`
	VehicleMake      sql.NullString `db:"vehicle_make"`
	PartCategory     sql.NullString `db:"part_category"`
	Message          sql.NullString `db:"message"`
	ServiceRequested sql.NullBool   `db:"service_requested"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r *leadsRepository) CreateLead(ctx context.Context, lead entity.Lead) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                lead.ID,
		"name":              lead.Name,
		"phone":             lead.Phone,
		"email":             lead.Email,
		"vehicle_make":      lead.VehicleMake,
		"part_category":     lead.PartCategory,
		"message":           lead.Message,
		"service_requested": lead.ServiceRequested,
		"created_at":        lead.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateLead, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateLead")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating lead")
		return err
	}

	return nil
}

func (r *leadsRepository) GetLeadsByPhone(ctx context.Context, phone string) ([]entity.Lead, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryGetLeadsByPhone, map[string]interface{}{
		"phone": phone,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetLeadsByPhone")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []LeadDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when fetching leads by phone")
		return nil, err
	}

	leads := make([]entity.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, entity.Lead{
			ID:               row.ID.String,
			Name:             row.Name.String,
			Phone:            row.Phone.String,
			Email:            row.Email.String,
			VehicleMake:      row.VehicleMake.String,
			PartCategory:     row.PartCategory.String,
			Message:          row.Message.String,
			ServiceRequested: row.ServiceRequested.Bool,
			CreatedAt:        row.CreatedAt,
		})
	}

	return leads, nil
}
