package chatRepository

const (
	queryCreateLead = `
		INSERT INTO leads (
			id,
			name,
			phone,
			email,
			vehicle_make,
			part_category,
			message,
			service_requested,
			created_at
		) VALUES (
			:id,
			:name,
			:phone,
			:email,
			:vehicle_make,
			:part_category,
			:message,
			:service_requested,
			:created_at
		)
	`

	queryGetLeadsByPhone = `
		SELECT
			id,
			name,
			phone,
			email,
			vehicle_make,
			part_category,
			message,
			service_requested,
			created_at
		FROM leads
		WHERE phone = :phone
		ORDER BY created_at DESC
	`

	queryCreateMessage = `
		INSERT INTO chat_messages (
			id,
			session_id,
			role,
			content,
			intent,
			created_at
		) VALUES (
			:id,
			:session_id,
			:role,
			:content,
			:intent,
			:created_at
		)
	`

	queryGetMessagesBySession = `
		SELECT
			id,
			session_id,
			role,
			content,
			intent,
			created_at
		FROM chat_messages
		WHERE session_id = :session_id
		ORDER BY created_at ASC
		LIMIT :limit
	`
)
