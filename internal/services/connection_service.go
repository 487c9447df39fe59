package services

import (
	"errors"

	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/types"
	"gorm.io/gorm"
)

// Connection respond actions.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// ConnectionView is the API output shape for a connection, with both parties
// reduced to their public fields.
type ConnectionView struct {
	ID             uint64                  `json:"id"`
	ProfessionalID uint64                  `json:"professional_id"`
	ClientID       uint64                  `json:"client_id"`
	Status         models.ConnectionStatus `json:"status"`
	InitiatedBy    uint64                  `json:"initiated_by"`
	CreatedAt      string                  `json:"created_at"`
	Professional   models.PublicUser       `json:"professional"`
	Client         models.PublicUser       `json:"client"`
}

func connectionView(conn *models.Connection) *ConnectionView {
	return &ConnectionView{
		ID:             conn.ID,
		ProfessionalID: conn.ProfessionalID,
		ClientID:       conn.ClientID,
		Status:         conn.Status,
		InitiatedBy:    conn.InitiatedBy,
		CreatedAt:      conn.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Professional:   conn.Professional.Public(),
		Client:         conn.Client.Public(),
	}
}

// RequestProfessional creates a pending connection initiated by the client.
// The pair uniqueness check and insert run in one transaction; the compound
// unique index backstops concurrent writers that race past the check.
func RequestProfessional(db *gorm.DB, clientID, professionalID uint64) (*ConnectionView, error) {
	if professionalID == 0 {
		return nil, types.NewValidationError("Professional ID is required", "connections.validation.input")
	}

	conn := models.Connection{
		ProfessionalID: professionalID,
		ClientID:       clientID,
		Status:         models.ConnectionPending,
		InitiatedBy:    clientID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var professional models.User
		if err := tx.Where("id = ? AND role = ?", professionalID, models.RoleProfessional).
			First(&professional).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Professional not found", "connections.notfound.professional")
			}
			return err
		}

		if err := ensureNoConnection(tx, professionalID, clientID); err != nil {
			return err
		}

		if err := tx.Create(&conn).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.NewConflictError("Connection request already exists", "connections.conflict.duplicate")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loadConnectionView(db, conn.ID)
}

// InviteClient creates a pending connection initiated by the professional,
// looking the client up by email.
func InviteClient(db *gorm.DB, professionalID uint64, clientEmail string) (*ConnectionView, error) {
	if clientEmail == "" {
		return nil, types.NewValidationError("Client email is required", "connections.validation.input")
	}

	var conn models.Connection

	err := db.Transaction(func(tx *gorm.DB) error {
		var client models.User
		if err := tx.Where("email = ? AND role = ?", clientEmail, models.RoleClient).
			First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Client not found", "connections.notfound.client")
			}
			return err
		}

		if err := ensureNoConnection(tx, professionalID, client.ID); err != nil {
			return err
		}

		conn = models.Connection{
			ProfessionalID: professionalID,
			ClientID:       client.ID,
			Status:         models.ConnectionPending,
			InitiatedBy:    professionalID,
		}
		if err := tx.Create(&conn).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.NewConflictError("Connection already exists", "connections.conflict.duplicate")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loadConnectionView(db, conn.ID)
}

// RespondConnection applies a pending -> accepted|rejected transition. Only a
// party of the connection may respond, and only while the row is pending.
func RespondConnection(db *gorm.DB, connectionID, actorID uint64, action string) (*ConnectionView, error) {
	if connectionID == 0 || action == "" {
		return nil, types.NewValidationError("Missing required fields", "connections.validation.input")
	}

	var target models.ConnectionStatus
	switch action {
	case ActionAccept:
		target = models.ConnectionAccepted
	case ActionReject:
		target = models.ConnectionRejected
	default:
		return nil, types.NewValidationError("Invalid action", "connections.validation.action")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var conn models.Connection
		if err := tx.First(&conn, connectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Connection not found", "connections.notfound")
			}
			return err
		}

		if conn.ProfessionalID != actorID && conn.ClientID != actorID {
			return types.NewForbiddenError("Not a party of this connection", "connections.forbidden.party")
		}
		if conn.Status != models.ConnectionPending {
			return types.NewConflictError("Connection is not pending", "connections.conflict.state")
		}

		return tx.Model(&conn).Update("status", target).Error
	})
	if err != nil {
		return nil, err
	}

	return loadConnectionView(db, connectionID)
}

// ListConnections returns every connection where the user is either party,
// ordered by id.
func ListConnections(db *gorm.DB, userID uint64) ([]*ConnectionView, error) {
	var conns []models.Connection
	if err := db.Preload("Professional").Preload("Client").
		Where("professional_id = ? OR client_id = ?", userID, userID).
		Order("id").
		Find(&conns).Error; err != nil {
		return nil, err
	}

	views := make([]*ConnectionView, 0, len(conns))
	for i := range conns {
		views = append(views, connectionView(&conns[i]))
	}
	return views, nil
}

// RemoveConnection deletes a connection regardless of its status. Either
// party may remove it.
func RemoveConnection(db *gorm.DB, connectionID, actorID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var conn models.Connection
		if err := tx.First(&conn, connectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewNotFoundError("Connection not found", "connections.notfound")
			}
			return err
		}

		if conn.ProfessionalID != actorID && conn.ClientID != actorID {
			return types.NewForbiddenError("Not a party of this connection", "connections.forbidden.party")
		}

		return tx.Delete(&conn).Error
	})
}

// ensureNoConnection fails with a conflict if a row already exists for the
// pair, whichever side initiated it.
func ensureNoConnection(tx *gorm.DB, professionalID, clientID uint64) error {
	var existing models.Connection
	err := tx.Where("professional_id = ? AND client_id = ?", professionalID, clientID).
		First(&existing).Error
	if err == nil {
		return types.NewConflictError("Connection request already exists", "connections.conflict.duplicate")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func loadConnectionView(db *gorm.DB, connectionID uint64) (*ConnectionView, error) {
	var conn models.Connection
	if err := db.Preload("Professional").Preload("Client").
		First(&conn, connectionID).Error; err != nil {
		return nil, err
	}
	return connectionView(&conn), nil
}
