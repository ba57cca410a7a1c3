package acceptance

import (
	"errors"
	"strings"

	acceptanceerrors "go-leave/internal/acceptance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueRequestLeader = "uq_acceptance_request_leader"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return acceptanceerrors.ErrAcceptanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniqueRequestLeader {
			return acceptanceerrors.ErrAcceptanceExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueRequestLeader) {
		return acceptanceerrors.ErrAcceptanceExists
	}
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "acceptances.") {
		return acceptanceerrors.ErrAcceptanceExists
	}

	return err
}
