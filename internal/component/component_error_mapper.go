package component

import (
	"errors"
	"strings"

	componenterrors "go-payroll/internal/component/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_org_code" {
			return componenterrors.ErrDuplicateComponentCode
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_org_code") {
		return componenterrors.ErrDuplicateComponentCode
	}

	return err
}
