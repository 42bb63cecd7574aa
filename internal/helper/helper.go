package helper

import (
	"errors"
	"fmt"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DescribeDBError renders a driver error with whatever diagnostics postgres
// attached to it, for logs only.
func DescribeDBError(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Sprintf("%s (code=%s table=%s constraint=%s)",
			pgErr.Message, pgErr.Code, pgErr.TableName, pgErr.ConstraintName)
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrSubmissionNotFound)
}
