package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave
// foránea (23503), p. ej. customer_id inexistente.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// isStoreUnavailable clasifica fallos transitorios de conexión/red
// (timeouts, conexión rechazada, deadline vencido). Un rechazo del
// almacén por constraint NO es transitorio.
func isStoreUnavailable(err error) bool {
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// storeErr envuelve un error del almacén: los transitorios se marcan
// como domain.ErrStoreUnavailable (el único tipo que el caller puede
// reintentar automáticamente); el resto conserva el error original.
func storeErr(op string, err error) error {
	if isStoreUnavailable(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// escapeLike neutraliza los metacaracteres de LIKE/ILIKE (%, _, \) para
// que la búsqueda sea substring literal, no patrón.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
