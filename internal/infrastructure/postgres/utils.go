package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/infrastructure/wire"
)

// Querier lo satisfacen *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// wrap traduce errores de pgx al dominio.
func wrap(op, table string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s %s: %w", op, table, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s %s: %w", op, table, err)
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// buildInsert INSERT con columnas en orden estable y RETURNING columns.
func buildInsert(table string, values wire.Values, returning string) (string, []any) {
	cols := values.Columns()
	quoted := make([]string, len(cols))
	params := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		quoted[i] = ident(c)
		params[i] = fmt.Sprintf("$%d", i+1)
		args[i] = values[c]
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		ident(table), strings.Join(quoted, ", "), strings.Join(params, ", "), returning)
	return sql, args
}

// buildUpsert como buildInsert pero reemplaza la fila si el id ya existe.
func buildUpsert(table string, values wire.Values, returning string) (string, []any) {
	sql, args := buildInsert(table, values, returning)
	var sets []string
	for _, c := range values.Columns() {
		if c == "id" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", ident(c), ident(c)))
	}
	insert, ret, _ := strings.Cut(sql, " RETURNING ")
	sql = insert + " ON CONFLICT (id) DO UPDATE SET " + strings.Join(sets, ", ") + " RETURNING " + ret
	return sql, args
}

// buildUpdate UPDATE parcial; el id se compara como texto para aceptar enteros y uuid.
func buildUpdate(table string, values wire.Values, id string) (string, []any) {
	cols := values.Columns()
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", ident(c), i+1)
		args = append(args, values[c])
	}
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id::text = $%d", ident(table), strings.Join(sets, ", "), len(cols)+1)
	return sql, args
}
