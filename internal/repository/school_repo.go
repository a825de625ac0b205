package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"school-api/internal/database"
	"school-api/internal/model"
	"school-api/pkg/apierror"
)

type SchoolRepository struct {
	pool *pgxpool.Pool
}

func NewSchoolRepository(pool *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{pool: pool}
}

func (r *SchoolRepository) ListStudents(ctx context.Context, limit int) ([]model.Student, error) {
	const query = `
		SELECT id, matricula, nombre, apellido_paterno, apellido_materno, email,
		       telefono, fecha_nacimiento, grupo_id, activo
		FROM alumnos
		ORDER BY apellido_paterno, apellido_materno, nombre
		LIMIT $1`

	return queryAll(ctx, r.pool, "list students", scanStudent, query, limit)
}

func (r *SchoolRepository) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	const query = `
		SELECT id, numero_empleado, nombre, apellido_paterno, apellido_materno, email,
		       telefono, especialidad, activo
		FROM maestros
		ORDER BY apellido_paterno, apellido_materno, nombre`

	return queryAll(ctx, r.pool, "list teachers", scanTeacher, query)
}

func (r *SchoolRepository) ListActiveGroups(ctx context.Context) ([]model.Group, error) {
	const query = `
		SELECT id, grado, letra, turno, ciclo_escolar, capacidad, activo
		FROM grupos
		WHERE activo = true
		ORDER BY grado, letra`

	return queryAll(ctx, r.pool, "list groups", scanGroup, query)
}

// DashboardStats runs every count on the same connection.
func (r *SchoolRepository) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats
	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM alumnos`, &stats.TotalAlumnos},
		{`SELECT COUNT(*) FROM maestros`, &stats.TotalMaestros},
		{`SELECT COUNT(*) FROM grupos WHERE activo = true`, &stats.TotalGrupos},
		{`SELECT COUNT(*) FROM materias WHERE activo = true`, &stats.TotalMaterias},
		{`SELECT COUNT(*) FROM aulas WHERE activo = true`, &stats.TotalAulas},
	}

	err := database.WithConn(ctx, r.pool, func(conn *pgxpool.Conn) error {
		for _, c := range counts {
			if err := conn.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
				return fmt.Errorf("%s: %w", c.query, err)
			}
		}
		return nil
	})
	if err != nil {
		return model.DashboardStats{}, apierror.UpstreamUnavailable(fmt.Errorf("dashboard stats: %w", err))
	}

	return stats, nil
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, op string, scan func(pgx.Row) (T, error), query string, args ...any) ([]T, error) {
	out := make([]T, 0)
	err := database.WithConn(ctx, pool, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return fmt.Errorf("scan row: %w", err)
			}
			out = append(out, item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, apierror.UpstreamUnavailable(fmt.Errorf("%s: %w", op, err))
	}

	return out, nil
}

func scanStudent(row pgx.Row) (model.Student, error) {
	var s model.Student
	var birth pgtype.Date
	err := row.Scan(&s.ID, &s.Matricula, &s.Nombre, &s.ApellidoPaterno, &s.ApellidoMaterno,
		&s.Email, &s.Telefono, &birth, &s.GrupoID, &s.Activo)
	if err != nil {
		return s, err
	}
	if birth.Valid {
		s.FechaNacimiento = &model.Date{Time: birth.Time}
	}
	return s, nil
}

func scanTeacher(row pgx.Row) (model.Teacher, error) {
	var t model.Teacher
	err := row.Scan(&t.ID, &t.NumeroEmpleado, &t.Nombre, &t.ApellidoPaterno, &t.ApellidoMaterno,
		&t.Email, &t.Telefono, &t.Especialidad, &t.Activo)
	return t, err
}

func scanGroup(row pgx.Row) (model.Group, error) {
	var g model.Group
	err := row.Scan(&g.ID, &g.Grado, &g.Letra, &g.Turno, &g.CicloEscolar, &g.Capacidad, &g.Activo)
	return g, err
}
