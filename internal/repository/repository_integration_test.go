//go:build integration

package repository

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"school-api/internal/database"
	"school-api/internal/model"
	"school-api/pkg/apierror"
)

// newTestPool rebuilds the schema in the database named by DATABASE_URL.
// Point it at a throwaway database.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := database.New(context.Background(), url, 4, 0)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	schema, err := os.ReadFile("testdata/schema.sql")
	require.NoError(t, err)
	_, err = db.Pool.Exec(context.Background(), string(schema))
	require.NoError(t, err)

	return db.Pool
}

func exec(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) {
	t.Helper()

	_, err := pool.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

func TestUserRepositoryLookups(t *testing.T) {
	pool := newTestPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	exec(t, pool, `INSERT INTO roles (nombre) VALUES ('Administrador')`)
	exec(t, pool, `INSERT INTO usuarios (username, email, password_hash, rol_id) VALUES ('admin', 'admin@escuela.mx', 'hash', 1)`)
	exec(t, pool, `INSERT INTO usuarios (username, password_hash) VALUES ('sinrol', 'hash')`)
	exec(t, pool, `INSERT INTO usuarios (username, password_hash, activo) VALUES ('baja', 'hash', false)`)

	t.Run("joins role name", func(t *testing.T) {
		c, err := repo.FindActiveByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, "admin", c.Username)
		require.NotNil(t, c.RoleName)
		require.Equal(t, "Administrador", *c.RoleName)
		require.Equal(t, "admin@escuela.mx", *c.Email)
		require.True(t, c.Active)
	})

	t.Run("null role join", func(t *testing.T) {
		c, err := repo.FindActiveByUsername(ctx, "sinrol")
		require.NoError(t, err)
		require.Nil(t, c.RoleID)
		require.Nil(t, c.RoleName)
		require.Nil(t, c.Email)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		_, err := repo.FindActiveByUsername(ctx, "ADMIN")
		require.True(t, apierror.HasCode(err, apierror.CodeNotFound))
	})

	t.Run("inactive credentials are skipped only for login lookups", func(t *testing.T) {
		_, err := repo.FindActiveByUsername(ctx, "baja")
		require.True(t, apierror.HasCode(err, apierror.CodeNotFound))

		c, err := repo.FindByUsername(ctx, "baja")
		require.NoError(t, err)
		require.False(t, c.Active)
	})
}

func TestListStudentsOrderingAndLimit(t *testing.T) {
	pool := newTestPool(t)
	repo := NewSchoolRepository(pool)

	exec(t, pool, `INSERT INTO alumnos (matricula, nombre, apellido_paterno, apellido_materno) VALUES
		('A1', 'Zoe', 'Lopez', 'Ramos'),
		('A2', 'Ana', 'Lopez', 'Ramos'),
		('A3', 'Luis', 'Lopez', 'Garcia'),
		('A4', 'Eva', 'Acosta', NULL),
		('A5', 'Ivan', 'Martinez', 'Diaz'),
		('A6', 'Olga', 'Beltran', 'Soto'),
		('A7', 'Raul', 'Zamora', 'Cruz')`)

	students, err := repo.ListStudents(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, students, 5)

	got := make([]string, 0, len(students))
	for _, s := range students {
		got = append(got, s.Matricula)
	}
	require.Equal(t, []string{"A4", "A6", "A3", "A2", "A1"}, got)
	require.Nil(t, students[0].ApellidoMaterno)
}

func TestListTeachersAndGroups(t *testing.T) {
	pool := newTestPool(t)
	repo := NewSchoolRepository(pool)
	ctx := context.Background()

	exec(t, pool, `INSERT INTO maestros (numero_empleado, nombre, apellido_paterno, especialidad) VALUES
		('M2', 'Carla', 'Ortiz', NULL),
		('M1', 'Jorge', 'Alvarez', 'Matematicas')`)
	exec(t, pool, `INSERT INTO grupos (grado, letra, activo) VALUES (2, 'B', true), (1, 'B', true), (1, 'A', true), (3, 'A', false)`)

	teachers, err := repo.ListTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	require.Equal(t, "M1", teachers[0].NumeroEmpleado)
	require.Nil(t, teachers[1].Especialidad)

	groups, err := repo.ListActiveGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, 1, groups[0].Grado)
	require.Equal(t, "A", groups[0].Letra)
	require.Equal(t, "B", groups[1].Letra)
	require.Equal(t, 2, groups[2].Grado)
}

func TestDashboardStatsTracksRowCounts(t *testing.T) {
	pool := newTestPool(t)
	repo := NewSchoolRepository(pool)
	ctx := context.Background()

	exec(t, pool, `INSERT INTO alumnos (matricula, nombre, apellido_paterno) VALUES ('A1', 'Ana', 'Lopez')`)
	exec(t, pool, `INSERT INTO maestros (numero_empleado, nombre, apellido_paterno) VALUES ('M1', 'Jorge', 'Alvarez')`)
	exec(t, pool, `INSERT INTO grupos (grado, letra, activo) VALUES (1, 'A', true), (1, 'B', false)`)
	exec(t, pool, `INSERT INTO materias (nombre) VALUES ('Historia'), ('Fisica')`)
	exec(t, pool, `INSERT INTO aulas (nombre, activo) VALUES ('101', true), ('102', false)`)

	before, err := repo.DashboardStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, before.TotalAlumnos)
	require.EqualValues(t, 1, before.TotalMaestros)
	require.EqualValues(t, 1, before.TotalGrupos)
	require.EqualValues(t, 2, before.TotalMaterias)
	require.EqualValues(t, 1, before.TotalAulas)

	exec(t, pool, `INSERT INTO grupos (grado, letra, activo) VALUES (2, 'A', true)`)

	after, err := repo.DashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, before.TotalGrupos+1, after.TotalGrupos)
	require.Equal(t, before.TotalAlumnos, after.TotalAlumnos)
}

func TestUnavailableDatabaseSurfacesUpstreamError(t *testing.T) {
	pool := newTestPool(t)
	repo := NewSchoolRepository(pool)
	pool.Close()

	_, err := repo.ListTeachers(context.Background())
	require.True(t, apierror.HasCode(err, apierror.CodeUpstreamUnavailable))
}

func TestStudentBirthDateIsDateOnly(t *testing.T) {
	pool := newTestPool(t)
	repo := NewSchoolRepository(pool)

	exec(t, pool, `INSERT INTO alumnos (matricula, nombre, apellido_paterno, fecha_nacimiento) VALUES
		('A1', 'Ana', 'Lopez', '2010-05-01'),
		('A2', 'Beto', 'Mora', NULL)`)

	students, err := repo.ListStudents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.NotNil(t, students[0].FechaNacimiento)
	require.Equal(t, model.NewDate(2010, time.May, 1), *students[0].FechaNacimiento)
	require.Nil(t, students[1].FechaNacimiento)

	out, err := json.Marshal(students[0])
	require.NoError(t, err)
	require.Contains(t, string(out), `"fecha_nacimiento":"2010-05-01"`)
}

func requireNoAcquiredConns(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	require.Zero(t, pool.Stat().AcquiredConns(), "connection left acquired")
}

func TestConnectionsReleasedOnEveryPath(t *testing.T) {
	pool := newTestPool(t)
	repo := NewSchoolRepository(pool)
	ctx := context.Background()

	exec(t, pool, `INSERT INTO grupos (grado, letra) VALUES (1, 'A')`)

	t.Run("success", func(t *testing.T) {
		_, err := repo.ListActiveGroups(ctx)
		require.NoError(t, err)
		requireNoAcquiredConns(t, pool)

		_, err = repo.DashboardStats(ctx)
		require.NoError(t, err)
		requireNoAcquiredConns(t, pool)
	})

	t.Run("scan error", func(t *testing.T) {
		exec(t, pool, `ALTER TABLE grupos ALTER COLUMN grado DROP NOT NULL`)
		exec(t, pool, `INSERT INTO grupos (grado, letra) VALUES (NULL, 'B')`)

		_, err := repo.ListActiveGroups(ctx)
		require.True(t, apierror.HasCode(err, apierror.CodeUpstreamUnavailable))
		requireNoAcquiredConns(t, pool)
	})

	t.Run("dashboard fails partway", func(t *testing.T) {
		exec(t, pool, `DROP TABLE materias`)

		_, err := repo.DashboardStats(ctx)
		require.True(t, apierror.HasCode(err, apierror.CodeUpstreamUnavailable))
		require.ErrorContains(t, err, "materias")
		requireNoAcquiredConns(t, pool)
	})

	t.Run("query error", func(t *testing.T) {
		exec(t, pool, `DROP TABLE maestros`)

		_, err := repo.ListTeachers(ctx)
		require.True(t, apierror.HasCode(err, apierror.CodeUpstreamUnavailable))
		requireNoAcquiredConns(t, pool)
	})
}
