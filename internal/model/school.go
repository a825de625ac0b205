package model

type Student struct {
	ID              int64   `json:"id"`
	Matricula       string  `json:"matricula"`
	Nombre          string  `json:"nombre"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	Email           *string `json:"email"`
	Telefono        *string `json:"telefono"`
	FechaNacimiento *Date   `json:"fecha_nacimiento"`
	GrupoID         *int64  `json:"grupo_id"`
	Activo          bool    `json:"activo"`
}

type Teacher struct {
	ID              int64   `json:"id"`
	NumeroEmpleado  string  `json:"numero_empleado"`
	Nombre          string  `json:"nombre"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	Email           *string `json:"email"`
	Telefono        *string `json:"telefono"`
	Especialidad    *string `json:"especialidad"`
	Activo          bool    `json:"activo"`
}

type Group struct {
	ID           int64   `json:"id"`
	Grado        int     `json:"grado"`
	Letra        string  `json:"letra"`
	Turno        *string `json:"turno"`
	CicloEscolar *string `json:"ciclo_escolar"`
	Capacidad    *int    `json:"capacidad"`
	Activo       bool    `json:"activo"`
}

type DashboardStats struct {
	TotalAlumnos  int64 `json:"total_alumnos"`
	TotalMaestros int64 `json:"total_maestros"`
	TotalGrupos   int64 `json:"total_grupos"`
	TotalMaterias int64 `json:"total_materias"`
	TotalAulas    int64 `json:"total_aulas"`
}

type HealthStatus struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Message  string `json:"message"`
	Database string `json:"database"`
}
