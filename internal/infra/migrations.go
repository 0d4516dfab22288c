package infra

import (
	"fmt"

	"gorm.io/gorm"
)

type migration struct{ descr, sql string }

// schema lists idempotent DDL in dependency order. Every statement uses
// IF NOT EXISTS so re-running on an existing database is a no-op.
var schema = []migration{
	{"clientes", `
CREATE TABLE IF NOT EXISTS clientes (
    id          SERIAL PRIMARY KEY,
    nombre      VARCHAR(50) NOT NULL,
    estado      VARCHAR(20) NOT NULL DEFAULT 'disponible'
                CHECK (estado IN ('disponible', 'Con clientes')),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT uni_clientes_nombre UNIQUE (nombre)
)`},
	{"empleados", `
CREATE TABLE IF NOT EXISTS empleados (
    id             SERIAL PRIMARY KEY,
    nombre         VARCHAR(50)  NOT NULL,
    email          VARCHAR(35)  NOT NULL,
    password_hash  VARCHAR(255) NOT NULL,
    rol            VARCHAR(15)  NOT NULL,
    contacto       VARCHAR(20),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT uni_empleados_email UNIQUE (email)
)`},
	{"turnos", `
CREATE TABLE IF NOT EXISTS turnos (
    id           SERIAL PRIMARY KEY,
    fecha        DATE       NOT NULL,
    hora_inicio  VARCHAR(5) NOT NULL,
    hora_fin     VARCHAR(5) NOT NULL,
    empleado_id  INTEGER REFERENCES empleados(id) ON DELETE SET NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	{"idx_turnos_empleado_fecha",
		`CREATE INDEX IF NOT EXISTS idx_turnos_empleado_fecha ON turnos (empleado_id, fecha)`},
	{"ingredientes", `
CREATE TABLE IF NOT EXISTS ingredientes (
    id             SERIAL PRIMARY KEY,
    nombre         VARCHAR(50)    NOT NULL,
    cantidad       DECIMAL(10, 2) NOT NULL DEFAULT 0,
    unidad_medida  VARCHAR(20)    NOT NULL DEFAULT 'unidad',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT uni_ingredientes_nombre UNIQUE (nombre)
)`},
	{"platos", `
CREATE TABLE IF NOT EXISTS platos (
    id              SERIAL PRIMARY KEY,
    nombre          VARCHAR(80)    NOT NULL,
    descripcion     TEXT           NOT NULL DEFAULT '',
    precio          DECIMAL(10, 2) NOT NULL CHECK (precio > 0),
    disponibilidad  BOOLEAN        NOT NULL DEFAULT TRUE,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT uni_platos_nombre UNIQUE (nombre)
)`},
	// An ingredient still used by a dish cannot be deleted.
	{"plato_ingredientes", `
CREATE TABLE IF NOT EXISTS plato_ingredientes (
    plato_id        INTEGER NOT NULL REFERENCES platos(id)       ON DELETE CASCADE,
    ingrediente_id  INTEGER NOT NULL REFERENCES ingredientes(id) ON DELETE RESTRICT,
    PRIMARY KEY (plato_id, ingrediente_id)
)`},
	{"pedidos", `
CREATE TABLE IF NOT EXISTS pedidos (
    id           SERIAL PRIMARY KEY,
    fecha        DATE,
    estado       VARCHAR(10) NOT NULL DEFAULT 'Pendiente'
                 CHECK (estado IN ('Pendiente', 'Completo')),
    total        DECIMAL(10, 2),
    cliente_id   INTEGER REFERENCES clientes(id)  ON DELETE SET NULL,
    empleado_id  INTEGER REFERENCES empleados(id) ON DELETE SET NULL,
    liberado     BOOLEAN NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	{"pedido_platos", `
CREATE TABLE IF NOT EXISTS pedido_platos (
    pedido_id  INTEGER NOT NULL REFERENCES pedidos(id) ON DELETE CASCADE,
    plato_id   INTEGER NOT NULL REFERENCES platos(id)  ON DELETE CASCADE,
    PRIMARY KEY (pedido_id, plato_id)
)`},
	{"idx_pedido_platos_plato",
		`CREATE INDEX IF NOT EXISTS idx_pedido_platos_plato ON pedido_platos (plato_id)`},
}

// RunMigrations applies the schema. Used by the server at startup, by
// `restoctl migrar` and by the integration suite.
func RunMigrations(db *gorm.DB) error {
	for _, m := range schema {
		if err := db.Exec(m.sql).Error; err != nil {
			return fmt.Errorf("migration %q: %w", m.descr, err)
		}
	}
	return nil
}
