// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles query
// execution, mapping between domain entities and database records, and
// translation of PostgreSQL constraint violations into store sentinel errors.
//
// Schema migrations are embedded in the binary and applied with MigrateUp.
package postgres
