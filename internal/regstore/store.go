package regstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/vahanlens/vahanlens/internal/contract"
	"github.com/vahanlens/vahanlens/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// RecordStoreImpl handles durable storage of registration records using
// various database backends.
type RecordStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.RecordStore = &RecordStoreImpl{} // Compile-time check

// NewRecordStore initializes and returns a new RecordStore based on the backend type.
func NewRecordStore(backend schema.DatabaseBackend, connStr string) (contract.RecordStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &RecordStoreImpl{db: nil, backend: backend, connStr: connStr}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", registrationsTable, err)
	}

	return &RecordStoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				period CHAR(7) NOT NULL,
				category VARCHAR(8) NOT NULL,
				maker VARCHAR(128) NOT NULL,
				state VARCHAR(64) NOT NULL,
				reg_count BIGINT NOT NULL,
				PRIMARY KEY (period, category, maker, state)
			);
		`, registrationsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				period CHAR(7) NOT NULL,
				category TEXT NOT NULL,
				maker TEXT NOT NULL,
				state TEXT NOT NULL,
				reg_count BIGINT NOT NULL,
				PRIMARY KEY (period, category, maker, state)
			);
		`, registrationsTable)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				period TEXT NOT NULL,
				category TEXT NOT NULL,
				maker TEXT NOT NULL,
				state TEXT NOT NULL,
				reg_count INTEGER NOT NULL,
				PRIMARY KEY (period, category, maker, state)
			);
		`, registrationsTable)
	}
}

// placeholders generates backend-appropriate parameter markers, numbered
// sequentially starting at start for PostgreSQL.
func (rs *RecordStoreImpl) placeholders(start, n int) []string {
	out := make([]string, n)
	for i := range n {
		if rs.backend == schema.PostgreSQLBackend {
			out[i] = fmt.Sprintf("$%d", start+i)
		} else { // SQLite and MySQL
			out[i] = "?"
		}
	}
	return out
}

// getUpsertQuery returns the UPSERT query for the backend. Re-inserting the
// same (period, category, maker, state) tuple replaces its count.
func (rs *RecordStoreImpl) getUpsertQuery() string {
	switch rs.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (period, category, maker, state, reg_count) VALUES (?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE reg_count = new.reg_count`, registrationsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (period, category, maker, state, reg_count) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (period, category, maker, state) DO UPDATE SET reg_count = EXCLUDED.reg_count`, registrationsTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (period, category, maker, state, reg_count) VALUES (?, ?, ?, ?, ?)`, registrationsTable)
	}
}

// InsertRecords persists a batch of registration records in one transaction.
func (rs *RecordStoreImpl) InsertRecords(ctx context.Context, records []schema.RegistrationRecord) (int64, error) {
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return 0, nil
	}

	tx, err := rs.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, rs.getUpsertQuery())
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var written int64
	for _, r := range records {
		if !r.Period.Valid() {
			return 0, fmt.Errorf("record has invalid period %v", r.Period)
		}
		if _, err := stmt.ExecContext(ctx, r.Period.String(), string(r.Category), r.Maker, r.State, r.Count); err != nil {
			return 0, fmt.Errorf("failed to insert record %s/%s/%s/%s: %w", r.Period, r.Category, r.Maker, r.State, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit insert: %w", err)
	}
	return written, nil
}

// QueryRecords returns records matching the filter. Period bounds and list
// filters are pushed down into the SQL WHERE clause; the stored YYYY-MM form
// compares lexicographically in period order.
func (rs *RecordStoreImpl) QueryRecords(ctx context.Context, filter schema.FilterSpec) ([]schema.RegistrationRecord, error) {
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var conds []string
	var args []any

	next := func() string {
		return rs.placeholders(len(args)+1, 1)[0]
	}

	if filter.From != nil {
		conds = append(conds, fmt.Sprintf("period >= %s", next()))
		args = append(args, filter.From.String())
	}
	if filter.To != nil {
		conds = append(conds, fmt.Sprintf("period <= %s", next()))
		args = append(args, filter.To.String())
	}
	if len(filter.Categories) > 0 {
		marks := rs.placeholders(len(args)+1, len(filter.Categories))
		conds = append(conds, fmt.Sprintf("category IN (%s)", strings.Join(marks, ", ")))
		for _, c := range filter.Categories {
			args = append(args, string(c))
		}
	}
	if len(filter.Makers) > 0 {
		marks := rs.placeholders(len(args)+1, len(filter.Makers))
		conds = append(conds, fmt.Sprintf("maker IN (%s)", strings.Join(marks, ", ")))
		for _, m := range filter.Makers {
			args = append(args, m)
		}
	}
	if len(filter.States) > 0 {
		marks := rs.placeholders(len(args)+1, len(filter.States))
		conds = append(conds, fmt.Sprintf("state IN (%s)", strings.Join(marks, ", ")))
		for _, s := range filter.States {
			args = append(args, s)
		}
	}

	query := fmt.Sprintf("SELECT period, category, maker, state, reg_count FROM %s", registrationsTable)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY period, category, maker, state"

	rows, err := rs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.RegistrationRecord
	for rows.Next() {
		var periodStr, category string
		var r schema.RegistrationRecord
		if err := rows.Scan(&periodStr, &category, &r.Maker, &r.State, &r.Count); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		period, err := schema.ParsePeriod(strings.TrimSpace(periodStr))
		if err != nil {
			return nil, fmt.Errorf("corrupt period in store: %w", err)
		}
		r.Period = period
		r.Category = schema.Category(category)
		records = append(records, r)
	}
	return records, rows.Err()
}

// DistinctValues returns the distinct filterable values present in the store.
func (rs *RecordStoreImpl) DistinctValues(ctx context.Context) (schema.FilterOptions, error) {
	var opts schema.FilterOptions
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return opts, nil
	}

	collect := func(column string, sink func(string)) error {
		query := fmt.Sprintf("SELECT DISTINCT %s FROM %s ORDER BY %s", column, registrationsTable, column)
		rows, err := rs.db.QueryContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to query distinct %s: %w", column, err)
		}
		defer func() { _ = rows.Close() }()
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			sink(strings.TrimSpace(v))
		}
		return rows.Err()
	}

	if err := collect("category", func(v string) {
		opts.Categories = append(opts.Categories, schema.Category(v))
	}); err != nil {
		return opts, err
	}
	if err := collect("maker", func(v string) {
		opts.Makers = append(opts.Makers, v)
	}); err != nil {
		return opts, err
	}
	if err := collect("state", func(v string) {
		opts.States = append(opts.States, v)
	}); err != nil {
		return opts, err
	}

	first, last, err := rs.periodRange(ctx)
	if err != nil {
		return opts, err
	}
	opts.FirstPeriod = first
	opts.LastPeriod = last
	return opts, nil
}

// periodRange returns the first and last period present in the store.
// Both are zero when the store is empty.
func (rs *RecordStoreImpl) periodRange(ctx context.Context) (schema.Period, schema.Period, error) {
	var first, last schema.Period
	query := fmt.Sprintf("SELECT MIN(period), MAX(period) FROM %s", registrationsTable)
	var minStr, maxStr sql.NullString
	if err := rs.db.QueryRowContext(ctx, query).Scan(&minStr, &maxStr); err != nil {
		return first, last, fmt.Errorf("failed to get period range: %w", err)
	}
	if minStr.Valid && minStr.String != "" {
		p, err := schema.ParsePeriod(strings.TrimSpace(minStr.String))
		if err != nil {
			return first, last, err
		}
		first = p
	}
	if maxStr.Valid && maxStr.String != "" {
		p, err := schema.ParsePeriod(strings.TrimSpace(maxStr.String))
		if err != nil {
			return first, last, err
		}
		last = p
	}
	return first, last, nil
}

// Stats returns dataset-wide counters.
func (rs *RecordStoreImpl) Stats(ctx context.Context) (schema.DatasetStats, error) {
	var stats schema.DatasetStats
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return stats, nil
	}

	query := fmt.Sprintf(`SELECT COUNT(*), COALESCE(SUM(reg_count), 0), COUNT(DISTINCT maker), COUNT(DISTINCT state) FROM %s`, registrationsTable)
	row := rs.db.QueryRowContext(ctx, query)
	if err := row.Scan(&stats.TotalRecords, &stats.TotalRegistrations, &stats.UniqueMakers, &stats.UniqueStates); err != nil {
		return stats, fmt.Errorf("failed to get dataset stats: %w", err)
	}
	return stats, nil
}

// Clear removes all records and returns the number of rows deleted.
func (rs *RecordStoreImpl) Clear(ctx context.Context) (int64, error) {
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return 0, nil
	}
	res, err := rs.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", registrationsTable))
	if err != nil {
		return 0, fmt.Errorf("failed to clear records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// GetStatus returns status information about the record store.
func (rs *RecordStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(rs.backend),
		Connected: rs.db != nil,
	}

	if rs.backend == schema.NoneBackend || rs.db == nil {
		return status, nil
	}

	ctx := context.Background()
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", registrationsTable)
	if err := rs.db.QueryRowContext(ctx, countQuery).Scan(&status.TotalRecords); err != nil {
		return status, fmt.Errorf("failed to get total records: %w", err)
	}

	if status.TotalRecords == 0 {
		return status, nil
	}

	first, last, err := rs.periodRange(ctx)
	if err != nil {
		return status, err
	}
	status.FirstPeriod = first
	status.LastPeriod = last
	return status, nil
}

// Close closes the underlying DB connection.
func (rs *RecordStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}
