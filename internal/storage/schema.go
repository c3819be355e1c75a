// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for plans, schedule_items, activities, and body_metrics.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		name TEXT,
		fitness_goal TEXT NOT NULL,
		biometrics TEXT NOT NULL,
		original_targets TEXT NOT NULL,
		working_targets TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schedule_items (
		plan_id TEXT NOT NULL,
		day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
		workout_type TEXT,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		time_of_day TEXT NOT NULL,
		is_rest_day INTEGER NOT NULL,
		PRIMARY KEY (plan_id, day_of_week),
		FOREIGN KEY (plan_id) REFERENCES plans(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		activity_type TEXT NOT NULL,
		status TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME,
		duration_minutes REAL NOT NULL DEFAULT 0,
		weight_kg REAL NOT NULL DEFAULT 0,
		calories INTEGER NOT NULL DEFAULT 0,
		steps INTEGER NOT NULL DEFAULT 0,
		notes TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS body_metrics (
		id TEXT PRIMARY KEY,
		weight_kg REAL NOT NULL,
		body_fat_percent REAL,
		recorded_at DATETIME NOT NULL,
		notes TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_plans_updated ON plans(updated_at DESC);
	CREATE INDEX IF NOT EXISTS idx_activities_started ON activities(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_activities_type_started ON activities(activity_type, started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_body_metrics_recorded ON body_metrics(recorded_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
