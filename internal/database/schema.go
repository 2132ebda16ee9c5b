package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema lists the tables in dependency order so foreign keys always
// point at an existing table.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS films (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		title        VARCHAR(255)    NOT NULL,
		duration_min INT             NOT NULL DEFAULT 0,
		category     VARCHAR(100)    NOT NULL DEFAULT '',
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS seances (
		id        BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		film_id   BIGINT UNSIGNED NOT NULL,
		starts_at DATETIME        NOT NULL,
		room      VARCHAR(100)    NOT NULL DEFAULT '',
		capacity  INT             NOT NULL DEFAULT 0,
		PRIMARY KEY (id),
		CONSTRAINT fk_seances_film FOREIGN KEY (film_id) REFERENCES films (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS spectateurs (
		id    BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name  VARCHAR(255)    NOT NULL,
		email VARCHAR(255)    NOT NULL DEFAULT '',
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		seance_id     BIGINT UNSIGNED NOT NULL,
		spectateur_id BIGINT UNSIGNED NOT NULL,
		price         DECIMAL(10,2)   NOT NULL,
		PRIMARY KEY (id),
		CONSTRAINT fk_tickets_seance FOREIGN KEY (seance_id) REFERENCES seances (id),
		CONSTRAINT fk_tickets_spectateur FOREIGN KEY (spectateur_id) REFERENCES spectateurs (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the four cinema tables when they are missing.  It
// is safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
