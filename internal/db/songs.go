package db

import (
	"context"
	"fmt"
	"time"
)

type Song struct {
	Name   string
	Lyrics string
}

// InsertSong appends one row and commits.
func (d *DB) InsertSong(ctx context.Context, song Song) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.StmtContext(ctx, d.insert).ExecContext(ctx, song.Name, song.Lyrics); err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit song: %w", err)
	}
	return nil
}

// ListSongs returns up to limit rows in storage order. limit <= 0 means all.
func (d *DB) ListSongs(ctx context.Context, limit int) ([]Song, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `SELECT song_name, lyrics FROM songs`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.conn.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.Name, &song.Lyrics); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return songs, nil
}
