package postgres

import (
	"database/sql"
)

// KVRepo implements repository.KVStore on top of PostgreSQL
type KVRepo struct {
	db *sql.DB
}

// NewKVRepo creates a new key-value repository
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns the value stored under key
func (r *KVRepo) Get(key string) ([]byte, error) {
	var value []byte
	query := `SELECT value FROM kv_store WHERE key = $1`
	err := r.db.QueryRow(query, key).Scan(&value)

	if err == sql.ErrNoRows {
		// Nothing saved yet
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Put stores value under key, replacing any previous value
func (r *KVRepo) Put(key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.Exec(query, key, value)
	return err
}

// Delete removes key
func (r *KVRepo) Delete(key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`
	_, err := r.db.Exec(query, key)
	return err
}
