package db

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	SchemaVersion    int      `json:"schema_version"`
	LatestVersion    int      `json:"latest_version"`
	CorruptKeys      []string `json:"corrupt_keys"`
	ExpiredCacheRows int64    `json:"expired_cache_rows"`
	RemovedKeys      int      `json:"removed_keys,omitempty"`
	PurgedCacheRows  int64    `json:"purged_cache_rows,omitempty"`
}

// Healthy reports whether the database needs no attention.
func (r DoctorReport) Healthy() bool {
	return r.SchemaVersion == r.LatestVersion && len(r.CorruptKeys) == 0 && r.ExpiredCacheRows == 0
}

// CreateBackup writes a consistent snapshot of sqldb to outPath with a
// .sha256 sidecar.
func CreateBackup(ctx context.Context, sqldb *sql.DB, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if _, err := os.Stat(outPath); err == nil {
		return BackupInfo{}, fmt.Errorf("backup %s already exists", outPath)
	}
	if _, err := sqldb.ExecContext(ctx, `VACUUM INTO ?`, outPath); err != nil {
		return BackupInfo{}, fmt.Errorf("snapshot database: %w", err)
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

// RestoreBackup copies backupPath over dbPath after verifying its checksum
// when a sidecar exists.
func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	if expected, err := os.ReadFile(backupPath + ".sha256"); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

// ListBackups returns the .db files in dir, newest first.
func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// RunDoctor inspects the schema version, stored values, and cache freshness.
// With fix set, values that are not valid JSON are removed and expired cache
// rows are purged.
func RunDoctor(ctx context.Context, sqldb *sql.DB, now time.Time, fix bool) (DoctorReport, error) {
	report := DoctorReport{LatestVersion: LatestVersion(), CorruptKeys: []string{}}
	if err := sqldb.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&report.SchemaVersion); err != nil {
		return report, fmt.Errorf("doctor schema version: %w", err)
	}

	rows, err := sqldb.QueryContext(ctx, `SELECT key, value FROM kv_store ORDER BY key`)
	if err != nil {
		return report, fmt.Errorf("doctor kv query: %w", err)
	}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor kv scan: %w", err)
		}
		if !json.Valid([]byte(value)) {
			report.CorruptKeys = append(report.CorruptKeys, key)
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return report, fmt.Errorf("doctor kv rows: %w", err)
	}
	_ = rows.Close()

	cutoff := now.UTC().Format(time.RFC3339)
	for _, table := range []string{"remote_search_cache", "barcode_cache"} {
		var n int64
		if err := sqldb.QueryRowContext(ctx, `SELECT COUNT(1) FROM `+table+` WHERE expires_at < ?`, cutoff).Scan(&n); err != nil {
			return report, fmt.Errorf("doctor %s: %w", table, err)
		}
		report.ExpiredCacheRows += n
	}

	if !fix {
		return report, nil
	}
	store := NewStore(sqldb)
	for _, key := range report.CorruptKeys {
		if err := store.Delete(ctx, key); err != nil {
			return report, err
		}
		report.RemovedKeys++
	}
	purged, err := NewCache(sqldb).WithClock(func() time.Time { return now }).Purge(ctx, true)
	if err != nil {
		return report, err
	}
	report.PurgedCacheRows = purged
	return report, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
