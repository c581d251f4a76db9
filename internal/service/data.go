package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"jokipro/internal/model"

	"gorm.io/gorm"
)

// exportTables is the order tables appear in a backup.
var exportTables = []string{"tasks", "clients", "expenses"}

type DataService struct{ db *gorm.DB }

func NewDataService(db *gorm.DB) *DataService { return &DataService{db: db} }

// ResetAll deletes every task, client and expense. Users are kept.
func (s *DataService) ResetAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&model.Task{}, &model.Client{}, &model.Expense{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return fmt.Errorf("reset %T: %w", m, err)
			}
		}
		return nil
	})
}

// BackupFilename names the export file for the given day.
func BackupFilename(now time.Time) string {
	return "jokipro_backup_" + now.Format("20060102") + ".csv"
}

// ExportCSV writes a backup of tasks, clients and expenses: a title row,
// the export time, then each table as a "TABLE: NAME" row, its column
// header and its rows, separated by blank rows.
func (s *DataService) ExportCSV(ctx context.Context, w io.Writer, now time.Time) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"--- JOKI PRO DATA EXPORT ---"})
	cw.Write([]string{"Exported At", now.Format("2006-01-02 15:04:05")})
	cw.Write([]string{""})

	for _, table := range exportTables {
		if err := s.exportTable(ctx, cw, table); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *DataService) exportTable(ctx context.Context, cw *csv.Writer, table string) error {
	rows, err := s.db.WithContext(ctx).Table(table).Order("id").Rows()
	if err != nil {
		return fmt.Errorf("export %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("export %s columns: %w", table, err)
	}

	var records [][]string
	for rows.Next() {
		rec, err := scanRecord(rows, len(cols))
		if err != nil {
			return fmt.Errorf("export %s row: %w", table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("export %s: %w", table, err)
	}

	if len(records) == 0 {
		cw.Write([]string{fmt.Sprintf("Table %s is empty.", table)})
		cw.Write([]string{""})
		return nil
	}
	cw.Write([]string{"TABLE: " + strings.ToUpper(table)})
	cw.Write(cols)
	cw.WriteAll(records)
	cw.Write([]string{""})
	return nil
}

func scanRecord(rows *sql.Rows, n int) ([]string, error) {
	vals := make([]any, n)
	ptrs := make([]any, n)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	rec := make([]string, n)
	for i, v := range vals {
		switch x := v.(type) {
		case nil:
			rec[i] = ""
		case []byte:
			rec[i] = string(x)
		case time.Time:
			rec[i] = x.Format("2006-01-02 15:04:05")
		default:
			rec[i] = fmt.Sprint(x)
		}
	}
	return rec, nil
}
