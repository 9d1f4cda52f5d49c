package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type txRow struct {
	ID   uint `gorm:"primarykey"`
	Name string
}

func setupTxDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&txRow{}))
	t.Cleanup(func() {
		gdb.Exec("DELETE FROM tx_rows")
	})
	return gdb
}

func TestRunInTransaction_CommitsOnSuccess(t *testing.T) {
	gdb := setupTxDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, gdb).Create(&txRow{Name: "a"}).Error
	})
	require.NoError(t, err)

	var count int64
	gdb.Model(&txRow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	gdb := setupTxDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, gdb).Create(&txRow{Name: "a"}).Error; err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	var count int64
	gdb.Model(&txRow{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetTxFromContext_FallsBackToDefaultDB(t *testing.T) {
	gdb := setupTxDB(t)

	handle := GetTxFromContext(context.Background(), gdb)
	require.NotNil(t, handle)
	assert.NoError(t, handle.Create(&txRow{Name: "outside"}).Error)
}
