package store

import (
	"context"
	"os"
	"testing"

	"github.com/pcc1news/pcc1-manager/internal/dependency"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to the database named by MYSQL_TEST_DSN and empties every
// table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *MYSQLStore {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN is not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	for _, table := range []string{
		"waitlist",
		"contact_messages",
		"outbox_event",
		"sent_notification",
		"newsletter_subscriber",
		"blog_posts",
		"research_papers",
	} {
		_, err = db.db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}

	return db
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Ping(context.Background()))
}

func TestTxFreezesNow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := db.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		require.True(t, rep.InTx())
		require.Equal(t, rep.Now(), rep.Now())
		return nil
	})
	require.NoError(t, err)
	require.False(t, db.InTx())
}

func TestMigrateDSNIsRepeatable(t *testing.T) {
	// newTestDB has already applied every migration
	newTestDB(t)

	n, err := MigrateDSN(context.Background(), Config{DSN: os.Getenv("MYSQL_TEST_DSN")})
	require.NoError(t, err)
	require.Zero(t, n)
}
