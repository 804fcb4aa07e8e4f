package store

import (
	"context"
	"testing"

	"github.com/pcc1news/pcc1-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessages(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	m, err := db.Contact().AddContactMessage(ctx, &entity.ContactMessageInsert{
		Name:          "Ada",
		Email:         "ada@example.com",
		Message:       "Hello there",
		HCaptchaToken: "token",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.Id)

	msgs, err := db.Contact().GetContactMessagesPaged(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Hello there", msgs[0].Message)
}
