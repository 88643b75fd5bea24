package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/saiteki-ops/saiteki/internal/client/domain"
	"github.com/saiteki-ops/saiteki/internal/client/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Client{}, &domain.Contact{}))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateClientWithContacts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		ClientNumber: "C-001",
		ClientName:   "株式会社サンプル",
		StorageFee:   50000,
		Contacts: []domain.ContactRequest{
			{ContactName: "山田太郎", Email: strPtr("yamada@example.com"), SendInvoice: true},
			{ContactName: "   "},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "C-001", resp.ClientNumber)
	assert.Equal(t, "株式会社サンプル", resp.ClientName)
	assert.True(t, resp.IsActive)
	assert.Equal(t, int64(50000), resp.StorageFee)
	// blank contact names are dropped
	require.Len(t, resp.Contacts, 1)
	assert.Equal(t, "山田太郎", resp.Contacts[0].ContactName)
	assert.True(t, resp.Contacts[0].SendInvoice)
}

func TestCreateClientRequiresName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{ClientName: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestUpdateClientPartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		ClientNumber: "C-002",
		ClientName:   "旧社名",
		Remarks:      strPtr("メモ"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:         created.ID,
		ClientName: strPtr("新社名"),
	})
	require.NoError(t, err)

	assert.Equal(t, "新社名", updated.ClientName)
	assert.Equal(t, "C-002", updated.ClientNumber)
	require.NotNil(t, updated.Remarks)
	assert.Equal(t, "メモ", *updated.Remarks)
}

func TestDeleteClientRemovesContacts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		ClientName: "削除対象",
		Contacts:   []domain.ContactRequest{{ContactName: "担当者"}},
	})
	require.NoError(t, err)
	contactID := created.Contacts[0].ID

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.UpdateContact(ctx, domain.UpdateContactRequest{ID: contactID, ContactName: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestContactLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{ClientName: "得意先"})
	require.NoError(t, err)

	contact, err := svc.AddContact(ctx, domain.ContactRequest{
		ClientID:    created.ID,
		ContactName: "鈴木花子",
		PhoneNumber: strPtr("03-1234-5678"),
	})
	require.NoError(t, err)

	sendInvoice := true
	updatedContact, err := svc.UpdateContact(ctx, domain.UpdateContactRequest{
		ID:          contact.ID,
		SendInvoice: &sendInvoice,
	})
	require.NoError(t, err)
	assert.Equal(t, "鈴木花子", updatedContact.ContactName)
	assert.True(t, updatedContact.SendInvoice)

	require.NoError(t, svc.DeleteContact(ctx, contact.ID))
	contacts, err := svc.ListContacts(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
