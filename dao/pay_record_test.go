package dao

import (
	"Scoops/internal/testutil"
	"Scoops/models"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func payRecord(orderID int64, txID string) *models.PayRecord {
	return &models.PayRecord{
		OrderID: orderID,
		TxID:    txID,
		Amount:  decimal.RequireFromString("19.98"),
		Payload: datatypes.JSON(`{"code":"` + txID + `"}`),
	}
}

func TestPayRecord_FirstOrCreateKeepsFirstRecord(t *testing.T) {
	ctx := context.Background()
	p := NewPayRecord(testutil.NewDB(t))

	first, err := p.FirstOrCreate(ctx, payRecord(1, "first"))
	require.NoError(t, err)
	second, err := p.FirstOrCreate(ctx, payRecord(1, "second"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "first", second.TxID)
}

func TestPayRecord_FirstOrCreateLosesInsertRace(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	p := NewPayRecord(db)

	// another request inserts its record between our lookup and our insert
	raced := false
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:pay_record_race", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != (models.PayRecord{}).TableName() {
			return
		}
		raced = true
		require.NoError(t, db.Session(&gorm.Session{NewDB: true}).Create(payRecord(7, "winner")).Error)
	}))

	got, err := p.FirstOrCreate(ctx, payRecord(7, "loser"))
	require.NoError(t, err)
	assert.True(t, raced)
	assert.Equal(t, "winner", got.TxID)

	var count int64
	require.NoError(t, db.Model(&models.PayRecord{}).Where("order_id = ?", 7).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
