package dto

import (
	"time"

	"github.com/kopbox/kopbox-pos/internal/model"
)

// Receipt is the committed output of one checkout.
type Receipt struct {
	ReceiptID   string
	Lines       []model.SaleLine
	Total       int64
	CommittedAt time.Time
}
