package domain

// Subscription Model
type Subscription struct {
	ID        string `gorm:"primaryKey;size:36"`   // UUID, generated at creation
	Email     string `gorm:"index;size:255"`       // Owner email; empty for mobile/global rows
	Account   string `gorm:"not null;size:64"`     // Watched ledger address
	Webhook   string `gorm:"default:''"`           // Snapshot of the owner's webhook at creation
	CreatedAt int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
