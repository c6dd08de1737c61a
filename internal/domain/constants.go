package domain

// Default lot configuration
const (
	DefaultTotalSlots   = 12
	DefaultPricePerHour = 20.0
	DefaultCurrency     = "INR"
)

// Business validation constants
const (
	MinTotalSlots   = 1
	MaxTotalSlots   = 1000
	MaxOwnerNameLen = 100
	MaxVehicleNoLen = 20
	MaxTxnIDLen     = 64
)

// TimestampFormat формат отметок времени в билетах и ответах API
const TimestampFormat = "2006-01-02 15:04:05"

// Seed-аккаунты по умолчанию (только для разработки)
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin123"
	SeedUserUsername  = "user"
	SeedUserPassword  = "user123"
)
