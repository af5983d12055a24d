package storage

// Fixed keys of the persisted state layout. Every key maps to one JSON
// document in the active kv backend.
const (
	// KeyBooks holds the versioned book-collection document.
	KeyBooks = "books"

	// KeyReadingGoal holds the yearly reading challenge record.
	KeyReadingGoal = "reading_goal"

	// KeyLanguage holds the UI language preference ("tr" or "en").
	KeyLanguage = "app_language"

	// KeyAnonymousID holds the UUIDv4 generated once per install,
	// used only for crash/telemetry correlation.
	KeyAnonymousID = "anonymous_user_id"

	// KeyStorageMigrated marks the one-time backend-swap migration
	// as complete in the destination backend.
	KeyStorageMigrated = "storage_migrated"
)
